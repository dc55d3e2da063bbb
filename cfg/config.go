package cfg

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type AmadeusClientConfig struct {
	BaseURL string
}

type Config struct {
	AppEnv               string
	AppPort              string
	RedisConfig          RedisConfig
	AmadeusClientConfig  AmadeusClientConfig
	CacheTTLMinutes      int
	SearchTimeoutSeconds int
	CredentialsFile      string
	IDGenNode            int64
}

func Load() (*Config, error) {
	var errs []error

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	appEnv := mustEnv("APP_ENV", &errs)
	appPort := mustEnv("APP_PORT", &errs)
	redisHost := mustEnv("REDIS_HOST", &errs)
	redisPort := mustEnv("REDIS_PORT", &errs)
	redisPassword := os.Getenv("REDIS_PASSWORD")

	amadeusBaseURL := mustEnv("AMADEUS_BASE_URL", &errs)
	credentialsFile := mustEnv("CREDENTIALS_FILE", &errs)

	cacheTTLMinutes := mustIntEnv("CACHE_TTL_MINUTES", &errs)
	searchTimeoutSeconds := mustIntEnv("SEARCH_TIMEOUT_SECONDS", &errs)
	idGenNode := mustIntEnv("IDGEN_NODE", &errs)

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Config{
		AppEnv:  appEnv,
		AppPort: appPort,
		RedisConfig: RedisConfig{
			Host:     redisHost,
			Port:     redisPort,
			Password: redisPassword,
		},
		AmadeusClientConfig: AmadeusClientConfig{
			BaseURL: amadeusBaseURL,
		},
		CacheTTLMinutes:      cacheTTLMinutes,
		SearchTimeoutSeconds: searchTimeoutSeconds,
		CredentialsFile:      credentialsFile,
		IDGenNode:            int64(idGenNode),
	}, nil
}

func mustEnv(key string, errs *[]error) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		*errs = append(*errs, errors.New("missing env: "+key))
	}
	return value
}

func mustIntEnv(key string, errs *[]error) int {
	raw := mustEnv(key, errs)
	if raw == "" {
		return 0
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
	}
	return value
}
