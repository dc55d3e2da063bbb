package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"jetset/cfg"
	"jetset/internal/booking"
	"jetset/internal/flight"
	"jetset/pkg/amadeus"
	"jetset/pkg/cache"
	"jetset/pkg/credstore"
	"jetset/pkg/idgen"
	"jetset/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	// ============
	// config
	// ============
	config, errCfg := cfg.Load()
	if errCfg != nil {
		log.Fatal(errCfg)
	}

	// ============
	// logger
	// ============
	zlogger := logger.NewZeroLog(config.AppEnv)

	// ============
	// Cache
	// ============
	redisAddr := config.RedisConfig.Host + ":" + config.RedisConfig.Port
	redis := cache.NewRedisCache(redisAddr, config.RedisConfig.Password)

	// ============
	// External Service
	// ============
	httpClient := &http.Client{
		Timeout: time.Duration(config.SearchTimeoutSeconds) * time.Second,
	}
	amadeusClient := amadeus.NewClient(httpClient, config.AmadeusClientConfig.BaseURL, zlogger)
	credentials := credstore.NewFileStore(config.CredentialsFile)

	ids, err := idgen.NewSnowflakeGenerator(config.IDGenNode)
	if err != nil {
		log.Fatal(err)
	}

	// ============
	// Internal Service
	// ============
	generator := flight.NewGenerator(time.Now().UnixNano())
	flightSvc := flight.NewService(amadeusClient, credentials, redis, config.CacheTTLMinutes, generator, zlogger)
	flightHandler := flight.NewFlightHandler(flightSvc)

	bookingSvc := booking.NewService(booking.NewStore(), ids, zlogger)
	bookingHandler := booking.NewBookingHandler(bookingSvc)

	// ============
	// HTTP
	// ============
	r := gin.Default()

	flightHandler.RegisterRoutes(r)
	bookingHandler.RegisterRoutes(r)

	addr := fmt.Sprintf(":%s", config.AppPort)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
