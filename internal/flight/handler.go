package flight

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jetset/pkg/amadeus"
)

type FlightHandler struct {
	service *Service
}

func NewFlightHandler(s *Service) *FlightHandler {
	return &FlightHandler{
		service: s,
	}
}

func (h *FlightHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/v1/flights/search", h.SearchFlightsHandler)
	router.POST("/v1/flights/filter", h.FilterFlightsHandler)
	router.GET("/v1/airports", h.SearchAirportsHandler)
	router.PUT("/v1/credentials", h.SaveCredentialsHandler)
	router.GET("/v1/credentials/status", h.CredentialsStatusHandler)
}

func (h *FlightHandler) SearchFlightsHandler(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON body",
			"code":  ErrorCodeValidation,
		})
		return
	}

	if err := validateSearch(req); err != nil {
		sendError(c, err)
		return
	}

	response, err := h.service.Search(c.Request.Context(), req)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *FlightHandler) FilterFlightsHandler(c *gin.Context) {
	var req FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON body",
			"code":  ErrorCodeValidation,
		})
		return
	}

	if err := validateSearch(req.SearchRequest); err != nil {
		sendError(c, err)
		return
	}

	response, err := h.service.Filter(c.Request.Context(), req)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *FlightHandler) SearchAirportsHandler(c *gin.Context) {
	query := c.Query("q")

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 50 {
			limit = n
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"airports": SearchAirports(query, limit),
	})
}

func (h *FlightHandler) SaveCredentialsHandler(c *gin.Context) {
	var creds amadeus.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON body",
			"code":  ErrorCodeValidation,
		})
		return
	}

	if err := h.service.SaveCredentials(creds); err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"configured": true})
}

func (h *FlightHandler) CredentialsStatusHandler(c *gin.Context) {
	configured, err := h.service.HasCredentials()
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"configured": configured})
}

func validateSearch(req SearchRequest) error {
	if req.Origin == "" || req.Destination == "" {
		return NewAppError(http.StatusBadRequest, ErrorCodeValidation, "origin and destination are required")
	}
	if req.DepartureDate == "" {
		return NewAppError(http.StatusBadRequest, ErrorCodeValidation, "departure_date is required")
	}
	return nil
}

func sendError(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{
			"error": appErr.Message,
			"code":  appErr.Code,
		})
		return
	}

	var authErr *amadeus.AuthenticationError
	if errors.As(err, &authErr) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": authErr.Error(),
			"code":  ErrorCodeAuthFailed,
		})
		return
	}

	var searchErr *amadeus.SearchError
	if errors.As(err, &searchErr) {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": searchErr.Error(),
			"code":  ErrorCodeSearchFailed,
		})
		return
	}

	// Default to 500 for unknown errors
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal Server Error",
		"code":    ErrorCodeInternalFailure,
		"details": err.Error(),
	})
}
