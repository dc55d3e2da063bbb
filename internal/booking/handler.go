package booking

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jetset/internal/flight"
)

type BookingHandler struct {
	service *Service
}

func NewBookingHandler(s *Service) *BookingHandler {
	return &BookingHandler{
		service: s,
	}
}

func (h *BookingHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/v1/bookings", h.CreateBookingHandler)
	router.GET("/v1/bookings/:reference", h.GetBookingHandler)
	router.POST("/v1/payments/order", h.PaymentOrderHandler)
}

func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON body",
			"code":  flight.ErrorCodeValidation,
		})
		return
	}

	booking, err := h.service.CreateBooking(req)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	booking, err := h.service.GetBooking(c.Param("reference"))
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) PaymentOrderHandler(c *gin.Context) {
	var req PaymentOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON body",
			"code":  flight.ErrorCodeValidation,
		})
		return
	}

	order, err := h.service.PaymentOrderFor(req)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

func sendError(c *gin.Context, err error) {
	var appErr *flight.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{
			"error": appErr.Message,
			"code":  appErr.Code,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal Server Error",
		"code":    flight.ErrorCodeInternalFailure,
		"details": err.Error(),
	})
}
