package handlers

import (
	"errors"
	"net/http"

	"github.com/fitpro-warsaw/fitpro-api/internal/models"
	"github.com/fitpro-warsaw/fitpro-api/internal/services"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service services.BookingServiceInterface
}

func NewBookingHandler(service services.BookingServiceInterface) *BookingHandler {
	return &BookingHandler{service: service}
}

// SendBooking handles POST /api/v1/send-booking. Unlike the original
// site flow, delivery failure is reported to the client instead of
// masked behind an unconditional success response.
func (h *BookingHandler) SendBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		attachError(c, err)
		message := "Invalid request"
		if fieldErrors := ParseValidationErrors(err); len(fieldErrors) > 0 {
			message = fieldErrors[0].Message
		}
		c.JSON(http.StatusBadRequest, models.BookingResponse{Success: false, Error: message})
		return
	}

	if err := h.service.SubmitBooking(c.Request.Context(), &req); err != nil {
		attachError(c, err)
		var validationErr *services.ValidationError
		var configErr *services.ConfigError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, models.BookingResponse{Success: false, Error: validationErr.Message})
		case errors.As(err, &configErr):
			c.JSON(http.StatusInternalServerError, models.BookingResponse{Success: false, Error: "Bot not configured"})
		default:
			c.JSON(http.StatusBadGateway, models.BookingResponse{Success: false, Error: "Failed to send message"})
		}
		return
	}

	c.JSON(http.StatusOK, models.BookingResponse{Success: true})
}
