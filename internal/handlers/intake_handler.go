package handlers

import (
	"errors"
	"net/http"

	"github.com/fitpro-warsaw/fitpro-api/internal/models"
	"github.com/fitpro-warsaw/fitpro-api/internal/services"
	"github.com/gin-gonic/gin"
)

type IntakeHandler struct {
	service services.IntakeServiceInterface
}

func NewIntakeHandler(service services.IntakeServiceInterface) *IntakeHandler {
	return &IntakeHandler{service: service}
}

// SendQuestionnaire handles POST /api/v1/send-questionnaire. Delivery
// failure propagates: the multi-step form only advances to its success
// step when the notification actually went out.
func (h *IntakeHandler) SendQuestionnaire(c *gin.Context) {
	var rec models.IntakeRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest,
			"Invalid request", err.Error(), err)
		return
	}

	if err := h.service.SubmitQuestionnaire(c.Request.Context(), &rec); err != nil {
		var configErr *services.ConfigError
		var deliveryErr *services.DeliveryError
		switch {
		case errors.As(err, &configErr):
			respondError(c, http.StatusInternalServerError, "Server configuration error", err)
		case errors.As(err, &deliveryErr):
			respondErrorWithDetails(c, http.StatusBadGateway,
				deliveryErr.Message, deliveryErr.Err.Error(), err)
		default:
			respondError(c, http.StatusInternalServerError, "Internal server error", err)
		}
		return
	}

	c.JSON(http.StatusOK, models.IntakeResponse{Success: true})
}
