package handlers

import (
	"errors"
	"net/http"

	"github.com/fitpro-warsaw/fitpro-api/internal/locale"
	"github.com/fitpro-warsaw/fitpro-api/internal/models"
	"github.com/fitpro-warsaw/fitpro-api/internal/services"
	"github.com/gin-gonic/gin"
)

type PlanHandler struct {
	service services.PlanServiceInterface
}

func NewPlanHandler(service services.PlanServiceInterface) *PlanHandler {
	return &PlanHandler{service: service}
}

// GenerateWorkout handles POST /api/v1/generate-workout. Validation
// messages are localized per the request's lang; a model output that
// cannot be parsed still answers 200 with format "text".
func (h *PlanHandler) GenerateWorkout(c *gin.Context) {
	var req models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest,
			locale.RequiredFieldsError(locale.Parse(req.Lang)), err)
		return
	}

	resp, err := h.service.GeneratePlan(c.Request.Context(), &req)
	if err != nil {
		var validationErr *services.ValidationError
		var deliveryErr *services.DeliveryError
		switch {
		case errors.As(err, &validationErr):
			respondError(c, http.StatusBadRequest, validationErr.Message, err)
		case errors.As(err, &deliveryErr):
			respondError(c, http.StatusBadGateway, deliveryErr.Message, err)
		default:
			respondError(c, http.StatusInternalServerError,
				locale.GenerationError(locale.Parse(req.Lang)), err)
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
