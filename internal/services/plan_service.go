package services

import (
	"context"
	"strconv"

	"github.com/fitpro-warsaw/fitpro-api/internal/locale"
	"github.com/fitpro-warsaw/fitpro-api/internal/models"
	"github.com/fitpro-warsaw/fitpro-api/internal/plan"
	"github.com/fitpro-warsaw/fitpro-api/internal/plancache"
	"github.com/fitpro-warsaw/fitpro-api/pkg/logger"
	"github.com/fitpro-warsaw/fitpro-api/pkg/metrics"
	"go.uber.org/zap"
)

// PlanService orchestrates the workout-plan pipeline: validate, resolve
// labels, compose the prompt, call the model, interpret the output.
type PlanService struct {
	model ModelClient
	cache *plancache.Cache
}

// NewPlanService creates a plan service instance.
func NewPlanService(model ModelClient, cache *plancache.Cache) *PlanService {
	return &PlanService{
		model: model,
		cache: cache,
	}
}

// GeneratePlan handles one plan request end to end. Model output that
// fails to parse is not an error: it degrades to the opaque-text
// branch of the response.
func (s *PlanService) GeneratePlan(ctx context.Context, req *models.PlanRequest) (models.GeneratePlanResponse, error) {
	loc := locale.Parse(req.Lang)

	if err := validatePlanRequest(req, loc); err != nil {
		metrics.PlanGenerations.WithLabelValues("invalid", "none").Inc()
		return models.GeneratePlanResponse{}, err
	}

	if cached, found := s.cache.Get(req); found {
		resp := cached.ToResponse()
		metrics.PlanGenerations.WithLabelValues("cached", resp.Format).Inc()
		return resp, nil
	}

	prompt := plan.Compose(plan.PromptInput{
		Goal:        resolveGoal(loc, req),
		Level:       locale.Resolve(loc, locale.CategoryLevel, req.Level),
		Days:        req.Days,
		Location:    locale.Resolve(loc, locale.CategoryLocation, req.Location),
		Equipment:   locale.Resolve(loc, locale.CategoryEquipment, req.Equipment),
		Limitations: req.Limitations,
		Locale:      loc,
	})

	raw, err := s.model.GenerateContent(ctx, prompt)
	if err != nil {
		metrics.PlanGenerations.WithLabelValues("error", "none").Inc()
		logger.Error("Plan generation failed", zap.Error(err))
		return models.GeneratePlanResponse{}, &DeliveryError{
			Message: locale.GenerationError(loc),
			Err:     err,
		}
	}

	result := plan.Interpret(raw)
	s.cache.Put(req, result)

	resp := result.ToResponse()
	metrics.PlanGenerations.WithLabelValues("success", resp.Format).Inc()
	if !result.IsStructured() {
		logger.Warn("Plan output not parseable as JSON, returning raw text",
			zap.Int("length", len(raw)))
	}
	return resp, nil
}

// validatePlanRequest enforces the mandatory fields and the 1..6 day
// range. The message is localized per the request's language.
func validatePlanRequest(req *models.PlanRequest, loc locale.Locale) error {
	if req.Goal == "" || req.Level == "" || req.Days == "" || req.Location == "" || req.Equipment == "" {
		return &ValidationError{Message: locale.RequiredFieldsError(loc)}
	}
	if req.Goal == "other" && req.CustomGoal == "" {
		return &ValidationError{Message: locale.RequiredFieldsError(loc)}
	}
	days, err := strconv.Atoi(req.Days)
	if err != nil || days < 1 || days > 6 {
		return &ValidationError{Message: locale.RequiredFieldsError(loc)}
	}
	return nil
}

// resolveGoal picks the free-text custom goal when the client chose
// "other", otherwise the localized goal label.
func resolveGoal(loc locale.Locale, req *models.PlanRequest) string {
	if req.Goal == "other" {
		return req.CustomGoal
	}
	return locale.Resolve(loc, locale.CategoryGoal, req.Goal)
}
