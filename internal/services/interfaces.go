package services

import (
	"context"

	"github.com/fitpro-warsaw/fitpro-api/internal/models"
)

// PlanServiceInterface defines the workout-plan generation operations.
type PlanServiceInterface interface {
	GeneratePlan(ctx context.Context, req *models.PlanRequest) (models.GeneratePlanResponse, error)
}

// IntakeServiceInterface defines the questionnaire submission operations.
type IntakeServiceInterface interface {
	SubmitQuestionnaire(ctx context.Context, rec *models.IntakeRecord) error
}

// BookingServiceInterface defines the booking submission operations.
type BookingServiceInterface interface {
	SubmitBooking(ctx context.Context, req *models.BookingRequest) error
}

// ModelClient is the generative-model dependency of the plan service.
type ModelClient interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Configured() bool
}

// ChatNotifier is the outbound-notification dependency of the intake
// and booking services.
type ChatNotifier interface {
	Send(ctx context.Context, text string) error
	Configured() bool
}
