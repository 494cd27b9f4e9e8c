package handlers_test

import (
	"context"

	"github.com/fitpro-warsaw/fitpro-api/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockPlanService implements PlanServiceInterface for testing
type MockPlanService struct {
	mock.Mock
}

func (m *MockPlanService) GeneratePlan(ctx context.Context, req *models.PlanRequest) (models.GeneratePlanResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.GeneratePlanResponse), args.Error(1)
}

// MockIntakeService implements IntakeServiceInterface for testing
type MockIntakeService struct {
	mock.Mock
}

func (m *MockIntakeService) SubmitQuestionnaire(ctx context.Context, rec *models.IntakeRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

// MockBookingService implements BookingServiceInterface for testing
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) SubmitBooking(ctx context.Context, req *models.BookingRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
