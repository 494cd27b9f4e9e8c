package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fitpro-warsaw/fitpro-api/config"
	"github.com/fitpro-warsaw/fitpro-api/internal/models"
	"github.com/fitpro-warsaw/fitpro-api/internal/plancache"
	"github.com/fitpro-warsaw/fitpro-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPlanService(model *MockModelClient) *services.PlanService {
	cache := plancache.New(config.PlanCacheConfig{TTLSeconds: 60})
	return services.NewPlanService(model, cache)
}

func validPlanRequest() *models.PlanRequest {
	return &models.PlanRequest{
		Goal:      "lose_weight",
		Level:     "beginner",
		Days:      "3",
		Location:  "home",
		Equipment: "dumbbells",
		Lang:      "ru",
	}
}

func TestGeneratePlan_StructuredOutput(t *testing.T) {
	model := new(MockModelClient)
	service := newPlanService(model)

	model.On("GenerateContent", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		// Labels resolved into the prompt, not raw option codes
		return strings.Contains(prompt, "похудеть") && !strings.Contains(prompt, "lose_weight")
	})).Return(`{"days":[{"day":1,"title":"День 1","focus":"всё тело","main":[{"name":"Приседания","sets":3,"reps":"15"}]}],"tips":[]}`, nil)

	resp, err := service.GeneratePlan(context.Background(), validPlanRequest())

	require.NoError(t, err)
	assert.Equal(t, models.PlanFormatJSON, resp.Format)
	workout, ok := resp.Workout.(*models.WorkoutPlan)
	require.True(t, ok)
	assert.Equal(t, "День 1", workout.Days[0].Title)

	model.AssertExpectations(t)
}

func TestGeneratePlan_OpaqueOutput(t *testing.T) {
	model := new(MockModelClient)
	service := newPlanService(model)

	raw := "День 1: приседания 3х15, отжимания 3х12"
	model.On("GenerateContent", mock.Anything, mock.Anything).Return(raw, nil)

	resp, err := service.GeneratePlan(context.Background(), validPlanRequest())

	require.NoError(t, err)
	assert.Equal(t, models.PlanFormatText, resp.Format)
	assert.Equal(t, raw, resp.Workout)
}

func TestGeneratePlan_ValidationMessagesLocalized(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*models.PlanRequest)
		expected string
	}{
		{
			name:     "missing goal in russian",
			mutate:   func(r *models.PlanRequest) { r.Goal = "" },
			expected: "Заполните все обязательные поля",
		},
		{
			name: "missing level in polish",
			mutate: func(r *models.PlanRequest) {
				r.Level = ""
				r.Lang = "pl"
			},
			expected: "Wypełnij wszystkie wymagane pola",
		},
		{
			name:     "days out of range",
			mutate:   func(r *models.PlanRequest) { r.Days = "7" },
			expected: "Заполните все обязательные поля",
		},
		{
			name:     "days not numeric",
			mutate:   func(r *models.PlanRequest) { r.Days = "three" },
			expected: "Заполните все обязательные поля",
		},
		{
			name:     "other goal without custom text",
			mutate:   func(r *models.PlanRequest) { r.Goal = "other" },
			expected: "Заполните все обязательные поля",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := new(MockModelClient)
			service := newPlanService(model)

			req := validPlanRequest()
			tt.mutate(req)

			_, err := service.GeneratePlan(context.Background(), req)

			var validationErr *services.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.expected, validationErr.Message)
			model.AssertNotCalled(t, "GenerateContent")
		})
	}
}

func TestGeneratePlan_CustomGoalFlowsIntoPrompt(t *testing.T) {
	model := new(MockModelClient)
	service := newPlanService(model)

	model.On("GenerateContent", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "подготовка к марафону")
	})).Return("some plan", nil)

	req := validPlanRequest()
	req.Goal = "other"
	req.CustomGoal = "подготовка к марафону"

	_, err := service.GeneratePlan(context.Background(), req)

	require.NoError(t, err)
	model.AssertExpectations(t)
}

func TestGeneratePlan_ModelFailure(t *testing.T) {
	model := new(MockModelClient)
	service := newPlanService(model)

	model.On("GenerateContent", mock.Anything, mock.Anything).Return("", errors.New("upstream down"))

	req := validPlanRequest()
	req.Lang = "pl"

	_, err := service.GeneratePlan(context.Background(), req)

	var deliveryErr *services.DeliveryError
	require.ErrorAs(t, err, &deliveryErr)
	assert.Equal(t, "Błąd generowania planu. Spróbuj później.", deliveryErr.Message)
}

func TestGeneratePlan_SecondIdenticalRequestServedFromCache(t *testing.T) {
	model := new(MockModelClient)
	service := newPlanService(model)

	model.On("GenerateContent", mock.Anything, mock.Anything).Return("plan text", nil).Once()

	first, err := service.GeneratePlan(context.Background(), validPlanRequest())
	require.NoError(t, err)

	second, err := service.GeneratePlan(context.Background(), validPlanRequest())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	model.AssertExpectations(t)
}
