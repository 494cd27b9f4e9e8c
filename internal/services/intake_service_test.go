package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/fitpro-warsaw/fitpro-api/internal/models"
	"github.com/fitpro-warsaw/fitpro-api/internal/services"
	"github.com/fitpro-warsaw/fitpro-api/pkg/telegram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleIntakeRecord() *models.IntakeRecord {
	return &models.IntakeRecord{
		Name:   "Иван Петров",
		Height: "180",
		Weight: "75",
		Goals:  []string{"lose_weight"},
		Lang:   "ru",
	}
}

func TestSubmitQuestionnaire_Success(t *testing.T) {
	notifier := new(MockChatNotifier)
	service := services.NewIntakeService(notifier)

	notifier.On("Send", mock.Anything, mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "НОВАЯ АНКЕТА КЛИЕНТА") &&
			strings.Contains(text, "Иван Петров")
	})).Return(nil)

	err := service.SubmitQuestionnaire(context.Background(), sampleIntakeRecord())

	assert.NoError(t, err)
	notifier.AssertExpectations(t)
}

func TestSubmitQuestionnaire_NotConfigured(t *testing.T) {
	notifier := new(MockChatNotifier)
	service := services.NewIntakeService(notifier)

	notifier.On("Send", mock.Anything, mock.Anything).Return(telegram.ErrNotConfigured)

	err := service.SubmitQuestionnaire(context.Background(), sampleIntakeRecord())

	var configErr *services.ConfigError
	assert.ErrorAs(t, err, &configErr)
}

func TestSubmitQuestionnaire_DeliveryFailureSurfaces(t *testing.T) {
	notifier := new(MockChatNotifier)
	service := services.NewIntakeService(notifier)

	notifier.On("Send", mock.Anything, mock.Anything).
		Return(&telegram.DeliveryError{StatusCode: 502, Description: "bad gateway"})

	err := service.SubmitQuestionnaire(context.Background(), sampleIntakeRecord())

	var deliveryErr *services.DeliveryError
	require.ErrorAs(t, err, &deliveryErr)
	assert.Equal(t, "Failed to send message", deliveryErr.Message)
}
