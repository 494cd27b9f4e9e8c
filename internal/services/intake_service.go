package services

import (
	"context"
	"errors"
	"time"

	"github.com/fitpro-warsaw/fitpro-api/internal/format"
	"github.com/fitpro-warsaw/fitpro-api/internal/models"
	"github.com/fitpro-warsaw/fitpro-api/pkg/logger"
	"github.com/fitpro-warsaw/fitpro-api/pkg/metrics"
	"github.com/fitpro-warsaw/fitpro-api/pkg/telegram"
	"go.uber.org/zap"
)

// IntakeService formats questionnaire submissions and forwards them to
// the trainer's chat. Nothing is stored: the notification is the only
// artifact of a submission.
type IntakeService struct {
	notifier ChatNotifier
	now      func() time.Time
}

// NewIntakeService creates an intake service instance.
func NewIntakeService(notifier ChatNotifier) *IntakeService {
	return &IntakeService{
		notifier: notifier,
		now:      time.Now,
	}
}

// SubmitQuestionnaire delivers one intake record. Delivery failure
// propagates to the caller: the form must not show its success step
// when the trainer never received the answers.
func (s *IntakeService) SubmitQuestionnaire(ctx context.Context, rec *models.IntakeRecord) error {
	message := format.Intake(rec, s.now())

	if err := s.notifier.Send(ctx, message); err != nil {
		if errors.Is(err, telegram.ErrNotConfigured) {
			metrics.QuestionnaireSubmissions.WithLabelValues("config_error").Inc()
			logger.Error("Questionnaire notification skipped: credentials missing")
			return &ConfigError{Err: err}
		}
		metrics.QuestionnaireSubmissions.WithLabelValues("delivery_error").Inc()
		logger.Error("Questionnaire notification failed", zap.Error(err))
		return &DeliveryError{Message: "Failed to send message", Err: err}
	}

	metrics.QuestionnaireSubmissions.WithLabelValues("success").Inc()
	logger.Info("Questionnaire notification delivered",
		zap.Int("message_length", len(message)))
	return nil
}
