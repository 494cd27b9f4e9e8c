package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fitpro-warsaw/fitpro-api/internal/format"
	"github.com/fitpro-warsaw/fitpro-api/internal/models"
	"github.com/fitpro-warsaw/fitpro-api/pkg/logger"
	"github.com/fitpro-warsaw/fitpro-api/pkg/metrics"
	"github.com/fitpro-warsaw/fitpro-api/pkg/telegram"
	"go.uber.org/zap"
)

// Polish subscriber numbers are nine digits after the country code.
const phoneDigits = 9

// BookingService formats package reservations and forwards them to the
// trainer's chat. Delivery failure is surfaced to the caller instead of
// masked behind an unconditional success: a dropped notification means
// the trainer never sees the booking.
type BookingService struct {
	notifier ChatNotifier
	now      func() time.Time
}

// NewBookingService creates a booking service instance.
func NewBookingService(notifier ChatNotifier) *BookingService {
	return &BookingService{
		notifier: notifier,
		now:      time.Now,
	}
}

// SubmitBooking normalizes and validates the phone, then delivers the
// booking summary.
func (s *BookingService) SubmitBooking(ctx context.Context, req *models.BookingRequest) error {
	req.Phone = NormalizePhone(req.Phone)
	if len(req.Phone) != phoneDigits {
		metrics.BookingSubmissions.WithLabelValues("invalid").Inc()
		return &ValidationError{Message: "Invalid phone number"}
	}

	message := format.Booking(req, s.now())

	if err := s.notifier.Send(ctx, message); err != nil {
		if errors.Is(err, telegram.ErrNotConfigured) {
			metrics.BookingSubmissions.WithLabelValues("config_error").Inc()
			logger.Error("Booking notification skipped: credentials missing")
			return &ConfigError{Err: err}
		}
		metrics.BookingSubmissions.WithLabelValues("delivery_error").Inc()
		logger.Error("Booking notification failed", zap.Error(err))
		return &DeliveryError{Message: "Failed to send message", Err: err}
	}

	metrics.BookingSubmissions.WithLabelValues("success").Inc()
	logger.Info("Booking notification delivered",
		zap.String("package", req.PackageName))
	return nil
}

// NormalizePhone strips everything but digits and caps the result at
// the national subscriber-number length.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == phoneDigits {
				break
			}
		}
	}
	return b.String()
}
