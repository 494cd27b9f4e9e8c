package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/fitpro-warsaw/fitpro-api/internal/locale"
	"github.com/fitpro-warsaw/fitpro-api/internal/markup"
	"github.com/fitpro-warsaw/fitpro-api/internal/models"
)

// The trainer reads booking notifications in Russian regardless of the
// site language the client used.
const bookingLocale = locale.RU

// warsawTime formats the submission moment in the studio's timezone.
// Falls back to UTC if the tzdata lookup fails.
func warsawTime(now time.Time) string {
	loc, err := time.LoadLocation("Europe/Warsaw")
	if err != nil {
		loc = time.UTC
	}
	return now.In(loc).Format("02.01.2006 15:04")
}

// Booking renders one package-reservation submission as the trainer's
// chat notification. Phone is expected pre-normalized to the national
// digits.
func Booking(req *models.BookingRequest, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🆕 <b>Новая заявка!</b>\n\n")
	fmt.Fprintf(&b, "📦 <b>Услуга:</b> %s\n", markup.Escape(req.PackageName))
	fmt.Fprintf(&b, "💰 <b>Цена:</b> %s\n\n", markup.Escape(req.PackagePrice))
	fmt.Fprintf(&b, "👤 <b>Имя:</b> %s\n", markup.Escape(req.Name))
	fmt.Fprintf(&b, "📱 <b>Телефон:</b> +48 %s\n", markup.Escape(req.Phone))
	if req.Email != "" {
		fmt.Fprintf(&b, "📧 <b>Email:</b> %s\n", markup.Escape(req.Email))
	}
	fmt.Fprintf(&b, "\n💳 <b>Оплата:</b> %s\n", locale.Resolve(bookingLocale, locale.CategoryPayment, req.PaymentMethod))
	if req.Message != "" {
		fmt.Fprintf(&b, "\n💬 <b>Комментарий:</b> %s\n", markup.Escape(req.Message))
	}
	fmt.Fprintf(&b, "\n⏰ %s", warsawTime(now))

	return b.String()
}
