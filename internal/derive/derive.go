// Package derive computes the values the notification shows alongside
// the raw questionnaire answers. Both calculators are pure and return
// the Unavailable sentinel instead of failing, so a half-filled form
// still produces a complete notification. The same functions feed the
// client-side preview and the delivered message.
package derive

import (
	"strconv"
	"time"
)

// Unavailable is rendered when a derived value cannot be computed from
// the submitted fields.
const Unavailable = "N/A"

// Age returns the whole years elapsed between the birth date and now,
// decremented by one when the birthday has not been reached yet this
// year. Inputs arrive as form-field strings; any missing or unparsable
// part yields Unavailable.
func Age(day, month, year string, now time.Time) string {
	d, errD := strconv.Atoi(day)
	m, errM := strconv.Atoi(month)
	y, errY := strconv.Atoi(year)
	if errD != nil || errM != nil || errY != nil {
		return Unavailable
	}
	if m < 1 || m > 12 || d < 1 || d > 31 || y <= 0 {
		return Unavailable
	}

	age := now.Year() - y
	if int(now.Month()) < m || (int(now.Month()) == m && now.Day() < d) {
		age--
	}
	return strconv.Itoa(age)
}

// BMI returns weight_kg / (height_m)² rounded to one decimal place.
// Height arrives in centimeters. Non-numeric or non-positive inputs
// yield Unavailable, never NaN.
func BMI(heightCm, weightKg string) string {
	h, errH := strconv.ParseFloat(heightCm, 64)
	w, errW := strconv.ParseFloat(weightKg, 64)
	if errH != nil || errW != nil || h <= 0 || w <= 0 {
		return Unavailable
	}

	meters := h / 100
	return strconv.FormatFloat(w/(meters*meters), 'f', 1, 64)
}
