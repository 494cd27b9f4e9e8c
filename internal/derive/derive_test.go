package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func TestAge(t *testing.T) {
	tests := []struct {
		name             string
		day, month, year string
		expected         string
	}{
		{name: "birthday already passed this year", day: "1", month: "3", year: "1990", expected: "35"},
		{name: "birthday later this year", day: "20", month: "12", year: "1990", expected: "34"},
		{name: "birthday today", day: "15", month: "6", year: "2000", expected: "25"},
		{name: "birthday tomorrow", day: "16", month: "6", year: "2000", expected: "24"},
		{name: "empty fields", day: "", month: "", year: "", expected: Unavailable},
		{name: "non-numeric day", day: "abc", month: "6", year: "1990", expected: Unavailable},
		{name: "month out of range", day: "1", month: "13", year: "1990", expected: Unavailable},
		{name: "day out of range", day: "32", month: "1", year: "1990", expected: Unavailable},
		{name: "zero year", day: "1", month: "1", year: "0", expected: Unavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Age(tt.day, tt.month, tt.year, now))
		})
	}
}

func TestBMI(t *testing.T) {
	tests := []struct {
		name           string
		height, weight string
		expected       string
	}{
		{name: "typical values", height: "180", weight: "75", expected: "23.1"},
		{name: "rounded to one decimal", height: "170", weight: "65", expected: "22.5"},
		{name: "decimal inputs", height: "165.5", weight: "58.2", expected: "21.2"},
		{name: "empty height", height: "", weight: "75", expected: Unavailable},
		{name: "empty weight", height: "180", weight: "", expected: Unavailable},
		{name: "zero height", height: "0", weight: "75", expected: Unavailable},
		{name: "negative weight", height: "180", weight: "-5", expected: Unavailable},
		{name: "non-numeric", height: "tall", weight: "75", expected: Unavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BMI(tt.height, tt.weight))
		})
	}
}
