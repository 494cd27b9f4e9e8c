package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert.Equal(t, PL, Parse("pl"))
	assert.Equal(t, RU, Parse("ru"))
	assert.Equal(t, RU, Parse(""))
	assert.Equal(t, RU, Parse("en"))
	assert.Equal(t, RU, Parse("PL"), "matching is case sensitive, unknown falls back to Russian")
}

func TestResolve(t *testing.T) {
	assert.Equal(t, "похудеть", Resolve(RU, CategoryGoal, "lose_weight"))
	assert.Equal(t, "schudnąć", Resolve(PL, CategoryGoal, "lose_weight"))
	assert.Equal(t, "siłownia", Resolve(PL, CategoryLocation, "gym"))
	assert.Equal(t, "💵 Наличными", Resolve(RU, CategoryPayment, "cash"))
}

func TestResolve_UnknownCodePassesThrough(t *testing.T) {
	assert.Equal(t, "crossfit", Resolve(RU, CategoryGoal, "crossfit"))
	assert.Equal(t, "whatever", Resolve(PL, Category("nonexistent"), "whatever"))
	assert.Equal(t, "", Resolve(RU, CategoryLevel, ""))
}

func TestLabelTablesCoverBothLanguages(t *testing.T) {
	for cat, table := range labels {
		for code, l := range table {
			assert.NotEmpty(t, l.ru, "missing ru for %s/%s", cat, code)
			assert.NotEmpty(t, l.pl, "missing pl for %s/%s", cat, code)
		}
	}
}

func TestServiceMessages(t *testing.T) {
	assert.Equal(t, "Заполните все обязательные поля", RequiredFieldsError(RU))
	assert.Equal(t, "Wypełnij wszystkie wymagane pola", RequiredFieldsError(PL))
	assert.NotEqual(t, GenerationError(RU), GenerationError(PL))
	assert.Contains(t, TruncationMarker(RU), "обрезано")
	assert.Contains(t, TruncationMarker(PL), "skrócona")
	assert.Equal(t, "Nie podano", NotSpecified(PL))
	assert.Equal(t, "Нет", None(RU))
	assert.Equal(t, "Dowolne", Any(PL))
}
