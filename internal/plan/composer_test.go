package plan

import (
	"strings"
	"testing"

	"github.com/fitpro-warsaw/fitpro-api/internal/locale"
	"github.com/stretchr/testify/assert"
)

func russianInput() PromptInput {
	return PromptInput{
		Goal:      "похудеть",
		Level:     "новичок",
		Days:      "3",
		Location:  "дома",
		Equipment: "только гантели",
		Locale:    locale.RU,
	}
}

func TestCompose_Russian(t *testing.T) {
	prompt := Compose(russianInput())

	assert.Contains(t, prompt, "Ты - опытный персональный тренер")
	assert.Contains(t, prompt, "- Цель: похудеть")
	assert.Contains(t, prompt, "- Уровень подготовки: новичок")
	assert.Contains(t, prompt, "- Дней в неделю: 3")
	assert.Contains(t, prompt, "ТОЛЬКО в формате JSON")
	assert.Contains(t, prompt, "адаптированы под место тренировки (дома) и доступное оборудование (только гантели)")
	assert.Contains(t, prompt, `"days": [`)
	assert.Contains(t, prompt, "Создай 3 тренировочных дней")
}

func TestCompose_Polish(t *testing.T) {
	prompt := Compose(PromptInput{
		Goal:      "schudnąć",
		Level:     "początkujący",
		Days:      "4",
		Location:  "siłownia",
		Equipment: "pełna siłownia",
		Locale:    locale.PL,
	})

	assert.Contains(t, prompt, "Jesteś doświadczonym trenerem personalnym")
	assert.Contains(t, prompt, "- Cel: schudnąć")
	assert.Contains(t, prompt, "TYLKO w formacie JSON")
	assert.Contains(t, prompt, "Stwórz 4 dni treningowych")
	assert.NotContains(t, prompt, "Цель", "no Russian wording may leak into the Polish prompt")
}

func TestCompose_LimitationsOnlyWhenPresent(t *testing.T) {
	in := russianInput()
	assert.NotContains(t, Compose(in), "Ограничения/травмы")

	in.Limitations = "болит колено"
	assert.Contains(t, Compose(in), "- Ограничения/травмы: болит колено")
}

func TestCompose_SchemaExampleIsComplete(t *testing.T) {
	prompt := Compose(russianInput())
	for _, key := range []string{`"day"`, `"title"`, `"focus"`, `"warmup"`, `"main"`, `"cooldown"`, `"sets"`, `"reps"`, `"tips"`} {
		assert.True(t, strings.Contains(prompt, key), "schema example missing %s", key)
	}
}
