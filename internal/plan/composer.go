// Package plan turns a validated plan request into the model prompt and
// the model's raw output back into a plan the frontend can render.
package plan

import (
	"fmt"
	"strings"

	"github.com/fitpro-warsaw/fitpro-api/internal/locale"
)

// PromptInput carries the resolved, display-ready attributes of one
// plan request. Labels are already localized; Limitations is the raw
// free text and may be empty.
type PromptInput struct {
	Goal        string
	Level       string
	Days        string
	Location    string
	Equipment   string
	Limitations string
	Locale      locale.Locale
}

// promptVocab is the per-locale wording of the prompt. The layout below
// is shared: both languages are built from the same skeleton so their
// semantic content cannot drift apart.
type promptVocab struct {
	role             string
	clientData       string
	goal             string
	level            string
	daysPerWeek      string
	location         string
	equipment        string
	limitations      string
	important        string
	jsonOnly         string
	adaptExercises   string
	noMissingGear    string
	structureHeader  string
	titleExample     string
	focusExample     string
	warmupDuration   string
	warmupExercise1  string
	warmupExercise2  string
	mainExercise     string
	plank            string
	timeReps         string
	cooldownDuration string
	stretching       string
	breathing        string
	tipNutrition     string
	tipRecovery      string
	createDays       string
}

var promptVocabs = map[locale.Locale]promptVocab{
	locale.RU: {
		role:             "Ты - опытный персональный тренер. Создай план тренировок на русском языке.",
		clientData:       "Данные клиента:",
		goal:             "Цель",
		level:            "Уровень подготовки",
		daysPerWeek:      "Дней в неделю",
		location:         "Место тренировки",
		equipment:        "Доступное оборудование",
		limitations:      "Ограничения/травмы",
		important:        "ВАЖНО:",
		jsonOnly:         "Ответ должен быть ТОЛЬКО в формате JSON без markdown, без ```json, просто чистый JSON.",
		adaptExercises:   "Упражнения ДОЛЖНЫ быть адаптированы под место тренировки (%s) и доступное оборудование (%s)!",
		noMissingGear:    "Не используй упражнения, требующие оборудования, которого у клиента нет.",
		structureHeader:  "Структура ответа:",
		titleExample:     "Название тренировки",
		focusExample:     "На что направлена (например: грудь, спина)",
		warmupDuration:   "10 минут",
		warmupExercise1:  "Упражнение 1",
		warmupExercise2:  "Упражнение 2",
		mainExercise:     "Название упражнения",
		plank:            "Планка",
		timeReps:         "30 сек",
		cooldownDuration: "5 минут",
		stretching:       "Растяжка",
		breathing:        "Дыхание",
		tipNutrition:     "Совет 1 по питанию",
		tipRecovery:      "Совет 2 по восстановлению",
		createDays:       "Создай %s тренировочных дней. Упражнения должны соответствовать уровню \"%s\", цели \"%s\", месту (%s) и доступному оборудованию (%s).",
	},
	locale.PL: {
		role:             "Jesteś doświadczonym trenerem personalnym. Stwórz plan treningowy w języku polskim.",
		clientData:       "Dane klienta:",
		goal:             "Cel",
		level:            "Poziom zaawansowania",
		daysPerWeek:      "Dni w tygodniu",
		location:         "Miejsce treningu",
		equipment:        "Dostępny sprzęt",
		limitations:      "Ograniczenia/kontuzje",
		important:        "WAŻNE:",
		jsonOnly:         "Odpowiedź musi być TYLKO w formacie JSON bez markdown, bez ```json, tylko czysty JSON.",
		adaptExercises:   "Ćwiczenia MUSZĄ być dostosowane do miejsca treningu (%s) i dostępnego sprzętu (%s)!",
		noMissingGear:    "Nie używaj ćwiczeń wymagających sprzętu, którego klient nie ma.",
		structureHeader:  "Struktura odpowiedzi:",
		titleExample:     "Nazwa treningu",
		focusExample:     "Na co skierowany (np.: klatka piersiowa, plecy)",
		warmupDuration:   "10 minut",
		warmupExercise1:  "Ćwiczenie 1",
		warmupExercise2:  "Ćwiczenie 2",
		mainExercise:     "Nazwa ćwiczenia",
		plank:            "Plank",
		timeReps:         "30 sek",
		cooldownDuration: "5 minut",
		stretching:       "Rozciąganie",
		breathing:        "Oddychanie",
		tipNutrition:     "Wskazówka 1 dot. odżywiania",
		tipRecovery:      "Wskazówka 2 dot. regeneracji",
		createDays:       "Stwórz %s dni treningowych. Ćwiczenia muszą odpowiadać poziomowi \"%s\", celowi \"%s\", miejscu (%s) i dostępnemu sprzętowi (%s).",
	},
}

// Compose builds the instruction text for the model: role, client
// attributes, output-shape mandate and the location/equipment
// constraint, in the request's language.
func Compose(in PromptInput) string {
	v := promptVocabs[in.Locale]

	var b strings.Builder
	b.WriteString(v.role)
	b.WriteString("\n\n")
	b.WriteString(v.clientData)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "- %s: %s\n", v.goal, in.Goal)
	fmt.Fprintf(&b, "- %s: %s\n", v.level, in.Level)
	fmt.Fprintf(&b, "- %s: %s\n", v.daysPerWeek, in.Days)
	fmt.Fprintf(&b, "- %s: %s\n", v.location, in.Location)
	fmt.Fprintf(&b, "- %s: %s\n", v.equipment, in.Equipment)
	if in.Limitations != "" {
		fmt.Fprintf(&b, "- %s: %s\n", v.limitations, in.Limitations)
	}
	b.WriteByte('\n')

	b.WriteString(v.important)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "- %s\n", v.jsonOnly)
	fmt.Fprintf(&b, "- %s\n", fmt.Sprintf(v.adaptExercises, in.Location, in.Equipment))
	fmt.Fprintf(&b, "- %s\n\n", v.noMissingGear)

	b.WriteString(v.structureHeader)
	b.WriteByte('\n')
	fmt.Fprintf(&b, `{
  "days": [
    {
      "day": 1,
      "title": "%s",
      "focus": "%s",
      "warmup": {
        "duration": "%s",
        "exercises": ["%s", "%s"]
      },
      "main": [
        {"name": "%s", "sets": 3, "reps": "12-15"},
        {"name": "%s", "sets": 3, "reps": "%s"}
      ],
      "cooldown": {
        "duration": "%s",
        "exercises": ["%s", "%s"]
      }
    }
  ],
  "tips": ["%s", "%s"]
}`,
		v.titleExample, v.focusExample,
		v.warmupDuration, v.warmupExercise1, v.warmupExercise2,
		v.mainExercise, v.plank, v.timeReps,
		v.cooldownDuration, v.stretching, v.breathing,
		v.tipNutrition, v.tipRecovery)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, v.createDays, in.Days, in.Level, in.Goal, in.Location, in.Equipment)

	return b.String()
}
