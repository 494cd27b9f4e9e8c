// Package format assembles the HTML notification documents sent to the
// trainer's chat. Every field has an explicit placeholder when absent,
// so the rendered document never contains blank lines or "undefined"
// artifacts, and all free text passes through markup escaping.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/fitpro-warsaw/fitpro-api/internal/derive"
	"github.com/fitpro-warsaw/fitpro-api/internal/locale"
	"github.com/fitpro-warsaw/fitpro-api/internal/markup"
	"github.com/fitpro-warsaw/fitpro-api/internal/models"
	"github.com/fitpro-warsaw/fitpro-api/pkg/telegram"
)

// intakeVocab is the per-locale string set of the intake template. One
// template, two vocabularies: the section layout never forks per
// language.
type intakeVocab struct {
	header        string
	secBasic      string
	name          string
	birthDate     string
	age           string
	ageUnit       string
	height        string
	weight        string
	bmi           string
	workType      string
	cm            string
	kg            string
	hoursUnit     string
	secGoals      string
	goals         string
	description   string
	timeframe     string
	motivation    string
	secHealth     string
	conditions    string
	diabetesType  string
	medications   string
	injuries      string
	yes           string
	no            string
	injuryArea    string
	injuryType    string
	injuryCurrent string
	injuryPast    string
	pain          string
	doctorConsult string
	doctorOK      string
	doctorLimits  string
	secExperience string
	activityLevel string
	trainingYears string
	withTrainer   string
	activities    string
	secPrefs      string
	prefTraining  string
	avoid         string
	nothing       string
	secLifestyle  string
	sleep         string
	sleepQuality  string
	sleepWindow   string
	stress        string
	meals         string
	water         string
	coffeeTea     string
	alcohol       string
	smoking       string
	perDay        string
	allergies     string
	diet          string
	secLogistics  string
	frequency     string
	days          string
	times         string
	location      string
	gym           string
	secExtra      string
	extraInfo     string
	expectations  string
}

var intakeVocabs = map[locale.Locale]intakeVocab{
	locale.RU: {
		header:        "📋 <b>НОВАЯ АНКЕТА КЛИЕНТА</b>",
		secBasic:      "👤 <b>ОСНОВНЫЕ ДАННЫЕ</b>",
		name:          "Имя",
		birthDate:     "Дата рождения",
		age:           "Возраст",
		ageUnit:       "лет",
		height:        "Рост",
		weight:        "Вес",
		bmi:           "BMI",
		workType:      "Характер работы",
		cm:            "см",
		kg:            "кг",
		hoursUnit:     "ч",
		secGoals:      "🎯 <b>ЦЕЛИ</b>",
		goals:         "Цели",
		description:   "Описание",
		timeframe:     "Срок",
		motivation:    "Мотивация",
		secHealth:     "🏥 <b>ЗДОРОВЬЕ</b>",
		conditions:    "Заболевания",
		diabetesType:  "Тип диабета",
		medications:   "Лекарства",
		injuries:      "Травмы",
		yes:           "Да",
		no:            "Нет",
		injuryArea:    "область",
		injuryType:    "тип",
		injuryCurrent: "актуально",
		injuryPast:    "в прошлом",
		pain:          "Боли",
		doctorConsult: "Наблюдается у врача",
		doctorOK:      "Разрешение врача",
		doctorLimits:  "Ограничения от врача",
		secExperience: "🏋️ <b>ОПЫТ</b>",
		activityLevel: "Уровень активности",
		trainingYears: "Стаж тренировок",
		withTrainer:   "Работал с тренером",
		activities:    "Виды активности",
		secPrefs:      "💪 <b>ПРЕДПОЧТЕНИЯ</b>",
		prefTraining:  "Виды тренировок",
		avoid:         "Чего избегать",
		nothing:       "Ничего",
		secLifestyle:  "🌙 <b>ОБРАЗ ЖИЗНИ</b>",
		sleep:         "Сон",
		sleepQuality:  "качество",
		sleepWindow:   "Режим сна",
		stress:        "Стресс",
		meals:         "Приёмов пищи",
		water:         "Воды",
		coffeeTea:     "Кофе/чай",
		alcohol:       "Алкоголь",
		smoking:       "Курение",
		perDay:        "в день",
		allergies:     "Аллергии",
		diet:          "Диета",
		secLogistics:  "📅 <b>ЛОГИСТИКА</b>",
		frequency:     "Раз в неделю",
		days:          "Дни",
		times:         "Время",
		location:      "Место",
		gym:           "Зал",
		secExtra:      "📝 <b>ДОПОЛНИТЕЛЬНО</b>",
		extraInfo:     "Доп. информация",
		expectations:  "Ожидания от тренера",
	},
	locale.PL: {
		header:        "📋 <b>NOWA ANKIETA KLIENTA</b>",
		secBasic:      "👤 <b>DANE PODSTAWOWE</b>",
		name:          "Imię",
		birthDate:     "Data urodzenia",
		age:           "Wiek",
		ageUnit:       "lat",
		height:        "Wzrost",
		weight:        "Waga",
		bmi:           "BMI",
		workType:      "Charakter pracy",
		cm:            "cm",
		kg:            "kg",
		hoursUnit:     "godz.",
		secGoals:      "🎯 <b>CELE</b>",
		goals:         "Cele",
		description:   "Opis",
		timeframe:     "Termin",
		motivation:    "Motywacja",
		secHealth:     "🏥 <b>ZDROWIE</b>",
		conditions:    "Choroby",
		diabetesType:  "Typ cukrzycy",
		medications:   "Leki",
		injuries:      "Kontuzje",
		yes:           "Tak",
		no:            "Nie",
		injuryArea:    "obszar",
		injuryType:    "typ",
		injuryCurrent: "aktualna",
		injuryPast:    "w przeszłości",
		pain:          "Bóle",
		doctorConsult: "Pod opieką lekarza",
		doctorOK:      "Zgoda lekarza",
		doctorLimits:  "Ograniczenia od lekarza",
		secExperience: "🏋️ <b>DOŚWIADCZENIE</b>",
		activityLevel: "Poziom aktywności",
		trainingYears: "Staż treningowy",
		withTrainer:   "Pracował z trenerem",
		activities:    "Rodzaje aktywności",
		secPrefs:      "💪 <b>PREFERENCJE</b>",
		prefTraining:  "Rodzaje treningów",
		avoid:         "Czego unikać",
		nothing:       "Niczego",
		secLifestyle:  "🌙 <b>STYL ŻYCIA</b>",
		sleep:         "Sen",
		sleepQuality:  "jakość",
		sleepWindow:   "Rytm snu",
		stress:        "Stres",
		meals:         "Posiłków",
		water:         "Wody",
		coffeeTea:     "Kawa/herbata",
		alcohol:       "Alkohol",
		smoking:       "Palenie",
		perDay:        "dziennie",
		allergies:     "Alergie",
		diet:          "Dieta",
		secLogistics:  "📅 <b>LOGISTYKA</b>",
		frequency:     "Razy w tygodniu",
		days:          "Dni",
		times:         "Godziny",
		location:      "Miejsce",
		gym:           "Siłownia",
		secExtra:      "📝 <b>DODATKOWO</b>",
		extraInfo:     "Dodatkowe informacje",
		expectations:  "Oczekiwania wobec trenera",
	},
}

// orElse escapes the value or falls back to a placeholder when empty.
func orElse(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return markup.Escape(value)
}

// joinOrElse escapes and joins a code list (resolving labels when a
// category table covers it) or falls back to a placeholder.
func joinOrElse(loc locale.Locale, cat locale.Category, values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	resolved := make([]string, 0, len(values))
	for _, v := range values {
		resolved = append(resolved, locale.Resolve(loc, cat, v))
	}
	return markup.SafeJoin(resolved, ", ")
}

// Intake renders one questionnaire submission as the trainer's chat
// notification, truncated to the transport limit.
func Intake(rec *models.IntakeRecord, now time.Time) string {
	loc := locale.Parse(rec.Lang)
	v := intakeVocabs[loc]
	notSpec := locale.NotSpecified(loc)
	none := locale.None(loc)
	anyLabel := locale.Any(loc)

	age := derive.Age(rec.BirthDay, rec.BirthMonth, rec.BirthYear, now)
	bmi := derive.BMI(rec.Height, rec.Weight)

	birthDate := derive.Unavailable
	if rec.BirthDay != "" && rec.BirthMonth != "" && rec.BirthYear != "" {
		birthDate = fmt.Sprintf("%s.%s.%s",
			markup.Escape(rec.BirthDay), markup.Escape(rec.BirthMonth), markup.Escape(rec.BirthYear))
	}

	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	line("%s", v.header)
	b.WriteByte('\n')

	line("%s", v.secBasic)
	line("• %s: %s", v.name, orElse(rec.Name, notSpec))
	line("• %s: %s", v.birthDate, birthDate)
	line("• %s: %s %s", v.age, age, v.ageUnit)
	line("• %s: %s %s", v.height, orElse(rec.Height, derive.Unavailable), v.cm)
	line("• %s: %s %s", v.weight, orElse(rec.Weight, derive.Unavailable), v.kg)
	line("• %s: %s", v.bmi, bmi)
	line("• %s: %s", v.workType, orElse(rec.WorkType, notSpec))
	b.WriteByte('\n')

	line("%s", v.secGoals)
	line("• %s: %s", v.goals, joinOrElse(loc, locale.CategoryGoal, rec.Goals, notSpec))
	line("• %s: %s", v.description, orElse(rec.GoalDescription, none))
	line("• %s: %s", v.timeframe, orElse(rec.GoalTimeframe, notSpec))
	line("• %s: %s", v.motivation, orElse(rec.Motivation, notSpec))
	b.WriteByte('\n')

	line("%s", v.secHealth)
	line("• %s: %s", v.conditions, joinOrElse(loc, "", rec.HealthConditions, none))
	if rec.DiabetesType != "" {
		line("• %s: %s", v.diabetesType, markup.Escape(rec.DiabetesType))
	}
	if rec.TakingMedications == "yes" {
		line("• %s: %s", v.medications, orElse(rec.Medications, notSpec))
	} else {
		line("• %s: %s", v.medications, none)
	}
	if rec.HasInjuries == "yes" {
		line("• %s: %s", v.injuries, v.yes)
		for _, injury := range rec.Injuries {
			status := v.injuryPast
			if injury.Current == "yes" {
				status = v.injuryCurrent
			}
			line("  - %s: %s (%s)",
				orElse(injury.Area, v.injuryArea),
				orElse(injury.Type, v.injuryType),
				status)
		}
	} else {
		line("• %s: %s", v.injuries, v.no)
	}
	line("• %s: %s", v.pain, orElse(rec.PainDescription, none))
	if rec.ConsultingDoctor != "" {
		line("• %s: %s", v.doctorConsult, markup.Escape(rec.ConsultingDoctor))
	}
	line("• %s: %s", v.doctorOK, orElse(rec.DoctorApproval, notSpec))
	if rec.DoctorLimitations != "" {
		line("• %s: %s", v.doctorLimits, markup.Escape(rec.DoctorLimitations))
	}
	b.WriteByte('\n')

	line("%s", v.secExperience)
	line("• %s: %s", v.activityLevel, orElse(rec.ActivityLevel, notSpec))
	line("• %s: %s", v.trainingYears, orElse(rec.TrainingDuration, notSpec))
	if rec.WorkedWithTrainer == "yes" {
		line("• %s: %s", v.withTrainer, orElse(rec.TrainerExperience, v.yes))
	} else {
		line("• %s: %s", v.withTrainer, v.no)
	}
	activities := rec.Activities
	if rec.OtherActivity != "" {
		activities = append(append([]string{}, activities...), rec.OtherActivity)
	}
	line("• %s: %s", v.activities, joinOrElse(loc, "", activities, none))
	b.WriteByte('\n')

	line("%s", v.secPrefs)
	line("• %s: %s", v.prefTraining, joinOrElse(loc, "", rec.PreferredTraining, notSpec))
	line("• %s: %s", v.avoid, orElse(rec.AvoidInTraining, v.nothing))
	b.WriteByte('\n')

	line("%s", v.secLifestyle)
	line("• %s: %s %s, %s: %s", v.sleep,
		orElse(rec.SleepHours, derive.Unavailable),
		v.hoursUnit,
		v.sleepQuality,
		orElse(rec.SleepQuality, derive.Unavailable))
	if rec.BedTime != "" || rec.WakeTime != "" {
		line("• %s: %s — %s", v.sleepWindow,
			orElse(rec.BedTime, derive.Unavailable),
			orElse(rec.WakeTime, derive.Unavailable))
	}
	line("• %s: %s", v.stress, orElse(rec.StressLevel, notSpec))
	line("• %s: %s", v.meals, orElse(rec.MealsPerDay, derive.Unavailable))
	line("• %s: %s", v.water, orElse(rec.WaterIntake, derive.Unavailable))
	if rec.CoffeeTeaPerDay != "" {
		line("• %s: %s %s", v.coffeeTea, markup.Escape(rec.CoffeeTeaPerDay), v.perDay)
	}
	line("• %s: %s", v.alcohol, orElse(rec.Alcohol, notSpec))
	if rec.Smoking == "yes" && rec.CigarettesPerDay != "" {
		line("• %s: %s (%s %s)", v.smoking, v.yes, markup.Escape(rec.CigarettesPerDay), v.perDay)
	} else {
		line("• %s: %s", v.smoking, orElse(rec.Smoking, notSpec))
	}
	line("• %s: %s", v.allergies, orElse(rec.Allergies, none))
	diets := rec.SpecialDiet
	if rec.OtherDiet != "" {
		diets = append(append([]string{}, diets...), rec.OtherDiet)
	}
	line("• %s: %s", v.diet, joinOrElse(loc, "", diets, none))
	b.WriteByte('\n')

	line("%s", v.secLogistics)
	line("• %s: %s", v.frequency, orElse(rec.TrainingFrequency, notSpec))
	line("• %s: %s", v.days, joinOrElse(loc, "", rec.PreferredDays, anyLabel))
	line("• %s: %s", v.times, joinOrElse(loc, "", rec.PreferredTimes, anyLabel))
	line("• %s: %s", v.location, locationLabel(loc, rec.TrainingLocation, notSpec))
	if rec.TrainingLocation == "gym" {
		line("• %s: %s", v.gym, orElse(rec.GymName, notSpec))
	}
	b.WriteByte('\n')

	line("%s", v.secExtra)
	line("• %s: %s", v.extraInfo, orElse(rec.AdditionalInfo, none))
	fmt.Fprintf(&b, "• %s: %s", v.expectations, orElse(rec.TrainerExpectations, notSpec))

	return markup.Truncate(b.String(), telegram.MessageLimit, locale.TruncationMarker(loc))
}

func locationLabel(loc locale.Locale, code, fallback string) string {
	if strings.TrimSpace(code) == "" {
		return fallback
	}
	return markup.Escape(locale.Resolve(loc, locale.CategoryLocation, code))
}
