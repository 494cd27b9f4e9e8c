package locale

// Category names a label table. The tables must cover every code the
// site's select inputs can emit; codes outside the table pass through
// unchanged so a frontend/backend drift degrades to raw codes instead
// of failing.
type Category string

const (
	CategoryGoal      Category = "goal"
	CategoryLevel     Category = "level"
	CategoryLocation  Category = "location"
	CategoryEquipment Category = "equipment"
	CategoryPayment   Category = "payment"
)

type label struct {
	ru string
	pl string
}

func (l label) in(loc Locale) string {
	if loc == PL {
		return l.pl
	}
	return l.ru
}

var labels = map[Category]map[string]label{
	CategoryGoal: {
		"lose_weight":  {ru: "похудеть", pl: "schudnąć"},
		"build_muscle": {ru: "набрать мышечную массу", pl: "zbudować masę mięśniową"},
		"get_fit":      {ru: "улучшить общую форму", pl: "poprawić ogólną formę"},
		"strength":     {ru: "увеличить силу", pl: "zwiększyć siłę"},
		"endurance":    {ru: "развить выносливость", pl: "rozwinąć wytrzymałość"},
	},
	CategoryLevel: {
		"beginner":     {ru: "новичок", pl: "początkujący"},
		"intermediate": {ru: "средний уровень", pl: "średniozaawansowany"},
		"advanced":     {ru: "продвинутый уровень", pl: "zaawansowany"},
	},
	CategoryLocation: {
		"gym":     {ru: "тренажёрный зал", pl: "siłownia"},
		"home":    {ru: "дома", pl: "w domu"},
		"outdoor": {ru: "на улице", pl: "na zewnątrz"},
	},
	CategoryEquipment: {
		"full_gym":  {ru: "полный зал (все тренажёры, штанги, гантели)", pl: "pełna siłownia (wszystkie maszyny, sztangi, hantle)"},
		"basic_gym": {ru: "базовый зал (штанга, гантели, турник)", pl: "podstawowa siłownia (sztanga, hantle, drążek)"},
		"dumbbells": {ru: "только гантели", pl: "tylko hantle"},
		"minimal":   {ru: "минимум (резинки, коврик)", pl: "minimum (gumy, mata)"},
		"none":      {ru: "без оборудования (только вес тела)", pl: "bez sprzętu (tylko masa ciała)"},
	},
	CategoryPayment: {
		"contact": {ru: "📞 Свяжусь для оплаты", pl: "📞 Skontaktuję się w sprawie płatności"},
		"blik":    {ru: "💳 BLIK / Перевод", pl: "💳 BLIK / Przelew"},
		"cash":    {ru: "💵 Наличными", pl: "💵 Gotówka"},
	},
}

// Resolve returns the localized label for a category+code pair. Unknown
// codes are returned as-is, never blank.
func Resolve(loc Locale, cat Category, code string) string {
	table, ok := labels[cat]
	if !ok {
		return code
	}
	l, ok := table[code]
	if !ok {
		return code
	}
	return l.in(loc)
}
