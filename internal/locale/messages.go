package locale

// Service-level strings returned to the frontend or embedded in outbound
// notifications.
var (
	msgRequiredFields = label{
		ru: "Заполните все обязательные поля",
		pl: "Wypełnij wszystkie wymagane pola",
	}
	msgGenerationFailed = label{
		ru: "Ошибка генерации плана. Попробуйте позже.",
		pl: "Błąd generowania planu. Spróbuj później.",
	}
	msgTruncated = label{
		ru: "... (сообщение обрезано из-за длины)",
		pl: "... (wiadomość skrócona ze względu na długość)",
	}
	msgNotSpecified = label{ru: "Не указано", pl: "Nie podano"}
	msgNone         = label{ru: "Нет", pl: "Brak"}
	msgAny          = label{ru: "Любые", pl: "Dowolne"}
)

// RequiredFieldsError is the validation message for a plan request with
// a missing mandatory field.
func RequiredFieldsError(loc Locale) string { return msgRequiredFields.in(loc) }

// GenerationError is the generic message for an upstream model failure.
func GenerationError(loc Locale) string { return msgGenerationFailed.in(loc) }

// TruncationMarker is appended to a notification cut down to the
// transport length limit.
func TruncationMarker(loc Locale) string { return msgTruncated.in(loc) }

// NotSpecified is the placeholder for an absent single-value field.
func NotSpecified(loc Locale) string { return msgNotSpecified.in(loc) }

// None is the placeholder for an absent or empty list/flag field.
func None(loc Locale) string { return msgNone.in(loc) }

// Any is the placeholder for an empty scheduling preference.
func Any(loc Locale) string { return msgAny.in(loc) }
