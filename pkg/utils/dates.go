package utils

import "time"

// DateLayout — формат календарных дат во всех полях оборудования ("YYYY-MM-DD").
const DateLayout = "2006-01-02"

// ParseDate разбирает дату вида "2026-01-11". Пустые и кривые значения
// не считаются ошибкой вызывающего кода: вернётся ok=false, и поле
// просто выпадет из вычислений (легаси-записи этим грешат).
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// AddDays прибавляет календарные дни к дате в строковом виде.
func AddDays(date string, days int) (string, bool) {
	t, ok := ParseDate(date)
	if !ok {
		return "", false
	}
	return t.AddDate(0, 0, days).Format(DateLayout), true
}

// FormatDate приводит время к строковому виду даты.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
