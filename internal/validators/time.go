package validators

import (
	"regexp"
	"time"
)

// HH entre 00 e 23, MM entre 00 e 59, sempre com zero à esquerda.
var timeOfDayRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

var dateRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])$`)

// IsTimeOfDay valida horários no formato HH:MM.
func IsTimeOfDay(s string) bool {
	return timeOfDayRe.MatchString(s)
}

// IsWeekday valida ordinais de dia da semana (0 = domingo ... 6 = sábado).
func IsWeekday(n int) bool {
	return n >= 0 && n <= 6
}

// ParseDate valida e interpreta datas no formato 2006-01-02. A regex cobre
// o formato; o parse rejeita datas impossíveis no calendário (31/02 etc.).
func ParseDate(s string) (time.Time, bool) {
	if !dateRe.MatchString(s) {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	return t, err == nil
}

// IsDate valida datas no formato 2006-01-02.
func IsDate(s string) bool {
	_, ok := ParseDate(s)
	return ok
}
