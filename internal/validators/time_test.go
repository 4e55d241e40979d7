package validators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsTimeOfDay(t *testing.T) {
	valid := []string{"00:00", "09:00", "09:30", "12:05", "19:59", "23:59"}
	for _, v := range valid {
		assert.True(t, IsTimeOfDay(v), "esperava aceitar %q", v)
	}

	invalid := []string{
		"",
		"9:00",   // sem zero à esquerda
		"09:5",   // minuto com um dígito
		"24:00",  // hora fora do intervalo
		"12:60",  // minuto fora do intervalo
		"09-30",  // separador errado
		"09:30 ", // espaço extra
		"ab:cd",
		"09:30:00",
	}
	for _, v := range invalid {
		assert.False(t, IsTimeOfDay(v), "esperava rejeitar %q", v)
	}
}

func TestIsWeekday(t *testing.T) {
	for day := 0; day <= 6; day++ {
		assert.True(t, IsWeekday(day))
	}
	assert.False(t, IsWeekday(-1))
	assert.False(t, IsWeekday(7))
}

func TestIsDate(t *testing.T) {
	assert.True(t, IsDate("2025-10-20"))
	assert.True(t, IsDate("2025-01-01"))
	assert.True(t, IsDate("2025-12-31"))
	assert.True(t, IsDate("2024-02-29")) // bissexto

	assert.False(t, IsDate("2025-13-01"))
	assert.False(t, IsDate("2025-00-10"))
	assert.False(t, IsDate("2025-10-32"))
	assert.False(t, IsDate("20-10-2025"))
	assert.False(t, IsDate("2025/10/20"))
	assert.False(t, IsDate(""))

	// formato válido, calendário impossível
	assert.False(t, IsDate("2025-02-31"))
	assert.False(t, IsDate("2025-02-29"))
	assert.False(t, IsDate("2025-04-31"))
}

func TestParseDate(t *testing.T) {
	d, ok := ParseDate("2025-10-20")
	assert.True(t, ok)
	assert.Equal(t, time.Monday, d.Weekday())

	_, ok = ParseDate("2025-02-31")
	assert.False(t, ok)
}
