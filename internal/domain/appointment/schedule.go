package appointment

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/BruksfildServices01/barber-booking/internal/apperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

// ErrOverlap é devolvido pelo repositório quando a checagem transacional
// encontra outro agendamento ativo no intervalo.
var ErrOverlap = errors.New("overlapping appointment")

// minuteOfDay assume HH:MM já validado.
func minuteOfDay(hhmm string) int {
	h, _ := strconv.Atoi(hhmm[:2])
	m, _ := strconv.Atoi(hhmm[3:])
	return h*60 + m
}

func formatMinute(total int) string {
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// EndTime calcula o fim do agendamento a partir do início e da duração do
// serviço em minutos. Frações de minuto arredondam para cima, para que o
// rabo fracionário nunca fique reservável por outro cliente.
func EndTime(start string, durationMin float64) (string, error) {
	if !validators.IsTimeOfDay(start) {
		return "", apperr.InvalidParam("Formato de horário inválido. Utilize o formato HH:MM.")
	}
	if durationMin < 0 {
		return "", apperr.InvalidParam("Duração de serviço inválida.")
	}

	end := minuteOfDay(start) + int(math.Ceil(durationMin))
	if end >= 24*60 {
		return "", apperr.InvalidParam("O agendamento não pode ultrapassar a meia-noite.")
	}

	return formatMinute(end), nil
}

// Overlaps aplica a regra de sobreposição com limites inclusivos:
// dois intervalos no mesmo dia conflitam quando
// aStart <= bEnd && aEnd >= bStart. Na igualdade exata (um começa quando o
// outro termina) ainda conta como conflito: agendamentos colados são
// rejeitados de propósito. Comparação lexicográfica funciona porque os
// horários são sempre HH:MM com zero à esquerda.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart <= bEnd && aEnd >= bStart
}

// FreeSlots percorre o expediente de passo em passo (duração do serviço) e
// devolve os horários que a regra de sobreposição ainda aceita reservar.
func FreeSlots(openingTime, closingTime string, durationMin float64, taken []models.Appointment) []TimeSlot {
	if !validators.IsTimeOfDay(openingTime) || !validators.IsTimeOfDay(closingTime) {
		return nil
	}

	step := int(math.Ceil(durationMin))
	if step <= 0 {
		return nil
	}

	dayStart := minuteOfDay(openingTime)
	dayEnd := minuteOfDay(closingTime)

	var slots []TimeSlot
	for cur := dayStart; cur+step <= dayEnd; cur += step {
		start := formatMinute(cur)
		end := formatMinute(cur + step)

		conflict := false
		for _, ap := range taken {
			if Overlaps(ap.StartTime, ap.EndTime, start, end) {
				conflict = true
				break
			}
		}

		if !conflict {
			slots = append(slots, TimeSlot{Start: start, End: end})
		}
	}

	return slots
}
