package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/apperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func TestEndTime(t *testing.T) {
	end, err := EndTime("09:00", 30)
	require.NoError(t, err)
	assert.Equal(t, "09:30", end)

	end, err = EndTime("10:00", 45)
	require.NoError(t, err)
	assert.Equal(t, "10:45", end)

	end, err = EndTime("23:00", 59)
	require.NoError(t, err)
	assert.Equal(t, "23:59", end)
}

func TestEndTimeFractionRoundsUp(t *testing.T) {
	end, err := EndTime("09:00", 30.5)
	require.NoError(t, err)
	assert.Equal(t, "09:31", end)
}

func TestEndTimeRejectsMidnightCrossing(t *testing.T) {
	_, err := EndTime("23:30", 30)
	assert.True(t, apperr.Is(err, apperr.KindInvalidParam))

	_, err = EndTime("23:45", 60)
	assert.True(t, apperr.Is(err, apperr.KindInvalidParam))
}

func TestEndTimeRejectsBadInput(t *testing.T) {
	_, err := EndTime("9:00", 30)
	assert.True(t, apperr.Is(err, apperr.KindInvalidParam))

	_, err = EndTime("09:00", -1)
	assert.True(t, apperr.Is(err, apperr.KindInvalidParam))
}

func TestOverlaps(t *testing.T) {
	// sobreposição parcial
	assert.True(t, Overlaps("09:00", "09:30", "09:15", "09:45"))
	// contido
	assert.True(t, Overlaps("09:00", "10:00", "09:15", "09:30"))
	// idêntico
	assert.True(t, Overlaps("09:00", "09:30", "09:00", "09:30"))

	// limites inclusivos: encostar já conflita
	assert.True(t, Overlaps("09:00", "09:30", "09:30", "10:00"))
	assert.True(t, Overlaps("09:30", "10:00", "09:00", "09:30"))

	// disjuntos
	assert.False(t, Overlaps("09:00", "09:30", "09:31", "10:00"))
	assert.False(t, Overlaps("10:00", "10:30", "09:00", "09:59"))
}

func TestFreeSlots(t *testing.T) {
	slots := FreeSlots("09:00", "11:00", 30, nil)
	require.Len(t, slots, 4)
	assert.Equal(t, TimeSlot{Start: "09:00", End: "09:30"}, slots[0])
	assert.Equal(t, TimeSlot{Start: "10:30", End: "11:00"}, slots[3])
}

func TestFreeSlotsSkipsTaken(t *testing.T) {
	taken := []models.Appointment{
		{StartTime: "09:30", EndTime: "10:00"},
	}

	slots := FreeSlots("09:00", "11:00", 30, taken)

	// 09:00–09:30 encosta no agendamento (limite inclusivo) e também sai
	require.Len(t, slots, 1)
	assert.Equal(t, TimeSlot{Start: "10:30", End: "11:00"}, slots[0])
}

func TestFreeSlotsEmptyWhenClosed(t *testing.T) {
	assert.Empty(t, FreeSlots("09:00", "09:00", 30, nil))
	assert.Empty(t, FreeSlots("09:00", "11:00", 0, nil))
	assert.Empty(t, FreeSlots("", "11:00", 30, nil))
}
