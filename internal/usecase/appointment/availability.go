package appointment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/apperr"
	"github.com/BruksfildServices01/barber-booking/internal/cache"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/store"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

const availabilityTTL = 60 * time.Second

func availabilityKey(barbershopID, serviceID, date string) string {
	return fmt.Sprintf("availability:%s:%s:%s", barbershopID, serviceID, date)
}

// availabilityPattern cobre todos os serviços da barbearia na data: um
// agendamento novo muda os horários livres de todos eles.
func availabilityPattern(barbershopID, date string) string {
	return fmt.Sprintf("availability:%s:*:%s", barbershopID, date)
}

type GetAvailability struct {
	repo  domain.Repository
	cache cache.Cache
}

// NewGetAvailability aceita cache nil; sem Redis a consulta é sempre direta.
func NewGetAvailability(repo domain.Repository, c cache.Cache) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		cache: c,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	date, ok := validators.ParseDate(in.Date)
	if !ok {
		return nil, apperr.InvalidParam("Data inválida. Utilize o formato AAAA-MM-DD.")
	}

	key := availabilityKey(in.BarbershopID, in.ServiceID, in.Date)
	if uc.cache != nil {
		if raw, ok := uc.cache.Get(ctx, key); ok {
			var slots []domain.TimeSlot
			if err := json.Unmarshal([]byte(raw), &slots); err == nil {
				return slots, nil
			}
		}
	}

	svc, err := uc.repo.GetServiceWithShop(ctx, in.ServiceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.InvalidParam("Serviço com id:%s não encontrado.", in.ServiceID)
		}
		return nil, err
	}
	if svc.BarbershopID != in.BarbershopID {
		return nil, apperr.InvalidParam("Serviço com id:%s não pertence a esta barbearia.", in.ServiceID)
	}

	day := int(date.Weekday()) // 0 = domingo, igual ao ordinal armazenado

	hours, err := uc.repo.GetOpeningHours(ctx, in.BarbershopID, day)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// dia fechado → sem slots
			return []domain.TimeSlot{}, nil
		}
		return nil, err
	}

	taken, err := uc.repo.ListActiveForDay(ctx, in.BarbershopID, in.Date)
	if err != nil {
		return nil, err
	}

	slots := domain.FreeSlots(hours.OpeningTime, hours.ClosingTime, svc.Duration, taken)
	if slots == nil {
		slots = []domain.TimeSlot{}
	}

	if uc.cache != nil {
		if raw, err := json.Marshal(slots); err == nil {
			uc.cache.Set(ctx, key, string(raw), availabilityTTL)
		}
	}

	return slots, nil
}
