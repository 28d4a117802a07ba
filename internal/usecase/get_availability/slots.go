package get_availability

import (
	"time"

	"github.com/cazingue/BMT-ReservationService/internal/domain"
	"github.com/cazingue/BMT-ReservationService/pkg/types"
)

// annotateSlots вычисляет доступность каждого слота каталога для даты,
// количества гостей и текущего состояния бронирований.
//
// Правила в порядке применения:
//  1. Выходные (суббота, воскресенье) - ресторан закрыт, все слоты недоступны.
//  2. Ужинные слоты доступны только в четверг.
//  3. Для остальных слотов ищем хотя бы один стол достаточной вместимости
//     без пересекающегося активного бронирования.
//  4. Опция thursdayDinnerAlwaysOpen: ужин в четверг объявляется доступным
//     без проверки столов.
func annotateSlots(
	slots []*domain.TimeSlot,
	tables []*domain.Table,
	reservations []*domain.Reservation,
	date time.Time,
	durationMinutes int,
	thursdayDinnerAlwaysOpen bool,
) []domain.SlotAvailability {
	operatingDay := domain.IsOperatingDay(date)
	dinnerDay := domain.IsDinnerDay(date)

	result := make([]domain.SlotAvailability, 0, len(slots))

	for _, slot := range slots {
		entry := domain.SlotAvailability{
			SlotID:    slot.ID,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			IsLunch:   slot.IsLunch,
			IsDinner:  slot.IsDinner,
		}

		switch {
		case !operatingDay:
			entry.Available = false
		case slot.IsDinner && !dinnerDay:
			entry.Available = false
		case slot.IsDinner && dinnerDay && thursdayDinnerAlwaysOpen:
			entry.Available = true
		default:
			entry.Available = hasFreeTable(tables, reservations, slot.StartTime, durationMinutes)
		}

		result = append(result, entry)
	}

	return result
}

// hasFreeTable проверяет, есть ли хотя бы один стол без конфликтующего
// бронирования на окно [start, start+duration). Столы приходят уже
// отфильтрованными по вместимости и отсортированными по возрастанию.
func hasFreeTable(
	tables []*domain.Table,
	reservations []*domain.Reservation,
	start types.TimeString,
	durationMinutes int,
) bool {
	for _, table := range tables {
		if !domain.HasConflict(table.ID, start, durationMinutes, reservations) {
			return true
		}
	}
	return false
}
