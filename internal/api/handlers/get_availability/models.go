package get_availability

import (
	"github.com/cazingue/BMT-ReservationService/internal/domain"
	getAvailability "github.com/cazingue/BMT-ReservationService/internal/usecase/get_availability"
)

// SlotResponse HTTP модель слота с флагом доступности
type SlotResponse struct {
	ID        int64  `json:"id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsLunch   bool   `json:"is_lunch"`
	IsDinner  bool   `json:"is_dinner"`
	Available bool   `json:"available"`
}

// AvailabilityResponse HTTP модель ответа с доступностью
type AvailabilityResponse struct {
	Success      bool              `json:"success"`
	Date         string            `json:"date"`
	PartySize    int               `json:"party_size"`
	Availability AvailabilityGroup `json:"availability"`
}

// AvailabilityGroup слоты, сгруппированные по сервисам
type AvailabilityGroup struct {
	Lunch  []SlotResponse `json:"lunch"`
	Dinner []SlotResponse `json:"dinner"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		Success:   true,
		Date:      resp.Date.Format(domain.DateFormat),
		PartySize: resp.PartySize,
		Availability: AvailabilityGroup{
			Lunch:  toSlotResponses(resp.Lunch),
			Dinner: toSlotResponses(resp.Dinner),
		},
	}
}

func toSlotResponses(slots []domain.SlotAvailability) []SlotResponse {
	result := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		result = append(result, SlotResponse{
			ID:        s.SlotID,
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
			IsLunch:   s.IsLunch,
			IsDinner:  s.IsDinner,
			Available: s.Available,
		})
	}
	return result
}
