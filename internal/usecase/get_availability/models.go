package get_availability

import (
	"time"

	"github.com/cazingue/BMT-ReservationService/internal/domain"
)

// Request модель запроса на проверку доступности
type Request struct {
	Date      time.Time // Дата бронирования (без времени)
	PartySize int       // Количество гостей
}

// Response модель ответа с доступностью по всему каталогу слотов
type Response struct {
	Date      time.Time
	PartySize int
	Lunch     []domain.SlotAvailability // Обеденные слоты
	Dinner    []domain.SlotAvailability // Ужинные слоты
}
