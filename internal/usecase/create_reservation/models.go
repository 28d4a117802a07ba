package create_reservation

import (
	"time"

	"github.com/cazingue/BMT-ReservationService/internal/domain"
	"github.com/cazingue/BMT-ReservationService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerName  string           // Имя клиента
	CustomerEmail string           // Email клиента
	CustomerPhone string           // Телефон клиента (французский формат)
	Date          time.Time        // Дата бронирования (без времени)
	Time          types.TimeString // Время начала слота (например, "12:30")
	PartySize     int              // Количество гостей
	Comments      string           // Комментарии (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID               int64
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    string
	Date             time.Time
	Time             types.TimeString
	PartySize        int
	Comments         string
	Status           string
	ConfirmationCode string // Единственный ключ клиента к бронированию
	RequiresApproval bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func toResponse(res *domain.Reservation) *Response {
	return &Response{
		ID:               res.ID,
		CustomerName:     res.CustomerName,
		CustomerEmail:    res.CustomerEmail,
		CustomerPhone:    res.CustomerPhone,
		Date:             res.Date,
		Time:             res.Time,
		PartySize:        res.PartySize,
		Comments:         res.Comments,
		Status:           string(res.Status),
		ConfirmationCode: res.ConfirmationCode,
		RequiresApproval: res.RequiresApproval,
		CreatedAt:        res.CreatedAt,
		UpdatedAt:        res.UpdatedAt,
	}
}
