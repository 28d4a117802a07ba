package update_reservation

import (
	"time"

	"github.com/cazingue/BMT-ReservationService/internal/domain"
	"github.com/cazingue/BMT-ReservationService/pkg/types"
)

// Request модель запроса на изменение бронирования клиентом.
// Указатели nil означают "поле не меняется".
type Request struct {
	ConfirmationCode string // Код подтверждения - ключ клиента к бронированию

	CustomerName  *string
	CustomerEmail *string
	CustomerPhone *string
	Date          *time.Time
	Time          *types.TimeString
	PartySize     *int
	Comments      *string
}

// Response модель ответа с обновленным бронированием
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
	ConfirmationCode string
	TableID          *int64
	TableNumber      *int
	TableCapacity    *int
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
		TableID:          res.TableID,
		TableNumber:      res.TableNumber,
		TableCapacity:    res.TableCapacity,
		RequiresApproval: res.RequiresApproval,
		CreatedAt:        res.CreatedAt,
		UpdatedAt:        res.UpdatedAt,
	}
}
