package update_reservation

import (
	"time"

	"github.com/cazingue/BMT-ReservationService/internal/domain"
	updateReservation "github.com/cazingue/BMT-ReservationService/internal/usecase/update_reservation"
	"github.com/cazingue/BMT-ReservationService/pkg/types"
)

// UpdateReservationRequest HTTP request model.
// Отсутствующие поля не меняются.
type UpdateReservationRequest struct {
	CustomerName  *string `json:"customer_name,omitempty"`
	CustomerEmail *string `json:"customer_email,omitempty"`
	CustomerPhone *string `json:"customer_phone,omitempty"`
	Date          *string `json:"date,omitempty"` // "2026-03-12"
	Time          *string `json:"time,omitempty"` // "12:30"
	PartySize     *int    `json:"party_size,omitempty"`
	Comments      *string `json:"comments,omitempty"`
}

// ReservationPayload HTTP модель бронирования
type ReservationPayload struct {
	ID               int64  `json:"id"`
	CustomerName     string `json:"customer_name"`
	CustomerEmail    string `json:"customer_email"`
	CustomerPhone    string `json:"customer_phone"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	PartySize        int    `json:"party_size"`
	Comments         string `json:"comments,omitempty"`
	Status           string `json:"status"`
	ConfirmationCode string `json:"confirmation_code"`
	RequiresApproval bool   `json:"requires_approval"`
	TableID          *int64 `json:"table_id,omitempty"`
	TableNumber      *int   `json:"table_number,omitempty"`
	TableCapacity    *int   `json:"table_capacity,omitempty"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

// UpdateReservationResponse HTTP response model
type UpdateReservationResponse struct {
	Success     bool               `json:"success"`
	Message     string             `json:"message"`
	Reservation ReservationPayload `json:"reservation"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateReservationRequest) ToUseCaseRequest(code string) (*updateReservation.Request, error) {
	req := &updateReservation.Request{
		ConfirmationCode: code,
		CustomerName:     r.CustomerName,
		CustomerEmail:    r.CustomerEmail,
		CustomerPhone:    r.CustomerPhone,
		PartySize:        r.PartySize,
		Comments:         r.Comments,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if r.Time != nil {
		at, err := types.NewTimeStringFromString(*r.Time)
		if err != nil {
			return nil, err
		}
		req.Time = &at
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateReservation.Response, message string) *UpdateReservationResponse {
	return &UpdateReservationResponse{
		Success: true,
		Message: message,
		Reservation: ReservationPayload{
			ID:               resp.ID,
			CustomerName:     resp.CustomerName,
			CustomerEmail:    resp.CustomerEmail,
			CustomerPhone:    resp.CustomerPhone,
			Date:             resp.Date.Format(domain.DateFormat),
			Time:             resp.Time.String(),
			PartySize:        resp.PartySize,
			Comments:         resp.Comments,
			Status:           resp.Status,
			ConfirmationCode: resp.ConfirmationCode,
			RequiresApproval: resp.RequiresApproval,
			TableID:          resp.TableID,
			TableNumber:      resp.TableNumber,
			TableCapacity:    resp.TableCapacity,
			CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
			UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
		},
	}
}
