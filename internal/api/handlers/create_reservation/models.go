package create_reservation

import (
	"time"

	"github.com/cazingue/BMT-ReservationService/internal/domain"
	createReservation "github.com/cazingue/BMT-ReservationService/internal/usecase/create_reservation"
	"github.com/cazingue/BMT-ReservationService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	Date          string `json:"date"` // "2026-03-12"
	Time          string `json:"time"` // "12:30"
	PartySize     int    `json:"party_size"`
	Comments      string `json:"comments,omitempty"`
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
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

// CreateReservationResponse HTTP response model
type CreateReservationResponse struct {
	Success     bool               `json:"success"`
	Message     string             `json:"message"`
	Reservation ReservationPayload `json:"reservation"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	at, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Date:          date,
		Time:          at,
		PartySize:     r.PartySize,
		Comments:      r.Comments,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response, message string) *CreateReservationResponse {
	return &CreateReservationResponse{
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
			CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
			UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
		},
	}
}
