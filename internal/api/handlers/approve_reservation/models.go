package approve_reservation

import (
	"time"

	"github.com/cazingue/BMT-ReservationService/internal/domain"
	approveReservation "github.com/cazingue/BMT-ReservationService/internal/usecase/approve_reservation"
)

// ReservationPayload HTTP модель подтвержденного бронирования
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

// ApproveResponse HTTP response model
type ApproveResponse struct {
	Success     bool               `json:"success"`
	Message     string             `json:"message"`
	Reservation ReservationPayload `json:"reservation"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *approveReservation.Response, message string) *ApproveResponse {
	return &ApproveResponse{
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
