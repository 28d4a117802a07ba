package models

import (
	"errors"
	"time"

	"github.com/cazingue/BMT-ReservationService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// SearchReservationsRequest запрос на поиск бронирований (админка)
type SearchReservationsRequest struct {
	Date          *time.Time `json:"date,omitempty"`
	Status        *string    `json:"status,omitempty"`
	CustomerName  *string    `json:"customer_name,omitempty"`
	CustomerEmail *string    `json:"customer_email,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *SearchReservationsRequest) ToDomainFilter() (domain.ReservationFilter, error) {
	filter := domain.ReservationFilter{
		Date:          r.Date,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
	}

	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// AdminUpdateReservationRequest запрос администратора на изменение бронирования.
// В отличие от клиентского пути, позволяет менять статус напрямую.
type AdminUpdateReservationRequest struct {
	CustomerName  *string `json:"customer_name,omitempty"`
	CustomerEmail *string `json:"customer_email,omitempty"`
	CustomerPhone *string `json:"customer_phone,omitempty"`
	Date          *string `json:"date,omitempty"` // "2026-03-12"
	Time          *string `json:"time,omitempty"` // "12:30"
	PartySize     *int    `json:"party_size,omitempty"`
	Comments      *string `json:"comments,omitempty"`
	Status        *string `json:"status,omitempty"`
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID               int64  `json:"id"`
	CustomerName     string `json:"customer_name"`
	CustomerEmail    string `json:"customer_email"`
	CustomerPhone    string `json:"customer_phone"`
	Date             string `json:"date"` // "2026-03-12"
	Time             string `json:"time"` // "12:30"
	PartySize        int    `json:"party_size"`
	Comments         string `json:"comments,omitempty"`
	Status           string `json:"status"`
	ConfirmationCode string `json:"confirmation_code"`
	RequiresApproval bool   `json:"requires_approval"`

	// Денормализованные данные стола (заполнены после подтверждения)
	TableID       *int64 `json:"table_id,omitempty"`
	TableNumber   *int   `json:"table_number,omitempty"`
	TableCapacity *int   `json:"table_capacity,omitempty"`

	CancelledAt *string `json:"cancelled_at,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Count        int                   `json:"count"`
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:               r.ID,
		CustomerName:     r.CustomerName,
		CustomerEmail:    r.CustomerEmail,
		CustomerPhone:    r.CustomerPhone,
		Date:             r.Date.Format(domain.DateFormat),
		Time:             r.Time.String(),
		PartySize:        r.PartySize,
		Comments:         r.Comments,
		Status:           string(r.Status),
		ConfirmationCode: r.ConfirmationCode,
		RequiresApproval: r.RequiresApproval,
		TableID:          r.TableID,
		TableNumber:      r.TableNumber,
		TableCapacity:    r.TableCapacity,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}

	if r.CancelledAt != nil {
		cancelledStr := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Count:        len(reservations),
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, r := range reservations {
		if item := FromDomainReservation(r); item != nil {
			resp.Reservations = append(resp.Reservations, *item)
		}
	}

	return resp
}

// ToDomainReservationStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)
	if !domain.ValidReservationStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
