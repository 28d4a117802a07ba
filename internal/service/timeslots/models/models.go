package models

import (
	"time"

	"github.com/cazingue/BMT-ReservationService/internal/domain"
)

// Request модели

// CreateTimeSlotRequest запрос на создание слота каталога
type CreateTimeSlotRequest struct {
	StartTime string `json:"start_time"` // "12:30"
	EndTime   string `json:"end_time"`   // "14:30"
	IsLunch   bool   `json:"is_lunch"`
	IsDinner  bool   `json:"is_dinner"`
	IsActive  *bool  `json:"is_active,omitempty"` // По умолчанию true
}

// UpdateTimeSlotRequest запрос на изменение слота каталога
type UpdateTimeSlotRequest struct {
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	IsLunch   *bool   `json:"is_lunch,omitempty"`
	IsDinner  *bool   `json:"is_dinner,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

// Response модели

// TimeSlotResponse ответ с данными слота
type TimeSlotResponse struct {
	ID        int64     `json:"id"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	IsLunch   bool      `json:"is_lunch"`
	IsDinner  bool      `json:"is_dinner"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TimeSlotListResponse ответ с каталогом слотов, сгруппированным по сервисам
type TimeSlotListResponse struct {
	Count  int                `json:"count"`
	Lunch  []TimeSlotResponse `json:"lunch"`
	Dinner []TimeSlotResponse `json:"dinner"`
}

// Методы конвертации

// FromDomainTimeSlot конвертирует domain модель в DTO
func FromDomainTimeSlot(s *domain.TimeSlot) *TimeSlotResponse {
	if s == nil {
		return nil
	}

	return &TimeSlotResponse{
		ID:        s.ID,
		StartTime: s.StartTime.String(),
		EndTime:   s.EndTime.String(),
		IsLunch:   s.IsLunch,
		IsDinner:  s.IsDinner,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// FromDomainTimeSlotList конвертирует список слотов в сгруппированный DTO
func FromDomainTimeSlotList(slots []*domain.TimeSlot) *TimeSlotListResponse {
	resp := &TimeSlotListResponse{
		Count:  len(slots),
		Lunch:  make([]TimeSlotResponse, 0),
		Dinner: make([]TimeSlotResponse, 0),
	}

	for _, s := range slots {
		item := FromDomainTimeSlot(s)
		if item == nil {
			continue
		}
		if s.IsLunch {
			resp.Lunch = append(resp.Lunch, *item)
		}
		if s.IsDinner {
			resp.Dinner = append(resp.Dinner, *item)
		}
	}

	return resp
}
