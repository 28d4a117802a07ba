package models

import (
	"errors"
	"time"

	"github.com/cazingue/BMT-ReservationService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе стола
	ErrInvalidStatus = errors.New("invalid table status")
)

// Request модели

// CreateTableRequest запрос на создание стола
type CreateTableRequest struct {
	Number      int    `json:"number"`
	Capacity    int    `json:"capacity"`
	Status      string `json:"status,omitempty"` // По умолчанию "available"
	Description string `json:"description,omitempty"`
}

// UpdateTableRequest запрос на изменение стола
type UpdateTableRequest struct {
	Number      *int    `json:"number,omitempty"`
	Capacity    *int    `json:"capacity,omitempty"`
	Status      *string `json:"status,omitempty"`
	Description *string `json:"description,omitempty"`
}

// UpdateTableStatusRequest запрос на смену операционного статуса стола
type UpdateTableStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// TableResponse ответ с данными стола
type TableResponse struct {
	ID          int64     `json:"id"`
	Number      int       `json:"number"`
	Capacity    int       `json:"capacity"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableListResponse ответ со списком столов
type TableListResponse struct {
	Count  int             `json:"count"`
	Tables []TableResponse `json:"tables"`
}

// Методы конвертации

// FromDomainTable конвертирует domain модель в DTO
func FromDomainTable(t *domain.Table) *TableResponse {
	if t == nil {
		return nil
	}

	return &TableResponse{
		ID:          t.ID,
		Number:      t.Number,
		Capacity:    t.Capacity,
		Status:      string(t.Status),
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// FromDomainTableList конвертирует список domain моделей в DTO
func FromDomainTableList(tables []*domain.Table) *TableListResponse {
	resp := &TableListResponse{
		Count:  len(tables),
		Tables: make([]TableResponse, 0, len(tables)),
	}

	for _, t := range tables {
		if item := FromDomainTable(t); item != nil {
			resp.Tables = append(resp.Tables, *item)
		}
	}

	return resp
}

// ToDomainTableStatus конвертирует строку в domain.TableStatus с валидацией
func ToDomainTableStatus(status string) (domain.TableStatus, error) {
	s := domain.TableStatus(status)
	if !domain.ValidTableStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
