package create_reservation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/cazingue/BMT-ReservationService/internal/domain"
	"github.com/cazingue/BMT-ReservationService/pkg/types"
)

var (
	// Email: непустая локальная часть, @, домен с точкой
	emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Французский телефон: +33612345678, 0612345678, 06 12 34 56 78 и т.д.
	phoneRegexp = regexp.MustCompile(`^(?:(?:\+|00)33|0)\s*[1-9](?:[\s.-]*\d{2}){4}$`)

	// HTML-теги вырезаются из свободного текста
	htmlTagRegexp = regexp.MustCompile(`<[^>]*>?`)
)

// validateRequest валидирует и нормализует входные данные запроса.
// Нормализация: trim, email в нижний регистр, вырезание HTML-тегов
// из имени и комментариев.
func validateRequest(req *Request, now time.Time) error {
	req.CustomerName = sanitizeText(req.CustomerName)
	req.CustomerEmail = strings.ToLower(strings.TrimSpace(req.CustomerEmail))
	req.CustomerPhone = strings.TrimSpace(req.CustomerPhone)
	req.Comments = sanitizeText(req.Comments)

	if len(req.CustomerName) < domain.MinCustomerNameLength {
		return fmt.Errorf("%w: customer name must contain at least %d characters",
			ErrInvalidInput, domain.MinCustomerNameLength)
	}

	if !emailRegexp.MatchString(req.CustomerEmail) {
		return fmt.Errorf("%w: a valid email address is required", ErrInvalidInput)
	}

	if !phoneRegexp.MatchString(req.CustomerPhone) {
		return fmt.Errorf("%w: a valid phone number is required", ErrInvalidInput)
	}

	if req.PartySize < domain.MinPartySize || req.PartySize > domain.MaxPartySize {
		return fmt.Errorf("%w: party size must be between %d and %d",
			ErrInvalidInput, domain.MinPartySize, domain.MaxPartySize)
	}

	if len(req.Comments) > domain.MaxCommentsLength {
		return fmt.Errorf("%w: comments must not exceed %d characters",
			ErrInvalidInput, domain.MaxCommentsLength)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if domain.IsDateInPast(req.Date, now) {
		return fmt.Errorf("%w: date must not be in the past", ErrInvalidDate)
	}

	return nil
}

// validateSchedule проверяет расписание работы ресторана и окно бронирования
func validateSchedule(date time.Time, at types.TimeString, now time.Time, policy domain.ReservationPolicy) error {
	if !domain.IsOperatingDay(date) {
		return ErrRestaurantClosed
	}

	// Ужин (с 15:00) только по четвергам
	if domain.IsDinnerTime(at) && !domain.IsDinnerDay(date) {
		return ErrDinnerNotAvailable
	}

	if !domain.IsWithinBookingWindow(date, at, now, policy.MinAdvanceHours, policy.MaxAdvanceHours) {
		return fmt.Errorf("%w: reservations must be made between %d hour(s) and %d hour(s) in advance",
			ErrOutsideBookingWindow, policy.MinAdvanceHours, policy.MaxAdvanceHours)
	}

	return nil
}

// sanitizeText вырезает HTML-теги и обрезает пробелы
func sanitizeText(text string) string {
	return strings.TrimSpace(htmlTagRegexp.ReplaceAllString(text, ""))
}
