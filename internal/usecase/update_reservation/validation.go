package update_reservation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/cazingue/BMT-ReservationService/internal/domain"
	"github.com/cazingue/BMT-ReservationService/pkg/types"
)

var (
	emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Французский телефон: +33612345678, 0612345678, 06 12 34 56 78 и т.д.
	phoneRegexp = regexp.MustCompile(`^(?:(?:\+|00)33|0)\s*[1-9](?:[\s.-]*\d{2}){4}$`)

	htmlTagRegexp = regexp.MustCompile(`<[^>]*>?`)
)

// validateRequest валидирует и нормализует заданные поля запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ConfirmationCode) == "" {
		return fmt.Errorf("%w: confirmation code is required", ErrInvalidInput)
	}

	if req.CustomerName != nil {
		*req.CustomerName = sanitizeText(*req.CustomerName)
		if len(*req.CustomerName) < domain.MinCustomerNameLength {
			return fmt.Errorf("%w: customer name must contain at least %d characters",
				ErrInvalidInput, domain.MinCustomerNameLength)
		}
	}

	if req.CustomerEmail != nil {
		*req.CustomerEmail = strings.ToLower(strings.TrimSpace(*req.CustomerEmail))
		if !emailRegexp.MatchString(*req.CustomerEmail) {
			return fmt.Errorf("%w: a valid email address is required", ErrInvalidInput)
		}
	}

	if req.CustomerPhone != nil {
		*req.CustomerPhone = strings.TrimSpace(*req.CustomerPhone)
		if !phoneRegexp.MatchString(*req.CustomerPhone) {
			return fmt.Errorf("%w: a valid phone number is required", ErrInvalidInput)
		}
	}

	if req.PartySize != nil {
		if *req.PartySize < domain.MinPartySize || *req.PartySize > domain.MaxPartySize {
			return fmt.Errorf("%w: party size must be between %d and %d",
				ErrInvalidInput, domain.MinPartySize, domain.MaxPartySize)
		}
	}

	if req.Comments != nil {
		*req.Comments = sanitizeText(*req.Comments)
		if len(*req.Comments) > domain.MaxCommentsLength {
			return fmt.Errorf("%w: comments must not exceed %d characters",
				ErrInvalidInput, domain.MaxCommentsLength)
		}
	}

	if req.Time != nil {
		if err := req.Time.Validate(); err != nil {
			return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
		}
	}

	return nil
}

// validateSchedule проверяет новую дату и время по расписанию ресторана
func validateSchedule(date time.Time, at types.TimeString, now time.Time, policy domain.ReservationPolicy) error {
	if domain.IsDateInPast(date, now) {
		return fmt.Errorf("%w: date must not be in the past", ErrInvalidDate)
	}

	if !domain.IsOperatingDay(date) {
		return ErrRestaurantClosed
	}

	if domain.IsDinnerTime(at) && !domain.IsDinnerDay(date) {
		return ErrDinnerNotAvailable
	}

	if !domain.IsWithinBookingWindow(date, at, now, policy.MinAdvanceHours, policy.MaxAdvanceHours) {
		return fmt.Errorf("%w: reservations must be made between %d hour(s) and %d hour(s) in advance",
			ErrOutsideBookingWindow, policy.MinAdvanceHours, policy.MaxAdvanceHours)
	}

	return nil
}

func sanitizeText(text string) string {
	return strings.TrimSpace(htmlTagRegexp.ReplaceAllString(text, ""))
}
