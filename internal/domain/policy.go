package domain

// ReservationPolicy carries the effective booking policy. Values come
// from configuration; DefaultPolicy mirrors the restaurant's standing
// policy and is used when the config omits a value.
type ReservationPolicy struct {
	ServiceDurationMinutes   int
	MinAdvanceHours          int
	MaxAdvanceHours          int
	CancellationCutoffHours  int
	ThursdayDinnerAlwaysOpen bool
}

// DefaultPolicy returns the standing policy values.
func DefaultPolicy() ReservationPolicy {
	return ReservationPolicy{
		ServiceDurationMinutes:   DefaultServiceDurationMinutes,
		MinAdvanceHours:          DefaultMinAdvanceHours,
		MaxAdvanceHours:          DefaultMaxAdvanceHours,
		CancellationCutoffHours:  DefaultCancellationCutoffHours,
		ThursdayDinnerAlwaysOpen: true,
	}
}
