package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cazingue/BMT-ReservationService/pkg/types"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     types.TimeString
		expected bool
	}{
		{"identical windows", "12:00", "12:00", true},
		{"partial overlap", "12:00", "13:30", true},
		{"touching windows are free", "12:00", "14:00", false},
		{"reverse touching", "14:00", "12:00", false},
		{"disjoint", "12:00", "19:00", false},
		{"contained", "12:00", "12:30", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Overlaps(tt.a, tt.b, 120))
			// симметричность
			assert.Equal(t, tt.expected, Overlaps(tt.b, tt.a, 120))
		})
	}
}

func TestHasConflict(t *testing.T) {
	tableID := int64(1)
	otherID := int64(2)

	blocking := &Reservation{Time: "12:30", Status: StatusConfirmed, TableID: &tableID}
	cancelled := &Reservation{Time: "12:30", Status: StatusCancelled, TableID: &tableID}
	noShow := &Reservation{Time: "12:30", Status: StatusNoShow, TableID: &tableID}
	unassigned := &Reservation{Time: "12:30", Status: StatusPending, TableID: nil}
	otherTable := &Reservation{Time: "12:30", Status: StatusConfirmed, TableID: &otherID}

	t.Run("blocking reservation on same table conflicts", func(t *testing.T) {
		assert.True(t, HasConflict(tableID, "13:00", 120, []*Reservation{blocking}))
	})

	t.Run("released reservations are ignored", func(t *testing.T) {
		assert.False(t, HasConflict(tableID, "13:00", 120, []*Reservation{cancelled, noShow}))
	})

	t.Run("unassigned reservation does not block", func(t *testing.T) {
		assert.False(t, HasConflict(tableID, "13:00", 120, []*Reservation{unassigned}))
	})

	t.Run("other table does not block", func(t *testing.T) {
		assert.False(t, HasConflict(tableID, "13:00", 120, []*Reservation{otherTable}))
	})

	t.Run("touching window is free", func(t *testing.T) {
		assert.False(t, HasConflict(tableID, "14:30", 120, []*Reservation{blocking}))
	})
}
