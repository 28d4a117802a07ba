package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservation_Predicates(t *testing.T) {
	tests := []struct {
		status      ReservationStatus
		terminal    bool
		blocks      bool
		cancellable bool
	}{
		{StatusPending, false, true, true},
		{StatusConfirmed, false, true, true},
		{StatusCancelled, true, false, false},
		{StatusCompleted, true, true, false},
		{StatusNoShow, true, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			r := &Reservation{Status: tt.status}
			assert.Equal(t, tt.terminal, r.IsTerminal())
			assert.Equal(t, tt.blocks, r.BlocksTable())
			assert.Equal(t, tt.cancellable, r.CanBeCancelled())
			assert.Equal(t, tt.cancellable, r.CanBeUpdated())
		})
	}
}

func TestValidReservationStatus(t *testing.T) {
	assert.True(t, ValidReservationStatus(StatusPending))
	assert.True(t, ValidReservationStatus(StatusNoShow))
	assert.False(t, ValidReservationStatus("approved"))
	assert.False(t, ValidReservationStatus(""))
}

func TestTable_CanSeat(t *testing.T) {
	table := &Table{Capacity: 4}
	assert.True(t, table.CanSeat(4))
	assert.True(t, table.CanSeat(2))
	assert.False(t, table.CanSeat(5))
}

func TestValidTableStatus(t *testing.T) {
	assert.True(t, ValidTableStatus(TableAvailable))
	assert.True(t, ValidTableStatus(TableMaintenance))
	assert.False(t, ValidTableStatus("broken"))
}
