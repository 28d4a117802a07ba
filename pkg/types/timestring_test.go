package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("12:30")
	require.NoError(t, err)
	assert.Equal(t, "12:30", ts.String())

	// секунды отбрасываются (формат TIME из PostgreSQL)
	ts, err = NewTimeStringFromString("19:00:00")
	require.NoError(t, err)
	assert.Equal(t, "19:00", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("noon")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Minutes(t *testing.T) {
	assert.Equal(t, 0, TimeString("00:00").Minutes())
	assert.Equal(t, 750, TimeString("12:30").Minutes())
	assert.Equal(t, 1439, TimeString("23:59").Minutes())
	assert.Equal(t, -1, TimeString("garbage").Minutes())
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("12:00").IsBefore("12:30"))
	assert.False(t, TimeString("12:30").IsBefore("12:30"))
	assert.True(t, TimeString("20:00").IsAfter("19:30"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("12:30").AddMinutes(120)
	require.NoError(t, err)
	assert.Equal(t, TimeString("14:30"), ts)

	_, err = TimeString("23:00").AddMinutes(120)
	assert.Error(t, err)
}

func TestTimeString_At(t *testing.T) {
	date := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
	at := TimeString("19:30").At(date)
	assert.Equal(t, time.Date(2026, 8, 27, 19, 30, 0, 0, time.UTC), at)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("12:30:00"))
	assert.Equal(t, TimeString("12:30"), ts)

	require.NoError(t, ts.Scan([]byte("19:00:00")))
	assert.Equal(t, TimeString("19:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 1, 1, 20, 30, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("20:30"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("12:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "12:30:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("bad").Value()
	assert.Error(t, err)
}
