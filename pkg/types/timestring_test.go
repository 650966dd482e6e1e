package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	_, err = NewTimeStringFromString("9:30")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("")
	assert.Error(t, err)
}

func TestTimeString_Minutes(t *testing.T) {
	ts := TimeString("10:45")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 645, minutes)

	_, err = TimeString("bad").Minutes()
	assert.Error(t, err)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("09:00")

	result, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), result)

	// End of day is a valid interval boundary
	result, err = TimeString("22:30").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), result)

	// Past end of day
	_, err = TimeString("23:00").AddMinutes(90)
	assert.Error(t, err)
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore(TimeString("10:30")))
	assert.False(t, TimeString("10:30").IsBefore(TimeString("09:00")))
	assert.False(t, TimeString("09:00").IsBefore(TimeString("09:00")))

	assert.True(t, TimeString("10:30").IsAfter(TimeString("09:00")))
	assert.False(t, TimeString("09:00").IsAfter(TimeString("09:00")))

	// Lexicographic comparison is correct for zero-padded HH:MM
	assert.True(t, TimeString("09:59").IsBefore(TimeString("10:00")))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// Postgres TIME column arrives as time.Time
	require.NoError(t, ts.Scan(time.Date(2026, 9, 15, 14, 30, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("14:30"), ts)

	// Text column with seconds gets truncated
	require.NoError(t, ts.Scan("09:00:00"))
	assert.Equal(t, TimeString("09:00"), ts)

	require.NoError(t, ts.Scan([]byte("10:30")))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("09:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "09:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
