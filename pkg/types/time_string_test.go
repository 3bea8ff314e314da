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

	// Незаполненные нулями значения отклоняются: лексикографические
	// сравнения требуют ровно пяти символов
	for _, bad := range []string{"", "9:30", "9:3", "09:30 ", "25:00", "09:60", "0930", "morning"} {
		_, err := NewTimeStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input=%q", bad)
	}
}

func TestMinutesRejectsUnpadded(t *testing.T) {
	_, err := TimeString("9:30").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestMinutes(t *testing.T) {
	ts := TimeString("10:45")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 645, minutes)
}

func TestAddMinutes(t *testing.T) {
	ts := TimeString("09:00")

	next, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), next)

	// Переход через полночь не поддерживается
	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestComparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore(TimeString("17:00")))
	assert.False(t, TimeString("17:00").IsBefore(TimeString("09:00")))
	assert.True(t, TimeString("17:00").IsAfter(TimeString("09:00")))
	assert.False(t, TimeString("09:00").IsBefore(TimeString("09:00")))
}

func TestAt(t *testing.T) {
	day := time.Date(2025, 11, 3, 18, 45, 12, 0, time.UTC)

	at, err := TimeString("09:30").At(day)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 11, 3, 9, 30, 0, 0, time.UTC), at)
}
