package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59"}
	for _, s := range valid {
		assert.NoError(t, TimeString(s).Validate(), s)
	}

	invalid := []string{"", "24:00", "09:60", "0930", "morning"}
	for _, s := range invalid {
		assert.ErrorIs(t, TimeString(s).Validate(), ErrInvalidTimeString, s)
	}
}

func TestTimeString_IsBefore(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.False(t, TimeString("11:00").IsBefore("10:00"))

	// некорректное время всегда возвращает false
	assert.False(t, TimeString("bad").IsBefore("10:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	shifted, err := TimeString("10:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), shifted)

	// переход через полночь запрещен
	_, err = TimeString("23:50").AddMinutes(20)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("01:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 90, m)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// PostgreSQL отдает TIME с секундами
	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, TimeString("10:00"), ts)

	require.NoError(t, ts.Scan([]byte("23:59:59")))
	assert.Equal(t, TimeString("23:59"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 9, 7, 14, 30, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(12345))
	assert.Error(t, ts.Scan("garbage"))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("bad").Value()
	assert.Error(t, err)
}
