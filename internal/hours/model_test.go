package hours

import (
	"testing"
	"time"

	"barbershop/internal/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullWeek() []DayEntry {
	days := make([]DayEntry, 7)
	for i := range days {
		days[i] = DayEntry{Weekday: i, Open: "09:00", Close: "18:00"}
	}
	days[0] = DayEntry{Weekday: 0, Closed: true} // Sunday
	return days
}

func TestToWeekHours(t *testing.T) {
	week, err := ToWeekHours(fullWeek())
	require.NoError(t, err)
	require.Len(t, week, 7)

	assert.True(t, week[time.Sunday].Closed)

	monday := week[time.Monday]
	assert.False(t, monday.Closed)
	assert.Equal(t, "09:00", monday.Open.String())
	assert.Equal(t, "18:00", monday.Close.String())
}

func TestToWeekHours_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]DayEntry)
		want   error
	}{
		{
			name:   "malformed open time",
			mutate: func(d []DayEntry) { d[1].Open = "9am" },
			want:   schedule.ErrInvalidTime,
		},
		{
			name:   "off-grid close time",
			mutate: func(d []DayEntry) { d[2].Close = "18:10" },
			want:   schedule.ErrOffGrid,
		},
		{
			name:   "open after close",
			mutate: func(d []DayEntry) { d[3].Open = "19:00" },
			want:   schedule.ErrInvalidHours,
		},
		{
			name:   "weekday out of range",
			mutate: func(d []DayEntry) { d[4].Weekday = 7 },
			want:   schedule.ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := fullWeek()
			tt.mutate(days)

			_, err := ToWeekHours(days)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestToWeekHours_ClosedDayIgnoresTimes(t *testing.T) {
	days := fullWeek()
	days[0].Open = "garbage"

	week, err := ToWeekHours(days)
	require.NoError(t, err)
	assert.True(t, week[time.Sunday].Closed)
}
