package schedule

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"17:45", 1065, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"9:00", 0, true},
		{"09:5", 0, true},
		{"0900", 0, true},
		{"", 0, true},
		{"ab:cd", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseGridTime(t *testing.T) {
	got, err := ParseGridTime("10:15")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay(615), got)

	_, err = ParseGridTime("10:10")
	assert.ErrorIs(t, err, ErrOffGrid)

	_, err = ParseGridTime("10:70")
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestTimeOfDayString(t *testing.T) {
	assert.Equal(t, "09:00", TimeOfDay(540).String())
	assert.Equal(t, "17:30", TimeOfDay(1050).String())
	assert.Equal(t, "00:00", TimeOfDay(0).String())
}

func TestTimeOfDayJSON(t *testing.T) {
	data, err := json.Marshal(TimeOfDay(615))
	require.NoError(t, err)
	assert.Equal(t, `"10:15"`, string(data))

	var parsed TimeOfDay
	require.NoError(t, json.Unmarshal([]byte(`"14:30"`), &parsed))
	assert.Equal(t, TimeOfDay(870), parsed)

	assert.Error(t, json.Unmarshal([]byte(`"25:00"`), &parsed))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, "2026-03-10", d.Format(DateLayout))

	_, err = ParseDate("10-03-2026")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseDate("2026-13-40")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestWeekHoursValidate(t *testing.T) {
	week := testWeek("09:00", "18:00")
	assert.NoError(t, week.Validate())

	bad := testWeek("18:00", "09:00")
	assert.ErrorIs(t, bad.Validate(), ErrInvalidHours)

	offGrid := WeekHours{}
	offGrid[0] = DayHours{Open: TimeOfDay(541), Close: TimeOfDay(1080)}
	assert.ErrorIs(t, offGrid.Validate(), ErrOffGrid)

	// Closed days skip window validation entirely.
	closed := WeekHours{}
	closed[0] = DayHours{Closed: true}
	assert.NoError(t, closed.Validate())
}
