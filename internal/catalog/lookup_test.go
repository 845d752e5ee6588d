package catalog

import (
	"testing"

	"barbershop/internal/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testServices = []Service{
	{ID: 1, Name: "Classic Cut", DurationMinutes: 30, Active: true},
	{ID: 2, Name: "Cut & Beard", DurationMinutes: 45, Active: true},
	{ID: 3, Name: "Full Color", DurationMinutes: 90, Active: true},
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		id      int
		svcName string
		wantID  int
		wantOK  bool
	}{
		{"by id", 2, "", 2, true},
		{"by exact name", 0, "Full Color", 3, true},
		{"by name case-insensitive", 0, "classic cut", 1, true},
		{"id takes precedence over name", 1, "Full Color", 1, true},
		{"unknown id falls through to name", 99, "Cut & Beard", 2, true},
		{"unknown both", 99, "Perm", 0, false},
		{"empty inputs", 0, "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, ok := Lookup(testServices, tt.id, tt.svcName)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				require.NotNil(t, svc)
				assert.Equal(t, tt.wantID, svc.ID)
			}
		})
	}
}

func TestResolver(t *testing.T) {
	resolve := Resolver(testServices)

	minutes, defaulted := resolve(2, "")
	assert.False(t, defaulted)
	assert.Equal(t, 45, minutes)

	minutes, defaulted = resolve(0, "Full Color")
	assert.False(t, defaulted)
	assert.Equal(t, 90, minutes)

	minutes, defaulted = resolve(99, "Perm")
	assert.True(t, defaulted)
	assert.Equal(t, schedule.DefaultDurationMinutes, minutes)
}
