package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalString(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"3s"`), &d))
	assert.Equal(t, 3*time.Second, d.Duration)
}

func TestDuration_UnmarshalNanoseconds(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`1500000000`), &d))
	assert.Equal(t, 1500*time.Millisecond, d.Duration)
}

func TestDuration_UnmarshalInvalid(t *testing.T) {
	var d Duration
	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
	assert.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
}

func TestDaysBetween(t *testing.T) {
	loc := time.UTC
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"same day", time.Date(2025, 3, 10, 1, 0, 0, 0, loc), time.Date(2025, 3, 10, 23, 59, 0, 0, loc), 0},
		{"next day late vs early", time.Date(2025, 3, 10, 23, 0, 0, 0, loc), time.Date(2025, 3, 11, 0, 5, 0, 0, loc), 1},
		{"three days", time.Date(2025, 3, 10, 12, 0, 0, 0, loc), time.Date(2025, 3, 13, 12, 0, 0, 0, loc), 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DaysBetween(tc.a, tc.b))
		})
	}
}
