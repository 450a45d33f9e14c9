package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTempDisplay(t *testing.T) {
	tests := []struct {
		name     string
		period   ForecastPeriod
		expected string
	}{
		{"fahrenheit", ForecastPeriod{Temperature: intPtr(88), TemperatureUnit: "F"}, "88 F"},
		{"celsius passthrough", ForecastPeriod{Temperature: intPtr(31), TemperatureUnit: "C"}, "31 C"},
		{"missing unit defaults to F", ForecastPeriod{Temperature: intPtr(82)}, "82 F"},
		{"missing temperature", ForecastPeriod{TemperatureUnit: "F"}, "-- F"},
		{"missing everything", ForecastPeriod{}, "-- F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.period.TempDisplay())
		})
	}
}

func TestDaytime(t *testing.T) {
	periods := []ForecastPeriod{
		{Name: "Tonight", IsDaytime: false},
		{Name: "Monday", IsDaytime: true},
		{Name: "Monday Night", IsDaytime: false},
		{Name: "Tuesday", IsDaytime: true},
	}

	days := Daytime(periods)

	require.Len(t, days, 2)
	assert.Equal(t, "Monday", days[0].Name)
	assert.Equal(t, "Tuesday", days[1].Name)
	assert.Nil(t, Daytime(nil))
}

func TestFirstDaytime(t *testing.T) {
	t.Run("skips leading night period", func(t *testing.T) {
		periods := []ForecastPeriod{
			{Name: "Tonight", IsDaytime: false},
			{Name: "Monday", IsDaytime: true},
		}

		today := FirstDaytime(periods)

		require.NotNil(t, today)
		assert.Equal(t, "Monday", today.Name)
	})

	t.Run("nil when no daytime periods", func(t *testing.T) {
		periods := []ForecastPeriod{{Name: "Tonight", IsDaytime: false}}
		assert.Nil(t, FirstDaytime(periods))
	})

	t.Run("nil for empty feed", func(t *testing.T) {
		assert.Nil(t, FirstDaytime(nil))
	})
}

func TestPeriodDayLabel(t *testing.T) {
	p := ForecastPeriod{Name: "Today", StartTime: "2025-08-25T06:00:00-04:00"}
	assert.Equal(t, "Lun 25/08", p.DayLabel())

	noStart := ForecastPeriod{Name: "Today"}
	assert.Equal(t, "Today", noStart.DayLabel())
}
