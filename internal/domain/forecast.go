package domain

import "strconv"

// ForecastPeriod is one interval of the gridpoint forecast, roughly half a
// day. Temperature and PrecipProb stay pointers because the provider omits
// or nulls both; nil means "no estimate", which is not the same as zero.
type ForecastPeriod struct {
	Name             string
	IsDaytime        bool
	StartTime        string
	Temperature      *int
	TemperatureUnit  string
	PrecipProb       *int
	ShortForecast    string
	DetailedForecast string
}

// DayLabel returns the short weekday label for this period's table row.
func (p ForecastPeriod) DayLabel() string {
	return DayLabel(p.StartTime, p.Name)
}

// TempDisplay renders the temperature with its unit: "82 F". A missing
// value renders as "-- F"; a missing unit defaults to Fahrenheit.
func (p ForecastPeriod) TempDisplay() string {
	unit := p.TemperatureUnit
	if unit == "" {
		unit = "F"
	}
	if p.Temperature == nil {
		return "-- " + unit
	}
	return strconv.Itoa(*p.Temperature) + " " + unit
}

// Daytime filters periods to daylight intervals, preserving feed order.
func Daytime(periods []ForecastPeriod) []ForecastPeriod {
	var days []ForecastPeriod
	for _, p := range periods {
		if p.IsDaytime {
			days = append(days, p)
		}
	}
	return days
}

// FirstDaytime returns the earliest daytime period, or nil when the feed
// has none. The feed's first entry is tonight when the report runs after
// sunset, so position zero cannot be assumed.
func FirstDaytime(periods []ForecastPeriod) *ForecastPeriod {
	for i := range periods {
		if periods[i].IsDaytime {
			return &periods[i]
		}
	}
	return nil
}
