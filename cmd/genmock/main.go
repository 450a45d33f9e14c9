// Command genmock regenerates the NWS-shaped fixtures under data/mock that
// the pipeline tests replay. Everything derives from a fixed base date and
// fixed tables, so reruns are byte-identical. It classifies the generated
// data with the actual domain package and prints the summary record a run
// over these fixtures must produce, for updating test assertions.
//
// Usage:
//
//	go run ./cmd/genmock -out data/mock
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/rcolinpr/arecibo-weather-monitor/internal/domain"
)

// baseDate is the frozen fixture morning, a Monday. Fixture file names
// carry its YYMMDD stamp.
var baseDate = time.Date(2025, time.August, 25, 6, 0, 0, 0, domain.AST)

const forecastURL = "https://api.weather.gov/gridpoints/SJU/35,84/forecast"

// alertSpecs drives the alerts fixture: two flood alerts (worst Severe),
// three marine, one neither. Expiration offsets count from the base morning.
var alertSpecs = []struct {
	event    string
	severity domain.Severity
	area     string
	expires  time.Duration
}{
	{"Flash Flood Warning", domain.SeveritySevere, "Arecibo, PR; Utuado, PR; Hatillo, PR", 10 * time.Hour},
	{"Flood Watch", domain.SeverityModerate, "Northwest Puerto Rico; Central Interior", 24 * time.Hour},
	{"Small Craft Advisory", domain.SeverityModerate, "Coastal waters of northern Puerto Rico out 10 NM", 36 * time.Hour},
	{"High Surf Advisory", domain.SeverityMinor, "North Coast Beaches of Puerto Rico", 14 * time.Hour},
	{"Rip Current Statement", domain.SeverityModerate, "Playas del norte de Puerto Rico", 26 * time.Hour},
	{"Heat Advisory", domain.SeverityMinor, "Interior and Urban Puerto Rico", 13 * time.Hour},
}

// daySpecs drives seven day/night forecast pairs. The nil Saturday
// probability exercises the "--" no-data marker in the forecast table.
var daySpecs = []struct {
	dayTemp    int
	nightTemp  int
	dayProb    *int
	nightProb  *int
	dayShort   string
	nightShort string
}{
	{88, 76, ip(85), ip(60), "Showers And Thunderstorms", "Chance Showers"},
	{87, 75, ip(70), ip(50), "Chance Showers", "Mostly Cloudy"},
	{86, 74, ip(55), ip(40), "Chance Thunderstorms", "Partly Cloudy"},
	{85, 73, ip(40), ip(30), "Partly Cloudy", "Mostly Clear"},
	{84, 72, ip(30), ip(20), "Mostly Sunny", "Mostly Clear"},
	{83, 71, nil, nil, "Sunny", "Clear"},
	{82, 70, ip(20), ip(10), "Mostly Cloudy", "Partly Cloudy"},
}

func ip(v int) *int {
	return &v
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "data/mock", "output directory for the NWS fixtures")
	flag.Parse()

	stamp := baseDate.Format("060102")
	alerts := alertsFixture()
	points := pointsFixture()
	forecast := forecastFixture()

	files := []struct {
		name string
		doc  any
	}{
		{fmt.Sprintf("nws_alerts_%s.json", stamp), alerts},
		{fmt.Sprintf("nws_points_%s.json", stamp), points},
		{fmt.Sprintf("nws_forecast_%s.json", stamp), forecast},
	}
	for _, f := range files {
		path := filepath.Join(*out, f.name)
		if err := writeJSON(path, f.doc); err != nil {
			return fmt.Errorf("writing %s: %w", f.name, err)
		}
		log.Printf("wrote fixture: %s", path)
	}

	printExpectations(alerts, forecast)
	return nil
}

// NWS wire shapes, write side. The adapter owns the read side.

type alertsDoc struct {
	Features []alertFeature `json:"features"`
}

type alertFeature struct {
	Properties alertProperties `json:"properties"`
}

type alertProperties struct {
	Event    string `json:"event"`
	Severity string `json:"severity"`
	AreaDesc string `json:"areaDesc"`
	Expires  string `json:"expires"`
}

type pointsDoc struct {
	Properties pointsProperties `json:"properties"`
}

type pointsProperties struct {
	GridID   string `json:"gridId"`
	GridX    int    `json:"gridX"`
	GridY    int    `json:"gridY"`
	Forecast string `json:"forecast"`
}

type forecastDoc struct {
	Properties forecastProperties `json:"properties"`
}

type forecastProperties struct {
	Periods []periodDoc `json:"periods"`
}

type periodDoc struct {
	Name                       string `json:"name"`
	IsDaytime                  bool   `json:"isDaytime"`
	StartTime                  string `json:"startTime"`
	Temperature                int    `json:"temperature"`
	TemperatureUnit            string `json:"temperatureUnit"`
	ProbabilityOfPrecipitation pop    `json:"probabilityOfPrecipitation"`
	ShortForecast              string `json:"shortForecast"`
	DetailedForecast           string `json:"detailedForecast"`
}

type pop struct {
	Value *int `json:"value"`
}

func alertsFixture() alertsDoc {
	doc := alertsDoc{Features: make([]alertFeature, 0, len(alertSpecs))}
	for _, a := range alertSpecs {
		doc.Features = append(doc.Features, alertFeature{Properties: alertProperties{
			Event:    a.event,
			Severity: string(a.severity),
			AreaDesc: a.area,
			Expires:  baseDate.Add(a.expires).Format("2006-01-02T15:04:05-07:00"),
		}})
	}
	return doc
}

func pointsFixture() pointsDoc {
	return pointsDoc{Properties: pointsProperties{
		GridID:   "SJU",
		GridX:    35,
		GridY:    84,
		Forecast: forecastURL,
	}}
}

func forecastFixture() forecastDoc {
	doc := forecastDoc{Properties: forecastProperties{Periods: make([]periodDoc, 0, 2*len(daySpecs))}}
	for i, d := range daySpecs {
		date := baseDate.AddDate(0, 0, i)
		dayName, nightName := date.Weekday().String(), date.Weekday().String()+" Night"
		if i == 0 {
			dayName, nightName = "Today", "Tonight"
		}

		doc.Properties.Periods = append(doc.Properties.Periods,
			periodDoc{
				Name:                       dayName,
				IsDaytime:                  true,
				StartTime:                  date.Format("2006-01-02") + "T06:00:00-04:00",
				Temperature:                d.dayTemp,
				TemperatureUnit:            "F",
				ProbabilityOfPrecipitation: pop{Value: d.dayProb},
				ShortForecast:              d.dayShort,
				DetailedForecast:           detail(d.dayShort, "High near", d.dayTemp, d.dayProb),
			},
			periodDoc{
				Name:                       nightName,
				IsDaytime:                  false,
				StartTime:                  date.Format("2006-01-02") + "T18:00:00-04:00",
				Temperature:                d.nightTemp,
				TemperatureUnit:            "F",
				ProbabilityOfPrecipitation: pop{Value: d.nightProb},
				ShortForecast:              d.nightShort,
				DetailedForecast:           detail(d.nightShort, "Low around", d.nightTemp, d.nightProb),
			},
		)
	}
	return doc
}

func detail(short, lead string, temp int, prob *int) string {
	if prob == nil {
		return fmt.Sprintf("%s. %s %d.", short, lead, temp)
	}
	return fmt.Sprintf("%s. %s %d. Chance of precipitation is %d%%.", short, lead, temp, *prob)
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

// printExpectations runs the fixtures through the actual classifier under a
// frozen clock and prints the summary record the pipeline tests assert.
func printExpectations(alerts alertsDoc, forecast forecastDoc) {
	domain.SetClock(clockwork.NewFakeClockAt(baseDate.UTC()))
	defer domain.SetClock(nil)

	domainAlerts := make([]domain.Alert, 0, len(alerts.Features))
	for _, f := range alerts.Features {
		domainAlerts = append(domainAlerts, domain.Alert{
			Event:    f.Properties.Event,
			Severity: domain.Severity(f.Properties.Severity),
			Area:     f.Properties.AreaDesc,
			Expires:  f.Properties.Expires,
		})
	}
	periods := make([]domain.ForecastPeriod, 0, len(forecast.Properties.Periods))
	for _, p := range forecast.Properties.Periods {
		temp := p.Temperature
		periods = append(periods, domain.ForecastPeriod{
			Name:             p.Name,
			IsDaytime:        p.IsDaytime,
			StartTime:        p.StartTime,
			Temperature:      &temp,
			TemperatureUnit:  p.TemperatureUnit,
			PrecipProb:       p.ProbabilityOfPrecipitation.Value,
			ShortForecast:    p.ShortForecast,
			DetailedForecast: p.DetailedForecast,
		})
	}

	summary := domain.Classify(domainAlerts, periods)
	rec := domain.NewReportRecord(domain.NowAST(), len(domainAlerts), summary)
	recJSON, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("\n=== Expected classification for test assertions ===")
	fmt.Printf("Alerts: total=%d flood=%d marine=%d\n",
		len(domainAlerts), len(summary.FloodAlerts), len(summary.MarineAlerts))
	fmt.Printf("Flood risk: %s\n", summary.FloodRisk)
	fmt.Printf("Rain today: %s (%s)\n", domain.RainDisplay(summary.RainPct), summary.Rain)
	fmt.Printf("Expected summary record:\n%s\n", recJSON)
}
