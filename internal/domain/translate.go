package domain

import "strings"

// translations is the ordered English-to-Spanish phrase table for forecast
// text. Order is load-bearing: compound phrases must be replaced before the
// bare words they contain ("Chance Rain" before "Rain", "Mostly Cloudy"
// before "Cloudy"), so this stays a slice, never a map.
var translations = []struct{ en, es string }{
	{"Mostly Sunny", "Mayormente Soleado"},
	{"Partly Sunny", "Parcialmente Soleado"},
	{"Mostly Clear", "Mayormente Despejado"},
	{"Partly Cloudy", "Parcialmente Nublado"},
	{"Mostly Cloudy", "Mayormente Nublado"},
	{"Chance Showers", "Posibilidad de Aguaceros"},
	{"Chance Rain", "Posibilidad de Lluvia"},
	{"Chance Thunderstorms", "Posibilidad de Tormentas"},
	{"Showers", "Aguaceros"},
	{"Thunderstorms", "Tormentas Electricas"},
	{"Light Rain", "Lluvia Ligera"},
	{"Heavy Rain", "Lluvia Intensa"},
	{"Rain", "Lluvia"},
	{"Sunny", "Soleado"},
	{"Clear", "Despejado"},
	{"Cloudy", "Nublado"},
	{"Overcast", "Cubierto"},
	{"Fog", "Neblina"},
	{"Haze", "Bruma"},
	{"Windy", "Vientos Fuertes"},
	{"Breezy", "Ventoso"},
	{"Tropical Storm", "Tormenta Tropical"},
	{"Hurricane", "Huracan"},
	{"Likely", "Probable"},
}

// Translate rewrites provider forecast text into report Spanish by ordered
// case-sensitive substitution. No Spanish output contains an English
// pattern, so the function is idempotent; text it does not recognize passes
// through unchanged.
func Translate(text string) string {
	if text == "" {
		return ""
	}
	for _, t := range translations {
		text = strings.ReplaceAll(text, t.en, t.es)
	}
	return text
}
