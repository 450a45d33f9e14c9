// Package domain models the Arecibo daily weather report: alert and
// forecast data read from the National Weather Service (NWS) public API,
// the risk classification derived from it, and the Spanish display
// conventions applied when rendering.
//
// # Data Source
//
// Alerts come from the active-alerts feed for Puerto Rico
// (https://api.weather.gov/alerts/active?area=PR) and the forecast from the
// point endpoint for Arecibo (18.4736N, 66.7220W), which resolves to the
// NWS San Juan (SJU) gridpoint forecast. Raw provider strings are kept as-is
// on the types here; truncation and translation happen at render time.
//
// # Flood Risk Ladder
//
// Overall flood risk is evaluated in strict priority order, first match wins:
//
//	EXTREMO   any flood-related alert with severity Extreme
//	ALTO      any flood-related alert with severity Severe
//	MODERADO  at least one flood-related alert of any severity
//	BAJO-MOD  any active alert at all
//	BAJO      no active alerts
//
// An alert is flood-related when its event name contains "flood", "flash",
// or "inunda" (case-insensitive); "inunda" catches Spanish-worded
// advisories. Marine alerts match "marine", "small craft", "surf", "beach",
// or "rip". One alert may belong to both sets.
//
// # Rain Buckets
//
// The first daytime forecast period supplies today's precipitation
// probability. Buckets are inclusive at their lower bound:
//
//	>= 80  ALTA
//	>= 60  MODERADA-ALTA
//	>= 40  MODERADA
//	else   BAJA
//
// The provider nulls the probability when it has no estimate. A missing
// value classifies as BAJA and displays as "--", which is distinct from a
// true zero ("0%").
//
// # Time and Locale
//
// Every displayed timestamp uses the fixed AST offset (UTC-4); Puerto Rico
// does not observe daylight saving. Calendar text is unaccented Spanish so
// the core PDF fonts cover it. Time reads go through an injectable
// clockwork clock so tests can freeze the run instant, see [SetClock].
package domain
