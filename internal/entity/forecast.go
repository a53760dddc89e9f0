package entity

import (
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ForecastDay is one calendar date's weather summary, the atomic unit the
// aggregator fetches. All measurements are pre-formatted display strings with
// unit suffixes; the wire keys mirror what downstream consumers expect.
// A failed day carries only Error.
type ForecastDay struct {
	Condition     string `json:"Condition,omitempty"`
	MaxTemp       string `json:"Max Temp,omitempty"`
	MinTemp       string `json:"Min Temp,omitempty"`
	AvgTemp       string `json:"Avg Temp,omitempty"`
	Humidity      string `json:"Humidity,omitempty"`
	Precipitation string `json:"Precipitation,omitempty"`
	Wind          string `json:"Wind,omitempty"`
	Error         string `json:"error,omitempty"`
}

// Errored reports whether this entry is an error record instead of a forecast.
func (d ForecastDay) Errored() bool {
	return d.Error != ""
}

// Forecast maps ISO dates (YYYY-MM-DD) to per-day entries. Insertion order is
// preserved, so a forecast built day by day marshals chronologically.
type Forecast struct {
	*orderedmap.OrderedMap[string, ForecastDay]
}

func NewForecast() *Forecast {
	return &Forecast{orderedmap.New[string, ForecastDay]()}
}

// First returns the earliest entry.
func (f *Forecast) First() (string, ForecastDay, bool) {
	pair := f.Oldest()
	if pair == nil {
		return "", ForecastDay{}, false
	}
	return pair.Key, pair.Value, true
}

// AllErrored reports whether every day in the forecast is an error record.
// An empty forecast is not considered errored.
func (f *Forecast) AllErrored() bool {
	if f.Len() == 0 {
		return false
	}
	for pair := f.Oldest(); pair != nil; pair = pair.Next() {
		if !pair.Value.Errored() {
			return false
		}
	}
	return true
}

// DisplayBlock renders the forecast as the indented multi-day text block that
// prompt builders embed verbatim.
func (f *Forecast) DisplayBlock() string {
	var sb strings.Builder
	for pair := f.Oldest(); pair != nil; pair = pair.Next() {
		fmt.Fprintf(&sb, "\n  %s\n", pair.Key)
		day := pair.Value
		if day.Errored() {
			fmt.Fprintf(&sb, "  error: %s\n", day.Error)
			continue
		}
		fmt.Fprintf(&sb, "  Condition: %s\n", day.Condition)
		fmt.Fprintf(&sb, "  Max Temp: %s\n", day.MaxTemp)
		fmt.Fprintf(&sb, "  Min Temp: %s\n", day.MinTemp)
		fmt.Fprintf(&sb, "  Avg Temp: %s\n", day.AvgTemp)
		fmt.Fprintf(&sb, "  Humidity: %s\n", day.Humidity)
		fmt.Fprintf(&sb, "  Precipitation: %s\n", day.Precipitation)
		fmt.Fprintf(&sb, "  Wind: %s\n", day.Wind)
	}
	return sb.String()
}
