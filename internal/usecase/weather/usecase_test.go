package weather

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/agrisense/farm-backend/internal/entity"
	pkghttp "github.com/agrisense/farm-backend/pkg/http"
	"go.uber.org/zap"
)

type fakeConnector struct {
	calls     []string
	responses map[string]*entity.WeatherAPIResponse
	errs      map[string]error
}

func (f *fakeConnector) FetchDay(_ context.Context, location, date string) (*entity.WeatherAPIResponse, error) {
	f.calls = append(f.calls, date)
	if err, ok := f.errs[date]; ok {
		return nil, err
	}
	if resp, ok := f.responses[date]; ok {
		return resp, nil
	}
	return sampleResponse("Sunny", 35.0), nil
}

func sampleResponse(condition string, maxTemp float64) *entity.WeatherAPIResponse {
	return &entity.WeatherAPIResponse{
		Forecast: &entity.WeatherAPIForecast{
			ForecastDays: []entity.WeatherAPIForecastDay{{
				Day: entity.WeatherAPIDay{
					MaxTempC:      maxTemp,
					MinTempC:      20.6,
					AvgTempC:      27.8,
					AvgHumidity:   14,
					TotalPrecipMM: 0.0,
					MaxWindKPH:    18.7,
					Condition:     entity.WeatherAPICondition{Text: condition},
				},
			}},
		},
	}
}

func newTestUsecase(conn ForecastConnector) *Usecase {
	u := NewUsecase(conn, 30*time.Minute, zap.NewNop())
	u.now = func() time.Time {
		return time.Date(2026, 4, 20, 12, 0, 0, 0, time.UTC)
	}
	return u
}

func TestFetchChronologicalDays(t *testing.T) {
	conn := &fakeConnector{}
	u := newTestUsecase(conn)

	forecast, err := u.Fetch(context.Background(), "Punjab", 3)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	wantDates := []string{"2026-04-20", "2026-04-21", "2026-04-22"}
	if len(conn.calls) != len(wantDates) {
		t.Fatalf("made %d upstream calls, want %d", len(conn.calls), len(wantDates))
	}
	for i, date := range wantDates {
		if conn.calls[i] != date {
			t.Errorf("call %d requested %s, want %s", i, conn.calls[i], date)
		}
	}

	i := 0
	for pair := forecast.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key != wantDates[i] {
			t.Errorf("entry %d key = %s, want %s", i, pair.Key, wantDates[i])
		}
		i++
	}
}

func TestFetchFormatsDisplayStrings(t *testing.T) {
	u := newTestUsecase(&fakeConnector{})

	forecast, err := u.Fetch(context.Background(), "Punjab", 1)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	_, day, ok := forecast.First()
	if !ok {
		t.Fatal("empty forecast")
	}
	if day.Condition != "Sunny" {
		t.Errorf("Condition = %q", day.Condition)
	}
	if day.MaxTemp != "35.0°C" {
		t.Errorf("MaxTemp = %q", day.MaxTemp)
	}
	if day.Humidity != "14%" {
		t.Errorf("Humidity = %q", day.Humidity)
	}
	if day.Precipitation != "0.0 mm" {
		t.Errorf("Precipitation = %q", day.Precipitation)
	}
	if day.Wind != "18.7 kph" {
		t.Errorf("Wind = %q", day.Wind)
	}
}

func TestFetchInvalidDays(t *testing.T) {
	conn := &fakeConnector{}
	u := newTestUsecase(conn)

	for _, days := range []int{0, -1} {
		if _, err := u.Fetch(context.Background(), "Punjab", days); !errors.Is(err, entity.ErrInvalidDays) {
			t.Errorf("Fetch(days=%d) err = %v, want ErrInvalidDays", days, err)
		}
	}
	if len(conn.calls) != 0 {
		t.Errorf("made %d upstream calls before validation", len(conn.calls))
	}
}

func TestFetchIsolatesFailedDay(t *testing.T) {
	conn := &fakeConnector{
		errs: map[string]error{
			"2026-04-21": &pkghttp.HTTPError{StatusCode: 403, Message: "forbidden"},
		},
	}
	u := newTestUsecase(conn)

	forecast, err := u.Fetch(context.Background(), "Punjab", 3)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if forecast.Len() != 3 {
		t.Fatalf("forecast has %d entries, want 3", forecast.Len())
	}

	day, ok := forecast.Get("2026-04-21")
	if !ok {
		t.Fatal("failed date missing from forecast")
	}
	if day.Error != "API request failed with status code 403" {
		t.Errorf("error message = %q", day.Error)
	}

	next, _ := forecast.Get("2026-04-22")
	if next.Errored() {
		t.Error("day after the failure also errored")
	}
}

func TestFetchNoDataForDate(t *testing.T) {
	conn := &fakeConnector{
		responses: map[string]*entity.WeatherAPIResponse{
			"2026-04-20": {Forecast: &entity.WeatherAPIForecast{}},
		},
	}
	u := newTestUsecase(conn)

	forecast, err := u.Fetch(context.Background(), "Punjab", 1)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	_, day, _ := forecast.First()
	if day.Error != "No forecast data available for this date" {
		t.Errorf("error message = %q", day.Error)
	}
}

func TestFetchMissingCredential(t *testing.T) {
	conn := &fakeConnector{
		errs: map[string]error{
			"2026-04-20": entity.ErrMissingCredential,
		},
	}
	u := newTestUsecase(conn)

	if _, err := u.Fetch(context.Background(), "Punjab", 2); !errors.Is(err, entity.ErrMissingCredential) {
		t.Errorf("Fetch err = %v, want ErrMissingCredential", err)
	}
}

func TestFetchCachesSuccessfulDays(t *testing.T) {
	conn := &fakeConnector{}
	u := newTestUsecase(conn)

	if _, err := u.Fetch(context.Background(), "Punjab", 2); err != nil {
		t.Fatalf("first Fetch: %v", err)
	}
	if _, err := u.Fetch(context.Background(), "Punjab", 2); err != nil {
		t.Fatalf("second Fetch: %v", err)
	}

	if len(conn.calls) != 2 {
		t.Errorf("made %d upstream calls, want 2 (second fetch served from cache)", len(conn.calls))
	}
}

func TestFetchDoesNotCacheFailedDays(t *testing.T) {
	conn := &fakeConnector{
		errs: map[string]error{
			"2026-04-20": &pkghttp.HTTPError{StatusCode: 500, Message: "upstream down"},
		},
	}
	u := newTestUsecase(conn)

	u.Fetch(context.Background(), "Punjab", 1)
	u.Fetch(context.Background(), "Punjab", 1)

	if len(conn.calls) != 2 {
		t.Errorf("made %d upstream calls, want 2 (failures must not be cached)", len(conn.calls))
	}
}

func TestCurrentSummary(t *testing.T) {
	u := newTestUsecase(&fakeConnector{})

	got := u.CurrentSummary(context.Background(), "Punjab")
	want := "Sunny, 27.8°C, 14% humidity"
	if got != want {
		t.Errorf("CurrentSummary = %q, want %q", got, want)
	}
}

func TestCurrentSummaryUnavailable(t *testing.T) {
	tests := []struct {
		name string
		conn *fakeConnector
	}{
		{"upstream failure", &fakeConnector{errs: map[string]error{
			"2026-04-20": &pkghttp.HTTPError{StatusCode: 503, Message: "unavailable"},
		}}},
		{"missing credential", &fakeConnector{errs: map[string]error{
			"2026-04-20": entity.ErrMissingCredential,
		}}},
		{"no data", &fakeConnector{responses: map[string]*entity.WeatherAPIResponse{
			"2026-04-20": {},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := newTestUsecase(tt.conn)
			if got := u.CurrentSummary(context.Background(), "Punjab"); got != SummaryUnavailable {
				t.Errorf("CurrentSummary = %q, want %q", got, SummaryUnavailable)
			}
		})
	}
}
