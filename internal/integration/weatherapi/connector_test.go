package weatherapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/agrisense/farm-backend/internal/config"
	"github.com/agrisense/farm-backend/internal/entity"
	pkgretry "github.com/agrisense/farm-backend/internal/pkg/retry"
	pkghttp "github.com/agrisense/farm-backend/pkg/http"
	"go.uber.org/zap"
)

func testConfig(serviceURL string) config.WeatherConnectorConfig {
	return config.WeatherConnectorConfig{
		HTTPClientConfig: config.HTTPClientConfig{
			Url:   serviceURL,
			Token: "weather-key",
		},
		ForecastEndpoint: "/v1/forecast.json",
		Retry: pkgretry.RetryConfig{
			Attempts: 3,
			Delay:    time.Millisecond,
			MaxDelay: 5 * time.Millisecond,
		},
	}
}

const forecastBody = `{
	"forecast": {
		"forecastday": [{
			"date": "2026-04-20",
			"day": {
				"maxtemp_c": 35.0,
				"mintemp_c": 20.6,
				"avgtemp_c": 27.8,
				"avghumidity": 14,
				"totalprecip_mm": 0.0,
				"maxwind_kph": 18.7,
				"condition": {"text": "Sunny"}
			}
		}]
	}
}`

func TestFetchDayQueryParameters(t *testing.T) {
	var query url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		if r.URL.Path != "/v1/forecast.json" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(forecastBody))
	}))
	defer srv.Close()

	c := NewConnector(testConfig(srv.URL), zap.NewNop())

	resp, err := c.FetchDay(context.Background(), "Ludhiana, Punjab", "2026-04-20")
	if err != nil {
		t.Fatalf("FetchDay: %v", err)
	}

	if query.Get("q") != "Ludhiana, Punjab" {
		t.Errorf("q = %q", query.Get("q"))
	}
	if query.Get("days") != "1" {
		t.Errorf("days = %q", query.Get("days"))
	}
	if query.Get("dt") != "2026-04-20" {
		t.Errorf("dt = %q", query.Get("dt"))
	}
	if query.Get("key") != "weather-key" {
		t.Errorf("key = %q", query.Get("key"))
	}

	day := resp.Forecast.ForecastDays[0].Day
	if day.Condition.Text != "Sunny" || day.MaxTempC != 35.0 {
		t.Errorf("day = %+v", day)
	}
}

func TestFetchDayMissingCredential(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Token = ""
	c := NewConnector(cfg, zap.NewNop())

	if _, err := c.FetchDay(context.Background(), "Punjab", "2026-04-20"); !errors.Is(err, entity.ErrMissingCredential) {
		t.Errorf("err = %v, want ErrMissingCredential", err)
	}
	if calls != 0 {
		t.Errorf("made %d upstream calls without a credential", calls)
	}
}

func TestFetchDayStatusErrorNotRetried(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, `{"error":{"message":"Invalid API key"}}`, http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewConnector(testConfig(srv.URL), zap.NewNop())

	_, err := c.FetchDay(context.Background(), "Punjab", "2026-04-20")

	var httpErr *pkghttp.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("err = %v, want *HTTPError", err)
	}
	if httpErr.StatusCode != http.StatusForbidden {
		t.Errorf("status = %d", httpErr.StatusCode)
	}
	if calls != 1 {
		t.Errorf("made %d upstream calls, want 1 (status errors are not retried)", calls)
	}
}

func TestFetchDayRetriesNetworkErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connections now refused

	c := NewConnector(testConfig(srv.URL), zap.NewNop())

	_, err := c.FetchDay(context.Background(), "Punjab", "2026-04-20")

	var netErr *pkghttp.NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("err = %v, want *NetworkError after exhausted retries", err)
	}
}
