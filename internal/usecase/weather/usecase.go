// Package weather aggregates multi-day forecasts. The upstream API only
// serves one day per request, so a days-long forecast is assembled by issuing
// one call per calendar date and collecting the results under date keys.
package weather

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agrisense/farm-backend/internal/entity"
	pkghttp "github.com/agrisense/farm-backend/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// SummaryUnavailable is returned by CurrentSummary when no usable forecast
// exists for the location.
const SummaryUnavailable = "Weather data unavailable"

type Usecase struct {
	connector ForecastConnector
	cache     *gocache.Cache
	logger    *zap.Logger

	// now is swappable in tests
	now func() time.Time
}

func NewUsecase(connector ForecastConnector, cacheTTL time.Duration, logger *zap.Logger) *Usecase {
	return &Usecase{
		connector: connector,
		cache:     gocache.New(cacheTTL, 2*cacheTTL),
		logger:    logger,
		now:       time.Now,
	}
}

// Fetch assembles a forecast covering today through today+days-1, one
// upstream call per date, in chronological order. A failed day becomes an
// error record under its date key; the rest of the batch proceeds. Fetch only
// fails outright on the days precondition or a missing credential.
func (u *Usecase) Fetch(ctx context.Context, location string, days int) (*entity.Forecast, error) {
	if days < 1 {
		return nil, entity.ErrInvalidDays
	}

	today := u.now()
	forecast := entity.NewForecast()

	for i := 0; i < days; i++ {
		date := today.AddDate(0, 0, i).Format(dateLayout)

		entry, err := u.fetchDay(ctx, location, date)
		if err != nil {
			return nil, err
		}
		forecast.Set(date, entry)
	}

	return forecast, nil
}

func (u *Usecase) fetchDay(ctx context.Context, location, date string) (entity.ForecastDay, error) {
	cacheKey := location + "|" + date
	if cached, ok := u.cache.Get(cacheKey); ok {
		return cached.(entity.ForecastDay), nil
	}

	resp, err := u.connector.FetchDay(ctx, location, date)
	if err != nil {
		if errors.Is(err, entity.ErrMissingCredential) {
			return entity.ForecastDay{}, err
		}

		var httpErr *pkghttp.HTTPError
		if errors.As(err, &httpErr) {
			ctxzap.Warn(ctx, "upstream weather request failed",
				zap.String("date", date),
				zap.Int("status", httpErr.StatusCode),
			)
			return entity.ForecastDay{
				Error: fmt.Sprintf("API request failed with status code %d", httpErr.StatusCode),
			}, nil
		}

		ctxzap.Warn(ctx, "weather request failed", zap.String("date", date), zap.Error(err))
		return entity.ForecastDay{Error: err.Error()}, nil
	}

	if resp.Forecast == nil || len(resp.Forecast.ForecastDays) == 0 {
		return entity.ForecastDay{Error: "No forecast data available for this date"}, nil
	}

	day := resp.Forecast.ForecastDays[0].Day
	entry := entity.ForecastDay{
		Condition:     day.Condition.Text,
		MaxTemp:       fmt.Sprintf("%.1f°C", day.MaxTempC),
		MinTemp:       fmt.Sprintf("%.1f°C", day.MinTempC),
		AvgTemp:       fmt.Sprintf("%.1f°C", day.AvgTempC),
		Humidity:      fmt.Sprintf("%.0f%%", day.AvgHumidity),
		Precipitation: fmt.Sprintf("%.1f mm", day.TotalPrecipMM),
		Wind:          fmt.Sprintf("%.1f kph", day.MaxWindKPH),
	}

	// Only successful entries are cached; error entries are transient.
	u.cache.SetDefault(cacheKey, entry)

	return entry, nil
}

// CurrentSummary formats today's forecast into a one-line summary
// ("Condition, AvgTemp, Humidity humidity"). Any failure, including a missing
// credential, yields the fixed unavailable string: callers use this for
// best-effort prompt enrichment, never for hard decisions.
func (u *Usecase) CurrentSummary(ctx context.Context, location string) string {
	forecast, err := u.Fetch(ctx, location, 1)
	if err != nil {
		ctxzap.Warn(ctx, "failed to fetch current weather", zap.Error(err))
		return SummaryUnavailable
	}

	_, day, ok := forecast.First()
	if !ok || day.Errored() {
		return SummaryUnavailable
	}

	return fmt.Sprintf("%s, %s, %s humidity", day.Condition, day.AvgTemp, day.Humidity)
}
