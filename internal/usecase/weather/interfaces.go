package weather

import (
	"context"

	"github.com/agrisense/farm-backend/internal/entity"
)

// ForecastConnector fetches one calendar date's forecast from the upstream
// weather API.
type ForecastConnector interface {
	FetchDay(ctx context.Context, location, date string) (*entity.WeatherAPIResponse, error)
}
