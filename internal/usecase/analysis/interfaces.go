package analysis

import (
	"context"

	"github.com/agrisense/farm-backend/internal/entity"
)

// GenerationConnector performs one model round trip.
type GenerationConnector interface {
	Generate(ctx context.Context, req *entity.GenerateRequest) (string, error)
}

// WeatherProvider supplies forecasts for best-effort prompt enrichment.
type WeatherProvider interface {
	Fetch(ctx context.Context, location string, days int) (*entity.Forecast, error)
	CurrentSummary(ctx context.Context, location string) string
}
