package weather

import (
	"context"

	"github.com/agrisense/farm-backend/internal/entity"
)

type WeatherUsecase interface {
	Fetch(ctx context.Context, location string, days int) (*entity.Forecast, error)
}
