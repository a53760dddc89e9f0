package weatherapi

import (
	"context"

	"github.com/agrisense/farm-backend/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector serves a fixed sunny day for local runs without a weather key.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) FetchDay(ctx context.Context, location, date string) (*entity.WeatherAPIResponse, error) {
	ctxzap.Debug(ctx, "[MOCK] fetching single-day forecast",
		zap.String("location", location),
		zap.String("date", date),
	)

	return &entity.WeatherAPIResponse{
		Forecast: &entity.WeatherAPIForecast{
			ForecastDays: []entity.WeatherAPIForecastDay{
				{
					Date: date,
					Day: entity.WeatherAPIDay{
						MaxTempC:      35.0,
						MinTempC:      20.6,
						AvgTempC:      27.8,
						AvgHumidity:   14,
						TotalPrecipMM: 0.0,
						MaxWindKPH:    18.7,
						Condition:     entity.WeatherAPICondition{Text: "Sunny"},
					},
				},
			},
		},
	}, nil
}
