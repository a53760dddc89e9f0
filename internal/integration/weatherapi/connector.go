package weatherapi

import (
	"context"
	"errors"
	"net/url"

	"github.com/agrisense/farm-backend/internal/config"
	"github.com/agrisense/farm-backend/internal/entity"
	"github.com/agrisense/farm-backend/internal/integration/common"
	pkghttp "github.com/agrisense/farm-backend/pkg/http"
	"github.com/avast/retry-go/v4"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Connector fetches single-day forecasts from weatherapi.com. The upstream
// credential travels as a query parameter, not a header.
type Connector struct {
	config    config.WeatherConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.WeatherConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// FetchDay requests the forecast for exactly one calendar date. Network-level
// failures are retried per config; upstream status errors are not, since the
// aggregator turns them into per-day error records.
func (c *Connector) FetchDay(ctx context.Context, location, date string) (*entity.WeatherAPIResponse, error) {
	if c.config.Token == "" {
		return nil, entity.ErrMissingCredential
	}

	ctxzap.Debug(ctx, "fetching single-day forecast",
		zap.String("location", location),
		zap.String("date", date),
	)

	query := url.Values{}
	query.Set("q", location)
	query.Set("days", "1")
	query.Set("dt", date)
	query.Set("key", c.config.Token)

	var resp entity.WeatherAPIResponse
	opts := append(c.config.Retry.ToRetryOptions(),
		retry.Context(ctx),
		retry.RetryIf(func(err error) bool {
			var netErr *pkghttp.NetworkError
			return errors.As(err, &netErr)
		}),
	)
	err := retry.Do(func() error {
		return c.connector.DoGet(ctx, c.config.ForecastEndpoint, query, &resp)
	}, opts...)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}
