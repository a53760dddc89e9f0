package weather

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/agrisense/farm-backend/internal/entity"
	"github.com/agrisense/farm-backend/internal/pkg/logger"
	"github.com/agrisense/farm-backend/internal/pkg/response"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	usecase WeatherUsecase
}

func NewHandler(usecase WeatherUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// Forecast handles GET /weather
func (h *Handler) Forecast(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Forecast")

	location := r.URL.Query().Get("location")
	if location == "" {
		response.Error(w, http.StatusBadRequest, entity.ErrMissingLocation.Error())
		return
	}

	days := 1
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "days must be an integer")
			return
		}
		days = parsed
	}

	ctxzap.Info(ctx, "received forecast request",
		zap.String("location", location),
		zap.Int("days", days),
	)

	forecast, err := h.usecase.Fetch(ctx, location, days)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidDays) {
			response.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		ctxzap.Error(ctx, "failed to fetch forecast", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	if forecast.AllErrored() {
		if _, day, ok := forecast.First(); ok {
			response.Error(w, http.StatusBadRequest, day.Error)
			return
		}
	}

	response.Success(w, forecast)
}
