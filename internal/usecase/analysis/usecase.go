// Package analysis orchestrates the three generation flows: condition
// report, weekly tasks and weekly advisory. Each flow is one model round
// trip with optional best-effort weather enrichment before it and JSON
// coercion after it.
package analysis

import (
	"context"
	"time"

	"github.com/agrisense/farm-backend/internal/entity"
	"github.com/agrisense/farm-backend/internal/pkg/coerce"
	"github.com/agrisense/farm-backend/internal/pkg/prompt"
	"github.com/agrisense/farm-backend/internal/usecase/weather"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const (
	// tasksForecastDays is the enrichment horizon for task generation.
	tasksForecastDays = 10

	tasksTemperature    = 1.0
	advisoryTemperature = 0.1
)

type Usecase struct {
	generator GenerationConnector
	weather   WeatherProvider
	logger    *zap.Logger
}

func NewUsecase(
	generator GenerationConnector,
	weatherProvider WeatherProvider,
	logger *zap.Logger,
) *Usecase {
	return &Usecase{
		generator: generator,
		weather:   weatherProvider,
		logger:    logger,
	}
}

// GenerateReport produces a farm condition report from images and
// parameters. The reply is returned parsed when the model produced JSON, or
// wrapped as {"report": rawText} when it did not.
func (u *Usecase) GenerateReport(ctx context.Context, req *entity.GenerateReportRequest) (any, error) {
	params := req.Parameters

	if params.FarmLocation != "" {
		if summary := u.weather.CurrentSummary(ctx, params.FarmLocation); summary != weather.SummaryUnavailable {
			params.CurrentWeather = summary
		}
	}
	ctxzap.Info(ctx, "current weather for report", zap.String("weather", params.CurrentWeather))

	raw, err := u.generator.Generate(ctx, &entity.GenerateRequest{
		Prompt:    prompt.Report(params),
		ImageURLs: req.ImageURLs,
		JSONMode:  true,
	})
	if err != nil {
		return nil, err
	}

	res := coerce.Coerce(raw)
	if !res.Structured() {
		ctxzap.Warn(ctx, "report reply is not valid JSON, returning raw text", zap.String("reason", res.Reason))
		return map[string]string{"report": raw}, nil
	}

	return res.Value, nil
}

// CreateTasks produces the weekly task list. The forecast used for
// enrichment travels back in the response so callers can show it; it is null
// when enrichment was skipped or failed.
func (u *Usecase) CreateTasks(ctx context.Context, req *entity.CreateTasksRequest) (any, error) {
	params := req.Parameters

	var forecast *entity.Forecast
	if params.FarmLocation != "" {
		f, err := u.weather.Fetch(ctx, params.FarmLocation, tasksForecastDays)
		if err != nil {
			ctxzap.Error(ctx, "failed to fetch weather forecast", zap.Error(err))
		} else {
			forecast = f
			params.CurrentWeather = forecast.DisplayBlock()
		}
	}

	previous := u.resolveTaskList(ctx, req.PreviousTasks, "previous_tasks")

	temp := tasksTemperature
	raw, err := u.generator.Generate(ctx, &entity.GenerateRequest{
		Prompt:      prompt.Tasks(params, req.FarmReport, previous, prompt.ExampleTasks, time.Now()),
		Temperature: &temp,
		JSONMode:    true,
	})
	if err != nil {
		return nil, err
	}

	res := coerce.Coerce(raw)
	if !res.Structured() {
		ctxzap.Warn(ctx, "tasks reply is not valid JSON", zap.String("reason", res.Reason))
		return res.Fallback("Failed to parse tasks"), nil
	}

	return &entity.CreateTasksResponse{
		Tasks:   res.Value,
		Weather: forecast,
	}, nil
}

// CreateAdvisory produces the weekly advisory from the report, parameters,
// upcoming tasks and caller-supplied weather data.
func (u *Usecase) CreateAdvisory(ctx context.Context, req *entity.CreateAdvisoryRequest) (any, error) {
	params := req.Parameters

	upcoming := u.resolveTaskList(ctx, req.UpcomingTasks, "upcoming_tasks")

	temp := advisoryTemperature
	raw, err := u.generator.Generate(ctx, &entity.GenerateRequest{
		Prompt:      prompt.Advisory(params, req.FarmReport, upcoming, string(req.WeatherData), prompt.ExampleAdvisory, time.Now()),
		Temperature: &temp,
		JSONMode:    true,
	})
	if err != nil {
		return nil, err
	}

	res := coerce.Coerce(raw)
	if !res.Structured() {
		ctxzap.Warn(ctx, "advisory reply is not valid JSON", zap.String("reason", res.Reason))
		return res.Fallback("Failed to parse advisory data"), nil
	}

	return res.Value, nil
}

// resolveTaskList normalizes the string-or-list-or-null union once, at this
// boundary. An unparsable string is logged and treated as absent rather than
// failing the request.
func (u *Usecase) resolveTaskList(ctx context.Context, list entity.TaskList, field string) []entity.Task {
	tasks, ok, err := list.Resolve()
	if err != nil {
		ctxzap.Error(ctx, "failed to parse task list JSON string, proceeding without it",
			zap.String("field", field),
			zap.Error(err),
		)
		return nil
	}
	if !ok {
		return nil
	}
	return tasks
}
