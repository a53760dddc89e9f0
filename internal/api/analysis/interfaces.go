package analysis

import (
	"context"

	"github.com/agrisense/farm-backend/internal/entity"
)

// AnalysisUsecase drives the three generation flows. Results are either the
// model's parsed JSON document or an explicit coercion fallback; both are
// returned to the caller as-is.
type AnalysisUsecase interface {
	GenerateReport(ctx context.Context, req *entity.GenerateReportRequest) (any, error)
	CreateTasks(ctx context.Context, req *entity.CreateTasksRequest) (any, error)
	CreateAdvisory(ctx context.Context, req *entity.CreateAdvisoryRequest) (any, error)
}
