package analysis

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/agrisense/farm-backend/internal/entity"
	"github.com/agrisense/farm-backend/internal/pkg/formatter"
	"github.com/agrisense/farm-backend/internal/pkg/logger"
	"github.com/agrisense/farm-backend/internal/pkg/response"
	"github.com/agrisense/farm-backend/internal/pkg/validator"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	usecase    AnalysisUsecase
	validator  *validator.Validator
	formatters *formatter.Factory
}

func NewHandler(usecase AnalysisUsecase, validator *validator.Validator) *Handler {
	return &Handler{
		usecase:    usecase,
		validator:  validator,
		formatters: formatter.NewFactory(),
	}
}

// GenerateReport handles POST /generate-report
func (h *Handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateReport")

	var req entity.GenerateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.validator.ValidateGenerateReport(&req); err != nil {
		ctxzap.Error(ctx, "failed to validate request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctxzap.Info(ctx, "received report request", zap.Int("image_count", len(req.ImageURLs)))

	result, err := h.usecase.GenerateReport(ctx, &req)
	if err != nil {
		ctxzap.Error(ctx, "failed to generate report", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, processingError(err))
		return
	}

	response.Success(w, result)
}

// CreateTasks handles POST /create-tasks
func (h *Handler) CreateTasks(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "CreateTasks")

	var req entity.CreateTasksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.validator.ValidateCreateTasks(&req); err != nil {
		ctxzap.Error(ctx, "failed to validate request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctxzap.Info(ctx, "received task creation request")

	result, err := h.usecase.CreateTasks(ctx, &req)
	if err != nil {
		ctxzap.Error(ctx, "failed to create tasks", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, processingError(err))
		return
	}

	response.Success(w, result)
}

// CreateAdvisory handles POST /create-advisory
func (h *Handler) CreateAdvisory(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "CreateAdvisory")

	var req entity.CreateAdvisoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.validator.ValidateCreateAdvisory(&req); err != nil {
		ctxzap.Error(ctx, "failed to validate request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctxzap.Info(ctx, "received advisory creation request")

	result, err := h.usecase.CreateAdvisory(ctx, &req)
	if err != nil {
		ctxzap.Error(ctx, "failed to create advisory", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, processingError(err))
		return
	}

	response.Success(w, result)
}

// ExportReport handles POST /export-report
func (h *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ExportReport")

	var req entity.ExportReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.validator.ValidateExportReport(&req); err != nil {
		ctxzap.Error(ctx, "failed to validate request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	f, err := h.formatters.Create(req.Format)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := f.Format(req.Report)
	if err != nil {
		ctxzap.Error(ctx, "failed to format report", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, processingError(err))
		return
	}

	ctxzap.Info(ctx, "report exported",
		zap.String("format", string(req.Format)),
		zap.Int("bytes", len(data)),
	)

	response.File(w, f.ContentType(), "farm-report"+f.FileExtension(), data)
}

func processingError(err error) string {
	return fmt.Sprintf("Error processing request: %v", err)
}
