package validator

import (
	"fmt"

	"github.com/agrisense/farm-backend/internal/entity"
)

// Validator validates request bodies before any outbound call is made.
type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateGenerateReport(req *entity.GenerateReportRequest) error {
	if len(req.ImageURLs) == 0 {
		return entity.ErrNoImages
	}
	for i, url := range req.ImageURLs {
		if url == "" {
			return fmt.Errorf("%w: image_urls[%d]", entity.ErrMissingField, i)
		}
	}
	return nil
}

func (v *Validator) ValidateCreateTasks(req *entity.CreateTasksRequest) error {
	if req.FarmReport == "" {
		return fmt.Errorf("%w: farm_report", entity.ErrMissingField)
	}
	return nil
}

func (v *Validator) ValidateCreateAdvisory(req *entity.CreateAdvisoryRequest) error {
	if req.FarmReport == "" {
		return fmt.Errorf("%w: farm_report", entity.ErrMissingField)
	}
	return nil
}

func (v *Validator) ValidateExportReport(req *entity.ExportReportRequest) error {
	if req.Report == "" {
		return fmt.Errorf("%w: report", entity.ErrMissingField)
	}
	switch req.Format {
	case entity.FormatMarkdown, entity.FormatPDF, entity.FormatDOCX:
		return nil
	default:
		return fmt.Errorf("%w: format must be one of markdown, pdf, docx", entity.ErrInvalidFormat)
	}
}
