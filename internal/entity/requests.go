package entity

import "encoding/json"

// GenerateReportRequest is the body of POST /generate-report.
type GenerateReportRequest struct {
	ImageURLs  []string       `json:"image_urls"`
	Parameters FarmParameters `json:"parameters"`
}

// CreateTasksRequest is the body of POST /create-tasks.
type CreateTasksRequest struct {
	Parameters    FarmParameters `json:"parameters"`
	FarmReport    string         `json:"farm_report"`
	PreviousTasks TaskList       `json:"previous_tasks"`
}

// CreateAdvisoryRequest is the body of POST /create-advisory. WeatherData is
// embedded into the advisory prompt verbatim and never interpreted.
type CreateAdvisoryRequest struct {
	Parameters    FarmParameters  `json:"parameters"`
	FarmReport    string          `json:"farm_report"`
	UpcomingTasks TaskList        `json:"upcoming_tasks"`
	WeatherData   json.RawMessage `json:"weather_data,omitempty"`
}

// CreateTasksResponse pairs the generated task list with the forecast used to
// build it, so callers can show both. Weather is null when the enrichment was
// skipped or failed.
type CreateTasksResponse struct {
	Tasks   json.RawMessage `json:"tasks"`
	Weather *Forecast       `json:"weather"`
}

// ExportFormat names a report download format.
type ExportFormat string

const (
	FormatMarkdown ExportFormat = "markdown"
	FormatPDF      ExportFormat = "pdf"
	FormatDOCX     ExportFormat = "docx"
)

// ExportReportRequest is the body of POST /export-report.
type ExportReportRequest struct {
	Report string       `json:"report"`
	Format ExportFormat `json:"format"`
}
