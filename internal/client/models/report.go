package models

// ReportType tags a generated report. ReportCustom is used when the caller
// does not pick one.
type ReportType string

const (
	ReportCustom ReportType = "CUSTOM"
)

type Report struct {
	ID        ID         `json:"id,omitempty"`
	ProjectID ID         `json:"projectId,omitempty"`
	Title     string     `json:"title,omitempty"`
	Prompt    string     `json:"prompt,omitempty"`
	Type      ReportType `json:"type,omitempty"`
	Content   string     `json:"content,omitempty"`
	CreatedAt *Time      `json:"createdAt,omitempty"`
}

// GenerateReportRequest is the body of POST /reports/generate.
type GenerateReportRequest struct {
	ProjectID ID         `json:"projectId"`
	Prompt    string     `json:"prompt"`
	Type      ReportType `json:"type"`
}
