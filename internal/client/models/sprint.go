package models

// SprintStatus is the lifecycle state of a sprint.
type SprintStatus string

const (
	SprintPlanning  SprintStatus = "PLANNING"
	SprintActive    SprintStatus = "ACTIVE"
	SprintCompleted SprintStatus = "COMPLETED"
)

type Sprint struct {
	ID        ID           `json:"id,omitempty"`
	Name      string       `json:"name,omitempty"`
	Goal      string       `json:"goal,omitempty"`
	StartDate string       `json:"startDate,omitempty"`
	EndDate   string       `json:"endDate,omitempty"`
	Status    SprintStatus `json:"status,omitempty"`
	ProjectID ID           `json:"projectId,omitempty"`
	CreatedAt *Time        `json:"createdAt,omitempty"`
	UpdatedAt *Time        `json:"updatedAt,omitempty"`
}

type Epic struct {
	ID          ID     `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	ProjectID   ID     `json:"projectId,omitempty"`
	CreatedAt   *Time  `json:"createdAt,omitempty"`
	UpdatedAt   *Time  `json:"updatedAt,omitempty"`
}

type UserStory struct {
	ID                 ID     `json:"id,omitempty"`
	Title              string `json:"title,omitempty"`
	Description        string `json:"description,omitempty"`
	AcceptanceCriteria string `json:"acceptanceCriteria,omitempty"`
	Status             string `json:"status,omitempty"`
	Priority           string `json:"priority,omitempty"`
	StoryPoints        *int   `json:"storyPoints,omitempty"`
	ProjectID          ID     `json:"projectId,omitempty"`
	EpicID             ID     `json:"epicId,omitempty"`
	CreatedAt          *Time  `json:"createdAt,omitempty"`
	UpdatedAt          *Time  `json:"updatedAt,omitempty"`
}
