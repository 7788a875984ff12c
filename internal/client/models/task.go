package models

// TaskStatus values understood by the backend board.
const (
	TaskStatusTodo       = "TODO"
	TaskStatusInProgress = "IN_PROGRESS"
	TaskStatusInReview   = "IN_REVIEW"
	TaskStatusDone       = "DONE"
)

// Task priorities.
const (
	PriorityLowest  = "LOWEST"
	PriorityLow     = "LOW"
	PriorityMedium  = "MEDIUM"
	PriorityHigh    = "HIGH"
	PriorityHighest = "HIGHEST"
)

type Task struct {
	ID          ID     `json:"id,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	Priority    string `json:"priority,omitempty"`
	Type        string `json:"type,omitempty"`
	StoryPoints *int   `json:"storyPoints,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
	ProjectID   ID     `json:"projectId,omitempty"`
	SprintID    ID     `json:"sprintId,omitempty"`
	Assignee    *User  `json:"assignee,omitempty"`
	Reporter    *User  `json:"reporter,omitempty"`
	CreatedAt   *Time  `json:"createdAt,omitempty"`
	UpdatedAt   *Time  `json:"updatedAt,omitempty"`
}

type Comment struct {
	ID        ID     `json:"id,omitempty"`
	Content   string `json:"content,omitempty"`
	Author    *User  `json:"author,omitempty"`
	TaskID    ID     `json:"taskId,omitempty"`
	CreatedAt *Time  `json:"createdAt,omitempty"`
	UpdatedAt *Time  `json:"updatedAt,omitempty"`
}
