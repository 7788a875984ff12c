package models

// Project groups tasks, sprints, epics and user stories.
type Project struct {
	ID          ID     `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Key         string `json:"key,omitempty"`
	Description string `json:"description,omitempty"`
	Lead        *User  `json:"lead,omitempty"`
	Members     []User `json:"members,omitempty"`
	CreatedAt   *Time  `json:"createdAt,omitempty"`
	UpdatedAt   *Time  `json:"updatedAt,omitempty"`
}

// Member is a user together with their role inside a project.
type Member struct {
	ID       ID     `json:"id,omitempty"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	FullName string `json:"fullName,omitempty"`
	Role     string `json:"role,omitempty"`
}
