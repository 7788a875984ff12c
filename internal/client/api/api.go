package api

// API aggregates every endpoint group over one shared Client.
type API struct {
	Auth        AuthAPI
	Projects    ProjectAPI
	Tasks       TaskAPI
	Comments    CommentAPI
	Users       UserAPI
	Sprints     SprintAPI
	Epics       EpicAPI
	UserStories UserStoryAPI
	Reports     ReportAPI
}

func New(c *Client) *API {
	return &API{
		Auth:        &authAPI{c: c},
		Projects:    &projectAPI{c: c},
		Tasks:       &taskAPI{c: c},
		Comments:    &commentAPI{c: c},
		Users:       &userAPI{c: c},
		Sprints:     &sprintAPI{c: c},
		Epics:       &epicAPI{c: c},
		UserStories: &userStoryAPI{c: c},
		Reports:     &reportAPI{c: c},
	}
}
