package http

import "metrics-report/internal/models"

// Projection DTOs. Every dimension endpoint wraps its mapping under a named
// key; the full Summary and DayReport serialize straight from the models.

type topUserResponse struct {
	TopUser    string `json:"top_user,omitempty"`
	EntryCount int64  `json:"entry_count"`
}

type totalUpdatesResponse struct {
	TotalUpdates int64 `json:"total_updates"`
}

type updatesPerDayResponse struct {
	UpdatesPerDay map[string]int64 `json:"updates_per_day"`
}

type updatesPerMonthResponse struct {
	UpdatesPerMonth map[string]int64 `json:"updates_per_month"`
}

type updatesPerWeekdayResponse struct {
	UpdatesPerWeekday map[string]int64 `json:"updates_per_weekday"`
}

type projectsResponse struct {
	Projects []string `json:"projects"`
}

type tablesResponse struct {
	Tables []string `json:"tables"`
}

func newProjectsResponse(projects []models.Project) projectsResponse {
	ids := make([]string, 0, len(projects))
	for _, project := range projects {
		ids = append(ids, project.ID)
	}
	return projectsResponse{Projects: ids}
}
