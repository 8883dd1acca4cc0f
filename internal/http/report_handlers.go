package http

import (
	"net/http"
	"time"

	"metrics-report/internal/aggregators"

	"github.com/go-chi/chi/v5"
)

// reportHandler serves the summary, projection and day-report routes. Routes
// without a projectID path parameter are scoped to the configured default
// project.
type reportHandler struct {
	reports        aggregators.ReportService
	defaultProject string
	now            func() time.Time
}

func newReportHandler(reports aggregators.ReportService, defaultProject string) *reportHandler {
	return &reportHandler{
		reports:        reports,
		defaultProject: defaultProject,
		now:            time.Now,
	}
}

func (h *reportHandler) projectID(r *http.Request) string {
	if id := chi.URLParam(r, "projectID"); id != "" {
		return id
	}
	return h.defaultProject
}

func (h *reportHandler) summary(w http.ResponseWriter, r *http.Request) error {
	summary, err := h.reports.Summary(r.Context(), h.projectID(r))
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, summary)
}

func (h *reportHandler) topUser(w http.ResponseWriter, r *http.Request) error {
	summary, err := h.reports.Summary(r.Context(), h.projectID(r))
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, topUserResponse{
		TopUser:    summary.TopUser,
		EntryCount: summary.TopUserCount,
	})
}

func (h *reportHandler) totalUpdates(w http.ResponseWriter, r *http.Request) error {
	summary, err := h.reports.Summary(r.Context(), h.projectID(r))
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, totalUpdatesResponse{TotalUpdates: summary.TotalUpdates})
}

func (h *reportHandler) updatesPerDay(w http.ResponseWriter, r *http.Request) error {
	summary, err := h.reports.Summary(r.Context(), h.projectID(r))
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, updatesPerDayResponse{UpdatesPerDay: summary.UpdatesPerDay})
}

func (h *reportHandler) updatesPerMonth(w http.ResponseWriter, r *http.Request) error {
	summary, err := h.reports.Summary(r.Context(), h.projectID(r))
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, updatesPerMonthResponse{UpdatesPerMonth: summary.UpdatesPerMonth})
}

func (h *reportHandler) updatesPerWeekday(w http.ResponseWriter, r *http.Request) error {
	summary, err := h.reports.Summary(r.Context(), h.projectID(r))
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, updatesPerWeekdayResponse{UpdatesPerWeekday: summary.UpdatesPerWeekday})
}

func (h *reportHandler) dayReportByDate(w http.ResponseWriter, r *http.Request) error {
	day, err := aggregators.ParseReportDate(r.URL.Query().Get("date"))
	if err != nil {
		return err
	}

	report, err := h.reports.DayReport(r.Context(), h.projectID(r), day)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, report)
}

func (h *reportHandler) dayReportToday(w http.ResponseWriter, r *http.Request) error {
	report, err := h.reports.DayReport(r.Context(), h.projectID(r), h.now())
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, report)
}

func (h *reportHandler) projects(w http.ResponseWriter, r *http.Request) error {
	return writeJSON(w, http.StatusOK, newProjectsResponse(h.reports.Projects()))
}

func (h *reportHandler) projectTables(w http.ResponseWriter, r *http.Request) error {
	tables, err := h.reports.ProjectTables(r.Context(), h.projectID(r))
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, tablesResponse{Tables: tables})
}
