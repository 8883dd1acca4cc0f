package stores

import (
	"errors"
	"fmt"
	"regexp"
	"sort"

	"metrics-report/internal/models"
)

var (
	ErrProjectNotFound = errors.New("project not found")

	// Metrics table names end up interpolated into SQL, so the catalog only
	// admits plain identifiers.
	tableIdentPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// ProjectCatalog resolves project identifiers to the MySQL tables their
// metric rows live in. Built once from configuration; read-only afterwards.
type ProjectCatalog interface {
	// TableFor returns the metrics table for a project, or
	// ErrProjectNotFound.
	TableFor(projectID string) (string, error)

	// Projects returns all catalog entries sorted by project id.
	Projects() []models.Project
}

type projectCatalog struct {
	tablesByProject map[string]string
}

// NewProjectCatalog validates every configured table identifier up front so a
// bad catalog fails process startup rather than a request.
func NewProjectCatalog(tablesByProject map[string]string) (ProjectCatalog, error) {
	if len(tablesByProject) == 0 {
		return nil, errors.New("project catalog cannot be empty")
	}

	catalog := make(map[string]string, len(tablesByProject))
	for projectID, table := range tablesByProject {
		if projectID == "" {
			return nil, errors.New("project id cannot be empty")
		}
		if !tableIdentPattern.MatchString(table) {
			return nil, fmt.Errorf("invalid metrics table %q for project %q", table, projectID)
		}
		catalog[projectID] = table
	}

	return &projectCatalog{tablesByProject: catalog}, nil
}

func (c *projectCatalog) TableFor(projectID string) (string, error) {
	table, ok := c.tablesByProject[projectID]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrProjectNotFound, projectID)
	}
	return table, nil
}

func (c *projectCatalog) Projects() []models.Project {
	projects := make([]models.Project, 0, len(c.tablesByProject))
	for projectID, table := range c.tablesByProject {
		projects = append(projects, models.Project{ID: projectID, MetricsTable: table})
	}
	sort.Slice(projects, func(i, j int) bool { return projects[i].ID < projects[j].ID })
	return projects
}
