package http

import (
	"time"

	"github.com/google/uuid"

	"github.com/klwxsrx/project-manager/internal/project/app/service"
	"github.com/klwxsrx/project-manager/internal/project/domain"
)

const (
	projectIDParam = "projectID"
	projectPath    = "/projects/{" + projectIDParam + "}"
)

type (
	ProjectIn struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}

	ProjectPatchIn struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
	}

	ProjectOut struct {
		ID          uuid.UUID `json:"id"`
		Name        string    `json:"name"`
		Description string    `json:"description"`
		CreatedBy   string    `json:"created_by"`
		CreatedAt   time.Time `json:"created_at"`
	}

	projectChangedOut struct {
		Message string `json:"message"`
		Data    struct {
			ProjectID uuid.UUID `json:"project_id"`
		} `json:"data"`
	}

	projectsOut struct {
		Message      string       `json:"message"`
		Projects     []ProjectOut `json:"projects"`
		TotalProject int          `json:"total_project"`
		Page         int          `json:"page"`
		PageSize     int          `json:"page_size"`
	}
)

func newProjectChangedOut(message string, id domain.ProjectID) projectChangedOut {
	out := projectChangedOut{Message: message}
	out.Data.ProjectID = id.UUID
	return out
}

func toProjectInput(in ProjectIn) service.ProjectInput {
	return service.ProjectInput{
		Name:        in.Title,
		Description: in.Description,
	}
}

func toProjectPatch(in ProjectPatchIn) service.ProjectPatch {
	return service.ProjectPatch{
		Name:        in.Title,
		Description: in.Description,
	}
}

func toPageRequest(page, pageSize *int) service.PageRequest {
	result := service.PageRequest{
		Page:     service.DefaultPage,
		PageSize: service.DefaultPageSize,
	}
	if page != nil {
		result.Page = *page
	}
	if pageSize != nil {
		result.PageSize = *pageSize
	}

	return result
}

func toProjectsOut(page *service.ProjectPage) projectsOut {
	projects := make([]ProjectOut, 0, len(page.Projects))
	for _, project := range page.Projects {
		projects = append(projects, ProjectOut{
			ID:          project.ID.UUID,
			Name:        project.Name,
			Description: project.Description,
			CreatedBy:   project.CreatedBy,
			CreatedAt:   project.CreatedAt,
		})
	}

	return projectsOut{
		Message:      "projects fetched successfully",
		Projects:     projects,
		TotalProject: page.Total,
		Page:         page.Page,
		PageSize:     page.PageSize,
	}
}
