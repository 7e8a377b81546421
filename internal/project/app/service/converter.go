package service

import "github.com/klwxsrx/project-manager/internal/project/domain"

func toProjectsData(projects []domain.Project) []ProjectData {
	result := make([]ProjectData, 0, len(projects))
	for _, project := range projects {
		result = append(result, ProjectData{
			ID:          project.ID,
			Name:        project.Name,
			Description: project.Description,
			CreatedBy:   project.CreatedBy,
			CreatedAt:   project.CreatedAt,
		})
	}

	return result
}
