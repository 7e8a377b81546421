package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/klwxsrx/project-manager/internal/project/app/service"
	"github.com/klwxsrx/project-manager/internal/project/domain"
	pkghttp "github.com/klwxsrx/project-manager/pkg/http"
)

type DeleteProjectHandler struct {
	projectService service.Project
}

func NewDeleteProjectHandler(projectService service.Project) DeleteProjectHandler {
	return DeleteProjectHandler{projectService: projectService}
}

func (h DeleteProjectHandler) Method() string {
	return http.MethodDelete
}

func (h DeleteProjectHandler) Path() string {
	return projectPath
}

func (h DeleteProjectHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	projectID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID](projectIDParam), err)
	if err != nil {
		return err
	}

	id := domain.ProjectID{UUID: projectID}
	err = h.projectService.Delete(r.Context(), id)
	if err != nil {
		return err
	}

	w.SetJSONBody(newProjectChangedOut("project deleted successfully", id))
	return nil
}
