package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/klwxsrx/project-manager/internal/project/app/service"
	"github.com/klwxsrx/project-manager/internal/project/domain"
	pkghttp "github.com/klwxsrx/project-manager/pkg/http"
)

type UpdateProjectHandler struct {
	projectService service.Project
}

func NewUpdateProjectHandler(projectService service.Project) UpdateProjectHandler {
	return UpdateProjectHandler{projectService: projectService}
}

func (h UpdateProjectHandler) Method() string {
	return http.MethodPut
}

func (h UpdateProjectHandler) Path() string {
	return projectPath
}

func (h UpdateProjectHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	projectID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID](projectIDParam), err)
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[ProjectIn](), err)
	if err != nil {
		return err
	}

	id := domain.ProjectID{UUID: projectID}
	err = h.projectService.Update(r.Context(), id, toProjectInput(in))
	if err != nil {
		return err
	}

	w.SetJSONBody(newProjectChangedOut("project updated successfully", id))
	return nil
}
