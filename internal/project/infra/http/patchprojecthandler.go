package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/klwxsrx/project-manager/internal/project/app/service"
	"github.com/klwxsrx/project-manager/internal/project/domain"
	pkghttp "github.com/klwxsrx/project-manager/pkg/http"
)

type PatchProjectHandler struct {
	projectService service.Project
}

func NewPatchProjectHandler(projectService service.Project) PatchProjectHandler {
	return PatchProjectHandler{projectService: projectService}
}

func (h PatchProjectHandler) Method() string {
	return http.MethodPatch
}

func (h PatchProjectHandler) Path() string {
	return projectPath
}

func (h PatchProjectHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	projectID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID](projectIDParam), err)
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[ProjectPatchIn](), err)
	if err != nil {
		return err
	}

	id := domain.ProjectID{UUID: projectID}
	err = h.projectService.Patch(r.Context(), id, toProjectPatch(in))
	if err != nil {
		return err
	}

	w.SetJSONBody(newProjectChangedOut("project patched successfully", id))
	return nil
}
