package http

import (
	"net/http"

	"github.com/klwxsrx/project-manager/internal/project/app/service"
	pkghttp "github.com/klwxsrx/project-manager/pkg/http"
)

type CreateProjectHandler struct {
	projectService service.Project
}

func NewCreateProjectHandler(projectService service.Project) CreateProjectHandler {
	return CreateProjectHandler{projectService: projectService}
}

func (h CreateProjectHandler) Method() string {
	return http.MethodPost
}

func (h CreateProjectHandler) Path() string {
	return "/projects"
}

func (h CreateProjectHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[ProjectIn](), err)
	if err != nil {
		return err
	}

	projectID, err := h.projectService.Create(r.Context(), toProjectInput(in))
	if err != nil {
		return err
	}

	w.SetJSONBody(newProjectChangedOut("project created successfully", projectID))
	w.SetStatusCode(http.StatusCreated)
	return nil
}
