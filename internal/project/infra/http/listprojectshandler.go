package http

import (
	"net/http"

	"github.com/klwxsrx/project-manager/internal/project/app/service"
	pkghttp "github.com/klwxsrx/project-manager/pkg/http"
)

type ListProjectsHandler struct {
	projectService service.Project
}

func NewListProjectsHandler(projectService service.Project) ListProjectsHandler {
	return ListProjectsHandler{projectService: projectService}
}

func (h ListProjectsHandler) Method() string {
	return http.MethodGet
}

func (h ListProjectsHandler) Path() string {
	return "/projects"
}

func (h ListProjectsHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	page, err := pkghttp.ParseRequest(r, pkghttp.OptionalQueryParameter[int]("page"), err)
	pageSize, err := pkghttp.ParseRequest(r, pkghttp.OptionalQueryParameter[int]("page_size"), err)
	if err != nil {
		return err
	}

	result, err := h.projectService.List(r.Context(), toPageRequest(page, pageSize))
	if err != nil {
		return err
	}

	w.SetJSONBody(toProjectsOut(result))
	return nil
}
