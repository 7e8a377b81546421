package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/klwxsrx/project-manager/internal/pkg/auth"
	"github.com/klwxsrx/project-manager/internal/user/app/service"
	"github.com/klwxsrx/project-manager/internal/user/domain"
	pkgauth "github.com/klwxsrx/project-manager/pkg/auth"
	pkghttp "github.com/klwxsrx/project-manager/pkg/http"
)

type GetCurrentUserHandler struct {
	userService service.User
}

func NewGetCurrentUserHandler(userService service.User) GetCurrentUserHandler {
	return GetCurrentUserHandler{userService: userService}
}

func (h GetCurrentUserHandler) Method() string {
	return http.MethodGet
}

func (h GetCurrentUserHandler) Path() string {
	return "/users/current"
}

func (h GetCurrentUserHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	authentication, ok := pkgauth.GetAuthentication[auth.Principal](r.Context())
	if !ok || authentication.Principal() == nil {
		return pkgauth.ErrUnauthenticated
	}

	result, err := h.userService.GetByID(r.Context(), domain.UserID{UUID: authentication.Principal().UserID})
	if err != nil {
		return err
	}

	w.SetJSONBody(toUserOut(result))
	return nil
}

type UserOut struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
