package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/klwxsrx/project-manager/internal/user/app/service"
	pkghttp "github.com/klwxsrx/project-manager/pkg/http"
)

type RegisterUserHandler struct {
	userService service.User
}

func NewRegisterUserHandler(userService service.User) RegisterUserHandler {
	return RegisterUserHandler{userService: userService}
}

func (h RegisterUserHandler) Method() string {
	return http.MethodPost
}

func (h RegisterUserHandler) Path() string {
	return "/register"
}

func (h RegisterUserHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[RegisterUserIn](), err)
	if err != nil {
		return err
	}

	user, err := h.userService.Register(r.Context(), toRegistration(in))
	if err != nil {
		return err
	}

	w.SetJSONBody(registerUserOut{
		Message:  "user registered successfully",
		ID:       user.ID.UUID,
		Username: user.Username,
		Role:     string(user.Role),
	})
	w.SetStatusCode(http.StatusCreated)
	return nil
}

type (
	RegisterUserIn struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}

	registerUserOut struct {
		Message  string    `json:"message"`
		ID       uuid.UUID `json:"id"`
		Username string    `json:"username"`
		Role     string    `json:"role"`
	}
)
