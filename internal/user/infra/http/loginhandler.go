package http

import (
	"net/http"

	"github.com/klwxsrx/project-manager/internal/user/app/service"
	pkghttp "github.com/klwxsrx/project-manager/pkg/http"
)

type LoginHandler struct {
	authService service.Authentication
}

func NewLoginHandler(authService service.Authentication) LoginHandler {
	return LoginHandler{authService: authService}
}

func (h LoginHandler) Method() string {
	return http.MethodPost
}

func (h LoginHandler) Path() string {
	return "/login"
}

func (h LoginHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[loginIn](), err)
	if err != nil {
		return err
	}

	token, err := h.authService.Login(r.Context(), in.Username, in.Password)
	if err != nil {
		return err
	}

	w.SetJSONBody(loginOut{
		Message: "login successful",
		Token:   string(token),
	})
	return nil
}

type (
	loginIn struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	loginOut struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}
)
