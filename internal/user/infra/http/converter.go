package http

import "github.com/klwxsrx/project-manager/internal/user/app/service"

func toRegistration(in RegisterUserIn) service.Registration {
	return service.Registration{
		Username: in.Username,
		Password: in.Password,
		Role:     in.Role,
	}
}

func toUserOut(user *service.UserData) UserOut {
	return UserOut{
		ID:        user.ID.UUID,
		Username:  user.Username,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}
