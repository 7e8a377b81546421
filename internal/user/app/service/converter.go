package service

import "github.com/klwxsrx/project-manager/internal/user/domain"

func toUserData(user *domain.User) *UserData {
	return &UserData{
		ID:        user.ID,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
