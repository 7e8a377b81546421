package permission

import (
	"github.com/klwxsrx/project-manager/internal/pkg/auth"
	"github.com/klwxsrx/project-manager/internal/user/domain"
	pkgauth "github.com/klwxsrx/project-manager/pkg/auth"
)

// CanReadUser allows users to read themselves and admins to read anyone.
func CanReadUser(id domain.UserID) pkgauth.Permission[auth.Principal] {
	return func(authentication pkgauth.Authentication[auth.Principal]) (bool, error) {
		principal := authentication.Principal()
		if principal == nil {
			return false, nil
		}

		return principal.UserID == id.UUID || principal.Role == auth.RoleAdmin, nil
	}
}
