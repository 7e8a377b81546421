package permission

import (
	"github.com/klwxsrx/project-manager/internal/pkg/apperror"
	"github.com/klwxsrx/project-manager/internal/pkg/auth"
	pkgauth "github.com/klwxsrx/project-manager/pkg/auth"
)

const (
	OperationCreateProject Operation = "create_project"
	OperationUpdateProject Operation = "update_project"
	OperationPatchProject  Operation = "patch_project"
	OperationDeleteProject Operation = "delete_project"
	OperationListProjects  Operation = "list_projects"
)

var (
	ErrUnauthorized = apperror.New(apperror.KindUnauthorized, "user doesn't have sufficient permissions")

	DefaultListRoles = []auth.Role{auth.RoleUser}
)

type (
	Operation string

	// Policy decides which roles may perform each project operation.
	Policy struct {
		rules map[Operation]map[auth.Role]struct{}
	}
)

// NewPolicy grants every mutation to admins and listing to listRoles.
func NewPolicy(listRoles []auth.Role) Policy {
	if len(listRoles) == 0 {
		listRoles = DefaultListRoles
	}

	return Policy{
		rules: map[Operation]map[auth.Role]struct{}{
			OperationCreateProject: roleSet(auth.RoleAdmin),
			OperationUpdateProject: roleSet(auth.RoleAdmin),
			OperationPatchProject:  roleSet(auth.RoleAdmin),
			OperationDeleteProject: roleSet(auth.RoleAdmin),
			OperationListProjects:  roleSet(listRoles...),
		},
	}
}

func (p Policy) Authorize(principal auth.Principal, operation Operation) error {
	if _, ok := p.rules[operation][principal.Role]; !ok {
		return ErrUnauthorized
	}

	return nil
}

func (p Policy) Permission(operation Operation) pkgauth.Permission[auth.Principal] {
	return func(authentication pkgauth.Authentication[auth.Principal]) (bool, error) {
		principal := authentication.Principal()
		if principal == nil {
			return false, nil
		}

		err := p.Authorize(*principal, operation)
		if err != nil {
			return false, err
		}

		return true, nil
	}
}

func roleSet(roles ...auth.Role) map[auth.Role]struct{} {
	result := make(map[auth.Role]struct{}, len(roles))
	for _, role := range roles {
		result[role] = struct{}{}
	}

	return result
}
