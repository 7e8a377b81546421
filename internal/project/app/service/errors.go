package service

import (
	"github.com/klwxsrx/project-manager/internal/pkg/apperror"
)

var (
	ErrEmptyFields          = apperror.New(apperror.KindInvalidInput, "title and description must not be empty")
	ErrInvalidPage          = apperror.New(apperror.KindInvalidInput, "page must be at least 1 and page_size between 1 and 100")
	ErrProjectNotFound      = apperror.New(apperror.KindProjectNotFound, "project not found")
	ErrNoProjects           = apperror.New(apperror.KindProjectNotFound, "no projects found")
	ErrProjectAlreadyExists = apperror.New(apperror.KindProjectAlreadyExists, "a project with this name already exists")
)
