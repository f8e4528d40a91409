package usecase

import "errors"

var (
	// ErrForbidden is returned when a caller touches a board or idea they do not own
	ErrForbidden = errors.New("not allowed to modify this resource")

	ErrWeakPassword = errors.New("password must be at least 6 characters and contain a number")
)
