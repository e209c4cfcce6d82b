package auth

import "gearshare/internal/domain"

var (
	ErrInvalidCredentials = domain.NewError(domain.ErrUnauthorized, "Invalid email or password")
	ErrUserAlreadyExists  = domain.NewError(domain.ErrConflict, "Username or Email already exists")
	ErrUserNotFound       = domain.NewError(domain.ErrNotFound, "User not found")
)
