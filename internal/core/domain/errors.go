package domain

import "errors"

var (
	// ErrInvalidCredentials covers every login failure: unknown email and
	// wrong password are deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrInvalidRole   = errors.New("role must be buyer or seller")
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already taken")
	ErrUserNotFound  = errors.New("user not found")

	ErrProductNotFound = errors.New("product not found")
	ErrForbidden       = errors.New("access forbidden")

	ErrUnsupportedPhotoType = errors.New("photo must be an image")
)
