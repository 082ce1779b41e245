package usecases

import "errors"

var (
	// ErrUserExists means the registration email is already taken.
	ErrUserExists = errors.New("User already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("Invalid credentials")

	// ErrForbidden means the caller's token identity does not own the
	// resource it is acting on.
	ErrForbidden = errors.New("you do not own this resource")
)
