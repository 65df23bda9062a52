package user

import "errors"

var (
	// ErrUserNotFound indicates the user was not found
	ErrUserNotFound = errors.New("user not found")

	// ErrUserInactive indicates the principal has been deactivated
	ErrUserInactive = errors.New("user is inactive")

	// ErrEmailExists indicates a user with the email already exists
	ErrEmailExists = errors.New("email already exists")

	// ErrInvalidCredentials indicates a failed password check
	ErrInvalidCredentials = errors.New("invalid credentials")
)
