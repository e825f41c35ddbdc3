package auth

import "errors"

var (
	// ErrInvalidCredentials is returned when the username or password does not match
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrWrongPassword is returned by ChangePassword when the current password does not match
	ErrWrongPassword = errors.New("current password is incorrect")

	// ErrPasswordTooShort is returned when a new password has fewer than MinPasswordLength characters
	ErrPasswordTooShort = errors.New("new password is too short")

	// ErrPasswordMismatch is returned when the confirmation differs from the new password
	ErrPasswordMismatch = errors.New("password confirmation does not match")
)
