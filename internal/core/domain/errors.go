package domain

import "errors"

var (
	ErrUsernameTaken      = errors.New("a user with this username already exists")
	ErrMailTaken          = errors.New("this mail is already in use")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrUserNotFound       = errors.New("unable to find user")
	ErrCardNotFound       = errors.New("card not found")
	ErrInvalidCardID      = errors.New("invalid card id")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrInternal           = errors.New("internal server error")
)
