package services

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMessageNotFound    = errors.New("message not found")
	ErrItemNotFound       = errors.New("item not found")
)
