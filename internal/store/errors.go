package store

import "errors"

var (
	ErrDuplicateUser = errors.New("user already exists")
	ErrAuthFailed    = errors.New("invalid username or password")
	ErrUserNotFound  = errors.New("user not found")
	ErrPostNotFound  = errors.New("post not found")
	ErrUnauthorized  = errors.New("not allowed")
	ErrCorruptStore  = errors.New("corrupt data file")
)
