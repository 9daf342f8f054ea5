package adapter

import "errors"

var (
	ErrUnauthorized      = errors.New("client unauthorized")
	ErrNotFound          = errors.New("resource not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)
