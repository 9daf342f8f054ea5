package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrInvalidToken        = errors.New("token is expired or invalid")

	ErrResetTokenMismatch = errors.New("reset token is missing, stale or does not match")
)
