package model

import "errors"

var (
	ErrProfileNotFound = errors.New("techfolio profile is not configured")
	ErrContactRequired = errors.New("name and email are required")
	ErrInvalidEmail    = errors.New("invalid email address")
)
