package model

import "errors"

var (
	ErrDatabaseNotConfigured = errors.New("database is not configured")
	ErrDatabaseUnavailable   = errors.New("database unavailable")
	ErrServiceUnavailable    = errors.New("service unavailable")
)
