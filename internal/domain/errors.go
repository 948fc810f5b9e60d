package domain

import "errors"

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrUnexpectedStatus   = errors.New("unexpected response status")
	ErrTokenNotFound      = errors.New("token not found in browser storage")
	ErrMissingCredentials = errors.New("missing credentials")
)
