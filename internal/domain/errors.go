package domain

import "errors"

var (
	ErrWindowNotFound     = errors.New("window not found")
	ErrWindowExists       = errors.New("window already exists")
	ErrInvalidOpenContext = errors.New("invalid open context")
	ErrInvalidCasePolicy  = errors.New("invalid case policy")
)
