package domain

import "errors"

var (
	ErrIdeaNotFound    = errors.New("idea not found")
	ErrInvalidIdeaID   = errors.New("invalid idea id")
	ErrEmptyIdeaText   = errors.New("idea text is required")
	ErrIdeaTextTooLong = errors.New("idea text is too long")
	ErrInvalidOrder    = errors.New("invalid order")
)
