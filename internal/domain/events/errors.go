package events

import "errors"

var (
	ErrEventNotFound = errors.New("event not found")
	ErrEventPast     = errors.New("cannot book tickets for past events")
	ErrInvalidTitle  = errors.New("title must not be empty")
)
