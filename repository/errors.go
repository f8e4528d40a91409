package repository

import "errors"

// Common repository errors
var (
	ErrBoardNotFound = errors.New("no such board")
	ErrIdeaNotFound  = errors.New("no such idea")
	ErrUserNotFound  = errors.New("no such user")

	// ErrSessionNotFound is returned for unknown, ended or expired sessions
	ErrSessionNotFound = errors.New("session not found")

	ErrContentTooLong = errors.New("limit ideas to 140 characters")
	ErrInvalidIdea    = errors.New("invalid idea")
	ErrInvalidBoard   = errors.New("invalid board")
	ErrInvalidUser    = errors.New("invalid user")

	// ErrNoUpvotes keeps upvote counts from going negative
	ErrNoUpvotes = errors.New("idea has no upvotes to remove")

	ErrUsernameTaken = errors.New("username already exists")

	// ErrBoardCodeExhausted means every generated code collided with an existing board
	ErrBoardCodeExhausted = errors.New("could not allocate a unique board code")
)
