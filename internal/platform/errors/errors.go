package apperrors

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidData   = errors.New("invalid garden data")
	ErrLocked        = errors.New("another botanist process holds the lock")
	ErrAlreadyActive = errors.New("session already started; use finish first")
	ErrNotStarted    = errors.New("no active session; use start first")
	ErrAlreadyPaused = errors.New("session is already paused; use resume first")
	ErrNotPaused     = errors.New("session is not paused")
	ErrStillPaused   = errors.New("session is paused; resume before finishing")
	ErrCorruptMarker = errors.New("active session marker is unreadable")
)
