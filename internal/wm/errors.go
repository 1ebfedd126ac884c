package wm

import (
	"errors"
	"fmt"
)

// Errors returned by Manager operations. None of them are fatal: an
// operation that returns one of these left the manager unchanged, and
// callers that only care about the happy path may ignore them.
var (
	// ErrWindowNotFound is returned when a window id is unknown or already closed.
	ErrWindowNotFound = errors.New("window not found")

	// ErrCapabilityDenied is returned when a window's config disables the operation.
	ErrCapabilityDenied = errors.New("capability denied")

	// ErrInvalidState is returned when the window's current state forbids the operation,
	// e.g. dragging a maximized window or maximizing a minimized one.
	ErrInvalidState = errors.New("operation not valid in current window state")

	// ErrInvalidEdge is returned when a resize is started without a valid edge.
	ErrInvalidEdge = errors.New("invalid resize edge")

	// ErrCloseVetoed is returned when a window's close hook refused to close.
	ErrCloseVetoed = errors.New("close vetoed")

	// ErrAppNotRegistered is returned when creating a window for an unknown application.
	ErrAppNotRegistered = errors.New("application not registered")
)

func notFound(id WindowID) error {
	return fmt.Errorf("window %d: %w", id, ErrWindowNotFound)
}

func denied(id WindowID, capability string) error {
	return fmt.Errorf("window %d is not %s: %w", id, capability, ErrCapabilityDenied)
}

func invalidState(id WindowID, state State, op string) error {
	return fmt.Errorf("cannot %s %s window %d: %w", op, state, id, ErrInvalidState)
}
