package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthRefreshFailed is matched by every error returned from a failed
	// access token refresh.
	ErrAuthRefreshFailed = errors.New("access token refresh failed")
	// ErrMetricMissing means a snapshot did not carry the rule event.
	ErrMetricMissing = errors.New("metric missing from snapshot")
	// ErrNotFound is returned when a rule does not exist for the caller.
	ErrNotFound = errors.New("automation not found")
	// ErrAccountNotLinked rejects rules for accounts the user does not own.
	ErrAccountNotLinked = errors.New("account not linked to user")
	// ErrPassInProgress is returned when another runner holds the pass lock.
	ErrPassInProgress = errors.New("automation pass already in progress")
)

// AuthRefreshError carries the reason a refresh failed. It matches
// ErrAuthRefreshFailed with errors.Is.
type AuthRefreshError struct {
	Err error
}

func (e *AuthRefreshError) Error() string {
	return fmt.Sprintf("%s: %v", ErrAuthRefreshFailed, e.Err)
}

func (e *AuthRefreshError) Is(target error) bool { return target == ErrAuthRefreshFailed }

func (e *AuthRefreshError) Unwrap() error { return e.Err }

// PlatformError is an application level error reported by the ads
// platform in the response envelope.
type PlatformError struct {
	Op      string
	Status  int
	Message string
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("kwai %s: status %d: %s", e.Op, e.Status, e.Message)
}

// Unauthorized reports whether the platform rejected the access token.
func (e *PlatformError) Unauthorized() bool { return e.Status == 401 }

// ValidationError rejects a rule before it is persisted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
