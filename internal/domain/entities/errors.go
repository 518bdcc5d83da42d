package entities

import "errors"

// ErrUserCancelled signals that the upgrade run should stop without failing.
var ErrUserCancelled = errors.New("cancelled by user")

// CancelledError is a cancellation with the reason shown to the user.
type CancelledError struct {
	Reason string
}

// NewCancelledError creates a cancellation for reason.
func NewCancelledError(reason string) *CancelledError {
	return &CancelledError{Reason: reason}
}

func (e *CancelledError) Error() string {
	if e.Reason == "" {
		return ErrUserCancelled.Error()
	}
	return ErrUserCancelled.Error() + ": " + e.Reason
}

// Is makes errors.Is(err, ErrUserCancelled) hold for every CancelledError.
func (e *CancelledError) Is(target error) bool {
	return target == ErrUserCancelled
}

// IsCancelled reports whether err is a user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrUserCancelled)
}
