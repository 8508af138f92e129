package curtain

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrQuit indicates the user closed the window or asked to leave.
	// This is normal flow control, not an infrastructure failure.
	ErrQuit = errors.New("quit requested by user")
)

// InfrastructureError represents a failure below the transition logic:
// the window could not be created, the renderer failed, a frame could not
// be written. The transition engine itself never produces errors.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "create_window", "draw_overlay")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("curtain: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("curtain: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsQuit checks if an error indicates the user quit.
func IsQuit(err error) bool {
	return errors.Is(err, ErrQuit)
}
