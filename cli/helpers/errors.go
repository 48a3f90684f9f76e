package helpers

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrMigrationNeeded is returned by check mode when the document is not
	// in the current schema. It carries no message for the user.
	ErrMigrationNeeded = errors.New("configuration needs migration")

	// ErrInvalidUsage marks flag combinations that cannot work together.
	ErrInvalidUsage = errors.New("invalid usage")
)

// CliError represents a CLI-specific error
type CliError struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   string         `json:"details,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

func (e *CliError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewCliError creates a new CLI error with context
func NewCliError(code, message string, details ...string) *CliError {
	err := &CliError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

// UsageError reports an invalid flag combination.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	return e.Reason
}

func (e *UsageError) Is(target error) bool {
	return target == ErrInvalidUsage
}

// NewUsageError creates a usage error
func NewUsageError(reason string) error {
	return &UsageError{Reason: reason}
}

// IsSilent reports whether err should end the process without a message.
func IsSilent(err error) bool {
	return errors.Is(err, ErrMigrationNeeded)
}
