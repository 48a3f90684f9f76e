package migration

import (
	"errors"
	"fmt"
)

var (
	// ErrContractViolation marks a migration used against its own
	// preconditions. It points at a defect in rule registration, never at bad
	// user input.
	ErrContractViolation = errors.New("migration contract violation")

	// ErrNoFixpoint is returned when passes keep changing the document past
	// the configured limit, which means two rules undo each other.
	ErrNoFixpoint = errors.New("migration did not reach a fixed point")
)

// ContractError reports which migration broke its contract.
type ContractError struct {
	Migration string
	Reason    string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: %s", e.Migration, e.Reason)
}

func (e *ContractError) Is(target error) bool {
	return target == ErrContractViolation
}
