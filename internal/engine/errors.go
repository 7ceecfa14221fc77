package engine

import (
	"errors"
	"fmt"
)

// NotFoundError reports that a specific record was expected but is absent.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Kind)
	}
	return fmt.Sprintf("%s '%s' not found", e.Kind, e.ID)
}

// ValidationError is returned before any mutation when input breaks a rule.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// PersistError wraps a storage failure. When returned from CompleteQuest the
// reward was computed but the profile was not saved.
type PersistError struct {
	Op  string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }

// CorruptProfileError means a stored profile does not hold exactly the five
// known categories.
type CorruptProfileError struct {
	Reason string
}

func (e CorruptProfileError) Error() string {
	return "corrupt hunter profile: " + e.Reason
}

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

func IsPersist(err error) bool {
	var pe *PersistError
	return errors.As(err, &pe)
}

func persistErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistError{Op: op, Err: err}
}
