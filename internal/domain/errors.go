package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// CapacityError means no tier (confirmed, RAC, waitlist) could admit a
// passenger; the whole batch is rejected.
type CapacityError struct {
	Msg string
}

func (e CapacityError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "no tickets available"
}

// ConsistencyError flags an internal bookkeeping failure: a berth type was
// believed to have spare capacity but no free number existed in its range.
type ConsistencyError struct {
	Msg string
	Err error
}

func (e ConsistencyError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "capacity accounting inconsistent"
}

func (e ConsistencyError) Unwrap() error { return e.Err }

// IDGenerationError means every attempt at a unique booking code collided.
type IDGenerationError struct {
	Attempts int
}

func (e IDGenerationError) Error() string {
	return fmt.Sprintf("unable to generate unique booking code after %d attempts", e.Attempts)
}

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsCapacity(err error) bool {
	var target CapacityError
	return errors.As(err, &target)
}

func IsConsistency(err error) bool {
	var target ConsistencyError
	return errors.As(err, &target)
}

func IsIDGeneration(err error) bool {
	var target IDGenerationError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
