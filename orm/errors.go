package orm

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a query expects a row but finds none.
	ErrNotFound = errors.New("orm: not found")

	// ErrImproperlyConfigured is returned when a query cannot run because the
	// model metadata is incomplete, e.g. Latest without a default field.
	ErrImproperlyConfigured = errors.New("orm: improperly configured")

	// ErrUnknownField is returned when a field name does not match any column.
	ErrUnknownField = errors.New("orm: unknown field")

	// ErrSlicedQuery is returned by First and Latest when Limit or Offset has
	// already been applied.
	ErrSlicedQuery = errors.New("orm: cannot take a bound once a slice has been taken")
)

// NotFoundError is the per-table form of ErrNotFound.
//
//	var nf *orm.NotFoundError
//	if errors.As(err, &nf) && nf.Table == "articles" { ... }
type NotFoundError struct {
	Table string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("orm: %s: not found", e.Table)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ConfigError reports a model metadata problem. It matches
// ErrImproperlyConfigured.
type ConfigError struct {
	Table  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("orm: %s: %s", e.Table, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrImproperlyConfigured }

// FieldError reports a field name that is not a column of Table.
// It matches ErrUnknownField.
type FieldError struct {
	Table string
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("orm: %s: unknown field %q", e.Table, e.Field)
}

func (e *FieldError) Unwrap() error { return ErrUnknownField }
