package service

import (
	"sort"
	"strings"
)

// Business-rule failures are typed so the HTTP layer can map each one to a
// specific response with errors.As. Anything else that escapes a service is
// an infrastructure failure and surfaces as a generic internal error.

// NotFoundError: the referenced entity (or any matching row) does not exist.
type NotFoundError struct{ Msg string }

func (e *NotFoundError) Error() string { return e.Msg }

func NewNotFound(msg string) error { return &NotFoundError{Msg: msg} }

// InsufficientStockError: the requested decrement would drive stock negative.
type InsufficientStockError struct{ Msg string }

func (e *InsufficientStockError) Error() string { return e.Msg }

func NewInsufficientStock(msg string) error { return &InsufficientStockError{Msg: msg} }

// InvalidOperationError: a structurally invalid business request, e.g. a
// zero-quantity stock adjustment.
type InvalidOperationError struct{ Msg string }

func (e *InvalidOperationError) Error() string { return e.Msg }

func NewInvalidOperation(msg string) error { return &InvalidOperationError{Msg: msg} }

// InvalidEntityError carries field-level validation messages.
type InvalidEntityError struct{ Fields map[string]string }

func (e *InvalidEntityError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		msgs = append(msgs, field+": "+e.Fields[field])
	}
	sort.Strings(msgs)
	return strings.Join(msgs, ", ")
}

func NewInvalidEntity(fields map[string]string) error { return &InvalidEntityError{Fields: fields} }
