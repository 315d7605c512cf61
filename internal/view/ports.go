// Package view defines the display port the tracker drives and a headless
// implementation of it.
//
// The headless Table keeps rows as the raw strings a form would hold and
// dispatches the same events a browser would: the "New Entry" click, a
// committed field change and a delete click.
package view

import (
	"errors"
	"fmt"
	"strings"

	"budget/internal/core"
)

const (
	FieldDate        Field = "date"
	FieldDescription Field = "description"
	FieldType        Field = "type"
	FieldAmount      Field = "amount"
)

type (
	// Field names one input of an entry row.
	Field string

	// RowRef is an opaque handle to a rendered row. Refs are never reused.
	RowRef uint64

	// Subscription is a registered listener. Unsubscribe is idempotent.
	Subscription interface {
		Unsubscribe()
	}

	// View is the port the tracker operates against.
	View interface {
		// RenderRows replaces every row with entries, in order.
		RenderRows(entries []core.Entry) []RowRef
		AppendRow(e core.Entry) RowRef
		RemoveRow(ref RowRef) error
		// ReadRows returns the current rows coerced into entries.
		ReadRows() []core.Entry
		SetTotalDisplay(text string)

		// OnNewEntry subscribes to the creation control.
		OnNewEntry(fn func()) Subscription
		// OnChange subscribes to committed changes of any field of ref. fn
		// receives the field that changed.
		OnChange(ref RowRef, fn func(Field)) (Subscription, error)
		// OnDelete subscribes to the delete control of ref.
		OnDelete(ref RowRef, fn func(RowRef)) (Subscription, error)
	}

	// Host resolves a selector to a container and mounts a fresh view in it,
	// discarding whatever the container held.
	Host interface {
		Mount(selector string) (View, error)
	}
)

var (
	ErrContainerNotFound = errors.New("container not found")
	ErrUnknownRow        = errors.New("unknown row")
	ErrUnknownField      = errors.New("unknown field")
)

// Fields lists the row inputs in column order.
var Fields = []Field{FieldDate, FieldDescription, FieldType, FieldAmount}

func ParseField(s string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Fields {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}

func (f Field) String() string {
	return string(f)
}

type subscription func()

func (s subscription) Unsubscribe() {
	s()
}
