package module

import (
	"errors"
	"fmt"
)

// Kind classifies registry errors.
type Kind string

const (
	KindDuplicateSlug     Kind = "duplicate_slug"
	KindInvalidDescriptor Kind = "invalid_descriptor"
	KindUnknownModule     Kind = "unknown_module"
)

var (
	ErrDuplicateSlug     = errors.New("module: duplicate slug")
	ErrInvalidDescriptor = errors.New("module: invalid descriptor")
	ErrUnknownModule     = errors.New("module: unknown module")
)

// Error reports a registry failure. It unwraps to the sentinel matching Kind
// so callers can use errors.Is.
type Error struct {
	Kind   Kind
	Slug   string
	Reason string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("module: %s", e.Kind)
	if e.Slug != "" {
		msg += fmt.Sprintf(" %q", e.Slug)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	switch e.Kind {
	case KindDuplicateSlug:
		return ErrDuplicateSlug
	case KindInvalidDescriptor:
		return ErrInvalidDescriptor
	case KindUnknownModule:
		return ErrUnknownModule
	}
	return nil
}
