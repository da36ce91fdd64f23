package blockkit

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel error kinds. Every construction or validation failure wraps exactly
// one of these, so callers can branch with errors.Is.
var (
	// ErrIncomplete indicates a required field was never set.
	ErrIncomplete = errors.New("incomplete configuration")

	// ErrInvariant indicates mutually exclusive fields were both (or neither) set,
	// or a value is inconsistent with the node's variant.
	ErrInvariant = errors.New("invariant violation")

	// ErrUnknownType indicates a wire "type" discriminator that names no known variant.
	ErrUnknownType = errors.New("unknown type")
)

// FieldError describes a construction or validation failure on a single node.
type FieldError struct {
	Node   string   // Wire type of the offending node, e.g. "button" or "confirm"
	Fields []string // Wire names of the fields involved
	Kind   error    // One of ErrIncomplete, ErrInvariant, ErrUnknownType
	Detail string   // Optional human-readable detail
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	var b strings.Builder
	b.WriteString(e.Node)
	b.WriteString(": ")
	b.WriteString(e.Kind.Error())
	if len(e.Fields) > 0 {
		if e.Kind == ErrIncomplete {
			b.WriteString(": missing ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(strings.Join(e.Fields, ", "))
	}
	if e.Detail != "" {
		b.WriteString(" (")
		b.WriteString(e.Detail)
		b.WriteString(")")
	}
	return b.String()
}

// Unwrap returns the error kind so errors.Is works against the sentinels.
func (e *FieldError) Unwrap() error {
	return e.Kind
}

// Missing returns an ErrIncomplete error for node naming every missing field.
// Returns nil when fields is empty, which lets callers accumulate then return.
func Missing(node string, fields ...string) error {
	if len(fields) == 0 {
		return nil
	}
	return &FieldError{Node: node, Fields: fields, Kind: ErrIncomplete}
}

// Conflict returns an ErrInvariant error for node.
func Conflict(node, detail string, fields ...string) error {
	return &FieldError{Node: node, Fields: fields, Kind: ErrInvariant, Detail: detail}
}

func unknownType(family, typ string) error {
	return &FieldError{Node: family, Kind: ErrUnknownType, Detail: fmt.Sprintf("%q", typ)}
}

// IsIncomplete reports whether err stems from a missing required field.
func IsIncomplete(err error) bool {
	return errors.Is(err, ErrIncomplete)
}

// IsInvariantViolation reports whether err stems from an exclusivity or tag violation.
func IsInvariantViolation(err error) bool {
	return errors.Is(err, ErrInvariant)
}

// IsUnknownType reports whether err stems from an unrecognised type discriminator.
func IsUnknownType(err error) bool {
	return errors.Is(err, ErrUnknownType)
}

// requiredFields is a small accumulator used by Validate methods.
type requiredFields []string

func (r *requiredFields) check(ok bool, name string) {
	if !ok {
		*r = append(*r, name)
	}
}

func (r requiredFields) err(node string) error {
	return Missing(node, r...)
}

// at prefixes a nested validation error with its location in the tree.
func at(path string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", path, err)
}

func atIndex(path string, i int, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s[%d]: %w", path, i, err)
}
