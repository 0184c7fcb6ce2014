// Package fault defines the classified error value shared by the
// faults module: a kind identifying the failure category, an
// audience identifying who the message is written for, and the
// message itself.
package fault

import (
	"errors"
	"fmt"
)

// Kind classifies the category of a failure. The enumeration is
// closed; Valid reports membership.
type Kind string

// Kind constants for failure categories.
const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindProcessing Kind = "processing"
	KindInternal   Kind = "internal"
)

// Valid returns true if k is one of the Kind constants.
func (k Kind) Valid() bool {
	switch k {
	case KindValidation, KindNotFound, KindConflict,
		KindProcessing, KindInternal:
		return true
	}
	return false
}

// Audience identifies the intended recipient of a fault message.
// The enumeration is closed; Valid reports membership.
type Audience string

// Audience constants for message recipients.
const (
	// AudienceUser marks messages safe to surface to an end
	// user.
	AudienceUser Audience = "user"

	// AudienceSystem marks messages intended for internal
	// diagnostics.
	AudienceSystem Audience = "system"
)

// Valid returns true if a is one of the Audience constants.
func (a Audience) Valid() bool {
	return a == AudienceUser || a == AudienceSystem
}

// Error is a classified fault. Fields are read-only after
// construction; nothing in this module mutates an Error once it
// has been built.
type Error struct {
	// Kind is the failure category.
	Kind Kind `json:"kind" yaml:"kind"`

	// Audience is who the message is written for.
	Audience Audience `json:"audience" yaml:"audience"`

	// Message is the human-readable description.
	Message string `json:"message" yaml:"message"`
}

// New creates an Error with the given classification and a
// formatted message.
func New(
	kind Kind,
	audience Audience,
	format string,
	args ...any,
) *Error {
	return &Error{
		Kind:     kind,
		Audience: audience,
		Message:  fmt.Sprintf(format, args...),
	}
}

// ForUser creates a user-facing Error of the given kind.
func ForUser(kind Kind, format string, args ...any) *Error {
	return New(kind, AudienceUser, format, args...)
}

// ForSystem creates an internal-diagnostics Error of the given
// kind.
func ForSystem(kind Kind, format string, args ...any) *Error {
	return New(kind, AudienceSystem, format, args...)
}

// From coerces an arbitrary error into an *Error. A wrapped
// *Error is returned as-is; anything else is classified as an
// internal system fault carrying the original message. From
// returns nil for a nil error.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var f *Error
	if errors.As(err, &f) {
		return f
	}
	return ForSystem(KindInternal, "%s", err.Error())
}

// Error renders the fault as "kind/audience: message".
func (e *Error) Error() string {
	return fmt.Sprintf("%s/%s: %s", e.Kind, e.Audience, e.Message)
}
