// Package expect provides declarative expected-fault definitions
// that can be written inline or loaded from JSON/YAML suite
// files, then evaluated against a fault.
package expect

import (
	"fmt"
	"strings"

	"digital.vasic.faults/pkg/fault"
)

// Match mode constants for message comparison.
const (
	// MatchExact requires the message to equal the expected
	// text.
	MatchExact = "exact"

	// MatchPresent requires a non-empty message; the content is
	// not compared.
	MatchPresent = "present"

	// MatchPrefix requires the message to start with the
	// expected text.
	MatchPrefix = "prefix"

	// MatchContains requires the expected text to occur
	// anywhere in the message.
	MatchContains = "contains"
)

// Definition describes a single expected fault: its
// classification and how its message should be compared.
type Definition struct {
	// Name identifies the expectation in failure reports.
	Name string `json:"name" yaml:"name"`

	// Kind is the expected failure category.
	Kind fault.Kind `json:"kind" yaml:"kind"`

	// Audience is the expected message recipient.
	Audience fault.Audience `json:"audience" yaml:"audience"`

	// Match is one of the Match* constants. An empty value
	// means MatchExact.
	Match string `json:"match,omitempty" yaml:"match,omitempty"`

	// Message is the expected message text. Ignored when Match
	// is MatchPresent.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// mode returns the effective match mode.
func (d Definition) mode() string {
	if d.Match == "" {
		return MatchExact
	}
	return d.Match
}

// Validate checks that the definition only uses the closed kind,
// audience, and match enumerations, and that modes comparing
// message content have text to compare against.
func (d Definition) Validate() error {
	if !d.Kind.Valid() {
		return fmt.Errorf("unknown kind: %q", d.Kind)
	}
	if !d.Audience.Valid() {
		return fmt.Errorf("unknown audience: %q", d.Audience)
	}

	switch d.mode() {
	case MatchPresent:
	case MatchExact, MatchPrefix, MatchContains:
		if d.Message == "" {
			return fmt.Errorf(
				"match mode %q requires a message", d.mode(),
			)
		}
	default:
		return fmt.Errorf("unknown match mode: %q", d.Match)
	}

	return nil
}

// Eval evaluates the expectation against a fault. It returns
// whether the fault matches and a human-readable explanation.
// Checks run in order: kind, audience, message; the explanation
// describes the first mismatch.
func (d Definition) Eval(f *fault.Error) (bool, string) {
	if f == nil {
		return false, "no fault to evaluate"
	}
	if f.Kind != d.Kind {
		return false, fmt.Sprintf(
			"kind mismatch: want %s, got %s", d.Kind, f.Kind,
		)
	}
	if f.Audience != d.Audience {
		return false, fmt.Sprintf(
			"audience mismatch: want %s, got %s",
			d.Audience, f.Audience,
		)
	}

	switch d.mode() {
	case MatchPresent:
		if len(f.Message) == 0 {
			return false, "message is empty"
		}
	case MatchExact:
		if f.Message != d.Message {
			return false, fmt.Sprintf(
				"message mismatch: want %q, got %q",
				d.Message, f.Message,
			)
		}
	case MatchPrefix:
		if !strings.HasPrefix(f.Message, d.Message) {
			return false, fmt.Sprintf(
				"message does not start with %q: got %q",
				d.Message, f.Message,
			)
		}
	case MatchContains:
		if !strings.Contains(f.Message, d.Message) {
			return false, fmt.Sprintf(
				"message does not contain %q: got %q",
				d.Message, f.Message,
			)
		}
	default:
		return false, fmt.Sprintf(
			"unknown match mode: %q", d.Match,
		)
	}

	return true, "fault matches expectation"
}
