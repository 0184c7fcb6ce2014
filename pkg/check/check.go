// Package check provides test helpers for asserting that a
// fallible operation produced a fault with the expected kind,
// audience, and message. Every helper halts the current test on
// the first mismatch via Fatalf; sibling tests are unaffected.
package check

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"digital.vasic.faults/pkg/expect"
	"digital.vasic.faults/pkg/fault"
	"digital.vasic.faults/pkg/result"
)

// ErrorEq asserts that res is a failure whose fault matches the
// expected kind, audience, and exact message. Field checks run
// left to right (kind, audience, message) and the first mismatch
// halts the test with its own report.
func ErrorEq[T any](
	t testing.TB,
	res result.Result[T],
	kind fault.Kind,
	audience fault.Audience,
	message string,
) {
	t.Helper()

	f, ok := requireFault(t, res)
	if !ok {
		return
	}
	if !classMatches(t, f, kind, audience) {
		return
	}

	if f.Message != message {
		t.Fatalf(
			"fault message mismatch (-want +got):\n%s",
			cmp.Diff(message, f.Message),
		)
	}
}

// ErrorHasMessage asserts that res is a failure whose fault
// matches the expected kind and audience and carries a non-empty
// message. The message content is not compared; use this when
// the message is a pass-through from a nested failure.
func ErrorHasMessage[T any](
	t testing.TB,
	res result.Result[T],
	kind fault.Kind,
	audience fault.Audience,
) {
	t.Helper()

	f, ok := requireFault(t, res)
	if !ok {
		return
	}
	if !classMatches(t, f, kind, audience) {
		return
	}

	if len(f.Message) == 0 {
		t.Fatalf(
			"fault message is empty, a populated message was expected",
		)
	}
}

// ErrorStartsWith asserts that res is a failure whose fault
// matches the expected kind and audience and whose message
// starts with prefix.
func ErrorStartsWith[T any](
	t testing.TB,
	res result.Result[T],
	kind fault.Kind,
	audience fault.Audience,
	prefix string,
) {
	t.Helper()

	f, ok := requireFault(t, res)
	if !ok {
		return
	}
	if !classMatches(t, f, kind, audience) {
		return
	}

	if !strings.HasPrefix(f.Message, prefix) {
		t.Fatalf(
			"fault message does not start with the expected phrase:\n\twant prefix: %q\n\tgot:         %q",
			prefix, f.Message,
		)
	}
}

// ErrorContains asserts that res is a failure whose fault
// matches the expected kind and audience and whose message
// contains phrase anywhere.
func ErrorContains[T any](
	t testing.TB,
	res result.Result[T],
	kind fault.Kind,
	audience fault.Audience,
	phrase string,
) {
	t.Helper()

	f, ok := requireFault(t, res)
	if !ok {
		return
	}
	if !classMatches(t, f, kind, audience) {
		return
	}

	if !strings.Contains(f.Message, phrase) {
		t.Fatalf(
			"fault message does not contain the expected phrase:\n\twant phrase: %q\n\tgot:         %q",
			phrase, f.Message,
		)
	}
}

// MustOk asserts that res is a success and returns its value,
// halting the test with the fault otherwise.
func MustOk[T any](t testing.TB, res result.Result[T]) T {
	t.Helper()

	if res.IsErr() {
		t.Fatalf(
			"a success was expected, got fault:\n\t%v",
			res.Fault(),
		)
		var zero T
		return zero
	}
	return res.Value()
}

// MustErr asserts that res is a failure and returns its fault,
// halting the test otherwise. Use this when a test needs custom
// assertions beyond the Error* helpers.
func MustErr[T any](
	t testing.TB,
	res result.Result[T],
) *fault.Error {
	t.Helper()

	f, _ := requireFault(t, res)
	return f
}

// Matches asserts that res is a failure satisfying the given
// declarative expectation. The definition is validated first so
// a malformed suite entry fails loudly rather than vacuously
// passing.
func Matches[T any](
	t testing.TB,
	res result.Result[T],
	def expect.Definition,
) {
	t.Helper()

	if err := def.Validate(); err != nil {
		t.Fatalf("invalid expectation %q: %v", def.Name, err)
		return
	}

	f, ok := requireFault(t, res)
	if !ok {
		return
	}

	if passed, explanation := def.Eval(f); !passed {
		t.Fatalf(
			"expectation %q not met: %s", def.Name, explanation,
		)
	}
}

// requireFault reports a fatal failure when res is a success.
// The boolean is false when the check failed, so callers running
// under a non-fatal testing.TB can stop before touching the
// fault.
func requireFault[T any](
	t testing.TB,
	res result.Result[T],
) (*fault.Error, bool) {
	t.Helper()

	if res.IsOk() {
		t.Fatalf(
			"a fault was expected, got success value:\n\t%v",
			res.Value(),
		)
		return nil, false
	}
	return res.Fault(), true
}

// classMatches checks kind then audience, reporting the first
// mismatch.
func classMatches(
	t testing.TB,
	f *fault.Error,
	kind fault.Kind,
	audience fault.Audience,
) bool {
	t.Helper()

	if f.Kind != kind {
		t.Fatalf(
			"fault kind mismatch:\n\twant: %s\n\tgot:  %s",
			kind, f.Kind,
		)
		return false
	}
	if f.Audience != audience {
		t.Fatalf(
			"fault audience mismatch:\n\twant: %s\n\tgot:  %s",
			audience, f.Audience,
		)
		return false
	}
	return true
}
