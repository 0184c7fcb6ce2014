package expect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.faults/pkg/fault"
)

func TestDefinition_Validate(t *testing.T) {
	tests := []struct {
		name    string
		def     Definition
		wantErr string
	}{
		{
			name: "exact match ok",
			def: Definition{
				Kind:     fault.KindValidation,
				Audience: fault.AudienceUser,
				Message:  "name is required",
			},
		},
		{
			name: "present without message ok",
			def: Definition{
				Kind:     fault.KindProcessing,
				Audience: fault.AudienceSystem,
				Match:    MatchPresent,
			},
		},
		{
			name: "unknown kind",
			def: Definition{
				Kind:     fault.Kind("timeout"),
				Audience: fault.AudienceUser,
				Message:  "m",
			},
			wantErr: "unknown kind",
		},
		{
			name: "unknown audience",
			def: Definition{
				Kind:     fault.KindInternal,
				Audience: fault.Audience("admin"),
				Message:  "m",
			},
			wantErr: "unknown audience",
		},
		{
			name: "unknown match mode",
			def: Definition{
				Kind:     fault.KindInternal,
				Audience: fault.AudienceSystem,
				Match:    "regex",
				Message:  "m",
			},
			wantErr: "unknown match mode",
		},
		{
			name: "prefix without message",
			def: Definition{
				Kind:     fault.KindInternal,
				Audience: fault.AudienceSystem,
				Match:    MatchPrefix,
			},
			wantErr: "requires a message",
		},
		{
			name: "exact without message",
			def: Definition{
				Kind:     fault.KindInternal,
				Audience: fault.AudienceSystem,
			},
			wantErr: "requires a message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.def.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDefinition_Eval(t *testing.T) {
	f := fault.ForUser(
		fault.KindValidation, "invalid input: field X",
	)

	tests := []struct {
		name    string
		def     Definition
		passed  bool
		explain string
	}{
		{
			name: "exact pass",
			def: Definition{
				Kind:     fault.KindValidation,
				Audience: fault.AudienceUser,
				Message:  "invalid input: field X",
			},
			passed: true,
		},
		{
			name: "present pass",
			def: Definition{
				Kind:     fault.KindValidation,
				Audience: fault.AudienceUser,
				Match:    MatchPresent,
			},
			passed: true,
		},
		{
			name: "prefix pass",
			def: Definition{
				Kind:     fault.KindValidation,
				Audience: fault.AudienceUser,
				Match:    MatchPrefix,
				Message:  "invalid input",
			},
			passed: true,
		},
		{
			name: "contains pass",
			def: Definition{
				Kind:     fault.KindValidation,
				Audience: fault.AudienceUser,
				Match:    MatchContains,
				Message:  "field X",
			},
			passed: true,
		},
		{
			name: "kind mismatch wins over message",
			def: Definition{
				Kind:     fault.KindNotFound,
				Audience: fault.AudienceSystem,
				Message:  "something else",
			},
			explain: "kind mismatch",
		},
		{
			name: "audience mismatch",
			def: Definition{
				Kind:     fault.KindValidation,
				Audience: fault.AudienceSystem,
				Message:  "invalid input: field X",
			},
			explain: "audience mismatch",
		},
		{
			name: "exact mismatch",
			def: Definition{
				Kind:     fault.KindValidation,
				Audience: fault.AudienceUser,
				Message:  "invalid input",
			},
			explain: "message mismatch",
		},
		{
			name: "prefix not anchored",
			def: Definition{
				Kind:     fault.KindValidation,
				Audience: fault.AudienceUser,
				Match:    MatchPrefix,
				Message:  "input",
			},
			explain: "does not start with",
		},
		{
			name: "contains missing",
			def: Definition{
				Kind:     fault.KindValidation,
				Audience: fault.AudienceUser,
				Match:    MatchContains,
				Message:  "field Y",
			},
			explain: "does not contain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			passed, explanation := tt.def.Eval(f)
			assert.Equal(t, tt.passed, passed)
			if tt.explain != "" {
				assert.Contains(t, explanation, tt.explain)
			}
		})
	}
}

func TestDefinition_Eval_EmptyMessage(t *testing.T) {
	f := fault.ForSystem(fault.KindProcessing, "")
	def := Definition{
		Kind:     fault.KindProcessing,
		Audience: fault.AudienceSystem,
		Match:    MatchPresent,
	}

	passed, explanation := def.Eval(f)
	assert.False(t, passed)
	assert.Contains(t, explanation, "message is empty")
}

func TestDefinition_Eval_NilFault(t *testing.T) {
	def := Definition{
		Kind:     fault.KindInternal,
		Audience: fault.AudienceSystem,
		Match:    MatchPresent,
	}

	passed, explanation := def.Eval(nil)
	assert.False(t, passed)
	assert.Contains(t, explanation, "no fault")
}
