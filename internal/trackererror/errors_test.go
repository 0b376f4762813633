package trackererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "validation",
			err:  &ValidationError{Field: "amount", Value: "-5", Reason: "must be positive"},
			want: "invalid amount '-5': must be positive",
		},
		{
			name: "reference",
			err:  &ReferenceError{Kind: "account", ID: "acc9"},
			want: "unknown account 'acc9'",
		},
		{
			name: "mode",
			err:  &ModeError{Operation: "account creation", Mode: "DEMO"},
			want: "account creation not permitted in DEMO mode",
		},
		{
			name: "auth",
			err:  &AuthError{Operation: "login", Reason: "invalid email or password"},
			want: "login failed: invalid email or password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorsAs_ThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("recording transaction: %w", &ReferenceError{Kind: "category", ID: "catX"})

	var refErr *ReferenceError
	require.True(t, errors.As(wrapped, &refErr))
	assert.Equal(t, "category", refErr.Kind)
	assert.Equal(t, "catX", refErr.ID)

	var valErr *ValidationError
	assert.False(t, errors.As(wrapped, &valErr))
}
