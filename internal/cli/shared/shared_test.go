package shared

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	tests := map[string]struct {
		err  error
		want int
	}{
		"nil error":         {err: nil, want: ExitSuccess},
		"exit error":        {err: NewExitError(ExitSchemaError), want: ExitSchemaError},
		"plain error":       {err: errors.New("boom"), want: ExitValidationFailed},
		"invalid arguments": {err: NewExitError(ExitInvalidArguments), want: ExitInvalidArguments},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestIsExitError(t *testing.T) {
	assert.True(t, IsExitError(NewExitError(1)))
	assert.False(t, IsExitError(errors.New("boom")))
	assert.False(t, IsExitError(nil))
}

func TestNewColors(t *testing.T) {
	colors := NewColors()
	assert.NotNil(t, colors.Green)
	assert.NotEmpty(t, colors.Red(MarkFail))
}
