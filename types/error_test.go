package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Message(t *testing.T) {
	t.Parallel()

	err := NewError(ErrResourceNotFound, "iris.csv missing")
	assert.Equal(t, `[RESOURCE_NOT_FOUND] iris.csv missing`, err.Error())
}

func TestError_MessageWithCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("stat failed")
	err := NewError(ErrResourceNotFound, "iris.csv missing").WithCause(cause)

	assert.Contains(t, err.Error(), "RESOURCE_NOT_FOUND")
	assert.Contains(t, err.Error(), "stat failed")
	assert.ErrorIs(t, err, cause)
}

func TestErrorf_FormatsMessage(t *testing.T) {
	t.Parallel()

	err := Errorf(ErrTargetNotFound, "column %q missing", "sales")
	assert.Equal(t, `[TARGET_NOT_FOUND] column "sales" missing`, err.Error())
}

func TestGetErrorCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"direct", NewError(ErrModuleNotFound, "x"), ErrModuleNotFound},
		{"wrapped", fmt.Errorf("loading: %w", NewError(ErrMalformedTable, "x")), ErrMalformedTable},
		{"plain error", errors.New("boom"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetErrorCode(tt.err))
		})
	}
}

func TestIsCode(t *testing.T) {
	t.Parallel()

	err := Errorf(ErrTargetIndexOutOfRange, "index %d", 9)
	require.True(t, IsCode(err, ErrTargetIndexOutOfRange))
	assert.False(t, IsCode(err, ErrTargetNotFound))
	assert.False(t, IsCode(nil, ErrTargetNotFound))
}
