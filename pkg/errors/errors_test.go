package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without cause",
			err:  NewNotFoundError("room type not found"),
			want: "NOT_FOUND: room type not found",
		},
		{
			name: "with cause",
			err:  NewInternalError("failed to save reservation", stderrors.New("connection reset")),
			want: "INTERNAL: failed to save reservation: connection reset",
		},
		{
			name: "invalid range",
			err:  NewInvalidRangeError("check_out must be after check_in"),
			want: "INVALID_RANGE: check_out must be after check_in",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestIsType_Wrapped(t *testing.T) {
	cause := stderrors.New("dial tcp: connection refused")
	err := fmt.Errorf("dispatch: %w", NewTransportError("email send failed", cause))

	assert.True(t, IsType(err, ErrorTypeTransport))
	assert.False(t, IsType(err, ErrorTypeNotFound))
	assert.ErrorIs(t, err, cause)

	appErr, ok := As(err)
	assert.True(t, ok)
	assert.Equal(t, "email send failed", appErr.Message)
}

func TestIsType_PlainError(t *testing.T) {
	assert.False(t, IsType(stderrors.New("boom"), ErrorTypeInternal))
	assert.False(t, IsType(nil, ErrorTypeInternal))

	_, ok := As(stderrors.New("boom"))
	assert.False(t, ok)
}
