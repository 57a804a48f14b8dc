package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fastygo/tasks/domain"
)

func TestIsDomainError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code domain.ErrorCode
		want bool
	}{
		{name: "direct match", err: domain.ErrTaskNotFound, code: domain.ErrCodeNotFound, want: true},
		{name: "wrapped match", err: fmt.Errorf("toggle: %w", domain.ErrTaskNotFound), code: domain.ErrCodeNotFound, want: true},
		{name: "different code", err: domain.ErrInvalidTaskID, code: domain.ErrCodeNotFound, want: false},
		{name: "plain error", err: errors.New("boom"), code: domain.ErrCodeInternal, want: false},
		{name: "nil", err: nil, code: domain.ErrCodeNotFound, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.IsDomainError(tt.err, tt.code))
		})
	}
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, domain.ErrCodeNotFound, domain.CodeOf(domain.ErrTaskNotFound))
	assert.Equal(t, domain.ErrCodeInvalid, domain.CodeOf(fmt.Errorf("x: %w", domain.ErrInvalidPayload)))
	assert.Equal(t, domain.ErrCodeInternal, domain.CodeOf(errors.New("connection refused")))
}

func TestWrapErrorUnwraps(t *testing.T) {
	cause := errors.New("connection reset by peer")
	err := domain.WrapError(domain.ErrCodeInternal, "list tasks", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "list tasks: connection reset by peer", err.Error())
	assert.Equal(t, "task not found", domain.ErrTaskNotFound.Error())
}
