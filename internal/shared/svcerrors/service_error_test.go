package svcerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr *ServiceError
		wantOk  bool
	}{
		{
			name:    "nil input",
			err:     nil,
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "regular error",
			err:     errors.New("x"),
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "direct ServiceError",
			err:     NewInvalidArgumentError("RPT_1000", "validation failed", nil),
			wantErr: NewInvalidArgumentError("RPT_1000", "validation failed", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped ServiceError",
			err:     fmt.Errorf("wrap: %w", NewInternalError("RPT_9000", nil)),
			wantErr: NewInternalError("RPT_9000", nil),
			wantOk:  true,
		},
		{
			name:    "not found ServiceError",
			err:     NewNotFoundError("RPT_1001", "project not found", nil),
			wantErr: NewNotFoundError("RPT_1001", "project not found", nil),
			wantOk:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr, gotOk := AsServiceError(tt.err)

			assert.Equal(t, tt.wantOk, gotOk, "AsServiceError() ok value mismatch")

			if tt.wantErr == nil {
				assert.Nil(t, gotErr, "AsServiceError() should return nil error")
			} else {
				require.NotNil(t, gotErr, "AsServiceError() should return non-nil error")
				assert.Equal(t, tt.wantErr.Category, gotErr.Category, "Category mismatch")
				assert.Equal(t, tt.wantErr.Code, gotErr.Code, "Code mismatch")
				assert.Equal(t, tt.wantErr.Message, gotErr.Message, "Message mismatch")
				assert.Equal(t, tt.wantErr.HttpStatusCode, gotErr.HttpStatusCode, "HttpStatusCode mismatch")
			}
		})
	}
}

func TestServiceError_IsInternalError(t *testing.T) {
	assert.True(t, NewInternalError("RPT_9000", nil).IsInternalError())
	assert.False(t, NewInvalidArgumentError("RPT_1000", "bad", nil).IsInternalError())
	assert.False(t, NewNotFoundError("RPT_1001", "missing", nil).IsInternalError())
}
