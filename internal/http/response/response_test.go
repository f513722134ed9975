package response_test

import (
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/clinic-scheduler/internal/http/response"
)

func TestOKWithData(t *testing.T) {
	resp := response.OKWithData(map[string]any{"message": "done"})

	assert.Equal(t, response.StatusOK, resp.Status)
	assert.Empty(t, resp.Error)
	assert.Equal(t, map[string]any{"message": "done"}, resp.Data)
}

func TestError(t *testing.T) {
	resp := response.Error("something failed")

	assert.Equal(t, response.StatusError, resp.Status)
	assert.Equal(t, "something failed", resp.Error)
}

func TestValidationError(t *testing.T) {
	type request struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=6"`
	}

	validate := validator.New()

	tests := []struct {
		name    string
		req     request
		wantMsg string
	}{
		{
			name:    "missing required field",
			req:     request{Email: "user@example.com"},
			wantMsg: "field Password is a required field",
		},
		{
			name:    "malformed email",
			req:     request{Email: "not-an-email", Password: "secret1"},
			wantMsg: "field Email must be a valid email",
		},
		{
			name:    "too short password",
			req:     request{Email: "user@example.com", Password: "abc"},
			wantMsg: "field Password is too short",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.req)
			require.Error(t, err)

			resp := response.ValidationError(err.(validator.ValidationErrors))

			assert.Equal(t, response.StatusError, resp.Status)
			assert.Contains(t, resp.Error, tt.wantMsg)
		})
	}
}
