package register

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/clinic-scheduler/internal/http/response"
	"github.com/magabrotheeeer/clinic-scheduler/internal/services/auth"
	"github.com/magabrotheeeer/clinic-scheduler/internal/storage"
)

// Мок сервиса с методом Register
type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Register(ctx context.Context, req auth.RegisterRequest) (int, error) {
	args := m.Called(ctx, req)
	return args.Int(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestRegisterHandler_ServeHTTP(t *testing.T) {
	validBody := Request{
		Fullname:   "Ana",
		Email:      "ana@x.com",
		NationalID: "111",
		Phone:      "555",
		Password:   "p1secret",
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		mockErr        error
		mockCalled     bool
		wantStatusCode int
		wantError      string
		wantStatus     string
	}{
		{
			name:           "valid registration",
			requestBody:    validBody,
			mockCalled:     true,
			wantStatusCode: http.StatusCreated,
			wantStatus:     response.StatusOK,
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid request body",
			wantStatus:     response.StatusError,
		},
		{
			name: "validation error - missing password",
			requestBody: Request{
				Fullname:   "Ana",
				Email:      "ana@x.com",
				NationalID: "111",
				Phone:      "555",
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "field Password is a required field",
			wantStatus:     response.StatusError,
		},
		{
			name: "validation error - malformed email",
			requestBody: Request{
				Fullname:   "Ana",
				Email:      "not-an-email",
				NationalID: "111",
				Phone:      "555",
				Password:   "p1secret",
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "field Email must be a valid email",
			wantStatus:     response.StatusError,
		},
		{
			name:           "duplicate email or national id",
			requestBody:    validBody,
			mockErr:        storage.ErrDuplicateUser,
			mockCalled:     true,
			wantStatusCode: http.StatusBadRequest,
			wantError:      "email or national id already registered",
			wantStatus:     response.StatusError,
		},
		{
			name:           "store error",
			requestBody:    validBody,
			mockErr:        errors.New("connection reset"),
			mockCalled:     true,
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "failed to register user",
			wantStatus:     response.StatusError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(ServiceMock)
			handler := New(newNoopLogger(), serviceMock)

			if tt.mockCalled {
				serviceMock.On("Register", mock.Anything, mock.Anything).
					Return(1, tt.mockErr).Once()
			}

			var bodyBytes []byte
			var err error
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, err = json.Marshal(tt.requestBody)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(bodyBytes))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var resp response.Response
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.wantStatus, resp.Status)
			if tt.wantError != "" {
				assert.Contains(t, resp.Error, tt.wantError)
			}

			serviceMock.AssertExpectations(t)
			if !tt.mockCalled {
				serviceMock.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
			}
		})
	}
}

// Пароль не должен попадать в тело ответа даже при успешной регистрации.
func TestRegisterHandler_NoSensitiveDataEchoed(t *testing.T) {
	serviceMock := new(ServiceMock)
	handler := New(newNoopLogger(), serviceMock)

	serviceMock.On("Register", mock.Anything, mock.Anything).Return(1, nil).Once()

	body, err := json.Marshal(Request{
		Fullname:   "Ana",
		Email:      "ana@x.com",
		NationalID: "111",
		Phone:      "555",
		Password:   "p1secret",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "p1secret")
}
