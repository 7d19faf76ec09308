package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestToHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, http.StatusOK},
		{"empty update", ErrEmptyUpdate, http.StatusBadRequest},
		{"invalid status", ErrInvalidStatus, http.StatusBadRequest},
		{"auth required", ErrAuthRequired, http.StatusUnauthorized},
		{"invalid credentials", ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", ErrTokenExpired, http.StatusUnauthorized},
		{"forbidden", ErrForbidden, http.StatusForbidden},
		{"user not found", ErrUserNotFound, http.StatusNotFound},
		{"report not found", ErrReportNotFound, http.StatusNotFound},
		{"email exists", ErrEmailExists, http.StatusConflict},
		{"case number exists", ErrCaseNumberExists, http.StatusConflict},
		{"service unavailable", ErrServiceUnavailable, http.StatusServiceUnavailable},
		{"internal", ErrInternal, http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped sentinel", WrapError(ErrReportNotFound, errors.New("record not found")), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToHTTPStatus(tt.err); got != tt.want {
				t.Errorf("ToHTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWrappedSentinelMatchesErrorsIs(t *testing.T) {
	wrapped := WrapError(ErrInvalidToken, errors.New("bad signature"))

	if !errors.Is(wrapped, ErrInvalidToken) {
		t.Error("wrapped sentinel should match the sentinel")
	}
	if errors.Is(wrapped, ErrTokenExpired) {
		t.Error("wrapped sentinel should not match a different code")
	}
}

func TestGetErrorMessage_HidesWrappedInternals(t *testing.T) {
	wrapped := WrapError(ErrInternal, errors.New("dial tcp 10.0.0.1:5432: connection refused"))

	got := GetErrorMessage(wrapped)
	if got != ErrInternal.Message {
		t.Errorf("GetErrorMessage() = %q, want %q", got, ErrInternal.Message)
	}
}
