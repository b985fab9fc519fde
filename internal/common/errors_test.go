package common

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{ErrNotFound, http.StatusNotFound},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrPermissionDenied, http.StatusForbidden},
		{ErrBadRequest, http.StatusBadRequest},
		{ErrValidation, http.StatusBadRequest},
		{ErrPopupCancelled, http.StatusBadRequest},
		{ErrDuplicateEmail, http.StatusConflict},
		{ErrUsernameAlreadyRegistered, http.StatusConflict},
		{ErrUnknownPlatformUsername, http.StatusUnprocessableEntity},
		{ErrUnexpected, http.StatusInternalServerError},
		{errors.New("anything else"), http.StatusInternalServerError},
		{Errorf("wrapped: %w", ErrDuplicateEmail), http.StatusConflict},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, HTTPStatusFromError(tc.err))
	}
}
