package common

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound       = errors.New("requested resource not found")
	ErrUnauthorized   = errors.New("unauthorized access")
	ErrBadRequest     = errors.New("bad request")
	ErrInternalServer = errors.New("internal server error")
	ErrValidation     = errors.New("validation failed")

	// Signup taxonomy. These are the only failures surfaced to the user as-is;
	// everything else collapses into ErrUnexpected at the workflow boundary.
	ErrDuplicateEmail            = errors.New("this email is already registered, please login")
	ErrUnknownPlatformUsername   = errors.New("this username does not exist on codeforces")
	ErrUsernameAlreadyRegistered = errors.New("this codeforces username is already registered")
	ErrPermissionDenied          = errors.New("you do not have permission to perform this action")
	ErrPopupCancelled            = errors.New("google sign-in was cancelled")
	ErrUnexpected                = errors.New("an unexpected error occurred")
)

// HTTPStatusFromError maps domain errors to HTTP status codes.
func HTTPStatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrUnauthorized) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrPermissionDenied) {
		return http.StatusForbidden
	}
	if errors.Is(err, ErrBadRequest) || errors.Is(err, ErrValidation) || errors.Is(err, ErrPopupCancelled) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrDuplicateEmail) || errors.Is(err, ErrUsernameAlreadyRegistered) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrUnknownPlatformUsername) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// Errorf creates a new error with formatting, useful for wrapping.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
