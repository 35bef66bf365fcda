package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/aussiebroadwan/artistportal/pkg/httpx"
	"github.com/aussiebroadwan/artistportal/pkg/portalsdk"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

// apiError is a client facing failure with a fixed status and message.
type apiError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e apiError) write(w http.ResponseWriter) {
	httpx.WriteError(w, e.StatusCode, e.Code, e.Message)
}

// writeWithDetails writes e with per-field validation reasons.
func (e apiError) writeWithDetails(w http.ResponseWriter, details map[string]string) {
	httpx.WriteJSON(w, e.StatusCode, httpx.ErrorResponse{
		Error:   e.Message,
		Code:    e.Code,
		Details: details,
	})
}

var (
	errInvalidBody   = apiError{http.StatusBadRequest, portalsdk.ErrorCodeValidation, "Invalid request body"}
	errLoginFields   = apiError{http.StatusBadRequest, portalsdk.ErrorCodeValidation, "Email and password are required"}
	errAllFields     = apiError{http.StatusBadRequest, portalsdk.ErrorCodeValidation, "All fields are required"}
	errInvalidFields = apiError{http.StatusBadRequest, portalsdk.ErrorCodeValidation, "One or more fields are invalid"}
	errInvalidID     = apiError{http.StatusBadRequest, portalsdk.ErrorCodeValidation, "Invalid user id"}

	errInvalidCredentials = apiError{http.StatusUnauthorized, portalsdk.ErrorCodeInvalidCreds, "Invalid credentials"}
	errCurrentPassword    = apiError{http.StatusUnauthorized, portalsdk.ErrorCodeInvalidCreds, "Current password is incorrect"}
	errUnauthorized       = apiError{http.StatusUnauthorized, portalsdk.ErrorCodeUnauthorized, "Authentication required"}

	errForbidden = apiError{http.StatusForbidden, portalsdk.ErrorCodeForbidden, "Access denied"}

	errUserNotFound  = apiError{http.StatusNotFound, portalsdk.ErrorCodeNotFound, "User not found"}
	errRouteNotFound = apiError{http.StatusNotFound, portalsdk.ErrorCodeNotFound, "Not found"}

	errDatabase = apiError{http.StatusInternalServerError, portalsdk.ErrorCodeServerError, "Database error"}
	errInternal = apiError{http.StatusInternalServerError, portalsdk.ErrorCodeServerError, "Internal server error"}
)

// fieldsError picks the message for a failed Validate: missing fields take
// precedence over malformed ones.
func fieldsError(details map[string]string) apiError {
	for _, reason := range details {
		if reason == portalsdk.ReasonRequired {
			return errAllFields
		}
	}
	return errInvalidFields
}

// decodeBody reads a JSON request body into dst. Unknown fields are
// ignored; trailing data is not.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}
