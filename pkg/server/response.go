package server

import (
	"encoding/json"
	"net/http"

	fterrors "github.com/matzehuels/textframe/pkg/errors"
)

// Response is the body of a successful invocation.
type Response struct {
	Result json.RawMessage `json:"result"`
}

// ErrorBody is the body of a failed request.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the error code and a user-facing message.
type ErrorDetail struct {
	Code    fterrors.Code `json:"code"`
	Message string        `json:"message"`
}

// statusFor maps an error code to an HTTP status.
func statusFor(err error) int {
	switch fterrors.GetCode(err) {
	case fterrors.ErrCodeInvalidInput,
		fterrors.ErrCodeInvalidEncoding,
		fterrors.ErrCodeInvalidArgs:
		return http.StatusBadRequest
	case fterrors.ErrCodeCommandNotFound:
		return http.StatusNotFound
	case fterrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	code := fterrors.GetCode(err)
	if code == "" {
		code = fterrors.ErrCodeInternal
	}
	writeJSON(w, status, ErrorBody{Error: ErrorDetail{Code: code, Message: fterrors.UserMessage(err)}})
}
