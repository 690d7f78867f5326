// Package handler contains the HTTP handlers of the second brain API. It
// decodes JSON bodies, calls the services with the identity attached by the
// auth gate and maps service errors to status codes.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/atinyakov/second-brain/internal/app/service"
	"github.com/atinyakov/second-brain/internal/models"
	"github.com/atinyakov/second-brain/internal/storage"
)

// requestTimeout bounds every storage round trip made on behalf of a request.
const requestTimeout = 3 * time.Second

// malformedRequest represents an error with a malformed HTTP request.
type malformedRequest struct {
	status int    // HTTP status code for the error
	msg    string // Error message
}

// Error returns the error message for a malformed request.
func (mr *malformedRequest) Error() string {
	return mr.msg
}

// decodeJSONBody decodes a JSON request body into the given destination struct.
// It reads the content from the request body, checks for proper JSON formatting,
// and handles common errors related to JSON parsing.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	ct := r.Header.Get("Content-Type")
	if ct != "" {
		mediaType := strings.ToLower(strings.TrimSpace(strings.Split(ct, ";")[0]))
		if mediaType != "application/json" {
			msg := "Content-Type header is not application/json"
			return &malformedRequest{status: http.StatusUnsupportedMediaType, msg: msg}
		}
	}

	// Limit the size of the request body to 1MB
	r.Body = http.MaxBytesReader(w, r.Body, 1048576)

	// Decode the JSON body into the destination struct
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError

		switch {
		case errors.As(err, &syntaxError):
			msg := fmt.Sprintf("Request body contains badly-formed JSON (at position %d)", syntaxError.Offset)
			return &malformedRequest{status: http.StatusBadRequest, msg: msg}

		case errors.Is(err, io.ErrUnexpectedEOF):
			msg := "Request body contains badly-formed JSON"
			return &malformedRequest{status: http.StatusBadRequest, msg: msg}

		case errors.As(err, &unmarshalTypeError):
			msg := fmt.Sprintf("Request body contains an invalid value for the %q field (at position %d)", unmarshalTypeError.Field, unmarshalTypeError.Offset)
			return &malformedRequest{status: http.StatusBadRequest, msg: msg}

		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			msg := fmt.Sprintf("Request body contains unknown field %s", fieldName)
			return &malformedRequest{status: http.StatusBadRequest, msg: msg}

		case errors.Is(err, io.EOF):
			msg := "Request body must not be empty"
			return &malformedRequest{status: http.StatusBadRequest, msg: msg}

		case err.Error() == "http: request body too large":
			msg := "Request body must not be larger than 1MB"
			return &malformedRequest{status: http.StatusRequestEntityTooLarge, msg: msg}

		default:
			return err
		}
	}

	// Ensure the body only contains a single JSON object
	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		msg := "Request body must only contain a single JSON object"
		return &malformedRequest{status: http.StatusBadRequest, msg: msg}
	}

	return nil
}

// writeJSON encodes v with the given status.
func writeJSON(res http.ResponseWriter, status int, v any) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(status)
	_ = json.NewEncoder(res).Encode(v)
}

func writeMessage(res http.ResponseWriter, status int, msg string) {
	writeJSON(res, status, models.Response{Success: status < http.StatusBadRequest, Msg: msg})
}

// writeDecodeError reports a body that could not be decoded.
func writeDecodeError(res http.ResponseWriter, err error, logger *zap.Logger) {
	var mr *malformedRequest
	if errors.As(err, &mr) {
		writeMessage(res, mr.status, mr.msg)
		return
	}

	logger.Error("cannot decode request body", zap.Error(err))
	writeMessage(res, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// writeServiceError maps a service or storage error to its status code.
// Unexpected errors are logged and answered with a generic 500.
func writeServiceError(res http.ResponseWriter, err error, logger *zap.Logger) {
	var verr *service.ValidationError

	switch {
	case errors.As(err, &verr):
		writeMessage(res, http.StatusBadRequest, verr.Error())
	case errors.Is(err, service.ErrValidation):
		writeMessage(res, http.StatusBadRequest, service.ErrValidation.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		writeMessage(res, http.StatusBadRequest, "invalid credentials")
	case errors.Is(err, service.ErrInvalidToken):
		writeMessage(res, http.StatusUnauthorized, "invalid token")
	case errors.Is(err, service.ErrForbidden):
		writeMessage(res, http.StatusForbidden, "forbidden")
	case errors.Is(err, storage.ErrNotFound):
		writeMessage(res, http.StatusNotFound, "not found")
	case errors.Is(err, storage.ErrConflict):
		writeMessage(res, http.StatusConflict, "already exists")
	default:
		logger.Error("request failed", zap.Error(err))
		writeMessage(res, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}
