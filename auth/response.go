// Package auth, as part of the authentication module.
// This file, `response.go`, holds the JSON helpers every feature package uses to read
// request bodies and write responses, so errors look the same on every route.
package auth

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/user/cinelog-go/apperror"
	"github.com/user/cinelog-go/logger"
)

// maxBodyBytes caps request bodies; every payload in this API is a handful of fields.
const maxBodyBytes = 1 << 20

// DecodeJSON decodes the request body into dst. An empty body leaves dst untouched so
// the caller's own "required" checks produce the error message.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return apperror.NewBadRequestError("Invalid request body", err)
	}
	return nil
}

// WriteJSON serializes data to JSON and writes it with the given status.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent; all we can do is record it.
		slog.Default().Error("failed to encode response", slog.Any("error", err))
	}
}

// WriteError uses the apperror system to write `{"message": ...}` with the mapped status.
// Server-side failures are logged with their wrapped cause; the cause never reaches the client.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("Internal server error", err)
	}

	status := appErr.StatusCode()
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(appErr.Message,
			slog.String("error_type", appErr.Type.String()),
			slog.Any("error", appErr.Err),
		)
	} else {
		log.Debug(appErr.Message, slog.Int("status", status))
	}

	WriteJSON(w, status, appErr.ToResponse())
}
