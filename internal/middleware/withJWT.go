// Package middleware holds the HTTP middleware of the API: the auth gate,
// request logging, panic recovery, gzip and the trusted subnet filter.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/atinyakov/second-brain/internal/app/service"
	"github.com/atinyakov/second-brain/internal/models"
)

// ContextKey is a custom type used for keys in the context.
// It helps prevent collisions in context keys.
type ContextKey string

// UserIDKey is the key used to store and retrieve the user ID from the context.
const UserIDKey ContextKey = "userID"

const bearerPrefix = "Bearer "

// InjectUserID adds the user ID to the request context, making it accessible for
// downstream handlers.
func InjectUserID(req *http.Request, userID string) *http.Request {
	ctx := context.WithValue(req.Context(), UserIDKey, userID)
	return req.WithContext(ctx)
}

// UserIDFromContext returns the identity attached by WithJWT. ok is false
// when the request did not pass the gate.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// TokenFromHeader extracts the raw token from an Authorization header value.
// A leading "Bearer " is optional.
func TokenFromHeader(header string) string {
	header = strings.TrimSpace(header)
	if len(header) >= len(bearerPrefix) && strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		header = strings.TrimSpace(header[len(bearerPrefix):])
	}
	return header
}

// WithJWT is the auth gate. It reads the token from the Authorization header,
// verifies it and attaches the user id to the request context. Missing or
// invalid tokens are rejected with 401. A nil auth rejects every request.
func WithJWT(auth service.AuthIface) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := TokenFromHeader(r.Header.Get("Authorization"))
			if token == "" {
				writeError(w, http.StatusUnauthorized, "missing token")
				return
			}

			if auth == nil {
				writeError(w, http.StatusUnauthorized, "authentication unavailable")
				return
			}

			claims, err := auth.ParseRawJWT(token)
			if err != nil || claims == nil || claims.UserID == "" {
				writeError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, InjectUserID(r, claims.UserID))
		})
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.Response{Success: false, Msg: msg})
}
