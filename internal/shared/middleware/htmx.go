package middleware

import (
	"context"
	"net/http"
)

type contextKey string

const (
	htmxKey   contextKey = "htmx"
	targetKey contextKey = "htmx-target"
)

// HTMX marks requests issued by htmx. Responses vary on HX-Request because
// the same URL serves a full page or a fragment.
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "HX-Request")

		isHTMX := r.Header.Get("HX-Request") == "true"
		ctx := context.WithValue(r.Context(), htmxKey, isHTMX)
		if isHTMX {
			ctx = context.WithValue(ctx, targetKey, r.Header.Get("HX-Target"))
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func IsHTMX(r *http.Request) bool {
	if v, ok := r.Context().Value(htmxKey).(bool); ok {
		return v
	}
	return false
}

// Target returns the id of the element htmx will swap, or "".
func Target(r *http.Request) string {
	if v, ok := r.Context().Value(targetKey).(string); ok {
		return v
	}
	return ""
}
