package handlers

import (
	"context"
	"encoding/json"
	"net/http"
)

type contextKey string

const ownerKey contextKey = "owner"

// RequireAuth resolves the X-Auth-Token header to a user ID and puts
// it on the request context.
func (d *Deps) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("X-Auth-Token")
		if token == "" {
			jsonError(w, "No token, authorization denied", http.StatusUnauthorized)
			return
		}
		userID, ok := d.Tokens.Resolve(token)
		if !ok {
			jsonError(w, "Token is not valid", http.StatusUnauthorized)
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), ownerKey, userID)))
	}
}

func owner(r *http.Request) string {
	id, _ := r.Context().Value(ownerKey).(string)
	return id
}

// --- JSON helpers ---

func jsonOK(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
