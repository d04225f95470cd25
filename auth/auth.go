// Package auth lifts the model provider credential from the Authorization header.
package auth

import (
	"context"
	"net/http"
	"strings"
)

func New(next http.Handler) *Auth {
	return &Auth{
		Next: next,
	}
}

// Auth never rejects a request. A missing credential is reported by validation,
// alongside a missing URL, so that callers get a single consistent error.
type Auth struct {
	Next http.Handler
}

type credentialContextKey int

const credentialKey credentialContextKey = 0

func GetCredential(r *http.Request) (credential string, ok bool) {
	credential, ok = r.Context().Value(credentialKey).(string)
	return
}

func (a *Auth) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	credential := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
	if credential != "" {
		r = r.WithContext(context.WithValue(r.Context(), credentialKey, credential))
	}
	a.Next.ServeHTTP(w, r)
}
