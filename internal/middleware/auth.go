package middleware

import (
	"crypto/subtle"
	"net/http"
)

// WithBasicAuth отклоняет запросы с неверной парой key/secret (401).
// Пустой key отключает проверку.
func WithBasicAuth(key, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}
			user, pass, ok := r.BasicAuth()
			if !ok ||
				subtle.ConstantTimeCompare([]byte(user), []byte(key)) != 1 ||
				subtle.ConstantTimeCompare([]byte(pass), []byte(secret)) != 1 {
				w.Header().Set("WWW-Authenticate", `Basic realm="bulkmessages"`)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
