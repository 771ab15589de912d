package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
}

func TestWithBasicAuth(t *testing.T) {
	h := WithBasicAuth("key", "secret")(okHandler())

	cases := []struct {
		name       string
		user, pass string
		setAuth    bool
		want       int
	}{
		{"valid", "key", "secret", true, http.StatusOK},
		{"wrong secret", "key", "nope", true, http.StatusUnauthorized},
		{"wrong key", "k", "secret", true, http.StatusUnauthorized},
		{"no header", "", "", false, http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/bulkmessages", nil)
			if tc.setAuth {
				req.SetBasicAuth(tc.user, tc.pass)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			if rr.Code != tc.want {
				t.Fatalf("want %d, got %d", tc.want, rr.Code)
			}
		})
	}
}

// Пустой key — проверка отключена
func TestWithBasicAuth_Disabled(t *testing.T) {
	rr := httptest.NewRecorder()
	WithBasicAuth("", "")(okHandler()).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rr.Code)
	}
}
