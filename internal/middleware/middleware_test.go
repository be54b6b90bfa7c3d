package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fleet-management/fleetboard/internal/auth"
	"fleet-management/fleetboard/internal/constants"
	"fleet-management/fleetboard/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestNormalizeEndpoint(t *testing.T) {
	cases := map[string]string{
		"/api/v1/routes/42":                                   "/api/v1/routes/{id}",
		"/api/v1/drivers":                                     "/api/v1/drivers",
		"/api/v1/x/3f2504e0-4f89-11d3-9a0c-0305e82c3301/flag": "/api/v1/x/{id}/flag",
	}
	for in, want := range cases {
		if got := NormalizeEndpoint(in); got != want {
			t.Errorf("NormalizeEndpoint(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	h := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" || rr.Header().Get(RequestIDHeader) != seen {
		t.Errorf("Expected generated request id in context and header, got %q / %q", seen, rr.Header().Get(RequestIDHeader))
	}
}

func TestRecoverMiddleware(t *testing.T) {
	h := RecoverMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", rr.Code)
	}
}

func TestRequireWriteMiddleware(t *testing.T) {
	h := RequireWriteMiddleware()(okHandler())

	cases := []struct {
		method string
		claims auth.UserClaims
		want   int
	}{
		{http.MethodPost, nil, http.StatusOK},
		{http.MethodGet, &auth.JWTClaims{RoleValue: constants.RoleViewer}, http.StatusOK},
		{http.MethodDelete, &auth.JWTClaims{RoleValue: constants.RoleViewer}, http.StatusForbidden},
		{http.MethodPatch, &auth.JWTClaims{RoleValue: constants.RoleDispatcher}, http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, "/", nil)
		if tc.claims != nil {
			req = req.WithContext(auth.WithClaims(req.Context(), tc.claims))
		}
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if rr.Code != tc.want {
			t.Errorf("%s: expected %d, got %d", tc.method, tc.want, rr.Code)
		}
	}
}

func TestRateLimiter_PerClient(t *testing.T) {
	reg := metrics.NewMetricsRegistry(prometheus.NewRegistry())
	rl := NewRateLimiter(0.001, 1, reg, "10.0.0.9")
	h := rl.Middleware(okHandler())

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}

	if code := send("10.0.0.1:5000"); code != http.StatusOK {
		t.Fatalf("Expected first request allowed, got %d", code)
	}
	if code := send("10.0.0.1:5001"); code != http.StatusTooManyRequests {
		t.Errorf("Expected 429 for same client, got %d", code)
	}
	if code := send("10.0.0.2:5000"); code != http.StatusOK {
		t.Errorf("Expected other client allowed, got %d", code)
	}
	for i := 0; i < 3; i++ {
		if code := send("10.0.0.9:6000"); code != http.StatusOK {
			t.Errorf("Expected exempt client allowed, got %d", code)
		}
	}
}

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewTokenManager("k")
	raw, err := tokens.Issue("viewer-1", constants.RoleViewer, 0)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	var got auth.UserClaims
	h := AuthMiddleware(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = auth.ClaimsFrom(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Expected expired token rejected, got %d", rr.Code)
	}
	if got != nil {
		t.Error("Expected handler not to run")
	}
}
