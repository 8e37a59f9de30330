package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/voicedeck/call-dashboard-api/api"
)

func token(t *testing.T, secret string) string {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "dashboard-user",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok": true}`))
	})
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	auth := api.Auth{Secret: "s3cret"}

	req := httptest.NewRequest("GET", "/api/callers", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, "s3cret"))
	rr := httptest.NewRecorder()

	auth.Middleware(okHandler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	auth := api.Auth{Secret: "s3cret"}

	req := httptest.NewRequest("GET", "/api/callers", nil)
	rr := httptest.NewRecorder()

	auth.Middleware(okHandler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error": "unauthorized"}`, rr.Body.String())
}

func TestAuthMiddlewareRejectsWrongSecret(t *testing.T) {
	auth := api.Auth{Secret: "s3cret"}

	req := httptest.NewRequest("GET", "/api/callers", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, "other-secret"))
	rr := httptest.NewRecorder()

	auth.Middleware(okHandler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	auth := api.Auth{Secret: "s3cret"}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "dashboard-user",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte("s3cret"))
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest("GET", "/api/callers", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rr := httptest.NewRecorder()

	auth.Middleware(okHandler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestTimeoutMiddlewarePassesFastHandler(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/callers", nil)
	rr := httptest.NewRecorder()

	api.TimeoutMiddleware(time.Second)(okHandler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"ok": true}`, rr.Body.String())
}

func TestTimeoutMiddlewareCutsOffSlowHandler(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	req := httptest.NewRequest("GET", "/api/callers", nil)
	rr := httptest.NewRecorder()

	api.TimeoutMiddleware(20*time.Millisecond)(slow).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusRequestTimeout, rr.Code)
	assert.JSONEq(t, `{"error": "Request timeout", "message": "The request took too long to process"}`, rr.Body.String())
}

func TestMetricsCollectorAggregates(t *testing.T) {
	m := api.GetMetrics()
	m.Record("GET", "/api/callers", http.StatusOK, 10*time.Millisecond)
	m.Record("GET", "/api/callers", http.StatusInternalServerError, 30*time.Millisecond)

	var route *api.RouteMetrics
	for _, rm := range m.Snapshot() {
		if rm.Method == "GET" && rm.Path == "/api/callers" {
			r := rm
			route = &r
		}
	}

	assert.NotNil(t, route)
	assert.GreaterOrEqual(t, route.Count, int64(2))
	assert.GreaterOrEqual(t, route.ErrorCount, int64(1))
	assert.GreaterOrEqual(t, route.MaxTime, 30*time.Millisecond)
}
