package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"freight-booking/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func signed(t *testing.T, subject, role string, ttl time.Duration) string {
	t.Helper()
	tok, err := utils.SignToken(utils.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
		Role: role,
	}, testSecret)
	require.NoError(t, err)
	return tok
}

// whoami echoes the customer id and token found in the request context.
func whoami(w http.ResponseWriter, r *http.Request) {
	id, _ := utils.GetCustomerIDFromContext(r.Context())
	token, _ := utils.GetTokenFromContext(r.Context())
	w.Header().Set("X-Customer", id)
	w.Header().Set("X-Token", token)
	w.WriteHeader(http.StatusOK)
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestOptionalAuth(t *testing.T) {
	h := OptionalAuth(testSecret, zap.NewNop())(http.HandlerFunc(whoami))

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Customer"))

	tok := signed(t, "cust-1", "", time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec = serve(h, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cust-1", rec.Header().Get("X-Customer"))
	assert.Equal(t, tok, rec.Header().Get("X-Token"))

	for _, header := range []string{"Bearer " + signed(t, "cust-1", "", -time.Minute), "Token abc", "Bearer "} {
		req = httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", header)
		rec = serve(h, req)
		assert.Equal(t, http.StatusOK, rec.Code, header)
		assert.Empty(t, rec.Header().Get("X-Customer"), header)
	}
}

func TestRequireAuthAndAdmin(t *testing.T) {
	h := RequireAuth(testSecret, zap.NewNop())(Admin(zap.NewNop())(http.HandlerFunc(whoami)))

	assert.Equal(t, http.StatusUnauthorized, serve(h, httptest.NewRequest(http.MethodGet, "/", nil)).Code)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed(t, "cust-1", "", time.Hour))
	assert.Equal(t, http.StatusForbidden, serve(h, req).Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed(t, "ops-1", utils.RoleAdmin, time.Hour))
	rec := serve(h, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ops-1", rec.Header().Get("X-Customer"))
}

func TestCORS(t *testing.T) {
	h := CORS([]string{"https://portal.example.com"})(http.HandlerFunc(whoami))

	req := httptest.NewRequest(http.MethodOptions, "/api/wizards", nil)
	req.Header.Set("Origin", "https://portal.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	rec := serve(h, req)
	assert.Less(t, rec.Code, http.StatusMultipleChoices)
	assert.Equal(t, "https://portal.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PATCH")
	assert.Equal(t, "600", rec.Header().Get("Access-Control-Max-Age"))
	assert.Empty(t, rec.Header().Get("X-Customer"))

	req = httptest.NewRequest(http.MethodGet, "/api/wizards", nil)
	req.Header.Set("Origin", "https://portal.example.com")
	rec = serve(h, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://portal.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/wizards", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = serve(h, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	h := RateLimit(1, 2, zap.NewNop())(http.HandlerFunc(whoami))

	newReq := func(ip string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/submit", nil)
		req.RemoteAddr = ip + ":4000"
		return req
	}

	assert.Equal(t, http.StatusOK, serve(h, newReq("10.0.0.1")).Code)
	assert.Equal(t, http.StatusOK, serve(h, newReq("10.0.0.1")).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(h, newReq("10.0.0.1")).Code)

	assert.Equal(t, http.StatusOK, serve(h, newReq("10.0.0.2")).Code)
}

func TestRateLimiterStore_EvictsIdleClients(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	store := newRateLimiterStore(60, 10, func() time.Time { return now })

	for i := 0; i < 50; i++ {
		store.getLimiter(fmt.Sprintf("10.0.1.%d", i))
	}
	assert.Equal(t, 50, store.size())

	now = now.Add(30 * time.Second)
	store.getLimiter("10.0.1.1")
	assert.Equal(t, 50, store.size())

	now = now.Add(45 * time.Second)
	store.getLimiter("10.0.2.1")
	assert.Equal(t, 2, store.size())
}

func TestRateLimiterStore_KeepsBudgetOfActiveClient(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	store := newRateLimiterStore(1, 2, func() time.Time { return now })

	first := store.getLimiter("10.0.0.9")
	now = now.Add(90 * time.Second)
	assert.Same(t, first, store.getLimiter("10.0.0.9"))
}

func TestRecover(t *testing.T) {
	h := Recover(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
