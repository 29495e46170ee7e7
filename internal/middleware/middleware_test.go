package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/villa-booking/internal/auth"
	"github.com/iliyamo/villa-booking/internal/config"
)

func newTokens(t *testing.T, now func() time.Time) *auth.TokenService {
	t.Helper()
	ts, err := auth.NewTokenService("middleware-secret", time.Hour, now)
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	return ts
}

func ownerEcho(tokens *auth.TokenService) *echo.Echo {
	e := echo.New()
	e.GET("/owner", func(c echo.Context) error {
		return c.String(http.StatusOK, Username(c))
	}, BearerAuth(tokens), RequireOwner("admin"))
	return e
}

func call(e *echo.Echo, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/owner", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestBearerAuthAdmitsOwner(t *testing.T) {
	tokens := newTokens(t, nil)
	tok, err := tokens.Issue("admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	rec := call(ownerEcho(tokens), "Bearer "+tok.Token)
	if rec.Code != http.StatusOK || rec.Body.String() != "admin" {
		t.Fatalf("got %d %q", rec.Code, rec.Body.String())
	}
}

func TestBearerAuthRejects(t *testing.T) {
	tokens := newTokens(t, nil)
	other, err := tokens.Issue("guest")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	foreign, err := newTokensWithSecret(t, "another-secret").Issue("admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	cases := map[string]string{
		"missing":       "",
		"wrong scheme":  "Basic YWRtaW46cGFzcw==",
		"empty bearer":  "Bearer ",
		"garbage":       "Bearer not.a.jwt",
		"foreign":       "Bearer " + foreign.Token,
		"not the owner": "Bearer " + other.Token,
	}
	e := ownerEcho(tokens)
	for name, header := range cases {
		rec := call(e, header)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: status %d, want 401", name, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"error"`) {
			t.Errorf("%s: body %q", name, rec.Body.String())
		}
	}
}

func newTokensWithSecret(t *testing.T, secret string) *auth.TokenService {
	t.Helper()
	ts, err := auth.NewTokenService(secret, time.Hour, nil)
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	return ts
}

func TestBearerAuthReportsExpiry(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tokens := newTokens(t, func() time.Time { return now })
	tok, err := tokens.Issue("admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	now = now.Add(2 * time.Hour)
	rec := call(ownerEcho(tokens), "Bearer "+tok.Token)
	if rec.Code != http.StatusUnauthorized || !strings.Contains(rec.Body.String(), "token expired") {
		t.Fatalf("got %d %q", rec.Code, rec.Body.String())
	}
}

func TestDisabledMiddlewarePassesThrough(t *testing.T) {
	e := echo.New()
	hits := 0
	h := func(c echo.Context) error { hits++; return c.String(http.StatusOK, "ok") }
	e.GET("/x", h,
		NewTokenBucket(config.RateLimitConfig{Enabled: true}, nil, nil),
		NewRedisCache(config.CacheConfig{Enabled: true, Methods: map[string]bool{"GET": true}}, nil),
		InvalidateOnWrite(NewCacheInvalidator(config.CacheConfig{Enabled: true}, nil, nil)),
	)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
		if rec.Code != http.StatusOK || rec.Header().Get("X-Cache") != "" {
			t.Fatalf("request %d: %d cache=%q", i, rec.Code, rec.Header().Get("X-Cache"))
		}
	}
	if hits != 3 {
		t.Fatalf("handler ran %d times", hits)
	}
}

func TestNilInvalidatorIsSafe(t *testing.T) {
	var ci *CacheInvalidator
	if err := ci.Invalidate(context.Background()); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": {"application/json"}}
	bs, err := encodePayload(http.StatusOK, hdr, []byte(`{"reservations":[]}`))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	status, got, body, ok := decodePayload(bs)
	if !ok || status != http.StatusOK || got.Get("Content-Type") != "application/json" || string(body) != `{"reservations":[]}` {
		t.Fatalf("decode = %d %v %q %v", status, got, body, ok)
	}
	if _, _, _, ok := decodePayload(bs[:6]); ok {
		t.Fatal("short payload decoded")
	}
}

func keyContext(e *echo.Echo, target string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.RemoteAddr = "203.0.113.9:5555"
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/api/calendar/availability")
	return c
}

func TestCacheKeyStrategies(t *testing.T) {
	e := echo.New()
	cfg := config.CacheConfig{Prefix: "cache", KeyStrategy: "route_query"}
	a := cacheKeyFrom(cfg, keyContext(e, "/api/calendar/availability?month=7"))
	b := cacheKeyFrom(cfg, keyContext(e, "/api/calendar/availability?month=8"))
	if a == b {
		t.Fatal("route_query ignores the query string")
	}
	if !strings.HasPrefix(a, "cache:") {
		t.Fatalf("key %q lacks prefix", a)
	}
	cfg.KeyStrategy = "route"
	if cacheKeyFrom(cfg, keyContext(e, "/api/calendar/availability?month=7")) != cacheKeyFrom(cfg, keyContext(e, "/api/calendar/availability?month=8")) {
		t.Fatal("route strategy depends on the query string")
	}
}

func TestRateKey(t *testing.T) {
	e := echo.New()
	c := keyContext(e, "/api/calendar/availability")
	got := buildRateKey(config.RateLimitConfig{Prefix: "rl", KeyStrategy: "ip_route"}, c)
	if want := "rl:ip:203.0.113.9:route:GET /api/calendar/availability"; got != want {
		t.Fatalf("key = %q, want %q", got, want)
	}
	c.Set(ContextUsername, "admin")
	got = buildRateKey(config.RateLimitConfig{Prefix: "rl", KeyStrategy: "ip_user"}, c)
	if want := "rl:ip:203.0.113.9:user:admin"; got != want {
		t.Fatalf("key = %q, want %q", got, want)
	}
}

func TestRetryAfterRoundsUp(t *testing.T) {
	if got := retryAfterSeconds(1); got != 1 {
		t.Fatalf("1ms -> %d", got)
	}
	if got := retryAfterSeconds(3000); got != 3 {
		t.Fatalf("3000ms -> %d", got)
	}
	if got := retryAfterSeconds(-5); got != 0 {
		t.Fatalf("-5ms -> %d", got)
	}
}
