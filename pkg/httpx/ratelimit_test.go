package httpx_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/doorman/pkg/httpx"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func requestFrom(addr string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil)
	req.RemoteAddr = addr
	return req
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIPKeyExtractor(t *testing.T) {
	t.Run("strips port", func(t *testing.T) {
		require.Equal(t, "192.168.1.1", httpx.IPKeyExtractor(requestFrom("192.168.1.1:12345")))
	})

	t.Run("ipv6", func(t *testing.T) {
		require.Equal(t, "2001:db8::1", httpx.IPKeyExtractor(requestFrom("[2001:db8::1]:443")))
	})

	t.Run("bare address from RealIP", func(t *testing.T) {
		require.Equal(t, "203.0.113.7", httpx.IPKeyExtractor(requestFrom("203.0.113.7")))
	})

	t.Run("ignores forwarding headers", func(t *testing.T) {
		req := requestFrom("192.168.1.1:12345")
		req.Header.Set("X-Forwarded-For", "203.0.113.1")
		require.Equal(t, "192.168.1.1", httpx.IPKeyExtractor(req))
	})
}

func TestCompositeKeyExtractor(t *testing.T) {
	user := func(*http.Request) string { return "user-1" }
	empty := func(*http.Request) string { return "" }

	req := requestFrom("192.168.1.1:12345")

	require.Equal(t, "user-1:192.168.1.1",
		httpx.CompositeKeyExtractor(":", user, httpx.IPKeyExtractor)(req))
	require.Equal(t, "192.168.1.1",
		httpx.CompositeKeyExtractor(":", empty, httpx.IPKeyExtractor)(req))
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("blocks requests over limit", func(t *testing.T) {
		h := httpx.RateLimitByIP(httpx.RateLimitConfig{
			RequestsPerWindow: 3,
			Window:            time.Minute,
			Burst:             3,
		})(okHandler)

		for i := range 3 {
			rec := serve(h, requestFrom("192.168.1.1:12345"))
			require.Equal(t, http.StatusOK, rec.Code, "request %d should succeed", i+1)
		}

		rec := serve(h, requestFrom("192.168.1.1:12345"))
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.NotEmpty(t, rec.Header().Get("Retry-After"))
		require.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
		require.Equal(t, "1m0s", rec.Header().Get("X-RateLimit-Window"))

		var env httpx.ErrorEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		require.Equal(t, "RateLimitError", env.Error.Name)
	})

	t.Run("different keys are tracked separately", func(t *testing.T) {
		h := httpx.RateLimitByIP(httpx.RateLimitConfig{
			RequestsPerWindow: 1,
			Window:            time.Minute,
			Burst:             1,
		})(okHandler)

		require.Equal(t, http.StatusOK, serve(h, requestFrom("192.168.1.1:1")).Code)
		require.Equal(t, http.StatusTooManyRequests, serve(h, requestFrom("192.168.1.1:2")).Code)
		require.Equal(t, http.StatusOK, serve(h, requestFrom("192.168.1.2:1")).Code)
	})

	t.Run("allows request when key extractor returns empty", func(t *testing.T) {
		h := httpx.RateLimitMiddleware(httpx.RateLimitConfig{
			RequestsPerWindow: 1,
			Window:            time.Minute,
			Burst:             1,
		}, func(*http.Request) string { return "" })(okHandler)

		for range 3 {
			require.Equal(t, http.StatusOK, serve(h, requestFrom("192.168.1.1:1")).Code)
		}
	})
}

func TestRateLimitByUser(t *testing.T) {
	h := httpx.RateLimitByUser(httpx.RateLimitConfig{
		RequestsPerWindow: 1,
		Window:            time.Minute,
		Burst:             1,
	})(okHandler)

	withUser := func(id string) *http.Request {
		req := requestFrom("192.168.1.1:12345")
		return req.WithContext(context.WithValue(req.Context(), httpx.CtxKeyUserID, id))
	}

	require.Equal(t, http.StatusOK, serve(h, withUser("alice")).Code)
	require.Equal(t, http.StatusTooManyRequests, serve(h, withUser("alice")).Code)
	require.Equal(t, http.StatusOK, serve(h, withUser("bob")).Code)
}

func TestRateLimitProfiles(t *testing.T) {
	for name, cfg := range map[string]httpx.RateLimitConfig{
		"strict":   httpx.StrictLimit,
		"moderate": httpx.ModerateLimit,
		"lenient":  httpx.LenientLimit,
	} {
		t.Run(name, func(t *testing.T) {
			require.Positive(t, cfg.RequestsPerWindow)
			require.Positive(t, cfg.Window)
			require.Positive(t, cfg.Burst)
		})
	}
	require.Less(t, httpx.StrictLimit.RequestsPerWindow, httpx.ModerateLimit.RequestsPerWindow)
}

func TestParseRateLimitFromEnv(t *testing.T) {
	def := httpx.RateLimitConfig{RequestsPerWindow: 10, Window: time.Minute, Burst: 10}

	tests := []struct {
		name string
		env  map[string]string
		want httpx.RateLimitConfig
	}{
		{"no env uses defaults", nil, def},
		{
			"override all",
			map[string]string{
				"RATELIMIT_TEST_REQUESTS":   "200",
				"RATELIMIT_TEST_WINDOW_SEC": "30",
				"RATELIMIT_TEST_BURST":      "250",
			},
			httpx.RateLimitConfig{RequestsPerWindow: 200, Window: 30 * time.Second, Burst: 250},
		},
		{
			"override burst only",
			map[string]string{"RATELIMIT_TEST_BURST": "100"},
			httpx.RateLimitConfig{RequestsPerWindow: 10, Window: time.Minute, Burst: 100},
		},
		{
			"invalid values ignored",
			map[string]string{
				"RATELIMIT_TEST_REQUESTS":   "invalid",
				"RATELIMIT_TEST_WINDOW_SEC": "-10",
				"RATELIMIT_TEST_BURST":      "0",
			},
			def,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			require.Equal(t, tt.want, httpx.ParseRateLimitFromEnv("TEST", def))
		})
	}
}

func BenchmarkRateLimitManyIPs(b *testing.B) {
	h := httpx.RateLimitByIP(httpx.RateLimitConfig{
		RequestsPerWindow: 1000000,
		Window:            time.Minute,
		Burst:             1000,
	})(okHandler)

	for i := 0; b.Loop(); i++ {
		serve(h, requestFrom(fmt.Sprintf("192.168.%d.%d:12345", i%255, (i/255)%255)))
	}
}
