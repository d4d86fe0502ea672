package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/CatchCup_Go/internal/handler"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"
	middleware := AuthMiddleware(apiKey, nil, NewSuspiciousActivityDetector())

	tests := []struct {
		name           string
		providedKey    string
		path           string
		expectedStatus int
	}{
		{"valid key on protected path", apiKey, "/api/v1/catches", http.StatusOK},
		{"wrong key", "wrong-key", "/api/v1/catches", http.StatusUnauthorized},
		{"missing key", "", "/api/v1/admin/voting/finalize", http.StatusUnauthorized},
		{"public api", "", "/api/v1/public/standings", http.StatusOK},
		{"public vote", "", "/api/v1/public/votes", http.StatusOK},
		{"healthz", "", "/healthz", http.StatusOK},
		{"version", "", "/version", http.StatusOK},
		{"metrics", "", "/metrics", http.StatusOK},
		{"swagger", "", "/swagger/index.html", http.StatusOK},
		{"lookalike prefix is not public", "", "/api/v1/publicity", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()

			middleware(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_EmptyConfiguredKeyRejectsAll(t *testing.T) {
	middleware := AuthMiddleware("", nil, NewSuspiciousActivityDetector())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/catches", nil)
	rec := httptest.NewRecorder()
	middleware(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeadersMiddleware()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	expectedHeaders := map[string]string{
		HeaderContentType:    HeaderValueNoSniff,
		HeaderFrameOptions:   HeaderValueSameOrigin,
		HeaderXSSProtection:  HeaderValueXSSBlock,
		HeaderReferrerPolicy: HeaderValueReferrerStrictOrigin,
	}
	for header, expected := range expectedHeaders {
		assert.Equal(t, expected, rec.Header().Get(header), header)
	}
}

func TestClientIPMiddleware_RateLimiting(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	h := ClientIPMiddleware(nil, detector)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = "192.168.1.100:1234"

	for i := 0; i < MaxRequestsPerWindow; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d failed with status %d", i, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// Another address is unaffected
	other := httptest.NewRequest(http.MethodGet, "/test", nil)
	other.RemoteAddr = "192.168.1.101:1234"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestClientIPMiddleware_StoresAddress(t *testing.T) {
	var seen string
	h := ClientIPMiddleware(NewProxyList([]string{"10.0.0.1"}), NewSuspiciousActivityDetector())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = handler.ClientIP(r)
		}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:443"
	req.Header.Set(HeaderForwardedFor, "203.0.113.9")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "203.0.113.9", seen)
}

func TestExtractIP(t *testing.T) {
	proxies := NewProxyList([]string{"10.0.0.1", "172.16.0.0/12", "not-an-ip", ""})

	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		want       string
	}{
		{"direct connection", "198.51.100.7:5000", "", "198.51.100.7"},
		{"untrusted peer cannot spoof", "198.51.100.7:5000", "1.2.3.4", "198.51.100.7"},
		{"trusted proxy", "10.0.0.1:5000", "203.0.113.9", "203.0.113.9"},
		{"client spoofs left side", "10.0.0.1:5000", "1.2.3.4, 203.0.113.9", "203.0.113.9"},
		{"chain of trusted proxies", "10.0.0.1:5000", "203.0.113.9, 172.20.1.1", "203.0.113.9"},
		{"all hops trusted", "10.0.0.1:5000", "172.16.0.5", "172.16.0.5"},
		{"garbage header", "10.0.0.1:5000", "bogus", "10.0.0.1"},
		{"trusted proxy without header", "10.0.0.1:5000", "", "10.0.0.1"},
		{"no port", "198.51.100.7", "", "198.51.100.7"},
		{"ipv6 peer", "[2001:db8::1]:443", "", "2001:db8::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, extractIP(req, proxies))
		})
	}
}

func TestProxyList(t *testing.T) {
	pl := NewProxyList([]string{" 10.0.0.1 ", "192.168.0.0/16", "::1", "300.1.1.1", "10.1.0.0/99"})

	assert.True(t, pl.Contains("10.0.0.1"))
	assert.True(t, pl.Contains("::ffff:10.0.0.1"))
	assert.True(t, pl.Contains("192.168.44.2"))
	assert.True(t, pl.Contains("::1"))
	assert.False(t, pl.Contains("10.0.0.2"))
	assert.False(t, pl.Contains("10.1.0.1"))
	assert.False(t, pl.Contains("garbage"))

	var nilList *ProxyList
	assert.False(t, nilList.Contains("10.0.0.1"))
}

func TestSuspiciousActivityDetector_TracksPerAddress(t *testing.T) {
	d := NewSuspiciousActivityDetector()

	for i := 0; i < FailedAuthAlertCount+1; i++ {
		d.RecordFailedAuth("198.51.100.7")
	}
	assert.True(t, d.RecordRequest("198.51.100.7"))
	assert.True(t, d.RecordRequest("198.51.100.8"))
	assert.Equal(t, 2, d.TrackedIPs())
}
