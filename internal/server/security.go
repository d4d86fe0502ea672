package server

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CatchCup_Go/internal/handler"
	"github.com/osse101/CatchCup_Go/internal/i18n"
	"github.com/osse101/CatchCup_Go/internal/logger"
)

// AuthMiddleware validates the API key on every non-public path
func AuthMiddleware(apiKey string, trustedProxies *ProxyList, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)

			// Constant time comparison to prevent timing attacks
			if apiKey == "" || subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := extractIP(r, trustedProxies)
				detector.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				writeError(w, http.StatusUnauthorized, i18n.T(i18n.FromContext(r.Context()), i18n.KeyUnauthorized))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isPublicPath(path string) bool {
	for _, prefix := range PublicPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// ipActivity counts one address's traffic within its current window.
type ipActivity struct {
	requests   int
	failedAuth int
}

// SuspiciousActivityDetector tracks failed API key checks and request rates
// per address. Each address gets a fixed window starting at its first request;
// the least recently seen addresses are evicted past DetectorMaxTrackedIPs.
type SuspiciousActivityDetector struct {
	mu       sync.Mutex
	activity *expirable.LRU[string, *ipActivity]
}

func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		activity: expirable.NewLRU[string, *ipActivity](DetectorMaxTrackedIPs, nil, DetectorWindow),
	}
}

// track returns the live counters for ip. Caller must hold the mutex.
func (s *SuspiciousActivityDetector) track(ip string) *ipActivity {
	if a, ok := s.activity.Get(ip); ok {
		return a
	}
	a := &ipActivity{}
	s.activity.Add(ip, a)
	return a
}

// RecordFailedAuth counts a rejected API key and raises an alert from
// FailedAuthAlertCount failures on.
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	a := s.track(ip)
	a.failedAuth++
	count := a.failedAuth
	s.mu.Unlock()

	if count >= FailedAuthAlertCount {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", count)
	}
}

// RecordRequest records a request and returns false once the IP is over the limit
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	a := s.track(ip)
	a.requests++
	count := a.requests
	s.mu.Unlock()

	if count <= MaxRequestsPerWindow {
		return true
	}
	if count%HighRateLogEvery == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", count)
	}
	return false
}

// TrackedIPs reports how many addresses currently have a live window.
func (s *SuspiciousActivityDetector) TrackedIPs() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activity.Len()
}

// ClientIPMiddleware resolves the client address, enforces the per-IP rate
// limit and hands the address to handlers through the request context.
func ClientIPMiddleware(trustedProxies *ProxyList, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trustedProxies)

			if !detector.RecordRequest(ip) {
				writeError(w, http.StatusTooManyRequests, ErrMsgTooManyRequests)
				return
			}

			next.ServeHTTP(w, r.WithContext(handler.WithClientIP(r.Context(), ip)))
		})
	}
}

// ProxyList holds the proxies whose X-Forwarded-For header is trusted.
// Entries are single addresses or CIDR prefixes.
type ProxyList struct {
	prefixes []netip.Prefix
}

// NewProxyList parses entries, skipping and logging malformed ones
func NewProxyList(entries []string) *ProxyList {
	pl := &ProxyList{}
	for _, raw := range entries {
		entry := strings.TrimSpace(raw)
		if entry == "" {
			continue
		}
		if strings.Contains(entry, "/") {
			prefix, err := netip.ParsePrefix(entry)
			if err != nil {
				slog.Warn(LogMsgBadTrustedProxy, "entry", entry, "error", err)
				continue
			}
			pl.prefixes = append(pl.prefixes, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(entry)
		if err != nil {
			slog.Warn(LogMsgBadTrustedProxy, "entry", entry, "error", err)
			continue
		}
		addr = addr.Unmap()
		pl.prefixes = append(pl.prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return pl
}

// Contains reports whether ip is a trusted proxy
func (pl *ProxyList) Contains(ip string) bool {
	if pl == nil {
		return false
	}
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range pl.prefixes {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// extractIP gets the client IP address from request.
// X-Forwarded-For is only honored when the direct peer is a trusted proxy.
func extractIP(r *http.Request, trustedProxies *ProxyList) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if !trustedProxies.Contains(remoteIP) {
		return remoteIP
	}

	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remoteIP
	}

	// Walk right to left past our own proxies; the first untrusted hop is the client.
	hops := strings.Split(forwarded, ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if hop == "" {
			continue
		}
		if _, err := netip.ParseAddr(hop); err != nil {
			return remoteIP
		}
		if !trustedProxies.Contains(hop) || i == 0 {
			return hop
		}
	}
	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueSameOrigin)
			w.Header().Set(HeaderXSSProtection, HeaderValueXSSBlock)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)

			next.ServeHTTP(w, r)
		})
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(handler.ErrorResponse{Error: message})
}
