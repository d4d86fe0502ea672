package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/CatchCup_Go/internal/catch"
	"github.com/osse101/CatchCup_Go/internal/database"
	"github.com/osse101/CatchCup_Go/internal/drinks"
	"github.com/osse101/CatchCup_Go/internal/handler"
	"github.com/osse101/CatchCup_Go/internal/i18n"
	"github.com/osse101/CatchCup_Go/internal/logger"
	"github.com/osse101/CatchCup_Go/internal/metrics"
	"github.com/osse101/CatchCup_Go/internal/standings"
	"github.com/osse101/CatchCup_Go/internal/voting"
)

// Services are the domain services exposed over HTTP
type Services struct {
	Voting    voting.Service
	Catch     catch.Service
	Drinks    drinks.Service
	Standings standings.Service
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, svcs Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(apiKey, trustedProxies, dbPool, svcs),
			ReadHeaderTimeout: ServerReadHeaderTimeout,
		},
		dbPool: dbPool,
	}
}

// NewRouter builds the chi router with the full middleware stack
func NewRouter(apiKey string, trustedProxies []string, dbPool database.Pool, svcs Services) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()
	proxies := NewProxyList(trustedProxies)

	r.Use(chimiddleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)
	r.Use(i18n.Middleware)
	r.Use(ClientIPMiddleware(proxies, detector))
	r.Use(AuthMiddleware(apiKey, proxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))

	// Operational routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	votingHandler := handler.NewVotingHandler(svcs.Voting)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/public", func(r chi.Router) {
			r.Get("/standings", handler.HandleGetStandings(svcs.Standings))
			r.Get("/teams", handler.HandleListTeams(svcs.Standings))
			r.Get("/fish-types", handler.HandleListFishTypes(svcs.Catch))
			r.Get("/catches", handler.HandleListCatches(svcs.Catch))
			r.Get("/catches/{id}", handler.HandleGetCatch(svcs.Catch))
			r.Get("/drinks", handler.HandleListDrinks(svcs.Drinks))

			r.Get("/voting/open-day", votingHandler.HandleGetOpenDay)
			r.Post("/votes", votingHandler.HandleCastVote)
			r.Get("/votes/status", votingHandler.HandleGetVoteStatus)
			r.Get("/results", votingHandler.HandleListResults)
			r.Get("/results/{day}", votingHandler.HandleGetResult)
		})

		r.Post("/catches", handler.HandleLogCatch(svcs.Catch))
		r.Post("/drinks", handler.HandleLogDrinks(svcs.Drinks))

		r.Route("/admin/voting", func(r chi.Router) {
			r.Post("/finalize", votingHandler.HandleFinalizeDay)
			r.Post("/finalize-pending", votingHandler.HandleFinalizePending)
		})
	})

	return r
}

// quietPaths are polled by probes and scrapers and are not request-logged
var quietPaths = []string{"/healthz", "/readyz", "/metrics"}

func isQuietPath(path string) bool {
	for _, p := range quietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// redactHeaders copies h with credentials masked
func redactHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			out[k] = []string{RedactedValue}
			continue
		}
		out[k] = v
	}
	return out
}

// loggingMiddleware tags the request context with a request ID, reusing the
// caller's X-Request-Id when present, and logs the request and its outcome.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		requestID := r.Header.Get(chimiddleware.RequestIDHeader)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", redactHeaders(r.Header))

		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		ww.Header().Set(chimiddleware.RequestIDHeader, requestID)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration_ms", time.Since(start).Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
