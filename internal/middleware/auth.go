package middleware

import (
	"crypto/sha256"
	"net/http"

	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

const (
	APIKeyHeader = "X-API-KEY"

	// 1 MB is plenty for sha256 keys
	apiKeyCacheSize = 1024 * 1024
)

type AuthMiddlewareHandler struct {
	apiKeyHash     string
	cacheTTLSec    int
	verifiedKeys   *freecache.Cache
	allowedPaths   map[string]bool
	metricsManager *metrics.Manager
}

// NewAuthMiddlewareHandler creates the api key checker. If apiKeyHash is empty,
// all requests are let through.
func NewAuthMiddlewareHandler(apiKeyHash string, cacheTTLSec int, metricsManager *metrics.Manager) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		apiKeyHash:   apiKeyHash,
		cacheTTLSec:  cacheTTLSec,
		verifiedKeys: freecache.NewCache(apiKeyCacheSize),
		allowedPaths: map[string]bool{
			"/health": true,
		},
		metricsManager: metricsManager,
	}
}

func (h *AuthMiddlewareHandler) keyIsValid(apiKey string) bool {
	sum := sha256.Sum256([]byte(apiKey))
	if _, err := h.verifiedKeys.Get(sum[:]); err == nil {
		return true
	}

	// bcrypt is slow on purpose, so only remember the keys that matched
	if !pkg.CheckAPIKeyHash(apiKey, h.apiKeyHash) {
		return false
	}
	if err := h.verifiedKeys.Set(sum[:], []byte{1}, h.cacheTTLSec); err != nil {
		log.Warnf("cache verified api key: %s", err)
	}
	return true
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if h.apiKeyHash == "" || r.Method == http.MethodOptions || h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			apiKey := r.Header.Get(APIKeyHeader)
			if apiKey == "" {
				log.Tracef("[missing api key] [auth middleware] unauthorized => %s", r.URL.Path)
				h.unauthorized(w)
				span.SetStatus(codes.Error, "missing-api-key")
				return
			}

			if !h.keyIsValid(apiKey) {
				log.Debugf("[invalid api key] [auth middleware] unauthorized => %s, from %s", r.URL.Path, pkg.ReadUserIP(r))
				h.unauthorized(w)
				span.SetStatus(codes.Error, "invalid-api-key")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}

func (h *AuthMiddlewareHandler) unauthorized(w http.ResponseWriter) {
	if h.metricsManager != nil {
		h.metricsManager.CounterUnauthorized.Inc()
	}
	pkg.WriteResponse(w, pkg.ContentType.Text, "no can do", http.StatusUnauthorized)
}
