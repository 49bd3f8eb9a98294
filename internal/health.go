package internal

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const healthCheckTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

type redisPinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

type HealthResponse struct {
	Status   string `json:"status"`
	Postgres string `json:"postgres"`
	Redis    string `json:"redis"`
}

// HealthHandler reports whether postgres and redis are reachable. Any failing
// dependency makes the response 503.
func HealthHandler(dbPool dbPinger, rdb redisPinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.health")
		defer span.End()

		ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
		defer cancel()

		resp := HealthResponse{
			Status:   "ok",
			Postgres: "ok",
			Redis:    "ok",
		}
		statusCode := http.StatusOK

		if err := dbPool.Ping(ctx); err != nil {
			log.Errorf("health: ping postgres: %s", err)
			resp.Postgres = err.Error()
			resp.Status = "degraded"
			statusCode = http.StatusServiceUnavailable
		}
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Errorf("health: ping redis: %s", err)
			resp.Redis = err.Error()
			resp.Status = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		respJson, err := json.Marshal(resp)
		if err != nil {
			log.Errorf("failed to marshal health response: %s", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, statusCode)
	}
}
