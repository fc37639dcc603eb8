package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/cash-position-api/pkg/log"
)

// Pinger verifica a disponibilidade de uma dependência (ex: banco de dados)
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := map[string]any{
			"status":   "ok",
			"database": "ok",
			"time":     time.Now().UTC(),
		}

		if db != nil {
			if err := db.Ping(ctx); err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("healthcheck: banco de dados indisponível")
				status["status"] = "degraded"
				status["database"] = "unavailable"
				writeJSON(w, r, http.StatusServiceUnavailable, status)
				return
			}
		}

		writeJSON(w, r, http.StatusOK, status)
	})
}
