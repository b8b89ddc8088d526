package controllers

import (
	"net/http"

	"github.com/jmlee-dev/cafekiosk-backend/api/responses"
	"github.com/jmlee-dev/cafekiosk-backend/pkg/config"
	"github.com/jmlee-dev/cafekiosk-backend/pkg/db"
	pkgerrors "github.com/jmlee-dev/cafekiosk-backend/pkg/errors"
	"github.com/jmlee-dev/cafekiosk-backend/pkg/logger"
	pkgredis "github.com/jmlee-dev/cafekiosk-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-CafeKiosk-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only when both backing stores answer a ping.
func HealthReady(cfg *config.Config, database db.Pinger, cache pkgredis.Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-CafeKiosk-Env", cfg.App.Env)

		if database != nil {
			if err := database.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unreachable"))
				return
			}
		}
		if cache != nil {
			if err := cache.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unreachable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
