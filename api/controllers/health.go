package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/angelmondragon/supercompare-api/api/responses"
	"github.com/angelmondragon/supercompare-api/pkg/config"
	"github.com/angelmondragon/supercompare-api/pkg/db"
	pkgerrors "github.com/angelmondragon/supercompare-api/pkg/errors"
	"github.com/angelmondragon/supercompare-api/pkg/logger"
	"github.com/angelmondragon/supercompare-api/pkg/types"
)

const (
	envHeader    = "X-SuperCompare-Env"
	readyTimeout = 2 * time.Second
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, types.StatusResponse{Status: "live"})
	}
}

// HealthReady reports ready only when the database answers a ping.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		if dbP == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeDependency, "database not configured"))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()
		if err := dbP.Ping(ctx); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database ping failed"))
			return
		}

		responses.WriteSuccess(w, types.StatusResponse{Status: "ready"})
	}
}
