package http

import (
	"net/http"
	"time"

	"github.com/padlockhq/padlock/internal/presets/store"
	"github.com/padlockhq/padlock/pkg/httpx"
	"github.com/padlockhq/padlock/pkg/jwtx"
	"github.com/padlockhq/padlock/pkg/presetsdk"
)

// LivezHandler godoc
//
//	@Summary		Liveness Probe
//	@Description	Returns 200 whenever the process is up, with uptime and version.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	presetsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, presetsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Probe
//	@Description	Checks the database connection and that verification keys are loaded.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	presetsdk.HealthResponse	"ready"
//	@Failure		503	{object}	presetsdk.HealthResponse	"degraded"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	keys *jwtx.KeySet,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &presetsdk.HealthChecks{
			Database: "ok",
			Verifier: "ok",
		}
		status := "ok"
		code := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		if !keys.IsReady() {
			checks.Verifier = "error: no keys loaded"
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, presetsdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
