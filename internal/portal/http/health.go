package http

import (
	"net/http"
	"time"

	"github.com/psicoconecta/portal/internal/portal/store"
	"github.com/psicoconecta/portal/pkg/httpx"
	"github.com/psicoconecta/portal/pkg/portalapi"
)

// LivezHandler godoc
//
//	@Summary		Liveness probe
//	@Description	Always returns 200 OK while the process is running.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	portalapi.HealthResponse
//	@Router			/livez [get].
func LivezHandler(version string, startTime time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, portalapi.HealthResponse{
			Status:  "ok",
			Version: version,
			Uptime:  time.Since(startTime).String(),
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness probe
//	@Description	Returns 200 when the database is reachable, 503 otherwise.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	portalapi.HealthResponse
//	@Failure		503	{object}	portalapi.HealthResponse
//	@Router			/readyz [get].
func ReadyzHandler(version string, startTime time.Time, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := "ok"
		code := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, portalapi.HealthResponse{
			Status:  status,
			Version: version,
			Uptime:  time.Since(startTime).String(),
		})
	}
}
