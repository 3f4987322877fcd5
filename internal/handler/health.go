package handler

import (
	"net/http"
)

// HealthResponse is the body for the health and readiness probes.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health reports liveness.
//
//	@Summary	Liveness probe
//	@Tags		ops
//	@Produce	json
//	@Success	200	{object}	HealthResponse
//	@Router		/healthz [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
}

// Ready reports readiness by pinging the backing store.
//
//	@Summary	Readiness probe
//	@Tags		ops
//	@Produce	json
//	@Success	200	{object}	HealthResponse
//	@Failure	503	{object}	HealthResponse
//	@Router		/readyz [get]
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.readiness != nil {
		if err := h.readiness.Ping(r.Context()); err != nil {
			respondJSON(w, r, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
			return
		}
	}
	respondJSON(w, r, http.StatusOK, HealthResponse{Status: "ready"})
}
