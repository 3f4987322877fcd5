package handler

import (
	"net/http"
)

// VersionResponse is the body for GET /version.
type VersionResponse struct {
	Version string `json:"version"`
}

// Version reports the running build version.
//
//	@Summary	Build version
//	@Tags		ops
//	@Produce	json
//	@Success	200	{object}	VersionResponse
//	@Router		/version [get]
func (h *Handler) Version(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, VersionResponse{Version: h.version})
}
