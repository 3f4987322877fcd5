package handler

import (
	"fmt"
	"net/http"

	"github.com/pitchside/pitchside/internal/auth"
	"github.com/pitchside/pitchside/internal/domain"
	"github.com/pitchside/pitchside/internal/metrics"
)

// RegisterPlayerRequest is the body for POST /api/v1/admin/players.
type RegisterPlayerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
}

// RegisterPlayerResponse returns the new player and a bearer token for it.
type RegisterPlayerResponse struct {
	Player *domain.Player `json:"player"`
	Token  string         `json:"token"`
}

// RegisterPlayer creates a new player with starting balances.
//
//	@Summary	Register a new player
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		request	body		RegisterPlayerRequest	true	"registration request"
//	@Success	201		{object}	RegisterPlayerResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	500		{object}	ErrorResponse
//	@Security	ApiKeyAuth
//	@Router		/api/v1/admin/players [post]
func (h *Handler) RegisterPlayer(w http.ResponseWriter, r *http.Request) {
	var req RegisterPlayerRequest
	if err := DecodeAndValidateRequest(r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, domain.ErrMsgInvalidInput)
		return
	}

	player, err := h.profile.RegisterPlayer(r.Context(), req.Username)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	token, err := auth.IssueToken(h.jwtSecret, player.ID, auth.DefaultTokenTTL)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	metrics.PlayersRegisteredTotal.Inc()
	respondJSON(w, r, http.StatusCreated, RegisterPlayerResponse{Player: player, Token: token})
}

// ReloadCatalog re-reads the catalog seed file and syncs it to the store.
//
//	@Summary	Reload the catalog seed
//	@Tags		admin
//	@Produce	json
//	@Success	200	{object}	MessageResponse
//	@Failure	500	{object}	ErrorResponse
//	@Security	ApiKeyAuth
//	@Router		/api/v1/admin/catalog/reload [post]
func (h *Handler) ReloadCatalog(w http.ResponseWriter, r *http.Request) {
	count, err := h.catalog.Reload(r.Context(), h.seedPath)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondMessage(w, r, http.StatusOK, fmt.Sprintf("catalog reloaded: %d entries", count))
}
