package handler

import (
	"net/http"
	"strconv"

	"github.com/pitchside/pitchside/internal/auth"
	"github.com/pitchside/pitchside/internal/domain"
	"github.com/pitchside/pitchside/internal/metrics"
)

// Profile returns the authenticated player's profile.
//
//	@Summary	Get player profile
//	@Tags		player
//	@Produce	json
//	@Success	200	{object}	domain.Player
//	@Failure	401	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/v1/player/profile [get]
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	playerID, ok := auth.PlayerIDFromContext(r.Context())
	if !ok {
		respondError(w, r, http.StatusUnauthorized, "authentication required")
		return
	}

	player, err := h.profile.GetPlayer(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, player)
}

// AdjustAttributeRequest is the body for POST /api/v1/player/attributes.
type AdjustAttributeRequest struct {
	Name  string `json:"name" validate:"required,attribute"`
	Value int    `json:"value" validate:"required"`
}

// AdjustAttribute sets one profile attribute for the authenticated player.
//
//	@Summary		Adjust a profile attribute
//	@Description	Sets one attribute; values outside [40, 99] are rejected.
//	@Tags			player
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AdjustAttributeRequest	true	"attribute adjustment"
//	@Success		200		{object}	domain.Player
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/v1/player/attributes [post]
func (h *Handler) AdjustAttribute(w http.ResponseWriter, r *http.Request) {
	playerID, ok := auth.PlayerIDFromContext(r.Context())
	if !ok {
		respondError(w, r, http.StatusUnauthorized, "authentication required")
		return
	}

	var req AdjustAttributeRequest
	if err := DecodeAndValidateRequest(r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, domain.ErrMsgInvalidInput)
		return
	}

	name, err := domain.ParseAttributeName(req.Name)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, domain.ErrMsgUnknownAttribute)
		return
	}

	player, err := h.profile.AdjustAttribute(r.Context(), playerID, name, req.Value)
	if err != nil {
		metrics.AttributeAdjustmentsTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		respondServiceError(w, r, err)
		return
	}

	metrics.AttributeAdjustmentsTotal.WithLabelValues(metrics.OutcomeAccepted).Inc()
	respondJSON(w, r, http.StatusOK, player)
}

// TransactionsResponse is the body for GET /api/v1/player/transactions.
type TransactionsResponse struct {
	Transactions []domain.TransactionRecord `json:"transactions"`
}

// Transactions lists the authenticated player's recent transaction records.
//
//	@Summary	List recent transactions
//	@Tags		player
//	@Produce	json
//	@Param		limit	query		int	false	"maximum records to return"
//	@Success	200		{object}	TransactionsResponse
//	@Failure	401		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/api/v1/player/transactions [get]
func (h *Handler) Transactions(w http.ResponseWriter, r *http.Request) {
	playerID, ok := auth.PlayerIDFromContext(r.Context())
	if !ok {
		respondError(w, r, http.StatusUnauthorized, "authentication required")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondError(w, r, http.StatusBadRequest, domain.ErrMsgInvalidInput)
			return
		}
		limit = parsed
	}

	records, err := h.store.GetTransactions(r.Context(), playerID, limit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if records == nil {
		records = []domain.TransactionRecord{}
	}

	respondJSON(w, r, http.StatusOK, TransactionsResponse{Transactions: records})
}
