package handler

import (
	"net/http"

	"github.com/pitchside/pitchside/internal/auth"
	"github.com/pitchside/pitchside/internal/domain"
	"github.com/pitchside/pitchside/internal/metrics"
)

// PurchaseRequest is the body for POST /api/v1/store/purchase.
type PurchaseRequest struct {
	ItemType string `json:"item_type" validate:"required,itemkind"`
	ItemID   string `json:"item_id" validate:"required"`
}

// Purchase settles a store purchase for the authenticated player.
//
//	@Summary		Purchase a catalog entry
//	@Description	Atomically debits the player's balance and grants the skill, style or item.
//	@Tags			store
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PurchaseRequest	true	"purchase request"
//	@Success		200		{object}	MessageResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/v1/store/purchase [post]
func (h *Handler) Purchase(w http.ResponseWriter, r *http.Request) {
	playerID, ok := auth.PlayerIDFromContext(r.Context())
	if !ok {
		respondError(w, r, http.StatusUnauthorized, "authentication required")
		return
	}

	var req PurchaseRequest
	if err := DecodeAndValidateRequest(r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, domain.ErrMsgInvalidInput)
		return
	}

	// The itemkind validation tag already vetted the string.
	kind, err := domain.ParseItemKind(req.ItemType)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, domain.ErrMsgInvalidItemKind)
		return
	}

	result, err := h.store.SettlePurchase(r.Context(), playerID, kind, req.ItemID)
	if err != nil {
		metrics.PurchaseFailuresTotal.WithLabelValues(settlementFailureReason(err)).Inc()
		respondServiceError(w, r, err)
		return
	}

	metrics.PurchasesSettledTotal.WithLabelValues(string(kind)).Inc()
	metrics.CurrencySpentTotal.WithLabelValues(string(result.Record.Currency)).Add(float64(-result.Record.Amount))

	respondMessage(w, r, http.StatusOK, result.Message)
}

// CatalogResponse is the body for GET /api/v1/store/catalog.
type CatalogResponse struct {
	Entries []domain.CatalogEntry `json:"entries"`
}

// Catalog lists purchasable entries of one kind.
//
//	@Summary		List catalog entries
//	@Tags			store
//	@Produce		json
//	@Param			type	query		string	true	"entry kind: skill, style or item"
//	@Success		200		{object}	CatalogResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/v1/store/catalog [get]
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseItemKind(r.URL.Query().Get("type"))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, domain.ErrMsgInvalidItemKind)
		return
	}

	entries, err := h.store.ListCatalog(r.Context(), kind)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if entries == nil {
		entries = []domain.CatalogEntry{}
	}

	respondJSON(w, r, http.StatusOK, CatalogResponse{Entries: entries})
}
