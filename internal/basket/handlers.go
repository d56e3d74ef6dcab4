package basket

import (
	"net/http"

	"github.com/panier-labs/backend-panier/internal/common"
	"github.com/panier-labs/backend-panier/internal/obs"
)

// Handler wires basket services to HTTP.
type Handler struct {
	Svc *Service
}

// Calculate handles POST /api/v1/baskets/calculate.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "basket service not configured", nil)
		return
	}
	var in Input
	if err := common.BindJSON(r, &in); err != nil {
		common.WriteAppError(w, err)
		return
	}
	quote, err := h.Svc.Quote(r.Context(), in)
	if err != nil {
		obs.CountQuote(string(in.Category), "error")
		common.WriteAppError(w, err)
		return
	}
	obs.CountQuote(string(in.Category), "ok")
	obs.CountSkippedItems(len(in.Items) - len(quote.Details))
	common.JSON(w, http.StatusOK, map[string]any{"data": quote})
}

// Create handles POST /api/v1/baskets.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "basket service not configured", nil)
		return
	}
	var in Input
	if err := common.BindJSON(r, &in); err != nil {
		common.WriteAppError(w, err)
		return
	}
	id, err := h.Svc.Create(r.Context(), in)
	if err != nil {
		obs.CountBasketCreate(string(in.Category), "error")
		common.WriteAppError(w, err)
		return
	}
	obs.CountBasketCreate(string(in.Category), "ok")
	common.JSON(w, http.StatusOK, map[string]any{
		"data": map[string]any{
			"id":      id,
			"message": "basket created",
		},
	})
}

// List handles GET /api/v1/baskets.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "basket service not configured", nil)
		return
	}
	baskets, err := h.Svc.List(r.Context())
	if err != nil {
		common.WriteAppError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": baskets})
}
