package client

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/panier-labs/backend-panier/internal/common"
	"github.com/panier-labs/backend-panier/internal/obs"
	"github.com/panier-labs/backend-panier/internal/pricing"
)

// Handler wires the client store to HTTP. Client operations are straight
// pass-throughs to storage, so no intermediate service layer exists.
type Handler struct {
	Store Store
}

type createIndividualRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
}

type createBusinessRequest struct {
	Identifier         string   `json:"identifier" validate:"required"`
	LegalName          string   `json:"legal_name" validate:"required"`
	TaxNumber          string   `json:"tax_number"`
	RegistrationNumber string   `json:"registration_number" validate:"required"`
	Revenue            *float64 `json:"revenue" validate:"required"`
}

// List handles GET /api/v1/clients.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "client store not configured", nil)
		return
	}
	clients, err := h.Store.List(r.Context())
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "STORE_ERROR", "unable to list clients", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": clients})
}

// CreateIndividual handles POST /api/v1/clients/individual.
func (h *Handler) CreateIndividual(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "client store not configured", nil)
		return
	}
	var payload createIndividualRequest
	if err := common.BindJSON(r, &payload); err != nil {
		common.WriteAppError(w, err)
		return
	}
	created, err := h.Store.CreateIndividual(r.Context(), IndividualInput{
		Identifier: payload.Identifier,
		FirstName:  payload.FirstName,
		LastName:   payload.LastName,
	})
	if err != nil {
		obs.CountClientCreate(string(pricing.CategoryIndividual), "error")
		writeStoreError(w, err)
		return
	}
	obs.CountClientCreate(string(pricing.CategoryIndividual), "ok")
	common.JSON(w, http.StatusOK, map[string]any{"data": created})
}

// CreateBusiness handles POST /api/v1/clients/business.
func (h *Handler) CreateBusiness(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "client store not configured", nil)
		return
	}
	var payload createBusinessRequest
	if err := common.BindJSON(r, &payload); err != nil {
		common.WriteAppError(w, err)
		return
	}
	created, err := h.Store.CreateBusiness(r.Context(), BusinessInput{
		Identifier:         payload.Identifier,
		LegalName:          payload.LegalName,
		TaxNumber:          payload.TaxNumber,
		RegistrationNumber: payload.RegistrationNumber,
		Revenue:            *payload.Revenue,
	})
	if err != nil {
		obs.CountClientCreate(string(pricing.CategoryBusiness), "error")
		writeStoreError(w, err)
		return
	}
	obs.CountClientCreate(string(pricing.CategoryBusiness), "ok")
	common.JSON(w, http.StatusOK, map[string]any{"data": created})
}

// Get handles GET /api/v1/clients/{category}/{id}. Unlike the basket
// endpoints, this one rejects unrecognised categories outright.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "client store not configured", nil)
		return
	}
	category := pricing.Category(chi.URLParam(r, "category"))
	if !category.Valid() {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid client category", nil)
		return
	}
	id, err := common.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "client not found", nil)
		return
	}
	found, err := h.Store.GetByCategory(r.Context(), category, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "client not found", nil)
			return
		}
		common.JSONError(w, http.StatusInternalServerError, "STORE_ERROR", "unable to load client", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": found})
}

// writeStoreError keeps store failures as 500s, refining only the message
// when the failure is a unique-identifier collision.
func writeStoreError(w http.ResponseWriter, err error) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		common.JSONError(w, http.StatusInternalServerError, "STORE_ERROR", "identifier already exists", nil)
		return
	}
	common.JSONError(w, http.StatusInternalServerError, "STORE_ERROR", "unable to create client", nil)
}
