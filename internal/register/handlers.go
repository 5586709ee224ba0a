package register

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	validator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/noah-isme/backend-kasir/internal/catalog"
	"github.com/noah-isme/backend-kasir/internal/common"
	"github.com/noah-isme/backend-kasir/internal/money"
	"github.com/noah-isme/backend-kasir/internal/sale"
)

// Handler exposes the register over HTTP. It is glue only: every rule the
// endpoints enforce also lives in the core, so other drivers behave the same.
type Handler struct {
	Svc      *Service
	Validate *validator.Validate
}

// NewHandler constructs a Handler with a ready validator.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc, Validate: validator.New()}
}

type enterItemRequest struct {
	ItemID   string `json:"itemId" validate:"required"`
	Quantity int    `json:"qty" validate:"required,gt=0"`
}

type discountRequest struct {
	CustomerID string `json:"customerId" validate:"required"`
}

type paymentRequest struct {
	Tendered money.Money `json:"tendered"`
}

// StartSale opens a new sale.
func (h *Handler) StartSale(w http.ResponseWriter, r *http.Request) {
	saleID := h.Svc.StartSale(r.Context())
	common.JSON(w, http.StatusCreated, map[string]any{
		"data": map[string]any{"saleId": saleID.String()},
	})
}

// EnterItem registers an item on the sale.
func (h *Handler) EnterItem(w http.ResponseWriter, r *http.Request) {
	saleID, ok := h.saleID(w, r)
	if !ok {
		return
	}
	var req enterItemRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body", nil)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "VALIDATION", "invalid request", err.Error())
		return
	}
	registration, err := h.Svc.EnterItem(r.Context(), saleID, req.ItemID, req.Quantity)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": registration})
}

// RequestDiscount applies the computed discount for a customer.
func (h *Handler) RequestDiscount(w http.ResponseWriter, r *http.Request) {
	saleID, ok := h.saleID(w, r)
	if !ok {
		return
	}
	var req discountRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body", nil)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "VALIDATION", "invalid request", err.Error())
		return
	}
	amount, err := h.Svc.RequestDiscount(r.Context(), saleID, req.CustomerID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{
		"data": map[string]any{"discount": amount},
	})
}

// GetSale returns the current sale summary.
func (h *Handler) GetSale(w http.ResponseWriter, r *http.Request) {
	saleID, ok := h.saleID(w, r)
	if !ok {
		return
	}
	summary, err := h.Svc.SaleSummary(r.Context(), saleID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": summary})
}

// Pay settles the sale with the tendered cash amount.
func (h *Handler) Pay(w http.ResponseWriter, r *http.Request) {
	saleID, ok := h.saleID(w, r)
	if !ok {
		return
	}
	var req paymentRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body", nil)
		return
	}
	record, receipt, err := h.Svc.Pay(r.Context(), saleID, req.Tendered)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{
		"data": map[string]any{
			"payment": record,
			"receipt": receipt,
		},
	})
}

func (h *Handler) saleID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "saleID"))
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid sale id", nil)
		return uuid.UUID{}, false
	}
	return id, true
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrSaleNotFound):
		common.JSONError(w, http.StatusNotFound, "SALE_NOT_FOUND", "sale not found", nil)
	case errors.Is(err, catalog.ErrItemNotFound):
		common.JSONError(w, http.StatusNotFound, "ITEM_NOT_FOUND", "item does not exist", nil)
	case errors.Is(err, catalog.ErrUnavailable):
		common.JSONError(w, http.StatusServiceUnavailable, "CATALOG_UNAVAILABLE", "catalog temporarily unavailable, try again", nil)
	case errors.Is(err, sale.ErrInvalidQuantity):
		common.JSONError(w, http.StatusBadRequest, "INVALID_QUANTITY", "quantity must be greater than zero", nil)
	case errors.Is(err, sale.ErrAlreadySettled):
		common.JSONError(w, http.StatusConflict, "SALE_ALREADY_SETTLED", "sale is already settled", nil)
	default:
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "unexpected failure", nil)
	}
}
