package handler

import (
	"fmt"
	"net/http"
	"strings"

	"product-catalog/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// Create handles POST /api/products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeBody(r)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	product, err := h.service.Create(r.Context(), payload)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/products/%s", product.ID))
	writeJSON(w, http.StatusCreated, product.Serialize())
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	product, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	if product == nil {
		writeError(w, http.StatusNotFound, "product not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product.Serialize())
}

// Update handles PUT /api/products/{id} requests.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	payload, err := decodeBody(r)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	product, err := h.service.Update(r.Context(), id, payload)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	if product == nil {
		writeError(w, http.StatusNotFound, "product not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product.Serialize())
}

// Delete handles DELETE /api/products/{id} requests. Deleting an absent
// product still succeeds with no content.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /api/products requests with optional name, category,
// available and price query filters.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := service.ListFilter{
		Name:      r.URL.Query().Get("name"),
		Category:  r.URL.Query().Get("category"),
		Available: r.URL.Query().Get("available"),
		Price:     r.URL.Query().Get("price"),
	}

	products, err := h.service.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	results := make([]map[string]any, 0, len(products))
	for i := range products {
		results = append(results, products[i].Serialize())
	}
	writeJSON(w, http.StatusOK, results)
}

// productID extracts and parses the product ID from the request path.
// An ID that is not a valid identifier cannot name any product, so it
// is reported as not found.
func (h *ProductHandler) productID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := strings.TrimPrefix(r.URL.Path, "/api/products/")
	if raw == "" || strings.Contains(raw, "/") {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		h.logger.Debug().Str("product_id", raw).Msg("malformed product id")
		writeError(w, http.StatusNotFound, "product not found", h.logger)
		return uuid.Nil, false
	}

	return id, true
}
