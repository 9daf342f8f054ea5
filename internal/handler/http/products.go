package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/akhmadiev/storefront/internal/logger"
	"github.com/akhmadiev/storefront/internal/service"
	"github.com/akhmadiev/storefront/internal/store"
	"github.com/akhmadiev/storefront/internal/utils"
	"github.com/akhmadiev/storefront/models"
)

func (h *Handler) getAllProducts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	products, err := h.services.CatalogService.ListProducts(r.Context())
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during products listing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, models.ProductsResponse{Products: products}, http.StatusOK)
}

// createProduct adds a product from a form-encoded body (name, price,
// quantity; all required) and responds with 201 and the stored record.
func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("malformed form body")
		_, _ = utils.WriteText(w, "Missing parameters", http.StatusBadRequest)
		return
	}

	name := r.PostFormValue("name")
	priceRaw := r.PostFormValue("price")
	quantityRaw := r.PostFormValue("quantity")

	if name == "" || priceRaw == "" || quantityRaw == "" {
		log.Error().Msg("missing product parameters")
		_, _ = utils.WriteText(w, "Missing parameters", http.StatusBadRequest)
		return
	}

	price, err := strconv.ParseFloat(priceRaw, 64)
	if err != nil {
		log.Err(err).Str("price", priceRaw).Msg("unparsable price")
		_, _ = utils.WriteText(w, "Invalid parameters", http.StatusBadRequest)
		return
	}

	quantity, err := strconv.ParseInt(quantityRaw, 10, 64)
	if err != nil {
		log.Err(err).Str("quantity", quantityRaw).Msg("unparsable quantity")
		_, _ = utils.WriteText(w, "Invalid parameters", http.StatusBadRequest)
		return
	}

	created, err := h.services.CatalogService.CreateProduct(ctx, models.Product{
		Name:     name,
		Price:    price,
		Quantity: quantity,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			log.Err(err).Msg("invalid product data")
			_, _ = utils.WriteText(w, "Invalid parameters", http.StatusBadRequest)
			return
		}

		log.Err(err).Msg("unexpected error occurred during product creation")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	productID, ok := productIDFromRequest(r)
	if !ok {
		_, _ = utils.WriteText(w, "Product not found.", http.StatusNotFound)
		return
	}

	product, err := h.services.CatalogService.GetProduct(r.Context(), productID)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			_, _ = utils.WriteText(w, "Product not found.", http.StatusNotFound)
			return
		}

		log.Err(err).Int64("id", productID).Msg("unexpected error occurred during product lookup")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, product, http.StatusOK)
}

// updateProduct applies a partial update: only form fields that are present
// and non-empty overwrite stored values. Responds with 200 and the updated
// record.
func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	productID, ok := productIDFromRequest(r)
	if !ok {
		_, _ = utils.WriteText(w, "Product not found.", http.StatusNotFound)
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("malformed form body")
		_, _ = utils.WriteText(w, "Missing parameters", http.StatusBadRequest)
		return
	}

	var update models.ProductUpdate

	if name := r.PostFormValue("name"); name != "" {
		update.Name = &name
	}
	if priceRaw := r.PostFormValue("price"); priceRaw != "" {
		price, err := strconv.ParseFloat(priceRaw, 64)
		if err != nil {
			log.Err(err).Str("price", priceRaw).Msg("unparsable price")
			_, _ = utils.WriteText(w, "Invalid parameters", http.StatusBadRequest)
			return
		}
		update.Price = &price
	}
	if quantityRaw := r.PostFormValue("quantity"); quantityRaw != "" {
		quantity, err := strconv.ParseInt(quantityRaw, 10, 64)
		if err != nil {
			log.Err(err).Str("quantity", quantityRaw).Msg("unparsable quantity")
			_, _ = utils.WriteText(w, "Invalid parameters", http.StatusBadRequest)
			return
		}
		update.Quantity = &quantity
	}

	updated, err := h.services.CatalogService.UpdateProduct(ctx, productID, update)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrProductNotFound):
			_, _ = utils.WriteText(w, "Product not found.", http.StatusNotFound)
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid product update")
			_, _ = utils.WriteText(w, "Invalid parameters", http.StatusBadRequest)
		default:
			log.Err(err).Int64("id", productID).Msg("unexpected error occurred during product update")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	productID, ok := productIDFromRequest(r)
	if !ok {
		_, _ = utils.WriteText(w, "Product not found.", http.StatusNotFound)
		return
	}

	if err := h.services.CatalogService.DeleteProduct(r.Context(), productID); err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			_, _ = utils.WriteText(w, "Product not found.", http.StatusNotFound)
			return
		}

		log.Err(err).Int64("id", productID).Msg("unexpected error occurred during product deletion")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteText(w, "Successfully deleted.", http.StatusOK)
}

// productIDFromRequest parses the {productID} route parameter. A value that
// is not a positive integer can never match a stored product, so callers
// treat a false return as not-found rather than bad-request.
func productIDFromRequest(r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "productID")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}

	return id, true
}
