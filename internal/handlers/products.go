package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pricebite/pricebite-backend/internal/services"
)

// ProductHandler serves the catalog, search, and deal endpoints.
type ProductHandler struct {
	query *services.QueryService
	deals *services.DealService
}

func NewProductHandler(query *services.QueryService, deals *services.DealService) *ProductHandler {
	return &ProductHandler{query: query, deals: deals}
}

// GetCategories returns every category with its subcategories.
func (h *ProductHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.query.CategoriesWithSubcategories())
}

// GetSubcategories returns the distinct subcategory list.
func (h *ProductHandler) GetSubcategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.query.Subcategories())
}

// GetBrands returns the distinct brand list.
func (h *ProductHandler) GetBrands(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.query.Brands())
}

// GetPlatforms returns the distinct platform list.
func (h *ProductHandler) GetPlatforms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.query.Platforms())
}

// GetHotDeals returns the top savings opportunities.
func (h *ProductHandler) GetHotDeals(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deals.HotDeals())
}

// GetProductsByCategory returns the products in a category. An unknown
// category is a 404: this is a navigational lookup, unlike search.
func (h *ProductHandler) GetProductsByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	products := h.query.ProductsByCategory(category)
	if len(products) == 0 {
		writeError(w, http.StatusNotFound, "No products found in this category.")
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// GetProductsBySubcategory returns the products in a subcategory, 404 when
// there are none.
func (h *ProductHandler) GetProductsBySubcategory(w http.ResponseWriter, r *http.Request) {
	subcategory := chi.URLParam(r, "subcategory")
	products := h.query.ProductsBySubcategory(subcategory)
	if len(products) == 0 {
		writeError(w, http.StatusNotFound, "No products found in this subcategory.")
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// SearchProducts runs the faceted search. An empty result set is a valid
// 200 with empty facets, never a 404.
func (h *ProductHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result := h.query.Search(services.SearchFilters{
		Query:       q.Get("q"),
		Category:    q.Get("category"),
		Subcategory: q.Get("subcategory"),
		Brand:       q.Get("brand"),
		Platform:    q.Get("platform"),
	})
	writeJSON(w, http.StatusOK, result)
}

// GetProductNames returns the distinct product names.
func (h *ProductHandler) GetProductNames(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.query.ProductNames())
}

// GetProductByID returns a single product or 404.
func (h *ProductHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	product, ok := h.query.ProductByID(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Product not found.")
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// LegacyCompare is the backward-compatible price comparison: the platform
// offers of the first product whose name contains the query.
func (h *ProductHandler) LegacyCompare(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	offers, ok := h.query.LegacySearchByName(name)
	if !ok {
		writeError(w, http.StatusBadRequest, "Please provide a product name.")
		return
	}
	writeJSON(w, http.StatusOK, offers)
}
