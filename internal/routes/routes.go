package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/pricebite/pricebite-backend/internal/handlers"
	"github.com/pricebite/pricebite-backend/internal/middleware"
)

// Handlers bundles everything the route table needs.
type Handlers struct {
	Products  *handlers.ProductHandler
	Auth      *handlers.AuthHandler
	Contact   *handlers.ContactHandler
	JWTSecret []byte
}

// Setup registers every route. Static product paths (/products/search,
// /products/list) are registered alongside the /products/{id} wildcard;
// chi prefers static segments, so they never collide.
func Setup(r *chi.Mux, h Handlers) {
	requireAuth := middleware.RequireAuth(h.JWTSecret)

	// Auth routes
	r.Post("/api/auth/register", h.Auth.Register)
	r.Post("/api/auth/login", h.Auth.Login)
	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/api/auth/logout", h.Auth.Logout)
		r.Get("/api/auth/me", h.Auth.Me)
		r.Put("/api/auth/profile", h.Auth.UpdateProfile)
	})

	// Contact form
	r.Post("/api/contact", h.Contact.Submit)

	// Catalog facets
	r.Get("/categories", h.Products.GetCategories)
	r.Get("/subcategories", h.Products.GetSubcategories)
	r.Get("/brands", h.Products.GetBrands)
	r.Get("/platforms", h.Products.GetPlatforms)
	r.Get("/hot-deals", h.Products.GetHotDeals)

	// Products
	r.Get("/products", h.Products.LegacyCompare)
	r.Get("/products/search", h.Products.SearchProducts)
	r.Get("/products/list", h.Products.GetProductNames)
	r.Get("/products/category/{category}", h.Products.GetProductsByCategory)
	r.Get("/products/subcategory/{subcategory}", h.Products.GetProductsBySubcategory)
	r.Get("/products/{id}", h.Products.GetProductByID)
}
