package services

import (
	"strings"

	"github.com/pricebite/pricebite-backend/internal/catalog"
	"github.com/pricebite/pricebite-backend/internal/models"
)

// QueryService answers read-only questions about the catalog. Every method
// is a pure linear scan; the catalog is small and static, so indexing is
// deliberately not attempted.
type QueryService struct {
	store *catalog.Store
}

func NewQueryService(store *catalog.Store) *QueryService {
	return &QueryService{store: store}
}

// SearchFilters are the optional conjunctive filters of a product search.
// Empty string means "no constraint".
type SearchFilters struct {
	Query       string `json:"query"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Brand       string `json:"brand"`
	Platform    string `json:"platform"`
}

// PriceRange is the min/max over the flattened platform prices of a result
// set. Empty result sets yield {0, 0}.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// SearchResult is a filtered product list plus facets derived from the
// filtered set, not the full catalog.
type SearchResult struct {
	Products      []models.Product `json:"products"`
	TotalCount    int              `json:"totalCount"`
	Categories    []string         `json:"categories"`
	Subcategories []string         `json:"subcategories"`
	Brands        []string         `json:"brands"`
	PriceRange    PriceRange       `json:"priceRange"`
	Filters       SearchFilters    `json:"filters"`
}

// CategoryGroup pairs a category with the distinct subcategories seen among
// its products. Categories without subcategorized products keep an empty
// list rather than being dropped.
type CategoryGroup struct {
	Category      string   `json:"category"`
	Subcategories []string `json:"subcategories"`
}

// Categories returns the distinct category values in first-seen order.
func (s *QueryService) Categories() []string {
	out := []string{}
	seen := map[string]bool{}
	for _, p := range s.store.All() {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// CategoriesWithSubcategories groups distinct non-empty subcategories under
// each distinct category.
func (s *QueryService) CategoriesWithSubcategories() []CategoryGroup {
	groups := []CategoryGroup{}
	index := map[string]int{}
	seen := map[string]map[string]bool{}
	for _, p := range s.store.All() {
		i, ok := index[p.Category]
		if !ok {
			i = len(groups)
			index[p.Category] = i
			groups = append(groups, CategoryGroup{Category: p.Category, Subcategories: []string{}})
			seen[p.Category] = map[string]bool{}
		}
		if p.Subcategory != "" && !seen[p.Category][p.Subcategory] {
			seen[p.Category][p.Subcategory] = true
			groups[i].Subcategories = append(groups[i].Subcategories, p.Subcategory)
		}
	}
	return groups
}

// Subcategories returns the distinct non-empty subcategory values.
func (s *QueryService) Subcategories() []string {
	out := []string{}
	seen := map[string]bool{}
	for _, p := range s.store.All() {
		if p.Subcategory != "" && !seen[p.Subcategory] {
			seen[p.Subcategory] = true
			out = append(out, p.Subcategory)
		}
	}
	return out
}

// Brands returns the distinct brand values.
func (s *QueryService) Brands() []string {
	out := []string{}
	seen := map[string]bool{}
	for _, p := range s.store.All() {
		if !seen[p.Brand] {
			seen[p.Brand] = true
			out = append(out, p.Brand)
		}
	}
	return out
}

// Platforms returns the distinct platform names aggregated across every
// product's offer list.
func (s *QueryService) Platforms() []string {
	out := []string{}
	seen := map[string]bool{}
	for _, p := range s.store.All() {
		for _, offer := range p.Platforms {
			if !seen[offer.Platform] {
				seen[offer.Platform] = true
				out = append(out, offer.Platform)
			}
		}
	}
	return out
}

// ProductNames returns the distinct product names in catalog order.
func (s *QueryService) ProductNames() []string {
	out := []string{}
	seen := map[string]bool{}
	for _, p := range s.store.All() {
		if !seen[p.Name] {
			seen[p.Name] = true
			out = append(out, p.Name)
		}
	}
	return out
}

// ProductByID looks a single product up by id.
func (s *QueryService) ProductByID(id string) (models.Product, bool) {
	return s.store.ByID(id)
}

// ProductsByCategory returns every product with an exact category match.
// Nothing matching is an empty slice, not an error.
func (s *QueryService) ProductsByCategory(category string) []models.Product {
	out := []models.Product{}
	for _, p := range s.store.All() {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// ProductsBySubcategory returns every product with an exact subcategory match.
func (s *QueryService) ProductsBySubcategory(subcategory string) []models.Product {
	out := []models.Product{}
	for _, p := range s.store.All() {
		if p.Subcategory == subcategory {
			out = append(out, p)
		}
	}
	return out
}

// Search applies the supplied filters as a conjunction and derives facets and
// the price range from the filtered set.
func (s *QueryService) Search(f SearchFilters) SearchResult {
	matched := []models.Product{}
	for _, p := range s.store.All() {
		if matches(p, f) {
			matched = append(matched, p)
		}
	}

	result := SearchResult{
		Products:      matched,
		TotalCount:    len(matched),
		Categories:    []string{},
		Subcategories: []string{},
		Brands:        []string{},
		Filters:       f,
	}

	seenCat := map[string]bool{}
	seenSub := map[string]bool{}
	seenBrand := map[string]bool{}
	havePrice := false
	for _, p := range matched {
		if !seenCat[p.Category] {
			seenCat[p.Category] = true
			result.Categories = append(result.Categories, p.Category)
		}
		if p.Subcategory != "" && !seenSub[p.Subcategory] {
			seenSub[p.Subcategory] = true
			result.Subcategories = append(result.Subcategories, p.Subcategory)
		}
		if !seenBrand[p.Brand] {
			seenBrand[p.Brand] = true
			result.Brands = append(result.Brands, p.Brand)
		}
		// Products with no offers contribute no prices.
		for _, offer := range p.Platforms {
			if !havePrice {
				havePrice = true
				result.PriceRange.Min = offer.Price
				result.PriceRange.Max = offer.Price
				continue
			}
			if offer.Price < result.PriceRange.Min {
				result.PriceRange.Min = offer.Price
			}
			if offer.Price > result.PriceRange.Max {
				result.PriceRange.Max = offer.Price
			}
		}
	}
	return result
}

func matches(p models.Product, f SearchFilters) bool {
	if f.Query != "" {
		term := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Brand), term) &&
			!(p.Subcategory != "" && strings.Contains(strings.ToLower(p.Subcategory), term)) {
			return false
		}
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Subcategory != "" && p.Subcategory != f.Subcategory {
		return false
	}
	if f.Brand != "" && !strings.EqualFold(p.Brand, f.Brand) {
		return false
	}
	if f.Platform != "" {
		found := false
		for _, offer := range p.Platforms {
			if strings.EqualFold(offer.Platform, f.Platform) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// LegacySearchByName matches the given name as a case-insensitive substring
// against product names only and returns the platform-offer list of the
// first match in catalog order. This mirrors the original price-comparison
// endpoint and is order-dependent on purpose.
func (s *QueryService) LegacySearchByName(name string) ([]models.PlatformOffer, bool) {
	term := strings.ToLower(strings.TrimSpace(name))
	if term == "" {
		return nil, false
	}
	for _, p := range s.store.All() {
		if strings.Contains(strings.ToLower(p.Name), term) {
			offers := p.Platforms
			if offers == nil {
				offers = []models.PlatformOffer{}
			}
			return offers, true
		}
	}
	return []models.PlatformOffer{}, true
}
