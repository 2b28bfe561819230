package services_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricebite/pricebite-backend/internal/catalog"
	"github.com/pricebite/pricebite-backend/internal/models"
	"github.com/pricebite/pricebite-backend/internal/services"
)

func seededQuery(t *testing.T) *services.QueryService {
	t.Helper()
	store, err := catalog.NewStore(catalog.Seed())
	require.NoError(t, err)
	return services.NewQueryService(store)
}

func fixtureQuery(t *testing.T, products []models.Product) *services.QueryService {
	t.Helper()
	store, err := catalog.NewStore(products)
	require.NoError(t, err)
	return services.NewQueryService(store)
}

func TestCategories_NoDuplicates(t *testing.T) {
	q := seededQuery(t)

	categories := q.Categories()
	seen := map[string]bool{}
	for _, c := range categories {
		assert.False(t, seen[c], "duplicate category %q", c)
		seen[c] = true
	}

	// Every returned value equals some product's category.
	store, _ := catalog.NewStore(catalog.Seed())
	valid := map[string]bool{}
	for _, p := range store.All() {
		valid[p.Category] = true
	}
	for _, c := range categories {
		assert.True(t, valid[c], "category %q not in catalog", c)
	}
}

func TestCategoriesWithSubcategories_EmptyNotAbsent(t *testing.T) {
	q := seededQuery(t)

	groups := q.CategoriesWithSubcategories()
	byCategory := map[string][]string{}
	for _, g := range groups {
		byCategory[g.Category] = g.Subcategories
	}

	// Grains products carry no subcategory, yet the category is present with
	// an empty list.
	subs, ok := byCategory["Grains"]
	require.True(t, ok)
	assert.NotNil(t, subs)
	assert.Empty(t, subs)

	assert.ElementsMatch(t, []string{"Dairy", "Vegetables"}, byCategory["Grocery"])
}

func TestPlatforms_AggregatedAcrossOffers(t *testing.T) {
	q := seededQuery(t)

	platforms := q.Platforms()
	assert.Contains(t, platforms, "Zepto")
	assert.Contains(t, platforms, "Blinkit")
	assert.Contains(t, platforms, "Instamart")
	assert.Contains(t, platforms, "Amazon")
}

func TestSearch_NoFiltersReturnsEntireCatalog(t *testing.T) {
	q := seededQuery(t)

	first := q.Search(services.SearchFilters{})
	second := q.Search(services.SearchFilters{})

	store, _ := catalog.NewStore(catalog.Seed())
	assert.Equal(t, store.Len(), first.TotalCount)
	require.Equal(t, len(first.Products), len(second.Products))
	for i := range first.Products {
		assert.Equal(t, first.Products[i].ID, second.Products[i].ID)
	}
}

func TestSearch_QueryMatchesNameBrandOrSubcategory(t *testing.T) {
	q := seededQuery(t)

	result := q.Search(services.SearchFilters{Query: "milk"})
	require.NotEmpty(t, result.Products)
	for _, p := range result.Products {
		matched := strings.Contains(strings.ToLower(p.Name), "milk") ||
			strings.Contains(strings.ToLower(p.Brand), "milk") ||
			strings.Contains(strings.ToLower(p.Subcategory), "milk")
		assert.True(t, matched, "product %s does not match query", p.ID)
	}
}

func TestSearch_FiltersAreConjunctive(t *testing.T) {
	q := seededQuery(t)

	result := q.Search(services.SearchFilters{Category: "Grocery", Subcategory: "Dairy", Brand: "amul"})
	require.NotEmpty(t, result.Products)
	for _, p := range result.Products {
		assert.Equal(t, "Grocery", p.Category)
		assert.Equal(t, "Dairy", p.Subcategory)
		assert.Equal(t, "Amul", p.Brand)
	}
}

func TestSearch_CategoryIsCaseSensitive(t *testing.T) {
	q := seededQuery(t)

	assert.Zero(t, q.Search(services.SearchFilters{Category: "grocery"}).TotalCount)
	assert.NotZero(t, q.Search(services.SearchFilters{Category: "Grocery"}).TotalCount)
}

func TestSearch_PlatformIsCaseInsensitive(t *testing.T) {
	q := seededQuery(t)

	result := q.Search(services.SearchFilters{Platform: "zepto"})
	require.NotEmpty(t, result.Products)
	for _, p := range result.Products {
		found := false
		for _, offer := range p.Platforms {
			if strings.EqualFold(offer.Platform, "Zepto") {
				found = true
			}
		}
		assert.True(t, found)
	}
}

func TestSearch_PriceRangeBoundsEveryOffer(t *testing.T) {
	q := seededQuery(t)

	result := q.Search(services.SearchFilters{Category: "Grocery"})
	require.NotEmpty(t, result.Products)
	for _, p := range result.Products {
		for _, offer := range p.Platforms {
			assert.LessOrEqual(t, result.PriceRange.Min, offer.Price)
			assert.GreaterOrEqual(t, result.PriceRange.Max, offer.Price)
		}
	}
}

func TestSearch_EmptyResultHasZeroPriceRange(t *testing.T) {
	q := seededQuery(t)

	result := q.Search(services.SearchFilters{Query: "xyz-no-match"})
	assert.Empty(t, result.Products)
	assert.Zero(t, result.TotalCount)
	assert.Equal(t, services.PriceRange{Min: 0, Max: 0}, result.PriceRange)
	assert.Empty(t, result.Categories)
	assert.Empty(t, result.Brands)
}

func TestSearch_ProductWithoutOffersDoesNotPanic(t *testing.T) {
	q := fixtureQuery(t, []models.Product{
		{ID: "bare", Name: "Bare Product", Brand: "None", Category: "Misc"},
	})

	result := q.Search(services.SearchFilters{})
	assert.Equal(t, 1, result.TotalCount)
	assert.Equal(t, services.PriceRange{Min: 0, Max: 0}, result.PriceRange)
}

func TestProductsByCategory_EmptyIsNotError(t *testing.T) {
	q := seededQuery(t)

	assert.Empty(t, q.ProductsByCategory("Nonexistent"))
	assert.NotEmpty(t, q.ProductsByCategory("Fruits"))
}

func TestProductByID_Idempotent(t *testing.T) {
	q := seededQuery(t)

	first, ok := q.ProductByID("milk_amul_1l")
	require.True(t, ok)
	second, ok := q.ProductByID("milk_amul_1l")
	require.True(t, ok)
	assert.Equal(t, first, second)
}

func TestLegacySearchByName_BlankIsCallerError(t *testing.T) {
	q := seededQuery(t)

	_, ok := q.LegacySearchByName("   ")
	assert.False(t, ok)
	_, ok = q.LegacySearchByName("")
	assert.False(t, ok)
}

func TestLegacySearchByName_NoMatchIsEmptyList(t *testing.T) {
	q := seededQuery(t)

	offers, ok := q.LegacySearchByName("xyz-no-match")
	require.True(t, ok)
	assert.NotNil(t, offers)
	assert.Empty(t, offers)
}

func TestLegacySearchByName_FirstMatchInCatalogOrder(t *testing.T) {
	q := seededQuery(t)

	// The first catalog entry whose name contains "milk" is the Amul milk;
	// the offers must be that product's, in list order.
	offers, ok := q.LegacySearchByName("Milk")
	require.True(t, ok)
	require.Len(t, offers, 3)
	assert.Equal(t, "Zepto", offers[0].Platform)
	assert.Equal(t, float64(52), offers[0].Price)

	// Matching is on name only: brand substrings do not count.
	offers, ok = q.LegacySearchByName("amul")
	require.True(t, ok)
	assert.Empty(t, offers)
}
