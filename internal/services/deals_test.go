package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricebite/pricebite-backend/internal/catalog"
	"github.com/pricebite/pricebite-backend/internal/models"
	"github.com/pricebite/pricebite-backend/internal/services"
)

func dealProduct(id string, prices ...float64) models.Product {
	offers := make([]models.PlatformOffer, len(prices))
	for i, price := range prices {
		offers[i] = models.PlatformOffer{
			Platform:     fmt.Sprintf("Platform%d", i+1),
			Price:        price,
			Available:    true,
			DeliveryTime: "1 day",
		}
	}
	return models.Product{ID: id, Name: id, Brand: "Test", Category: "Test", Platforms: offers}
}

func fixtureDeals(t *testing.T, products []models.Product) *services.DealService {
	t.Helper()
	store, err := catalog.NewStore(products)
	require.NoError(t, err)
	return services.NewDealService(store)
}

func TestHotDeals_SavingsComputation(t *testing.T) {
	deals := fixtureDeals(t, []models.Product{dealProduct("p1", 100, 80, 120)})

	result := deals.HotDeals()
	require.Len(t, result.Deals, 1)
	deal := result.Deals[0]
	assert.Equal(t, float64(80), deal.MinPrice)
	assert.Equal(t, float64(120), deal.MaxPrice)
	assert.Equal(t, float64(40), deal.Savings)
	assert.Equal(t, 33.3, deal.SavingsPercentage)
}

func TestHotDeals_BestPlatformIsFirstAtMinPrice(t *testing.T) {
	deals := fixtureDeals(t, []models.Product{dealProduct("p1", 90, 80, 80)})

	result := deals.HotDeals()
	require.Len(t, result.Deals, 1)
	// Two offers share the min price; list order breaks the tie.
	assert.Equal(t, "Platform2", result.Deals[0].BestPlatform.Platform)
}

func TestHotDeals_SingleOfferNeverQualifies(t *testing.T) {
	deals := fixtureDeals(t, []models.Product{
		dealProduct("single", 100),
		dealProduct("double", 100, 90),
	})

	result := deals.HotDeals()
	require.Len(t, result.Deals, 1)
	assert.Equal(t, "double", result.Deals[0].ID)
	assert.Equal(t, 1, result.TotalCount)
}

func TestHotDeals_SortedBySavingsPercentage(t *testing.T) {
	deals := fixtureDeals(t, []models.Product{
		dealProduct("small", 100, 95),  // 5%
		dealProduct("large", 100, 50),  // 50%
		dealProduct("medium", 100, 80), // 20%
	})

	result := deals.HotDeals()
	require.Len(t, result.Deals, 3)
	assert.Equal(t, "large", result.Deals[0].ID)
	assert.Equal(t, "medium", result.Deals[1].ID)
	assert.Equal(t, "small", result.Deals[2].ID)
}

func TestHotDeals_TiesBreakByProductID(t *testing.T) {
	deals := fixtureDeals(t, []models.Product{
		dealProduct("zebra", 100, 80),
		dealProduct("alpha", 200, 160),
	})

	result := deals.HotDeals()
	require.Len(t, result.Deals, 2)
	assert.Equal(t, result.Deals[0].SavingsPercentage, result.Deals[1].SavingsPercentage)
	assert.Equal(t, "alpha", result.Deals[0].ID)
	assert.Equal(t, "zebra", result.Deals[1].ID)
}

func TestHotDeals_TruncatesToTenButCountsAll(t *testing.T) {
	products := make([]models.Product, 0, 12)
	for i := 0; i < 12; i++ {
		products = append(products, dealProduct(fmt.Sprintf("p%02d", i), 100, float64(100-i)))
	}
	deals := fixtureDeals(t, products)

	result := deals.HotDeals()
	assert.Len(t, result.Deals, 10)
	assert.Equal(t, 12, result.TotalCount)
}

func TestHotDeals_SeededCatalogIsDeterministic(t *testing.T) {
	store, err := catalog.NewStore(catalog.Seed())
	require.NoError(t, err)
	deals := services.NewDealService(store)

	first := deals.HotDeals()
	second := deals.HotDeals()
	require.Equal(t, first.TotalCount, second.TotalCount)
	require.Equal(t, len(first.Deals), len(second.Deals))
	for i := range first.Deals {
		assert.Equal(t, first.Deals[i].ID, second.Deals[i].ID)
	}
}
