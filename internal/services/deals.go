package services

import (
	"math"
	"sort"

	"github.com/pricebite/pricebite-backend/internal/catalog"
	"github.com/pricebite/pricebite-backend/internal/models"
)

const maxDeals = 10

// Deal is a product augmented with its cross-platform savings numbers.
type Deal struct {
	models.Product
	MinPrice          float64              `json:"minPrice"`
	MaxPrice          float64              `json:"maxPrice"`
	Savings           float64              `json:"savings"`
	SavingsPercentage float64              `json:"savingsPercentage"`
	BestPlatform      models.PlatformOffer `json:"bestPlatform"`
}

// HotDeals holds the top-ranked deals plus the number of qualifying products
// before truncation.
type HotDeals struct {
	Deals      []Deal `json:"deals"`
	TotalCount int    `json:"totalCount"`
}

// DealService ranks products by cross-platform savings.
type DealService struct {
	store *catalog.Store
}

func NewDealService(store *catalog.Store) *DealService {
	return &DealService{store: store}
}

// HotDeals computes savings for every product with at least two platform
// offers, ranks them by savings percentage (product id breaks ties, so the
// ranking is deterministic), and keeps the top ten. TotalCount counts all
// qualifying products, not just the ones kept.
func (s *DealService) HotDeals() HotDeals {
	deals := []Deal{}
	for _, p := range s.store.All() {
		// A single offer cannot have savings.
		if len(p.Platforms) < 2 {
			continue
		}
		minPrice := p.Platforms[0].Price
		maxPrice := p.Platforms[0].Price
		for _, offer := range p.Platforms[1:] {
			if offer.Price < minPrice {
				minPrice = offer.Price
			}
			if offer.Price > maxPrice {
				maxPrice = offer.Price
			}
		}
		savings := maxPrice - minPrice
		var pct float64
		if maxPrice > 0 {
			pct = round1(savings / maxPrice * 100)
		}
		best := p.Platforms[0]
		for _, offer := range p.Platforms {
			if offer.Price == minPrice {
				best = offer
				break
			}
		}
		deals = append(deals, Deal{
			Product:           p,
			MinPrice:          minPrice,
			MaxPrice:          maxPrice,
			Savings:           savings,
			SavingsPercentage: pct,
			BestPlatform:      best,
		})
	}

	sort.Slice(deals, func(i, j int) bool {
		if deals[i].SavingsPercentage != deals[j].SavingsPercentage {
			return deals[i].SavingsPercentage > deals[j].SavingsPercentage
		}
		return deals[i].ID < deals[j].ID
	})

	total := len(deals)
	if len(deals) > maxDeals {
		deals = deals[:maxDeals]
	}
	return HotDeals{Deals: deals, TotalCount: total}
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
