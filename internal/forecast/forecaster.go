package forecast

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"shopdash/internal/catalog"
)

// Demand tiers for a product's sales velocity.
const (
	TierHigh   = "High"
	TierMedium = "Medium"
	TierLow    = "Low"
)

// Policy constants for the velocity heuristic and restock planning.
const (
	// HighDemandVelocity is the strict lower bound for the High tier; it is
	// also the threshold the alert generator uses for high-demand alerts.
	HighDemandVelocity = 4.0
	// MediumDemandVelocity is the strict lower bound for the Medium tier.
	MediumDemandVelocity = 1.5
	// RestockHorizonDays is the coverage target for restock suggestions.
	RestockHorizonDays = 30
	// StockOutSentinelDays stands in for "effectively never" when a product
	// has no measurable velocity.
	StockOutSentinelDays = 999

	topSellerBaseVelocity = 5.0
	defaultBaseVelocity   = 1.0
	northDampingFactor    = 0.5
	velocityNoiseSpan     = 2.0
)

// Prediction is the derived demand row for a single product. It is recomputed
// on every request and never cached.
type Prediction struct {
	ProductID         string  `json:"product_id"`
	ProductName       string  `json:"product_name"`
	CurrentStock      int     `json:"current_stock"`
	SalesVelocity     float64 `json:"sales_velocity"`
	DaysToEmpty       float64 `json:"days_to_empty"`
	Demand            string  `json:"demand"`
	RestockSuggestion int     `json:"restock_suggestion"`
}

// Forecaster estimates per-product demand. The velocity estimate is a
// heuristic with a bounded random perturbation, not a statistical model;
// callers must not assume stability across calls. The random source is
// injectable so tests can pin a seed.
type Forecaster struct {
	mu         sync.Mutex
	rng        *rand.Rand
	topSellers map[string]struct{}
}

// New creates a Forecaster. topSellers is the set of historical top-seller
// product names; src may be nil, in which case a time-seeded source is used.
func New(topSellers map[string]struct{}, src rand.Source) *Forecaster {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	if topSellers == nil {
		topSellers = map[string]struct{}{}
	}
	return &Forecaster{
		rng:        rand.New(src),
		topSellers: topSellers,
	}
}

// ResolveStock returns the on-hand quantity for the given scope: the named
// store's quantity (0 if the product has no entry there), or the sum across
// all stores when storeID is empty.
func ResolveStock(p catalog.Product, storeID string) int {
	if storeID == "" {
		return p.TotalStock()
	}
	return p.Stores[storeID]
}

// SalesVelocity estimates units sold per day for a product under a scope.
// Top sellers start from a higher base rate, the North store is damped
// relative to the rest, and a bounded random perturbation is added. The
// result is rounded to two decimals.
func (f *Forecaster) SalesVelocity(p catalog.Product, storeID string) float64 {
	base := defaultBaseVelocity
	if _, ok := f.topSellers[p.Name]; ok {
		base = topSellerBaseVelocity
	}
	if storeID == catalog.StoreNorth {
		base *= northDampingFactor
	}

	f.mu.Lock()
	noise := f.rng.Float64() * velocityNoiseSpan
	f.mu.Unlock()

	return round2(base + noise)
}

// DaysToEmpty estimates how long the current stock lasts at the given
// velocity, rounded to one decimal. A non-positive velocity yields the
// StockOutSentinelDays sentinel rather than an error.
func DaysToEmpty(stock int, velocity float64) float64 {
	if velocity <= 0 {
		return StockOutSentinelDays
	}
	return round1(float64(stock) / velocity)
}

// Tier classifies a velocity. Both boundaries are strict: exactly 4.0 is
// Medium and exactly 1.5 is Low.
func Tier(velocity float64) string {
	if velocity > HighDemandVelocity {
		return TierHigh
	}
	if velocity > MediumDemandVelocity {
		return TierMedium
	}
	return TierLow
}

// RestockSuggestion returns how many units to order to cover
// RestockHorizonDays of demand, floored at zero.
func RestockSuggestion(stock int, velocity float64) int {
	needed := velocity * RestockHorizonDays
	toOrder := needed - float64(stock)
	if toOrder <= 0 {
		return 0
	}
	return int(math.Ceil(toOrder))
}

// Report maps every product to a Prediction under the given scope, in input
// order, with no filtering. Missing data defaults to zero instead of failing.
func (f *Forecaster) Report(products []catalog.Product, storeID string) []Prediction {
	report := make([]Prediction, 0, len(products))
	for _, p := range products {
		stock := ResolveStock(p, storeID)
		velocity := f.SalesVelocity(p, storeID)

		report = append(report, Prediction{
			ProductID:         p.ID,
			ProductName:       p.Name,
			CurrentStock:      stock,
			SalesVelocity:     velocity,
			DaysToEmpty:       DaysToEmpty(stock, velocity),
			Demand:            Tier(velocity),
			RestockSuggestion: RestockSuggestion(stock, velocity),
		})
	}
	return report
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
