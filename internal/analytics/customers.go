package analytics

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"

	"shopdash/internal/catalog"
)

// Loyalty tiers for a customer's accumulated points.
const (
	TierGold   = "Gold"
	TierSilver = "Silver"
	TierBronze = "Bronze"
)

// Loyalty policy: one point per 10 currency units spent; both tier
// boundaries are strict (exactly 500 points is still Silver).
const (
	loyaltyPointDivisor   = 10
	goldPointsThreshold   = 500
	silverPointsThreshold = 200
)

// Demo contact fields: invoices carry no customer contact data, so the email
// is derived from the profile id and the phone is a fixed placeholder.
const profilePhone = "555-0123"

// CustomerProfile is a loyalty profile derived entirely from invoices; no
// customer master data exists.
type CustomerProfile struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	TotalSpend float64   `json:"total_spend"`
	Points     int       `json:"points"`
	Tier       string    `json:"tier"`
	LastVisit  time.Time `json:"last_visit"`
}

// CustomerProfiles groups invoices by customer and derives a loyalty profile
// per customer: total spend, the most recent visit, points and tier.
// Profiles appear in first-encountered order. Customers are keyed by the
// slugified name, so the same name always folds into one profile.
func CustomerProfiles(invoices []catalog.Invoice) []CustomerProfile {
	order := []string{}
	byID := map[string]*CustomerProfile{}

	for _, inv := range invoices {
		id := customerID(inv.CustomerName)
		profile, ok := byID[id]
		if !ok {
			profile = &CustomerProfile{
				ID:        id,
				Name:      inv.CustomerName,
				Email:     fmt.Sprintf("%s@example.com", id),
				Phone:     profilePhone,
				Tier:      TierBronze,
				LastVisit: inv.Date,
			}
			byID[id] = profile
			order = append(order, id)
		}

		profile.TotalSpend += inv.Total
		if inv.Date.After(profile.LastVisit) {
			profile.LastVisit = inv.Date
		}
	}

	out := make([]CustomerProfile, 0, len(order))
	for _, id := range order {
		profile := byID[id]
		profile.Points = int(math.Floor(profile.TotalSpend / loyaltyPointDivisor))
		profile.Tier = tierFor(profile.Points)
		out = append(out, *profile)
	}
	return out
}

func tierFor(points int) string {
	if points > goldPointsThreshold {
		return TierGold
	}
	if points > silverPointsThreshold {
		return TierSilver
	}
	return TierBronze
}

// customerID slugifies a customer name: lowercased, every whitespace rune
// replaced with a hyphen.
func customerID(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '-'
		}
		return r
	}, strings.ToLower(name))
}
