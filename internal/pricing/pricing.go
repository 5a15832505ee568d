package pricing

import (
	"math"

	"github.com/tyleryates/cookie-tracker-sub004/internal/domain"
)

// retailPrices maps each variety to its per-package retail price for
// the season. Specialty varieties carry the higher price point.
var retailPrices = map[domain.Variety]float64{
	domain.VarietyAdventurefuls: 6.00,
	domain.VarietyDoSiDos:       6.00,
	domain.VarietyLemonUps:      6.00,
	domain.VarietySamoas:        6.00,
	domain.VarietyTagalongs:     6.00,
	domain.VarietyThinMints:     6.00,
	domain.VarietyTrefoils:      6.00,
	domain.VarietySmores:        7.00,
	domain.VarietyToffeeTastic:  7.00,
	domain.VarietyCookieShare:   6.00,
}

// defaultPrice covers varieties missing from the table, such as a
// mid-season catalog addition the build predates.
const defaultPrice = 6.00

// Price returns the per-package retail price for a variety.
func Price(v domain.Variety) float64 {
	if p, ok := retailPrices[v]; ok {
		return p
	}
	return defaultPrice
}

// Retail returns the retail value of a per-variety count set.
func Retail(counts domain.VarietyCounts) float64 {
	total := 0.0
	for v, n := range counts {
		total += Price(v) * float64(n)
	}
	return RoundUSD(total)
}

// RoundUSD rounds to whole cents.
func RoundUSD(v float64) float64 {
	return math.Round(v*100) / 100
}
