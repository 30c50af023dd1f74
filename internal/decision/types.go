package decision

import "parcel-econ-lab/internal/domain"

// MinProfitMarginPct is the minimum net profit, as a fraction of the
// current price, below which a purchase is not recommended.
const MinProfitMarginPct = 0.02

// BidPremiumFactor is the fraction of the first guaranteed hour of yield
// used to justify bidding above the current price.
const BidPremiumFactor = 0.8

// Input carries the numbers the evaluator scores a parcel-or-auction on.
// Yield figures must come from an unconstrained aggregation: the buyer's
// solvency horizon does not exist until after the purchase.
type Input struct {
	Location     int
	CurrentPrice float64 // normalized; decayed price when auctioned, ask price otherwise
	MaxYield     float64 // unconstrained bounded yield total
	Details      []domain.NeighborYieldDetail

	// OwnRatePerNeighbor is the per-neighbor tax rate the buyer would pay
	// at this location, and ActiveNeighborCount how many neighbors would
	// collect it.
	OwnRatePerNeighbor  float64
	ActiveNeighborCount int

	// TaxableHorizons holds the solvency horizon of every tax-receiving
	// neighbor, including owned-but-unpriced ones that never appear in
	// Details. One entry per active neighbor.
	TaxableHorizons []float64

	DurationCapHours float64
}
