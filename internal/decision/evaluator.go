// Package decision turns yield aggregates into a buy/no-buy recommendation
// with a suggested bid price.
package decision

import (
	"math"

	"parcel-econ-lab/internal/domain"
)

// Evaluator scores purchase candidates.
type Evaluator struct{}

// NewEvaluator creates a new recommendation evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate produces a PurchaseRecommendation from one candidate's numbers.
//
// Not recommended when there is nothing to earn (no profitable neighbors)
// or when net profit does not clear the minimum margin over the current
// price. When recommended, the suggested bid adds a conservative premium —
// a fraction of only the first guaranteed hour of yield — and the returned
// tax/profit figures are recomputed against that adjusted price.
func (e *Evaluator) Evaluate(in Input) *domain.PurchaseRecommendation {
	rec := &domain.PurchaseRecommendation{
		Location:         in.Location,
		CurrentPrice:     in.CurrentPrice,
		MaxYield:         in.MaxYield,
		RecommendedPrice: in.CurrentPrice,
		NeighborDetails:  in.Details,
	}

	if in.MaxYield <= 0 {
		rec.Reason = domain.ReasonNoProfitableNeighbors
		rec.RequiredTotalTax = e.requiredTax(in, in.CurrentPrice)
		rec.RequiredStake = e.requiredStake(in, in.CurrentPrice)
		rec.NetProfit = in.MaxYield - rec.RequiredTotalTax - in.CurrentPrice
		return rec
	}

	tax := e.requiredTax(in, in.CurrentPrice)
	net := in.MaxYield - tax - in.CurrentPrice

	if net <= in.CurrentPrice*MinProfitMarginPct {
		rec.Reason = domain.ReasonLowProfitability
		rec.RequiredTotalTax = tax
		rec.RequiredStake = e.requiredStake(in, in.CurrentPrice)
		rec.NetProfit = net
		return rec
	}

	// Only the first guaranteed hour of each neighbor's yield justifies a
	// bid premium.
	firstHour := 0.0
	for _, d := range in.Details {
		firstHour += d.HourlyYield * math.Min(1, d.Duration)
	}
	recommended := in.CurrentPrice + BidPremiumFactor*firstHour

	rec.IsRecommended = true
	rec.Reason = domain.ReasonProfitable
	rec.RecommendedPrice = recommended
	rec.RequiredTotalTax = e.requiredTax(in, recommended)
	rec.RequiredStake = e.requiredStake(in, recommended)
	rec.NetProfit = in.MaxYield - rec.RequiredTotalTax - recommended
	return rec
}

// requiredTax accrues the buyer's outgoing tax at the given price: each
// tax-receiving neighbor collects price*ownRate for as long as it survives,
// bounded by the duration cap. Runs over TaxableHorizons, not Details, so
// unpriced neighbors are charged for too.
func (e *Evaluator) requiredTax(in Input, price float64) float64 {
	total := 0.0
	for _, h := range in.TaxableHorizons {
		total += price * in.OwnRatePerNeighbor * math.Min(in.DurationCapHours, h)
	}
	return total
}

// ROI returns net profit relative to the price paid. A zero price returns 0
// by contract, never a division fault.
func ROI(netProfit, price float64) float64 {
	if price == 0 {
		return 0
	}
	return netProfit / price
}

// requiredStake is the stake needed to stay solvent for the full duration
// cap at the given price. Deliberately not bounded by neighbor horizons:
// stake is posted up front regardless of when neighbors deplete.
func (e *Evaluator) requiredStake(in Input, price float64) float64 {
	return price * in.OwnRatePerNeighbor * float64(in.ActiveNeighborCount) * in.DurationCapHours
}
