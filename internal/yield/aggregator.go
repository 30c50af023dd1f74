// Package yield walks a parcel's neighbor set and produces bounded-duration
// income and outflow totals.
package yield

import (
	"math"
	"sort"

	"parcel-econ-lab/internal/domain"
	"parcel-econ-lab/internal/grid"
	"parcel-econ-lab/internal/stake"
	"parcel-econ-lab/internal/taxrate"
)

// Mode selects how accrual durations are bounded.
type Mode int

const (
	// Unconstrained bounds each neighbor's accrual by the duration cap and
	// the neighbor's own solvency horizon only. Used when scoring a
	// prospective purchase: the buyer's horizon does not exist yet.
	Unconstrained Mode = iota

	// Constrained additionally bounds accrual by the holder's own solvency
	// horizon. Used for a held parcel's realistic net yield.
	Constrained
)

// SortOrder selects how the per-neighbor detail list is returned.
type SortOrder int

const (
	SortByTotalYieldDesc SortOrder = iota
	SortByLocationAsc
)

// Aggregator computes neighbor yield flows against one snapshot. It is pure
// with respect to (snapshot, index, config) and safe to share.
type Aggregator struct {
	snap  *domain.Snapshot
	index grid.NeighborIndex
	cfg   domain.EconomicConfig
}

// NewAggregator creates an aggregator bound to one snapshot.
func NewAggregator(snap *domain.Snapshot, index grid.NeighborIndex, cfg domain.EconomicConfig) *Aggregator {
	return &Aggregator{snap: snap, index: index, cfg: cfg}
}

// RateFor returns a parcel's per-neighbor tax rate under the bound index.
func (a *Aggregator) RateFor(p *domain.Parcel) float64 {
	if p == nil {
		return 0
	}
	return taxrate.PerNeighborRate(p.Level, len(a.index.Neighbors(p.Location)), a.cfg)
}

// ActiveNeighborCount counts neighbors that are owned and not under auction.
// Only those pay and receive tax.
func (a *Aggregator) ActiveNeighborCount(location int) int {
	count := 0
	for _, n := range a.index.Neighbors(location) {
		if a.snap.ParcelAt(n).Owned() && !a.snap.Auctioned(n) {
			count++
		}
	}
	return count
}

// TaxableHorizons returns the solvency horizon, in hours, of every neighbor
// that would collect tax from the parcel at location: owned and not under
// auction, whether or not it lists an ask price.
func (a *Aggregator) TaxableHorizons(location int) []float64 {
	var horizons []float64
	for _, n := range a.index.Neighbors(location) {
		np := a.snap.ParcelAt(n)
		if !np.Owned() || a.snap.Auctioned(n) {
			continue
		}
		horizons = append(horizons, a.TimeRemainingHours(np))
	}
	return horizons
}

// BurnRate returns a parcel's hourly stake consumption.
func (a *Aggregator) BurnRate(p *domain.Parcel) float64 {
	if p == nil {
		return 0
	}
	return stake.BurnRate(p.PriceValue(), a.RateFor(p), a.ActiveNeighborCount(p.Location))
}

// TimeRemainingHours returns a parcel's solvency horizon in hours.
func (a *Aggregator) TimeRemainingHours(p *domain.Parcel) float64 {
	if p == nil {
		return 0
	}
	return stake.TimeRemainingHours(p.Staked, a.BurnRate(p))
}

// Compute aggregates bounded-duration yield for the parcel at location.
// Locations absent from the adjacency index produce an empty result, never
// an error. Each eligible neighbor (owned, priced, not auctioned, not yet
// depleted) contributes hourlyYield * min(cap, neighborRemaining[, own
// remaining in Constrained mode]). The outgoing side applies the subject's
// own price and rate over every active neighbor, priced or not: an owned
// parcel with no ask still collects tax from the subject.
func (a *Aggregator) Compute(location int, capHours float64, mode Mode, order SortOrder) (domain.YieldInfo, []domain.NeighborYieldDetail) {
	var info domain.YieldInfo

	self := a.snap.ParcelAt(location)

	ownRemaining := math.Inf(1)
	if mode == Constrained {
		ownRemaining = a.TimeRemainingHours(self)
	}

	ownRate := a.RateFor(self)
	ownPrice := self.PriceValue()

	var details []domain.NeighborYieldDetail
	for _, n := range a.index.Neighbors(location) {
		np := a.snap.ParcelAt(n)
		if !np.Owned() || a.snap.Auctioned(n) {
			continue
		}

		nRemaining := a.TimeRemainingHours(np)

		duration := math.Min(capHours, nRemaining)
		if mode == Constrained {
			duration = math.Min(duration, ownRemaining)
		}
		if duration < 0 {
			duration = 0
		}

		info.TaxPaidTotal += ownPrice * ownRate * duration

		// Only priced, still-solvent neighbors produce income.
		if !np.Priced() || nRemaining <= 0 {
			continue
		}

		nRate := a.RateFor(np)
		hourly := np.PriceValue() * nRate

		details = append(details, domain.NeighborYieldDetail{
			Location:      n,
			Price:         np.PriceValue(),
			TaxRate:       nRate,
			HourlyYield:   hourly,
			TimeRemaining: nRemaining,
			Duration:      duration,
			TotalYield:    hourly * duration,
		})

		info.YieldPerHour += hourly
		info.TotalYield += hourly * duration
	}

	sortDetails(details, order)
	return info, details
}

// GrossReturn reports a held parcel's net income over the bounding duration:
// incoming yield minus outgoing tax minus what was paid for the parcel.
func GrossReturn(info domain.YieldInfo, purchasePrice float64) float64 {
	return info.TotalYield - info.TaxPaidTotal - purchasePrice
}

func sortDetails(details []domain.NeighborYieldDetail, order SortOrder) {
	switch order {
	case SortByLocationAsc:
		sort.Slice(details, func(i, j int) bool {
			return details[i].Location < details[j].Location
		})
	default:
		// Ties broken by location so output stays deterministic.
		sort.Slice(details, func(i, j int) bool {
			if details[i].TotalYield != details[j].TotalYield {
				return details[i].TotalYield > details[j].TotalYield
			}
			return details[i].Location < details[j].Location
		})
	}
}
