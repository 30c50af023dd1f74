// Package taxrate derives the per-neighbor hourly tax rate of a parcel.
package taxrate

import "parcel-econ-lab/internal/domain"

// levelDiscounts maps each tier to the fraction knocked off its tax rate.
// Table-driven so new tiers extend the table, not the call sites.
var levelDiscounts = map[domain.Level]float64{
	domain.LevelBase:   0,
	domain.LevelFirst:  0.10,
	domain.LevelSecond: 0.15,
}

// PerNeighborRate computes the hourly tax rate a parcel pays to (and is paid
// by) each of its neighbors:
//
//	rate = (taxRateNumerator/100) * timeSpeed / neighborCount
//
// discounted by the parcel's level. Zero neighbors means zero rate — there
// is nothing to tax against. Deterministic in (level, neighborCount, cfg),
// so it memoizes cleanly on (level, location) under a fixed adjacency index.
func PerNeighborRate(level domain.Level, neighborCount int, cfg domain.EconomicConfig) float64 {
	if neighborCount <= 0 {
		return 0
	}
	base := float64(cfg.TaxRateNumerator) / 100 * float64(cfg.TimeSpeed) / float64(neighborCount)
	return base * (1 - levelDiscounts[level])
}
