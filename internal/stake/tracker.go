// Package stake derives burn rate and solvency horizon for a parcel.
package stake

import (
	"math"

	"parcel-econ-lab/internal/domain"
)

var inf = math.Inf(1)

// WarningWindowMinutes is the horizon under which a still-solvent parcel is
// flagged as about to become nukable.
const WarningWindowMinutes = 10

// BurnRate is the hourly stake consumption of a parcel: its price times its
// per-neighbor rate times the number of active neighbors. Only owned,
// non-auctioned neighbors count as active — auctioned and unowned neighbors
// neither pay nor receive tax.
func BurnRate(price, perNeighborRate float64, activeNeighborCount int) float64 {
	if activeNeighborCount <= 0 {
		return 0
	}
	return price * perNeighborRate * float64(activeNeighborCount)
}

// TimeRemainingHours returns how long the stake lasts at the given burn
// rate. Contract: 0 when the stake is already gone, +Inf when nothing burns
// a positive stake. Never an error — this feeds a polling render loop.
func TimeRemainingHours(staked, burnRate float64) float64 {
	if staked <= 0 {
		return 0
	}
	if burnRate == 0 {
		return inf
	}
	return staked / burnRate
}

// Status classifies solvency from the staked amount and the remaining
// minutes. Exactly one of the three states applies.
func Status(staked, timeRemainingMinutes float64) domain.NukableStatus {
	if staked <= 0 {
		return domain.NukableNow
	}
	if timeRemainingMinutes <= WarningWindowMinutes {
		return domain.NukableWarning
	}
	return domain.NukableNone
}
