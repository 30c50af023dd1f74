package domain

// NeighborYieldDetail is the per-neighbor breakdown behind a yield total.
// Derived, never persisted.
type NeighborYieldDetail struct {
	Location      int     // neighbor's packed location
	Price         float64 // neighbor's normalized price in base units
	TaxRate       float64 // neighbor's per-neighbor hourly tax rate
	HourlyYield   float64 // Price * TaxRate
	TimeRemaining float64 // neighbor's solvency horizon in hours (may be +Inf)
	Duration      float64 // bounded accrual duration actually applied, hours
	TotalYield    float64 // HourlyYield * Duration
}

// YieldInfo is the bounded-duration income/outflow summary for one parcel.
type YieldInfo struct {
	TotalYield   float64 // income from neighbors over the bounding duration
	YieldPerHour float64 // instantaneous hourly income
	TaxPaidTotal float64 // outgoing tax over the same bounding duration
}

// NukableStatus classifies a parcel's stake solvency. The three states are
// mutually exclusive and total.
type NukableStatus int

const (
	NukableNone NukableStatus = iota
	NukableWarning
	NukableNow
)

// String returns the display name of the status.
func (s NukableStatus) String() string {
	switch s {
	case NukableNow:
		return "nukable"
	case NukableWarning:
		return "warning"
	default:
		return "none"
	}
}
