package domain

// Recommendation reason contract values. Callers switch on these.
const (
	ReasonNoProfitableNeighbors = "no profitable neighbors"
	ReasonLowProfitability      = "low profitability"
	ReasonProfitable            = "profitable"
)

// PurchaseRecommendation is the engine's buy/no-buy verdict for one
// parcel-or-auction. All monetary figures are in base units. When
// IsRecommended is true the tax/profit figures are computed against
// RecommendedPrice, otherwise against CurrentPrice.
type PurchaseRecommendation struct {
	Location         int
	CurrentPrice     float64
	MaxYield         float64 // unconstrained bounded yield from neighbors
	RecommendedPrice float64 // suggested bid; >= CurrentPrice when recommended
	RequiredTotalTax float64 // tax outlay over the bounded horizon
	RequiredStake    float64 // stake needed to stay solvent for the full cap
	NetProfit        float64
	IsRecommended    bool
	Reason           string
	NeighborDetails  []NeighborYieldDetail
}
