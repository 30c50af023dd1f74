package domain

import "github.com/shopspring/decimal"

// AuctionListing is an active dutch auction at one location. At most one
// listing exists per location, mutually exclusive with an owned parcel there.
//
// StartPrice and FloorPrice keep their raw integer token amounts as decimals
// because the decay computation must stay in fixed point until the final
// externally reported price.
type AuctionListing struct {
	Location   int
	StartTime  int64 // unix seconds
	StartPrice decimal.Decimal
	FloorPrice decimal.Decimal
	TokenID    string

	// DecayRate controls post-linear-phase decay. Nil means the listing
	// does not decay: price is frozen at max(start, floor).
	DecayRate *decimal.Decimal
}
