package domain

// Snapshot is one atomic, immutable copy of the full grid state: all
// parcels, all active auctions, and the token quotes in effect. A poll cycle
// replaces the whole snapshot; nothing inside one is ever mutated.
type Snapshot struct {
	Version   string // deterministic content hash, see internal/idhash
	FetchedAt int64  // unix ms when the fetch layer captured the state

	Parcels  map[int]*Parcel         // keyed by packed location
	Auctions map[int]*AuctionListing // keyed by packed location
	Quotes   map[string]*TokenQuote  // keyed by canonical token id
}

// ParcelAt returns the parcel at location, or nil.
func (s *Snapshot) ParcelAt(location int) *Parcel {
	if s == nil {
		return nil
	}
	return s.Parcels[location]
}

// AuctionAt returns the active auction at location, or nil.
func (s *Snapshot) AuctionAt(location int) *AuctionListing {
	if s == nil {
		return nil
	}
	return s.Auctions[location]
}

// Auctioned reports whether location is currently under auction.
func (s *Snapshot) Auctioned(location int) bool {
	return s.AuctionAt(location) != nil
}

// QuoteFor returns the quote for a token id, or nil when the feed had none.
func (s *Snapshot) QuoteFor(tokenID string) *TokenQuote {
	if s == nil {
		return nil
	}
	return s.Quotes[tokenID]
}
