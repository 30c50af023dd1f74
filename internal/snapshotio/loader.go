// Package snapshotio decodes grid snapshots from JSON delivered by the
// fetch layer. Documents are validated against an embedded JSON Schema
// before any domain object is built; inside a structurally valid document,
// malformed numeric values still normalize to their documented fallbacks
// instead of failing the snapshot.
package snapshotio

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"parcel-econ-lab/internal/domain"
	"parcel-econ-lab/internal/idhash"
	"parcel-econ-lab/internal/normalization"
)

//go:embed schema.json
var schemaJSON string

// ErrInvalidSnapshot wraps schema validation failures.
var ErrInvalidSnapshot = errors.New("invalid snapshot document")

var schema = jsonschema.MustCompileString("snapshot/schema.json", schemaJSON)

// Wire-format structs. Monetary fields are raw integer token amounts as
// strings, exactly as the chain reports them.
type wireSnapshot struct {
	FetchedAt int64         `json:"fetched_at"`
	Quotes    []wireQuote   `json:"quotes"`
	Parcels   []wireParcel  `json:"parcels"`
	Auctions  []wireAuction `json:"auctions"`
}

type wireQuote struct {
	TokenID  string   `json:"token_id"`
	Symbol   string   `json:"symbol"`
	Ratio    *float64 `json:"ratio"`
	Decimals int      `json:"decimals"`
}

type wireParcel struct {
	Location int     `json:"location"`
	Owner    *string `json:"owner"`
	AskPrice *string `json:"ask_price"`
	TokenID  string  `json:"token_id"`
	Level    string  `json:"level"`
	Staked   string  `json:"staked"`
}

type wireAuction struct {
	Location   int     `json:"location"`
	StartTime  int64   `json:"start_time"`
	StartPrice string  `json:"start_price"`
	FloorPrice string  `json:"floor_price"`
	DecayRate  *string `json:"decay_rate"`
	TokenID    string  `json:"token_id"`
}

// Decode validates and decodes one snapshot document, normalizes all
// monetary amounts into base units, and stamps the deterministic version.
func Decode(data []byte) (*domain.Snapshot, error) {
	var doc any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	var wire wireSnapshot
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	snap := &domain.Snapshot{
		FetchedAt: wire.FetchedAt,
		Parcels:   make(map[int]*domain.Parcel, len(wire.Parcels)),
		Auctions:  make(map[int]*domain.AuctionListing, len(wire.Auctions)),
		Quotes:    make(map[string]*domain.TokenQuote, len(wire.Quotes)),
	}

	for _, q := range wire.Quotes {
		id := normalization.CanonicalTokenID(q.TokenID)
		snap.Quotes[id] = &domain.TokenQuote{
			TokenID:  id,
			Symbol:   q.Symbol,
			Ratio:    q.Ratio,
			Decimals: q.Decimals,
		}
	}

	for _, p := range wire.Parcels {
		tokenID := normalization.CanonicalTokenID(p.TokenID)
		quote := snap.Quotes[tokenID]

		parcel := &domain.Parcel{
			Location: p.Location,
			Owner:    p.Owner,
			TokenID:  tokenID,
			Level:    domain.ParseLevel(p.Level),
			Staked:   normalization.NormalizeAmount(p.Staked, quote),
		}
		if p.AskPrice != nil {
			price := normalization.NormalizeAmount(*p.AskPrice, quote)
			parcel.Price = &price
		}
		snap.Parcels[p.Location] = parcel
	}

	for _, a := range wire.Auctions {
		tokenID := normalization.CanonicalTokenID(a.TokenID)
		listing := &domain.AuctionListing{
			Location:   a.Location,
			StartTime:  a.StartTime,
			StartPrice: normalization.ParseRawAmount(a.StartPrice),
			FloorPrice: normalization.ParseRawAmount(a.FloorPrice),
			TokenID:    tokenID,
		}
		if a.DecayRate != nil {
			rate := normalization.ParseRawAmount(*a.DecayRate)
			listing.DecayRate = &rate
		}
		snap.Auctions[a.Location] = listing
		// An auctioned location never carries an owned-parcel state.
		delete(snap.Parcels, a.Location)
	}

	snap.Version = idhash.ComputeSnapshotVersion(snap)
	return snap, nil
}

// LoadFile reads and decodes a snapshot document from disk.
func LoadFile(path string) (*domain.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return Decode(data)
}
