package snapshotio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parcel-econ-lab/internal/domain"
)

const validDoc = `{
  "fetched_at": 1700000000000,
  "quotes": [
    {"token_id": "tokA", "symbol": "TKA", "ratio": 1.0, "decimals": 6}
  ],
  "parcels": [
    {"location": 257, "owner": "wallet-1", "ask_price": "100000000", "token_id": "tokA", "level": "first", "staked": "30000000"},
    {"location": 258, "owner": null, "token_id": "tokA", "level": "base", "staked": "0"}
  ],
  "auctions": [
    {"location": 259, "start_time": 1700000000, "start_price": "1000000", "floor_price": "100", "decay_rate": "50", "token_id": "tokA"}
  ]
}`

func TestDecode_ValidDocument(t *testing.T) {
	snap, err := Decode([]byte(validDoc))
	require.NoError(t, err)

	require.Len(t, snap.Parcels, 2)
	require.Len(t, snap.Auctions, 1)
	require.Len(t, snap.Quotes, 1)
	assert.NotEmpty(t, snap.Version)
	assert.EqualValues(t, 1700000000000, snap.FetchedAt)

	p := snap.Parcels[257]
	require.NotNil(t, p)
	assert.Equal(t, domain.LevelFirst, p.Level)
	require.NotNil(t, p.Price)
	// 100000000 at 6 decimals, ratio 1.
	assert.InDelta(t, 100, *p.Price, 1e-9)
	assert.InDelta(t, 30, p.Staked, 1e-9)

	// Unlisted parcel: nil price, not zero.
	assert.Nil(t, snap.Parcels[258].Price)

	a := snap.Auctions[259]
	require.NotNil(t, a)
	assert.Equal(t, "1000000", a.StartPrice.String())
	require.NotNil(t, a.DecayRate)
	assert.Equal(t, "50", a.DecayRate.String())
}

func TestDecode_SchemaViolations(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"not json", `{"fetched_at": `},
		{"missing parcels", `{"fetched_at": 1}`},
		{"location out of range", `{"fetched_at": 1, "parcels": [{"location": 70000}]}`},
		{"parcel without location", `{"fetched_at": 1, "parcels": [{"owner": "x"}]}`},
		{"auction missing prices", `{"fetched_at": 1, "parcels": [], "auctions": [{"location": 1, "start_time": 5}]}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Decode([]byte(c.doc))
			assert.ErrorIs(t, err, ErrInvalidSnapshot)
		})
	}
}

func TestDecode_BadAmountsFallBackToZero(t *testing.T) {
	doc := `{
	  "fetched_at": 1,
	  "parcels": [
	    {"location": 1, "owner": "w", "ask_price": "not-a-number", "staked": "garbage"}
	  ]
	}`
	snap, err := Decode([]byte(doc))
	require.NoError(t, err)

	p := snap.Parcels[1]
	require.NotNil(t, p.Price)
	assert.Zero(t, *p.Price)
	assert.Zero(t, p.Staked)
}

func TestDecode_UnknownLevelMapsToBase(t *testing.T) {
	doc := `{
	  "fetched_at": 1,
	  "parcels": [{"location": 1, "level": "platinum", "staked": "5"}]
	}`
	snap, err := Decode([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, domain.LevelBase, snap.Parcels[1].Level)
}

func TestDecode_AuctionDisplacesParcel(t *testing.T) {
	// Auction and owned parcel at the same location are mutually exclusive;
	// the auction wins.
	doc := `{
	  "fetched_at": 1,
	  "parcels": [{"location": 5, "owner": "w", "staked": "10"}],
	  "auctions": [{"location": 5, "start_time": 1, "start_price": "100", "floor_price": "1"}]
	}`
	snap, err := Decode([]byte(doc))
	require.NoError(t, err)
	assert.Nil(t, snap.Parcels[5])
	assert.NotNil(t, snap.Auctions[5])
}

func TestDecode_VersionTracksContent(t *testing.T) {
	a, err := Decode([]byte(validDoc))
	require.NoError(t, err)
	b, err := Decode([]byte(validDoc))
	require.NoError(t, err)
	assert.Equal(t, a.Version, b.Version)

	changed := strings.Replace(validDoc, `"staked": "30000000"`, `"staked": "31000000"`, 1)
	c, err := Decode([]byte(changed))
	require.NoError(t, err)
	assert.NotEqual(t, a.Version, c.Version)
}
