package idhash

import (
	"testing"

	"github.com/shopspring/decimal"

	"parcel-econ-lab/internal/domain"
)

func testSnapshot() *domain.Snapshot {
	owner := "wallet-a"
	price := 100.0
	return &domain.Snapshot{
		Parcels: map[int]*domain.Parcel{
			5: {Location: 5, Owner: &owner, Price: &price, TokenID: "tok", Staked: 30},
			6: {Location: 6},
		},
		Auctions: map[int]*domain.AuctionListing{
			7: {Location: 7, StartTime: 1000, StartPrice: decimal.NewFromInt(500), FloorPrice: decimal.NewFromInt(10)},
		},
	}
}

func TestComputeSnapshotVersion_Deterministic(t *testing.T) {
	a := ComputeSnapshotVersion(testSnapshot())
	b := ComputeSnapshotVersion(testSnapshot())

	if a != b {
		t.Errorf("same content hashed differently: %s vs %s", a, b)
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
}

func TestComputeSnapshotVersion_ChangesWithContent(t *testing.T) {
	base := ComputeSnapshotVersion(testSnapshot())

	changed := testSnapshot()
	changed.Parcels[5].Staked = 31
	if got := ComputeSnapshotVersion(changed); got == base {
		t.Error("stake change did not change version")
	}

	changed = testSnapshot()
	changed.Auctions[7].StartTime = 2000
	if got := ComputeSnapshotVersion(changed); got == base {
		t.Error("auction change did not change version")
	}

	changed = testSnapshot()
	delete(changed.Parcels, 6)
	if got := ComputeSnapshotVersion(changed); got == base {
		t.Error("parcel removal did not change version")
	}
}
