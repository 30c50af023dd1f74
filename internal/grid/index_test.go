package grid

import (
	"testing"

	"parcel-econ-lab/internal/domain"
)

func snapshotWithParcels(locs ...int) *domain.Snapshot {
	snap := &domain.Snapshot{
		Parcels:  make(map[int]*domain.Parcel),
		Auctions: make(map[int]*domain.AuctionListing),
	}
	for _, loc := range locs {
		snap.Parcels[loc] = &domain.Parcel{Location: loc}
	}
	return snap
}

func TestBuildNeighborIndex_FullBlock(t *testing.T) {
	// 3x3 block centered on (1,1): center has all 8 neighbors.
	var locs []int
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			locs = append(locs, Encode(r, c))
		}
	}
	idx := BuildNeighborIndex(snapshotWithParcels(locs...))

	center := Encode(1, 1)
	if got := len(idx.Neighbors(center)); got != 8 {
		t.Errorf("expected 8 neighbors for center, got %d", got)
	}
	// Corner (0,0) touches only 3 cells of the block.
	if got := len(idx.Neighbors(Encode(0, 0))); got != 3 {
		t.Errorf("expected 3 neighbors for corner, got %d", got)
	}
}

func TestBuildNeighborIndex_SkipsAbsentCells(t *testing.T) {
	// Two parcels far apart: no adjacency between them.
	idx := BuildNeighborIndex(snapshotWithParcels(Encode(0, 0), Encode(100, 100)))

	if got := len(idx.Neighbors(Encode(0, 0))); got != 0 {
		t.Errorf("expected isolated parcel, got %d neighbors", got)
	}
}

func TestBuildNeighborIndex_IncludesAuctionedCells(t *testing.T) {
	snap := snapshotWithParcels(Encode(5, 5))
	auctionLoc := Encode(5, 6)
	snap.Auctions[auctionLoc] = &domain.AuctionListing{Location: auctionLoc}

	idx := BuildNeighborIndex(snap)

	if got := len(idx.Neighbors(Encode(5, 5))); got != 1 {
		t.Errorf("expected auctioned cell as neighbor, got %d", got)
	}
}

func TestNeighbors_MissingLocationIsEmpty(t *testing.T) {
	idx := BuildNeighborIndex(snapshotWithParcels(Encode(0, 0)))

	// Unknown location means zero neighbors, never a panic.
	if got := idx.Neighbors(Encode(200, 200)); got != nil {
		t.Errorf("expected nil for unknown location, got %v", got)
	}
}
