package grid

import "parcel-econ-lab/internal/domain"

// NeighborIndex maps a location to its adjacent locations (cardinal +
// diagonal, at most 8). Built once per snapshot; the engine treats a missing
// entry as "zero neighbors", never as an error.
type NeighborIndex map[int][]int

// neighborOffsets lists the 8 surrounding cells, row-major.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// BuildNeighborIndex computes the adjacency index for every cell present in
// the snapshot (parcels and auctioned cells alike). A neighbor is included
// only if that cell itself exists in the snapshot.
func BuildNeighborIndex(snap *domain.Snapshot) NeighborIndex {
	if snap == nil {
		return NeighborIndex{}
	}

	exists := make(map[int]bool, len(snap.Parcels)+len(snap.Auctions))
	for loc := range snap.Parcels {
		exists[loc] = true
	}
	for loc := range snap.Auctions {
		exists[loc] = true
	}

	index := make(NeighborIndex, len(exists))
	for loc := range exists {
		row, col := Decode(loc)
		var neighbors []int
		for _, off := range neighborOffsets {
			nr, nc := row+off[0], col+off[1]
			if !InBounds(nr, nc) {
				continue
			}
			nloc := Encode(nr, nc)
			if exists[nloc] {
				neighbors = append(neighbors, nloc)
			}
		}
		index[loc] = neighbors
	}
	return index
}

// Neighbors returns the adjacency list for location. Missing locations
// return nil, which downstream stages read as zero neighbors.
func (idx NeighborIndex) Neighbors(location int) []int {
	return idx[location]
}
