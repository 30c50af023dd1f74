// Package idhash computes deterministic identifiers for snapshots.
package idhash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"

	"parcel-econ-lab/internal/domain"
)

// ComputeSnapshotVersion computes a deterministic version id using SHA256
// over the snapshot's economic content: every parcel and auction in location
// order. Two snapshots with identical content hash identically regardless of
// map iteration order or fetch time; any content change changes the version.
// Returns hex-encoded hash (64 characters).
func ComputeSnapshotVersion(snap *domain.Snapshot) string {
	h := sha256.New()

	locs := make([]int, 0, len(snap.Parcels))
	for loc := range snap.Parcels {
		locs = append(locs, loc)
	}
	sort.Ints(locs)
	for _, loc := range locs {
		p := snap.Parcels[loc]
		owner := ""
		if p.Owner != nil {
			owner = *p.Owner
		}
		price := ""
		if p.Price != nil {
			price = fmt.Sprintf("%.12g", *p.Price)
		}
		fmt.Fprintf(h, "p|%d|%s|%s|%s|%d|%.12g\n", loc, owner, price, p.TokenID, p.Level, p.Staked)
	}

	locs = locs[:0]
	for loc := range snap.Auctions {
		locs = append(locs, loc)
	}
	sort.Ints(locs)
	for _, loc := range locs {
		a := snap.Auctions[loc]
		decay := ""
		if a.DecayRate != nil {
			decay = a.DecayRate.String()
		}
		fmt.Fprintf(h, "a|%d|%d|%s|%s|%s|%s\n",
			loc, a.StartTime, a.StartPrice.String(), a.FloorPrice.String(), decay, a.TokenID)
	}

	return hex.EncodeToString(h.Sum(nil))
}
