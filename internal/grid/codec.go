// Package grid provides the packed location codec and the per-snapshot
// neighbor adjacency index.
package grid

// The grid is 256x256: column in the low 8 bits, row in the next 8.
const (
	Size      = 256
	rowShift  = 8
	coordMask = 0xFF
	locMask   = 0xFFFF
)

// Encode packs (row, col) into a single location id.
// Coordinates outside [0, 255] produce a location outside the active grid;
// callers bounds-check against the snapshot, Encode itself is total.
func Encode(row, col int) int {
	return (row << rowShift) | (col & coordMask)
}

// Decode unpacks a location id into (row, col). The id is masked to 16 bits
// first so corrupt high bits can never yield out-of-range coordinates.
func Decode(location int) (row, col int) {
	location &= locMask
	return location >> rowShift, location & coordMask
}

// InBounds reports whether (row, col) lies on the 256x256 grid.
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}
