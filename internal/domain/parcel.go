package domain

// Level is a parcel's upgrade tier. The set is closed: anything the input
// layer cannot map parses to LevelBase before it reaches the engine.
type Level int

const (
	LevelBase Level = iota
	LevelFirst
	LevelSecond
)

// String returns the wire name of the level.
func (l Level) String() string {
	switch l {
	case LevelFirst:
		return "first"
	case LevelSecond:
		return "second"
	default:
		return "base"
	}
}

// ParseLevel maps a wire-format level name to a Level.
// Unknown names map to LevelBase (zero discount) rather than failing the
// snapshot; the grid must stay renderable on bad upstream data.
func ParseLevel(s string) Level {
	switch s {
	case "first", "First", "FIRST":
		return LevelFirst
	case "second", "Second", "SECOND":
		return LevelSecond
	default:
		return LevelBase
	}
}

// Parcel is one ownable grid cell within a snapshot. All monetary fields are
// already normalized to base units. Parcels are immutable once built; a new
// snapshot replaces the whole grid.
type Parcel struct {
	Location int      // packed grid id, unique per snapshot
	Owner    *string  // owning wallet (nil if unowned)
	Price    *float64 // normalized ask price in base units (nil if unlisted)
	TokenID  string   // canonical token id the price is denominated in
	Level    Level
	Staked   float64 // normalized staked amount in base units
}

// Owned reports whether the parcel has an owner.
func (p *Parcel) Owned() bool {
	return p != nil && p.Owner != nil && *p.Owner != ""
}

// Priced reports whether the parcel has an active sale price.
func (p *Parcel) Priced() bool {
	return p != nil && p.Price != nil
}

// PriceValue returns the normalized price, or 0 when unlisted.
func (p *Parcel) PriceValue() float64 {
	if p == nil || p.Price == nil {
		return 0
	}
	return *p.Price
}
