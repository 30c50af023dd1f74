package domain

// EconomicConfig holds the tunable constants of the economic model. Values
// normally come from the live configuration source; every field falls back
// to the defaults below when absent.
type EconomicConfig struct {
	TaxRateNumerator       int64   // percent numerator of the hourly tax rate
	TimeSpeed              int64   // game-time multiplier over wall time
	LinearDecaySeconds     int64   // scaled duration of the linear decay phase
	DropRate               int64   // price fraction dropped across the linear phase
	RateDenominator        int64   // denominator for DropRate
	ScalingFactor          int64   // divisor applied to auction decay rates
	AuctionDurationSeconds int64   // scaled total auction duration
	DurationCapHours       float64 // default yield projection horizon
}

// DefaultEconomicConfig is used whenever the live configuration source is
// unavailable or a field is absent.
var DefaultEconomicConfig = EconomicConfig{
	TaxRateNumerator:       2,
	TimeSpeed:              5,
	LinearDecaySeconds:     3600,
	DropRate:               90,
	RateDenominator:        100,
	ScalingFactor:          50,
	AuctionDurationSeconds: 604800,
	DurationCapHours:       12,
}
