// Package normalization converts raw wire amounts and token ids into the
// single base unit all economic arithmetic runs in.
package normalization

import (
	"github.com/mr-tron/base58"
	"github.com/shopspring/decimal"

	"parcel-econ-lab/internal/domain"
)

// ParseRawAmount parses a raw integer token amount from the wire. Unparsable
// input normalizes to zero instead of failing — a bad amount must not take
// down a polling render loop.
func ParseRawAmount(raw string) decimal.Decimal {
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// NormalizeAmount converts a raw integer token amount into base units using
// the token's quote: shift by the token's decimals, then apply the
// base-unit ratio. Fallbacks: unparsable amount -> 0, missing quote or
// ratio -> ratio 1, decimals 0.
func NormalizeAmount(raw string, quote *domain.TokenQuote) float64 {
	d := ParseRawAmount(raw)
	if quote != nil && quote.Decimals > 0 {
		d = d.Shift(int32(-quote.Decimals))
	}
	f, _ := d.Float64()
	return f * quote.RatioOrDefault()
}

// NormalizeDecimal converts an already-parsed raw amount the same way.
func NormalizeDecimal(d decimal.Decimal, quote *domain.TokenQuote) float64 {
	if quote != nil && quote.Decimals > 0 {
		d = d.Shift(int32(-quote.Decimals))
	}
	f, _ := d.Float64()
	return f * quote.RatioOrDefault()
}

// CanonicalTokenID canonicalizes a base58 token address so quote lookups
// survive cosmetic differences. Input that does not decode as base58 is
// returned unchanged — unknown id formats are the quote layer's problem,
// not a fault.
func CanonicalTokenID(id string) string {
	raw, err := base58.Decode(id)
	if err != nil || len(raw) == 0 {
		return id
	}
	return base58.Encode(raw)
}
