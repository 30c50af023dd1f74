package domain

// TokenQuote describes one token used to denominate prices and stakes.
// Corresponds to the normalized price-feed entry delivered by the fetch
// layer once per snapshot.
type TokenQuote struct {
	TokenID  string   // canonical token address
	Symbol   string   // display symbol
	Ratio    *float64 // ratio to the base unit (nil if the feed had no quote)
	Decimals int      // on-chain decimal precision
}

// RatioOrDefault returns the base-unit ratio, falling back to 1 when the
// feed did not supply one. Amounts must never be dropped just because a
// quote is missing.
func (q *TokenQuote) RatioOrDefault() float64 {
	if q == nil || q.Ratio == nil {
		return 1
	}
	return *q.Ratio
}
