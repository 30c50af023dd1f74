// Package auction computes the current price of a time-decaying auction.
//
// All intermediate arithmetic runs in fixed point at scale 1e18 with
// truncating division at every step, mirroring the canonical on-chain
// computation bit for bit. Only the final externally reported price may be
// converted to floating point, and only by the caller.
package auction

import (
	"github.com/shopspring/decimal"

	"parcel-econ-lab/internal/domain"
	"parcel-econ-lab/internal/normalization"
)

// fpScale is the fixed-point scale factor (1e18).
var fpScale = decimal.New(1, 18)

// ElapsedSeconds returns the wall-clock seconds since the auction started,
// floored at 0.
func ElapsedSeconds(listing *domain.AuctionListing, now int64) int64 {
	elapsed := now - listing.StartTime
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// CurrentPrice computes the listing's price at wall-clock time now.
//
// Elapsed time is scaled by the configured time speed first. A listing
// without a decay rate never decays: its price is frozen at
// max(start, floor). Past the total auction duration the computed price is
// zero; the floor clamp below then applies. Two phases:
//
//   - linear, while scaled elapsed <= LinearDecaySeconds:
//     price = start * (1 - dropRate*(elapsed/linear)/rateDenominator)
//   - quadratic afterwards: the post-linear price decays by
//     (SCALE/(SCALE + k*progress))^2 with k = decayRate*SCALE/scalingFactor
//     and progress = elapsed/totalDuration.
//
// The result is never below the floor price. A config with a zero or
// negative divisor describes no usable curve; such listings are frozen the
// same way as rate-less ones rather than faulting mid-render.
func CurrentPrice(listing *domain.AuctionListing, now int64, cfg domain.EconomicConfig) decimal.Decimal {
	if listing.DecayRate == nil || degenerateCurve(cfg) {
		return decimal.Max(listing.StartPrice, listing.FloorPrice)
	}

	scaled := ElapsedSeconds(listing, now) * cfg.TimeSpeed
	if scaled >= cfg.AuctionDurationSeconds {
		return decimal.Max(decimal.Zero, listing.FloorPrice)
	}

	var price decimal.Decimal
	if scaled <= cfg.LinearDecaySeconds {
		price = linearPhase(listing.StartPrice, scaled, cfg)
	} else {
		price = quadraticPhase(listing.StartPrice, *listing.DecayRate, scaled, cfg)
	}
	return decimal.Max(price, listing.FloorPrice)
}

// linearPhase evaluates start * (rd*linear - drop*elapsed) / (rd*linear) in
// a single truncating division so no precision is lost to an intermediate
// fraction.
func linearPhase(start decimal.Decimal, scaledElapsed int64, cfg domain.EconomicConfig) decimal.Decimal {
	num := decimal.NewFromInt(cfg.RateDenominator*cfg.LinearDecaySeconds - cfg.DropRate*scaledElapsed)
	den := decimal.NewFromInt(cfg.RateDenominator * cfg.LinearDecaySeconds)
	return divTrunc(start.Mul(num), den)
}

// quadraticPhase evaluates priceAfterLinear * (SCALE/denominator)^2 where
// denominator = SCALE + k*progress, via two fixed-point divisions.
func quadraticPhase(start, decayRate decimal.Decimal, scaledElapsed int64, cfg domain.EconomicConfig) decimal.Decimal {
	afterLinear := divTrunc(
		start.Mul(decimal.NewFromInt(cfg.RateDenominator-cfg.DropRate)),
		decimal.NewFromInt(cfg.RateDenominator),
	)

	k := divTrunc(decayRate.Mul(fpScale), decimal.NewFromInt(cfg.ScalingFactor))
	progress := divTrunc(
		decimal.NewFromInt(scaledElapsed).Mul(fpScale),
		decimal.NewFromInt(cfg.AuctionDurationSeconds),
	)

	denominator := fpScale.Add(divTrunc(k.Mul(progress), fpScale))

	// (SCALE/denominator)^2, both divisions kept in fixed point.
	ratio := divTrunc(fpScale.Mul(fpScale), denominator)
	factor := divTrunc(ratio.Mul(ratio), fpScale)

	return divTrunc(afterLinear.Mul(factor), fpScale)
}

// CurrentPriceNormalized converts the fixed-point price into base units for
// reporting, using the listing token's quote.
func CurrentPriceNormalized(listing *domain.AuctionListing, now int64, cfg domain.EconomicConfig, quote *domain.TokenQuote) float64 {
	return normalization.NormalizeDecimal(CurrentPrice(listing, now, cfg), quote)
}

// degenerateCurve reports whether cfg holds a zero or negative value in any
// position both phases divide by.
func degenerateCurve(cfg domain.EconomicConfig) bool {
	return cfg.LinearDecaySeconds <= 0 ||
		cfg.RateDenominator <= 0 ||
		cfg.ScalingFactor <= 0 ||
		cfg.AuctionDurationSeconds <= 0
}

// divTrunc divides truncating toward zero, matching integer division in the
// canonical formula. All operands here are non-negative.
func divTrunc(a, b decimal.Decimal) decimal.Decimal {
	q, _ := a.QuoRem(b, 0)
	return q
}
