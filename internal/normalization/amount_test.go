package normalization

import (
	"math"
	"testing"

	"parcel-econ-lab/internal/domain"
)

func floatPtr(f float64) *float64 { return &f }

func TestNormalizeAmount_ShiftsDecimals(t *testing.T) {
	quote := &domain.TokenQuote{Decimals: 6, Ratio: floatPtr(1)}

	if got := NormalizeAmount("1500000", quote); math.Abs(got-1.5) > 1e-12 {
		t.Errorf("expected 1.5, got %f", got)
	}
}

func TestNormalizeAmount_AppliesRatio(t *testing.T) {
	quote := &domain.TokenQuote{Decimals: 2, Ratio: floatPtr(0.5)}

	if got := NormalizeAmount("1000", quote); math.Abs(got-5) > 1e-12 {
		t.Errorf("expected 5, got %f", got)
	}
}

func TestNormalizeAmount_MissingRatioDefaultsToOne(t *testing.T) {
	quote := &domain.TokenQuote{Decimals: 0}

	if got := NormalizeAmount("42", quote); got != 42 {
		t.Errorf("expected 42, got %f", got)
	}
}

func TestNormalizeAmount_NilQuote(t *testing.T) {
	if got := NormalizeAmount("42", nil); got != 42 {
		t.Errorf("expected raw value with nil quote, got %f", got)
	}
}

func TestNormalizeAmount_UnparsableFallsBackToZero(t *testing.T) {
	quote := &domain.TokenQuote{Decimals: 6}

	for _, raw := range []string{"", "not-a-number", "1e", "--3"} {
		if got := NormalizeAmount(raw, quote); got != 0 {
			t.Errorf("raw %q: expected 0, got %f", raw, got)
		}
	}
}

func TestCanonicalTokenID_RoundTrips(t *testing.T) {
	// A valid base58 string re-encodes to itself.
	id := "So11111111111111111111111111111111111111112"
	if got := CanonicalTokenID(id); got != id {
		t.Errorf("expected %q unchanged, got %q", id, got)
	}
}

func TestCanonicalTokenID_InvalidPassesThrough(t *testing.T) {
	// 0, O, I, l are outside the base58 alphabet.
	id := "0xO-Il"
	if got := CanonicalTokenID(id); got != id {
		t.Errorf("expected passthrough for invalid base58, got %q", got)
	}
}
