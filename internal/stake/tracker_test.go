package stake

import (
	"math"
	"testing"

	"parcel-econ-lab/internal/domain"
)

func TestBurnRate(t *testing.T) {
	if got := BurnRate(100, 0.025, 4); math.Abs(got-10) > 1e-12 {
		t.Errorf("expected 10, got %f", got)
	}
	if got := BurnRate(100, 0.025, 0); got != 0 {
		t.Errorf("expected 0 with no active neighbors, got %f", got)
	}
}

func TestBurnRate_Monotonic(t *testing.T) {
	// Non-decreasing in price and in active-neighbor count, rate fixed.
	rate := 0.025
	prev := 0.0
	for price := 10.0; price <= 100; price += 10 {
		got := BurnRate(price, rate, 4)
		if got < prev {
			t.Fatalf("burn rate decreased in price: %f after %f", got, prev)
		}
		prev = got
	}
	prev = 0
	for n := 1; n <= 8; n++ {
		got := BurnRate(50, rate, n)
		if got < prev {
			t.Fatalf("burn rate decreased in neighbor count: %f after %f", got, prev)
		}
		prev = got
	}
}

func TestTimeRemainingHours(t *testing.T) {
	if got := TimeRemainingHours(0, 5); got != 0 {
		t.Errorf("depleted stake: expected 0, got %f", got)
	}
	if got := TimeRemainingHours(-1, 5); got != 0 {
		t.Errorf("negative stake: expected 0, got %f", got)
	}
	if got := TimeRemainingHours(10, 0); !math.IsInf(got, 1) {
		t.Errorf("zero burn: expected +Inf, got %f", got)
	}
	if got := TimeRemainingHours(10, 5); got != 2 {
		t.Errorf("expected 2, got %f", got)
	}
}

func TestStatus_Exclusive(t *testing.T) {
	cases := []struct {
		staked, minutes float64
		want            domain.NukableStatus
	}{
		{0, 0, domain.NukableNow},
		{-5, 100, domain.NukableNow},
		{10, 10, domain.NukableWarning},
		{10, 5, domain.NukableWarning},
		{10, 10.01, domain.NukableNone},
		{10, math.Inf(1), domain.NukableNone},
	}
	for _, c := range cases {
		if got := Status(c.staked, c.minutes); got != c.want {
			t.Errorf("Status(%f, %f) = %v, want %v", c.staked, c.minutes, got, c.want)
		}
	}
}
