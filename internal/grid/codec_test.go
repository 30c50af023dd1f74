package grid

import "testing"

func TestEncodeDecode_RoundTripAllCoordinates(t *testing.T) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			loc := Encode(row, col)
			r, c := Decode(loc)
			if r != row || c != col {
				t.Fatalf("round trip (%d,%d) -> %d -> (%d,%d)", row, col, loc, r, c)
			}
		}
	}
}

func TestDecode_MasksHighBits(t *testing.T) {
	loc := Encode(10, 20)

	// Corrupt bits above the 16-bit location must not change the result.
	r, c := Decode(loc | 0xFF0000)
	if r != 10 || c != 20 {
		t.Errorf("expected (10,20), got (%d,%d)", r, c)
	}
}

func TestEncode_PacksColumnLow(t *testing.T) {
	if got := Encode(1, 0); got != 256 {
		t.Errorf("expected Encode(1,0)=256, got %d", got)
	}
	if got := Encode(0, 1); got != 1 {
		t.Errorf("expected Encode(0,1)=1, got %d", got)
	}
}

func TestInBounds(t *testing.T) {
	cases := []struct {
		row, col int
		want     bool
	}{
		{0, 0, true},
		{255, 255, true},
		{-1, 0, false},
		{0, 256, false},
		{256, 0, false},
	}
	for _, c := range cases {
		if got := InBounds(c.row, c.col); got != c.want {
			t.Errorf("InBounds(%d,%d) = %t, want %t", c.row, c.col, got, c.want)
		}
	}
}
