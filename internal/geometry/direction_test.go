package geometry

import "testing"

func TestDirectionStringRoundTrip(t *testing.T) {
	for d := N; d <= NW; d++ {
		name := d.String()
		parsed, ok := ParseDirection(name)
		if !ok {
			t.Errorf("ParseDirection(%q) failed to parse back", name)
			continue
		}
		if parsed != d {
			t.Errorf("ParseDirection(%q) = %v, want %v", name, parsed, d)
		}
	}
}

func TestParseDirectionRejectsUnknown(t *testing.T) {
	if _, ok := ParseDirection("NNE"); ok {
		t.Errorf("ParseDirection(\"NNE\") should fail, the protocol only has 8 directions")
	}
	if _, ok := ParseDirection(""); ok {
		t.Errorf("ParseDirection(\"\") should fail")
	}
}

func TestDirectionOffsetsAreUnitVectors(t *testing.T) {
	for d := N; d <= NW; d++ {
		off := d.Offset()
		if off.X < -1 || off.X > 1 || off.Y < -1 || off.Y > 1 {
			t.Errorf("Offset(%v) = %v is not a unit offset", d, off)
		}
		if off.X == 0 && off.Y == 0 {
			t.Errorf("Offset(%v) is the zero vector", d)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   int
		want Direction
	}{
		{0, N},
		{7, NW},
		{8, N},
		{-1, NW},
		{-8, N},
		{16, N},
	}

	for _, tc := range tests {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%d) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
