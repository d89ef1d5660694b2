package service

import "testing"

func TestRoundHalfUp(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{79.5, 80},
		{79.49, 79},
		{80.0, 80},
		{0.5, 1},
		{0.49, 0},
		{100.0, 100},
	}
	for _, tc := range cases {
		if got := roundHalfUp(tc.in); got != tc.want {
			t.Errorf("roundHalfUp(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
