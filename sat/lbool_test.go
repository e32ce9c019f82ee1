package sat

import "testing"

func TestLift(t *testing.T) {
	if Lift(true) != True {
		t.Errorf("Lift(true) = %v, want True", Lift(true))
	}
	if Lift(false) != False {
		t.Errorf("Lift(false) = %v, want False", Lift(false))
	}
}

func TestLBoolOpposite(t *testing.T) {
	tests := []struct {
		in   LBool
		want LBool
	}{
		{True, False},
		{False, True},
		{Unknown, Unknown},
	}
	for _, tc := range tests {
		if got := tc.in.Opposite(); got != tc.want {
			t.Errorf("%v.Opposite() = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestLBoolString(t *testing.T) {
	tests := map[LBool]string{
		True:    "true",
		False:   "false",
		Unknown: "unknown",
	}
	for in, want := range tests {
		if got := in.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", int(in), got, want)
		}
	}
}
