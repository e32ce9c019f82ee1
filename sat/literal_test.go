package sat

import "testing"

func TestPositiveNegativeLiteral(t *testing.T) {
	tests := []struct {
		name     string
		v        int
		wantPos  Literal
		wantNeg  Literal
		wantVar  int
	}{
		{name: "var 0", v: 0, wantPos: 0, wantNeg: 1, wantVar: 0},
		{name: "var 1", v: 1, wantPos: 2, wantNeg: 3, wantVar: 1},
		{name: "var 42", v: 42, wantPos: 84, wantNeg: 85, wantVar: 42},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos := PositiveLiteral(tc.v)
			neg := NegativeLiteral(tc.v)

			if pos != tc.wantPos {
				t.Errorf("PositiveLiteral(%d) = %d, want %d", tc.v, pos, tc.wantPos)
			}
			if neg != tc.wantNeg {
				t.Errorf("NegativeLiteral(%d) = %d, want %d", tc.v, neg, tc.wantNeg)
			}
			if !pos.IsPositive() {
				t.Errorf("PositiveLiteral(%d).IsPositive() = false", tc.v)
			}
			if neg.IsPositive() {
				t.Errorf("NegativeLiteral(%d).IsPositive() = true", tc.v)
			}
			if pos.VarID() != tc.wantVar || neg.VarID() != tc.wantVar {
				t.Errorf("VarID() = %d/%d, want %d", pos.VarID(), neg.VarID(), tc.wantVar)
			}
		})
	}
}

func TestLiteralOpposite(t *testing.T) {
	l := PositiveLiteral(7)
	if got := l.Opposite(); got != NegativeLiteral(7) {
		t.Errorf("Opposite() = %v, want %v", got, NegativeLiteral(7))
	}
	if got := l.Opposite().Opposite(); got != l {
		t.Errorf("double Opposite() = %v, want %v", got, l)
	}
}

func TestTrueFalseLitAreOpposites(t *testing.T) {
	if TrueLit.Opposite() != FalseLit {
		t.Errorf("TrueLit.Opposite() = %v, want FalseLit", TrueLit.Opposite())
	}
	if TrueLit.VarID() != 0 {
		t.Errorf("TrueLit.VarID() = %d, want 0", TrueLit.VarID())
	}
}

func TestLiteralString(t *testing.T) {
	if got, want := PositiveLiteral(3).String(), "3"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := NegativeLiteral(3).String(), "!3"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
