package context

import (
	"testing"

	"github.com/rhartert/boolsmt/sat"
)

func TestClassifyArithmeticGeneralAtomForcesSimplex(t *testing.T) {
	stats := *NewArithStats()
	// x + 2y <= 0 is not a unit-coefficient two-variable difference atom, so
	// even a tiny, sparse problem cannot go to Floyd-Warshall.
	p := NewPolynomial().AddTerm(1, 1).AddTerm(2, 2)
	stats.Observe(p, RelLeq)

	if got := ClassifyArithmetic(stats); got != sat.BackendSimplex {
		t.Errorf("ClassifyArithmetic() = %v, want BackendSimplex", got)
	}
}

func TestClassifyArithmeticSmallDifferenceProblemPrefersFloydWarshall(t *testing.T) {
	stats := *NewArithStats()
	// x - y <= 0: a unit-coefficient difference atom, and the problem is well
	// under the small-problem fast-path threshold.
	p := NewPolynomial().AddTerm(1, 1).AddTerm(-1, 2)
	stats.Observe(p, RelLeq)

	if got := ClassifyArithmetic(stats); got != sat.BackendFloydWarshall {
		t.Errorf("ClassifyArithmetic() = %v, want BackendFloydWarshall", got)
	}
}

func TestClassifyArithmeticOverflowGuardForcesSimplex(t *testing.T) {
	stats := *NewArithStats()
	p := NewPolynomial().AddTerm(1, 1).AddTerm(-1, 2).AddConst(arithSumConstOverflow)
	stats.Observe(p, RelLeq)

	if got := ClassifyArithmetic(stats); got != sat.BackendSimplex {
		t.Errorf("ClassifyArithmetic() = %v, want BackendSimplex (overflow guard)", got)
	}
}

func TestClassifyArithmeticHardVarCeilingForcesSimplex(t *testing.T) {
	stats := *NewArithStats()
	for v := 0; v < arithMaxVarsForFW+1; v += 2 {
		p := NewPolynomial().AddTerm(1, v).AddTerm(-1, v+1)
		stats.Observe(p, RelLeq)
	}

	if got := ClassifyArithmetic(stats); got != sat.BackendSimplex {
		t.Errorf("ClassifyArithmetic() = %v, want BackendSimplex (var ceiling)", got)
	}
}

func TestClassifyArithmeticSparseLargeProblemPrefersSimplex(t *testing.T) {
	stats := *NewArithStats()
	// One equality atom per pair of variables, well above the small-problem
	// threshold and with density (numAtoms/numVars == 105/210 == 0.5) under the cutoff.
	const vars = arithSmallProblemVars + 10
	for v := 0; v < vars; v += 2 {
		p := NewPolynomial().AddTerm(1, v).AddTerm(-1, v+1)
		stats.Observe(p, RelEq)
	}

	if got := ClassifyArithmetic(stats); got != sat.BackendSimplex {
		t.Errorf("ClassifyArithmetic() = %v, want BackendSimplex (below density threshold)", got)
	}
}
