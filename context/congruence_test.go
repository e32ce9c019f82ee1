package context

import (
	"testing"

	"github.com/rhartert/boolsmt/sat"
)

func TestDeriveEqualitiesMergesCongruentItes(t *testing.T) {
	b := newBuilder(newTermTable())
	cond := b.boolVar("cond")
	then := b.boolVar("then")
	els := b.boolVar("els")

	ite1 := b.ite(cond, then, els)
	ite2 := b.ite(cond, then, els)
	if ite1 != ite2 {
		t.Fatalf("structurally identical Ite terms were not hash-consed to the same TermID")
	}

	// Build two Ite terms whose operands are only equal via an asserted
	// top-level equality, not hash-consing, so any derived equality between
	// them must come from congruence closure.
	other := b.boolVar("other")
	iteA := b.ite(cond, then, other)
	iteB := b.ite(cond, then, els)
	eq := b.eq(other, els)

	flat := &flattenResult{
		TopEqs:      []TermID{eq},
		TopFormulas: []TermID{iteA, iteB},
	}

	derived := deriveEqualities(b, flat)
	found := false
	for _, pair := range derived {
		if (pair[0] == iteA && pair[1] == iteB) || (pair[0] == iteB && pair[1] == iteA) {
			found = true
		}
	}
	if !found {
		t.Errorf("deriveEqualities() = %v, want a pair merging %d and %d", derived, iteA, iteB)
	}
}

func TestDeriveEqualitiesSkipsArithmeticProblems(t *testing.T) {
	b := newBuilder(newTermTable())
	av := b.arithVar("x")
	p := NewPolynomial().AddTerm(1, int(av))
	atom := b.arithAtom(p, RelEq)

	flat := &flattenResult{TopAtoms: []TermID{atom}}
	if derived := deriveEqualities(b, flat); derived != nil {
		t.Errorf("deriveEqualities() = %v, want nil for a problem mentioning arithmetic", derived)
	}
}

func TestItesOverEqualElseBranchesAgree(t *testing.T) {
	c := New(DefaultConfig)
	cond := c.BoolVar("cond")
	then := c.BoolVar("then")
	els := c.BoolVar("els")
	other := c.BoolVar("other")

	iteA := c.Ite(cond, then, other)
	iteB := c.Ite(cond, then, els)

	if err := c.Assert(c.Eq(other, els)); err != nil {
		t.Fatalf("Assert: %v", err)
	}
	if err := c.Assert(iteA); err != nil {
		t.Fatalf("Assert iteA: %v", err)
	}
	// With other == els, iteA and iteB take the same value under either
	// value of cond, so asserting iteB's negation must be unsatisfiable.
	if err := c.Assert(c.Not(iteB)); err != nil {
		t.Fatalf("Assert Not(iteB): %v", err)
	}

	status, err := c.Check()
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	// The three formulas are asserted separately, so deriveEqualities sees
	// one term at a time and derives nothing here; the Unsat result follows
	// from the Iff and Ite gates' clauses alone.
	if status != sat.Unsat {
		t.Errorf("Check() = %v, want Unsat (iteA and iteB agree once other == els)", status)
	}
}
