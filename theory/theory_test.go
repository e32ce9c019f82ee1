package theory

import (
	"testing"

	"github.com/rhartert/boolsmt/sat"
)

func TestNoOpSatisfiesInterfaces(t *testing.T) {
	var _ sat.Theory = NoOp{}
	var _ Arithmetic = NoOp{}
}

func TestNoOpNeverObjects(t *testing.T) {
	n := NoOp{}

	if !n.Propagate() {
		t.Error("Propagate() = false, want true")
	}
	if got := n.FinalCheck(); got != sat.FinalSat {
		t.Errorf("FinalCheck() = %v, want FinalSat", got)
	}
	if !n.AssertAtom(sat.Atom(0), sat.TrueLit) {
		t.Error("AssertAtom() = false, want true")
	}
	if !n.AssertBound(sat.Atom(0)) {
		t.Error("AssertBound() = false, want true")
	}
	if num, den := n.Value(0); num != 0 || den != 1 {
		t.Errorf("Value() = (%d, %d), want (0, 1)", num, den)
	}

	out := n.ExpandExplanation(sat.TrueLit, 0, nil)
	if len(out) != 0 {
		t.Errorf("ExpandExplanation() = %v, want empty", out)
	}

	// These must simply not panic.
	n.StartInternalization()
	n.StartSearch()
	n.IncreaseDecisionLevel()
	n.Backtrack(0)
	n.Push()
	n.Pop()
	n.Reset()
	n.DeleteAtom(sat.Atom(0))
}
