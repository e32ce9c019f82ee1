package sat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// buildClauses declares n fresh variables and adds each clause in lits (each
// entry a list of signed ints, DIMACS-style: positive k means vars[k-1],
// solver variable k, asserted; negative -k means its negation) as a problem
// clause.
func buildClauses(t *testing.T, n int, clauses [][]int) *Solver {
	t.Helper()
	s := NewDefaultSolver()
	vars := make([]int, n)
	for i := range vars {
		vars[i] = s.AddVariable()
	}
	for _, cl := range clauses {
		lits := make([]Literal, len(cl))
		for i, l := range cl {
			if l > 0 {
				lits[i] = PositiveLiteral(vars[l-1])
			} else {
				lits[i] = NegativeLiteral(vars[-l-1])
			}
		}
		if err := s.AddClause(lits); err != nil {
			t.Fatalf("AddClause(%v): %v", cl, err)
		}
	}
	return s
}

func TestSolveSatisfiable(t *testing.T) {
	// (x1 v x2) & (-x1 v x2) & (-x2 v x3)
	s := buildClauses(t, 3, [][]int{
		{1, 2},
		{-1, 2},
		{-2, 3},
	})

	if got := s.Solve(nil); got != Sat {
		t.Fatalf("Solve() = %v, want Sat", got)
	}
	if len(s.Models) != 1 {
		t.Fatalf("len(Models) = %d, want 1", len(s.Models))
	}
	model := s.Models[0]
	if !model[2] || !model[3] {
		t.Errorf("model %v does not satisfy the clauses", model)
	}
}

func TestSolveUnsatisfiable(t *testing.T) {
	// x1 & -x1
	s := buildClauses(t, 1, [][]int{
		{1},
		{-1},
	})

	if got := s.Solve(nil); got != Unsat {
		t.Fatalf("Solve() = %v, want Unsat", got)
	}
}

func TestSolvePigeonholeIsUnsat(t *testing.T) {
	// Two pigeons, one hole: p1 v p2 (each pigeon must go somewhere is
	// skipped, only the "can't share a hole" constraint matters for UNSAT
	// here) combined with forcing both into the same single hole.
	s := buildClauses(t, 2, [][]int{
		{1}, {2}, // both pigeons forced into the one hole
		{-1, -2}, // but they can't share it
	})

	if got := s.Solve(nil); got != Unsat {
		t.Fatalf("Solve() = %v, want Unsat", got)
	}
}

func TestSolveWithAssumptions(t *testing.T) {
	s := buildClauses(t, 2, [][]int{
		{1, 2},
	})

	// Assuming -x1 forces x2 true.
	if got := s.Solve([]Literal{NegativeLiteral(1)}); got != Sat {
		t.Fatalf("Solve(assumptions) = %v, want Sat", got)
	}
	model := s.Models[0]
	if !model[2] {
		t.Errorf("model %v, want variable 2 true under assumption -x1", model)
	}
}

func TestSolveAllModels(t *testing.T) {
	// x1 v x2, exactly the two non-(false,false) assignments are models.
	s := buildClauses(t, 2, [][]int{
		{1, 2},
	})

	var models [][]bool
	for s.Solve(nil) == Sat {
		models = append(models, s.Models[len(s.Models)-1])
		last := s.Models[len(s.Models)-1]
		blocking := make([]Literal, 0, len(last))
		for v, val := range last {
			if v == 0 {
				continue // the reserved constant-true variable
			}
			if val {
				blocking = append(blocking, NegativeLiteral(v))
			} else {
				blocking = append(blocking, PositiveLiteral(v))
			}
		}
		s.AddClauseOnTheFly(blocking)
	}

	if len(models) != 3 {
		t.Fatalf("got %d models, want 3", len(models))
	}
	want := map[[2]bool]bool{
		{true, false}: true,
		{false, true}: true,
		{true, true}:  true,
	}
	got := map[[2]bool]bool{}
	for _, m := range models {
		got[[2]bool{m[1], m[2]}] = true
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("models mismatch (-want +got):\n%s", diff)
	}
}
