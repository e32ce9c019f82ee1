package sat

import "testing"

func TestPushPopRestoresSatisfiability(t *testing.T) {
	s := NewDefaultSolver()
	v1 := s.AddVariable()
	if err := s.AddClause([]Literal{PositiveLiteral(v1)}); err != nil {
		t.Fatalf("AddClause: %v", err)
	}

	if got := s.Solve(nil); got != Sat {
		t.Fatalf("Solve() before Push = %v, want Sat", got)
	}

	s.Push()
	v2 := s.AddVariable()
	if err := s.AddClause([]Literal{PositiveLiteral(v2)}); err != nil {
		t.Fatalf("AddClause: %v", err)
	}
	if err := s.AddClause([]Literal{NegativeLiteral(v2)}); err != nil {
		t.Fatalf("AddClause: %v", err)
	}
	if got := s.Solve(nil); got != Unsat {
		t.Fatalf("Solve() inside pushed scope = %v, want Unsat", got)
	}

	s.Pop()

	if got := s.Solve(nil); got != Sat {
		t.Fatalf("Solve() after Pop = %v, want Sat (v2's contradictory clauses should be gone)", got)
	}
	if s.NumVariables() != v2 {
		t.Errorf("NumVariables() = %d after Pop, want %d (v2 should have been deleted)", s.NumVariables(), v2)
	}
}

func TestPushCheckpointReclaimsVariables(t *testing.T) {
	s := NewDefaultSolver()
	before := s.NumVariables()

	s.Push()
	s.PushCheckpoint()
	v := s.AddVariable()
	if err := s.AddClause([]Literal{PositiveLiteral(v), NegativeLiteral(v)}); err != nil {
		t.Fatalf("AddClause: %v", err)
	}

	if got := s.Solve(nil); got != Sat {
		t.Fatalf("Solve() = %v, want Sat", got)
	}

	s.Pop()
	if s.NumVariables() != before {
		t.Errorf("NumVariables() = %d after Pop, want %d", s.NumVariables(), before)
	}
}
