package sat

// ConflictSink is the callback surface a Theory implementation uses to
// report a conflict synchronously, from inside AssertAtom or Propagate,
// before returning false (spec §7 "a False return from assert_atom or
// propagate must be accompanied by a recorded conflict in the core"). It is
// not part of the Theory interface itself (the theory is constructed with a
// ConflictSink, typically the Solver, by the containing context) so that
// Theory's method set stays exactly the one spec §6 names.
type ConflictSink interface {
	ReportTheoryConflict(lits []Literal)
}

// ReportTheoryConflict records the literals whose conjunction the theory
// found contradictory. An empty slice is a valid report: per spec §7, an
// empty conflict set from the theory means the problem is unsat regardless
// of decision level.
func (s *Solver) ReportTheoryConflict(lits []Literal) {
	s.theoryLit = append(s.theoryLit[:0], lits...)
}

func (s *Solver) theoryConflictResult() *conflict {
	lits := append([]Literal(nil), s.theoryLit...)
	s.theoryLit = s.theoryLit[:0]
	return &conflict{fromTheory: true, theoryLits: lits}
}

// propagateTheoryAtoms delivers every trail literal not yet seen by the
// theory cursor whose variable carries an atom to Theory.AssertAtom, in
// trail order (spec §5 "the theory solver observes assignments in trail
// order" and "every atom assignment is delivered exactly once").
func (s *Solver) propagateTheoryAtoms() bool {
	for s.tr.theoryCursor < len(s.tr.lits) {
		l := s.tr.lits[s.tr.theoryCursor]
		s.tr.theoryCursor++

		v := l.VarID()
		if !s.hasAtom[v] {
			continue
		}
		if !s.theory.AssertAtom(s.atoms[v], l) {
			return false
		}
	}
	return true
}
