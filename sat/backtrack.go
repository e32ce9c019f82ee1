package sat

// cancelToLevel undoes trail assignments back to the given decision level,
// reinserting each unassigned variable into the ordering heap with its
// phase-saved polarity, and notifies the attached theory once with the
// target level (spec §4.4 "Polarity bit is updated whenever a variable is
// unassigned by backtracking").
func (s *Solver) cancelToLevel(level int) {
	if s.decisionLevel() <= level {
		return
	}
	s.tr.cancelToLevel(level, func(l Literal) {
		s.order.Insert(l.VarID(), l.IsPositive())
	})
	if s.theory != nil {
		s.theory.Backtrack(level)
	}
	s.reclaimCheckpoints()
}
