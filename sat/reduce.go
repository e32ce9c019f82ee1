package sat

import "sort"

// locked reports whether clause h is currently somebody's antecedent, and
// therefore must survive a ReduceDB sweep no matter how low its activity
// (spec §4.5).
func (s *Solver) locked(h ClauseHandle) bool {
	c := s.arena.get(h)
	v := c.literals[0].VarID()
	if s.tr.level[v] < 0 {
		return false
	}
	a := s.tr.reason[v]
	return (a.Kind == AntecedentClause0 || a.Kind == AntecedentClause1) && a.Clause == h
}

// ReduceDB shrinks the learned-clause set (spec §4.5 step 2): clauses are
// sorted by activity, and every non-locked, non-protected clause in the
// upper half is removed unconditionally; the lower half survives only if
// it is a glue clause (lbd <= Options.GlueClauseLBD) or its activity is at
// or above the average, matching the original's reduce_clause_database,
// which sweeps one half outright and activity-thresholds only the other.
func (s *Solver) ReduceDB() {
	if len(s.learnts) == 0 {
		return
	}

	sort.Slice(s.learnts, func(i, j int) bool {
		return s.arena.get(s.learnts[i]).activity < s.arena.get(s.learnts[j]).activity
	})

	var total float64
	for _, h := range s.learnts {
		total += s.arena.get(h).activity
	}
	avg := total / float64(len(s.learnts))

	kept := s.learnts[:0]
	half := len(s.learnts) / 2

	for i, h := range s.learnts {
		c := s.arena.get(h)
		keep := s.locked(h) || c.isProtected()
		if !keep {
			switch {
			case i < half:
				keep = c.lbd <= s.opts.GlueClauseLBD || c.activity >= avg
			default:
				keep = false
			}
		}
		if keep {
			kept = append(kept, h)
		} else {
			s.removeClause(h)
		}
	}
	s.learnts = kept
}

// removeClause unwatches and frees an arena clause.
func (s *Solver) removeClause(h ClauseHandle) {
	c := s.arena.get(h)
	s.unwatch(h, c.literals[0].Opposite())
	s.unwatch(h, c.literals[1].Opposite())
	s.arena.release(h)
}

// Simplify performs base-level simplification (spec §4.6): once
// propagation has saturated at the base level, every clause containing a
// base-level-true literal is removed, and every base-level-false literal is
// deleted from the clauses that remain. It must only be called at the base
// decision level with an empty lemma queue.
//
// Learned clauses are simplified regardless of baseLevel, since Pop always
// discards the entire learnt set and never needs to reconstruct one.
// Problem clauses are only simplified when baseLevel == 0: Pop restores
// surviving problem clauses by truncating s.constraints back to the size
// recorded at Push time, which is only sound if nothing above base level 0
// ever mutates or removes a problem clause in the meantime.
func (s *Solver) Simplify() bool {
	if s.decisionLevel() != s.baseLevel {
		s.fatalf("sat: Simplify called at decision level %d above base level %d", s.decisionLevel(), s.baseLevel)
	}

	if s.unsat {
		return false
	}
	if cf := s.Propagate(); cf != nil {
		s.unsat = true
		s.status = Unsat
		return false
	}

	s.simplifyOne(&s.learnts)
	if s.baseLevel == 0 {
		s.simplifyOne(&s.constraints)
	}
	return true
}

func (s *Solver) simplifyOne(handles *[]ClauseHandle) {
	hs := *handles
	j := 0
	for _, h := range hs {
		if s.simplifyClause(h) {
			s.removeClause(h)
		} else {
			hs[j] = h
			j++
		}
	}
	*handles = hs[:j]
}

// simplifyClause drops every currently-false literal from c and reports
// whether c is now satisfied (has a true literal) and should be removed
// entirely. A clause shrunk below 2 literals by this pass cannot occur at
// base-level saturation, since Propagate would already have turned it into
// a conflict or a forced unit assignment.
func (s *Solver) simplifyClause(h ClauseHandle) bool {
	c := s.arena.get(h)
	// Look for a true literal before compacting, so a clause about to be
	// removed still has its watched literals in slots 0 and 1.
	for _, l := range c.literals {
		if s.tr.value(l) == True {
			return true
		}
	}
	j := 0
	for _, l := range c.literals {
		if s.tr.value(l) != False {
			c.literals[j] = l
			j++
		}
	}
	c.literals = c.literals[:j]
	return false
}
