package sat

import "fmt"

// addClauseResult tells the caller how a just-built clause ended up stored,
// since problem clauses, binary clauses, and unit facts all take a
// different path through the database (spec §3 "Clause", §4.1).
type addClauseResult struct {
	handle ClauseHandle // NoClause for unit facts and binary clauses
	binary bool
	ok     bool // false means the addition produced a top-level conflict
}

// buildClause simplifies tmp (a scratch slice the caller owns and this
// function is free to reorder/shrink) against the current assignment,
// removing duplicate and tautological literals for a non-learned clause,
// then installs the result: a unit fact is enqueued directly, a pair is
// recorded in the binary index, and anything larger becomes an arena
// clause with its two watches chosen as described in spec §4.1.
func (s *Solver) buildClause(tmp []Literal, learned bool) addClauseResult {
	size := len(tmp)

	if !learned {
		seen := make(map[Literal]struct{}, size)
		for i := size - 1; i >= 0; i-- {
			if _, ok := seen[tmp[i].Opposite()]; ok {
				return addClauseResult{handle: NoClause, ok: true} // x or !x: always true, discard
			}
			if _, ok := seen[tmp[i]]; ok {
				size--
				tmp[i], tmp[size] = tmp[size], tmp[i]
				continue
			}
			seen[tmp[i]] = struct{}{}

			switch s.LitValue(tmp[i]) {
			case True:
				return addClauseResult{handle: NoClause, ok: true} // already satisfied
			case False:
				size--
				tmp[i], tmp[size] = tmp[size], tmp[i]
			}
		}
		tmp = tmp[:size]
	}

	switch size {
	case 0:
		return addClauseResult{handle: NoClause, ok: false}
	case 1:
		return addClauseResult{handle: NoClause, ok: s.enqueue(tmp[0], NoAntecedent)}
	case 2:
		s.binaries.add(tmp[0], tmp[1])
		return addClauseResult{handle: NoClause, binary: true, ok: true}
	default:
		return addClauseResult{handle: s.installClause(tmp, learned), ok: true}
	}
}

// installClause allocates an arena clause for literals (already simplified
// and of size >= 3) and links it into the watched-literal index.
func (s *Solver) installClause(literals []Literal, learned bool) ClauseHandle {
	h := s.arena.alloc(literals, learned)
	c := s.arena.get(h)

	if learned {
		// Watch the asserting literal (slot 0, installed by the caller) and
		// the literal with the highest decision level among the rest, so
		// backtracking to that level immediately re-triggers propagation.
		maxLevel, wl := -1, 1
		for i := 1; i < len(c.literals); i++ {
			if lvl := s.tr.varLevel(c.literals[i].VarID()); lvl > maxLevel {
				maxLevel, wl = lvl, i
			}
		}
		c.literals[1], c.literals[wl] = c.literals[wl], c.literals[1]
	}

	s.watch(h, c.literals[0].Opposite(), c.literals[1])
	s.watch(h, c.literals[1].Opposite(), c.literals[0])
	return h
}

// AddClause installs a problem clause. It may only be called at the base
// decision level (spec §4.1 add_problem_clause); the containing context is
// responsible for queuing clauses discovered mid-search via
// AddClauseOnTheFly instead.
func (s *Solver) AddClause(lits []Literal) error {
	if s.decisionLevel() != s.baseLevel {
		return fmt.Errorf("sat: AddClause called at decision level %d above base level %d", s.decisionLevel(), s.baseLevel)
	}

	tmp := append([]Literal(nil), lits...)
	res := s.buildClause(tmp, false)
	if !res.ok {
		s.unsat = true
		s.status = Unsat
		return nil
	}
	switch {
	case res.binary:
		// already recorded by buildClause
	case res.handle != NoClause:
		s.constraints = append(s.constraints, res.handle)
	default:
		s.nbUnitClauses++
	}
	return nil
}

// AddClauseOnTheFly installs a clause discovered by the attached theory (or
// by the containing context) at any point in the search. If the solver is
// currently above the base level (mid-search), per spec §4.7 the clause is
// queued in the lemma queue and installed between propagation rounds,
// possibly forcing a backtrack; otherwise it is installed immediately.
func (s *Solver) AddClauseOnTheFly(lits []Literal) {
	if s.decisionLevel() == s.baseLevel {
		_ = s.AddClause(lits)
		return
	}
	tmp := append([]Literal(nil), lits...)
	s.lemmas.push(tmp)
}

// installLemma installs one queued on-the-fly clause, mirroring
// record()/addLearnedClause semantics: the clause is treated as already
// simplified (the theory is responsible for producing a currently-false or
// asserting clause) and backtracks to the level of its second-highest
// literal before installing, so the asserting literal (if any) can be
// re-propagated (spec §4.1 add_learned_clause, §4.7).
func (s *Solver) installLemma(lits []Literal) *conflict {
	switch len(lits) {
	case 0:
		// An empty lemma is unconditionally unsat, the same signal an empty
		// theory conflict set carries (spec §7).
		return &conflict{fromTheory: true}
	case 1:
		s.cancelToLevel(s.baseLevel)
		if !s.enqueue(lits[0], NoAntecedent) {
			return &conflict{isUnit: true, unitLit: lits[0]}
		}
		return nil
	case 2:
		backtrackLevel := s.secondHighestLevel(lits)
		s.cancelToLevel(backtrackLevel)
		s.binaries.add(lits[0], lits[1])
		if !s.enqueueFromBinary(lits) {
			return &conflict{binary: true, binL1: lits[0], binL2: lits[1]}
		}
		return nil
	default:
		backtrackLevel := s.secondHighestLevel(lits)
		s.cancelToLevel(backtrackLevel)
		h := s.installClause(lits, true)
		s.learnts = append(s.learnts, h)
		if !s.enqueueFromClause(h) {
			return &conflict{clause: h}
		}
		return nil
	}
}

// secondHighestLevel returns the second-highest decision level among a
// clause's literals, i.e. the level analysis would backtrack to so that at
// most one literal remains unassigned.
func (s *Solver) secondHighestLevel(lits []Literal) int {
	max1, max2 := -1, -1
	for _, l := range lits {
		lvl := s.tr.varLevel(l.VarID())
		if lvl > max1 {
			max1, max2 = lvl, max1
		} else if lvl > max2 {
			max2 = lvl
		}
	}
	if max2 < 0 {
		return s.baseLevel
	}
	return max2
}

// enqueueFromClause tries to propagate a freshly installed clause's slot-0
// literal if every other literal is already false.
func (s *Solver) enqueueFromClause(h ClauseHandle) bool {
	c := s.arena.get(h)
	allFalseButFirst := true
	for _, l := range c.literals[1:] {
		if s.LitValue(l) != False {
			allFalseButFirst = false
			break
		}
	}
	if allFalseButFirst && s.LitValue(c.literals[0]) != True {
		return s.enqueue(c.literals[0], clause0Antecedent(h))
	}
	return true
}

func (s *Solver) enqueueFromBinary(lits []Literal) bool {
	if s.LitValue(lits[0]) == False && s.LitValue(lits[1]) != True {
		return s.enqueue(lits[1], literalAntecedent(lits[0]))
	}
	if s.LitValue(lits[1]) == False && s.LitValue(lits[0]) != True {
		return s.enqueue(lits[0], literalAntecedent(lits[1]))
	}
	return true
}

// drainLemmas installs every clause currently queued, returning the
// resulting conflict if doing so produced one. Called between propagation
// rounds, never while a watch-list scan is in progress (spec §4.7).
func (s *Solver) drainLemmas() *conflict {
	for !s.lemmas.isEmpty() {
		lits := s.lemmas.pop()
		if cf := s.installLemma(lits); cf != nil {
			return cf
		}
	}
	return nil
}
