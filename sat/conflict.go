package sat

// analyze performs 1-UIP conflict resolution (spec §4.3): it walks the
// trail backward from the conflict, resolving away every literal at the
// current conflict level except the last one (the first unique implication
// point), and returns the resulting asserting clause (buffer[0] is the
// implied literal; buffer[0] is negated as the UIP itself, matching spec
// step 3 "set buffer[0] = not b") together with the level to backtrack to.
func (s *Solver) analyze(cf *conflict) ([]Literal, int) {
	conflictLevel := s.decisionLevel()

	if cf.fromTheory {
		k := s.baseLevel
		for _, l := range cf.theoryLits {
			if lvl := s.tr.varLevel(l.VarID()); lvl > k {
				k = lvl
			}
		}
		s.cancelToLevel(k)
		conflictLevel = k
	}

	s.tmpLearnt = s.tmpLearnt[:0]
	s.tmpLearnt = append(s.tmpLearnt, -1) // placeholder for the UIP literal
	s.seenVar.clear()

	unresolved := 0
	backtrackLevel := s.baseLevel
	levelsTouched := uint32(0)

	resolve := func(lits []Literal) {
		for _, q := range lits {
			v := q.VarID()
			if s.seenVar.contains(v) {
				continue
			}
			s.seenVar.add(v)
			s.bumpVarActivity(q)

			lvl := s.tr.varLevel(v)
			switch {
			case lvl == conflictLevel:
				unresolved++
			case lvl > s.baseLevel:
				s.tmpLearnt = append(s.tmpLearnt, q.Opposite())
				levelsTouched |= uint32(1) << uint(lvl&31)
				if lvl > backtrackLevel {
					backtrackLevel = lvl
				}
			default:
				// Literal is fixed at or below the current base level: it
				// can never become false again within this incremental
				// frame, so it contributes nothing to the learned clause.
			}
		}
	}

	resolve(s.conflictReasonLiterals(cf))

	nextPos := len(s.tr.lits) - 1
	var uip Literal
	for {
		var v int
		for {
			uip = s.tr.lits[nextPos]
			nextPos--
			v = uip.VarID()
			if s.seenVar.contains(v) {
				break
			}
		}
		unresolved--
		if unresolved <= 0 {
			break
		}
		resolve(s.explainAntecedent(uip))
	}

	s.tmpLearnt[0] = uip.Opposite()
	s.levelTouched = levelsTouched
	learnt := s.minimizeLearnt(s.tmpLearnt)

	return learnt, backtrackLevel
}

// conflictReasonLiterals returns the set of currently-true literals whose
// conjunction produced cf, in the same "reason literal" form explainAssign
// / explainAntecedent produce, so analyze can treat the initial conflict
// and every subsequent antecedent expansion identically.
func (s *Solver) conflictReasonLiterals(cf *conflict) []Literal {
	switch {
	case cf.fromTheory:
		return cf.theoryLits
	case cf.isUnit:
		s.tmpReason = append(s.tmpReason[:0], cf.unitLit.Opposite())
		return s.tmpReason
	case cf.binary:
		s.tmpReason = s.tmpReason[:0]
		s.tmpReason = append(s.tmpReason, cf.binL1.Opposite(), cf.binL2.Opposite())
		return s.tmpReason
	default:
		c := s.arena.get(cf.clause)
		if c.isLearned() {
			s.BumpClauseActivity(cf.clause)
		}
		s.tmpReason = c.explainConflict(s.tmpReason[:0])
		return s.tmpReason
	}
}

// explainAntecedent expands the antecedent of the variable carrying literal
// l into the set of true literals that justify it (spec §4.3 step 3's
// "expand b's antecedent").
func (s *Solver) explainAntecedent(l Literal) []Literal {
	a := s.tr.varReason(l.VarID())
	switch a.Kind {
	case AntecedentClause0, AntecedentClause1:
		c := s.arena.get(a.Clause)
		if c.isLearned() {
			s.BumpClauseActivity(a.Clause)
		}
		s.tmpReason = c.explainAssign(s.tmpReason[:0])
		return s.tmpReason
	case AntecedentLiteral:
		s.tmpReason = append(s.tmpReason[:0], a.Lit.Opposite())
		return s.tmpReason
	case AntecedentGeneric:
		s.tmpReason = s.theory.ExpandExplanation(l, a.Tag, s.tmpReason[:0])
		return s.tmpReason
	default:
		s.fatalf("sat: explainAntecedent called on a decision literal %v", l)
		return nil
	}
}

// minimizeLearnt removes self-subsuming literals from the just-built
// learned clause (spec §4.3 step 4): a literal m is redundant if every
// antecedent-reachable ancestor of not(m) is either already in the clause
// or itself redundant. levelTouched (populated by analyze) prunes the
// search: a literal whose antecedent reaches a decision level the clause
// never touched cannot be subsumed.
func (s *Solver) minimizeLearnt(lits []Literal) []Literal {
	if len(lits) <= 1 {
		return lits
	}

	out := lits[:1]
	for _, l := range lits[1:] {
		if !s.isRedundant(l) {
			out = append(out, l)
		}
	}
	return out
}

// isRedundant reports whether lit's antecedent chain is entirely covered by
// already-seen literals, i.e. lit can be dropped from the learned clause
// without weakening it. Variables the search visits are marked in a local
// set, not in seenVar, so a failed check leaves seenVar as analyze built it.
func (s *Solver) isRedundant(lit Literal) bool {
	type frame struct {
		v      int
		childI int
		expl   []Literal
	}
	var stack []frame
	visited := make(map[int]bool)

	a := s.tr.varReason(lit.VarID())
	if a.IsDecision() {
		return false
	}

	root := s.explainAntecedentCopy(lit.Opposite())
	stack = append(stack, frame{v: lit.Opposite().VarID(), childI: 0, expl: root})

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.childI >= len(top.expl) {
			stack = stack[:len(stack)-1]
			continue
		}
		q := top.expl[top.childI]
		top.childI++

		v := q.VarID()
		if s.seenVar.contains(v) || visited[v] {
			continue
		}

		lvl := s.tr.varLevel(v)
		if lvl <= s.baseLevel {
			continue // fixed fact, trivially covered
		}
		if s.levelTouched&(uint32(1)<<uint(lvl&31)) == 0 {
			return false // clause never touched this level: cannot be subsumed
		}

		qa := s.tr.varReason(v)
		if qa.IsDecision() {
			return false
		}

		visited[v] = true
		stack = append(stack, frame{v: v, childI: 0, expl: s.explainAntecedentCopy(q.Opposite())})
	}

	return true
}

// explainAntecedentCopy is explainAntecedent but returns an owned slice,
// since isRedundant's DFS needs to hold several expansions live at once
// (unlike analyze's single-frame walk, which reuses s.tmpReason directly).
func (s *Solver) explainAntecedentCopy(l Literal) []Literal {
	return append([]Literal(nil), s.explainAntecedent(l)...)
}

// record installs the clause analyze produced, enqueues its asserting
// literal, and indexes it by size exactly as add_learned_clause does (spec
// §4.1, §4.3 step 6): unit clauses become base-level assertions, binaries
// go through the binary index, everything else becomes a tracked learned
// clause watched on the UIP literal and the literal of second-highest
// level.
func (s *Solver) record(lits []Literal) {
	switch len(lits) {
	case 1:
		s.nbUnitClauses++
		s.enqueue(lits[0], NoAntecedent)
	case 2:
		s.binaries.add(lits[0], lits[1])
		s.enqueueFromBinary(lits)
	default:
		h := s.installClause(lits, true)
		s.arena.get(h).lbd = s.computeLBD(lits)
		s.learnts = append(s.learnts, h)
		s.enqueue(lits[0], clause0Antecedent(h))
	}
}
