package sat

import "time"

// Solve runs the CDCL search loop (spec §4.4) to completion under an
// optional set of unit assumptions: literals treated as forced decisions,
// tried before the solver picks any of its own, in the order given. It
// returns Sat, Unsat, or StatusUnknown (resource limit, interrupt, or an
// attached theory reporting FinalUnknown). Assumptions that conflict with
// the current assignment are reported as plain Unsat; this solver does not
// extract a failed-assumption core.
func (s *Solver) Solve(assumptions []Literal) Status {
	if s.unsat {
		s.status = Unsat
		return Unsat
	}
	if !s.opts.MultipleChecks && s.searchCount > 0 {
		s.fatalf("sat: Solve called again but Options.MultipleChecks is disabled")
	}
	s.searchCount++

	// start_search's implicit push (spec §4.7, §5): opened unconditionally
	// under CleanInterrupt, committed silently below on any conclusive
	// result and left open when interrupted, so CleanupAfterInterrupt can
	// pop it to restore the exact pre-search state.
	if s.opts.CleanInterrupt {
		s.push()
		defer func() {
			if s.status != Interrupted {
				s.commitImplicitPush()
			}
		}()
	}

	s.status = Searching
	s.startTime = time.Now()
	if s.theory != nil {
		s.theory.StartSearch()
	}

	learnedLimit := float64(s.opts.InitialLearnedLimit)
	var conflictsSinceRestart int64
	restartBudget := int64(100)
	assumptionIdx := 0
	needsSimplify := true

	for {
		s.TotalIterations++

		if s.interrupted {
			s.status = Interrupted
			return StatusUnknown
		}
		if s.opts.Timeout >= 0 && time.Since(s.startTime) > s.opts.Timeout {
			s.status = StatusUnknown
			return StatusUnknown
		}
		if s.opts.MaxConflicts >= 0 && s.TotalConflicts >= s.opts.MaxConflicts {
			s.status = StatusUnknown
			return StatusUnknown
		}

		if cf := s.Propagate(); cf != nil {
			if cf.fromTheory && len(cf.theoryLits) == 0 {
				// An empty conflict set is unconditionally unsat, at any
				// decision level (spec §7).
				s.unsat = true
				s.status = Unsat
				return Unsat
			}
			if s.decisionLevel() == s.baseLevel {
				s.unsat = true
				s.status = Unsat
				return Unsat
			}

			s.TotalConflicts++
			conflictsSinceRestart++

			learnt, backtrackLevel := s.analyze(cf)

			lbd := s.computeLBD(learnt) // computed before the backtrack, while levels are live
			s.fastCR.add(float64(lbd))
			s.slowCR.add(float64(lbd))

			s.cancelToLevel(backtrackLevel)
			s.record(learnt)
			s.decayVarActivity()
			s.DecayClauseActivity()
			continue
		}

		if needsSimplify && s.decisionLevel() == s.baseLevel {
			needsSimplify = false
			if !s.Simplify() {
				return Unsat
			}
		}

		if s.restartDue(conflictsSinceRestart, restartBudget) {
			s.cancelToLevel(s.baseLevel)
			conflictsSinceRestart = 0
			restartBudget += restartBudget / 10
			s.TotalRestarts++
			needsSimplify = true
			continue
		}

		if int64(len(s.learnts)) >= int64(learnedLimit) {
			s.ReduceDB()
			learnedLimit *= s.opts.LearnedGrowthFactor
		}

		lit, ok := s.nextDecision(assumptions, &assumptionIdx)
		if s.unsat {
			s.status = Unsat
			return Unsat
		}
		if !ok {
			if s.theory != nil {
				result := s.theory.FinalCheck()
				if result == FinalUnknown {
					s.status = StatusUnknown
					return StatusUnknown
				}
				if result == FinalContinue && !s.lemmas.isEmpty() {
					continue // the theory queued an on-the-fly lemma; propagate it first
				}
				// FinalSat, or FinalContinue with nothing left to add: confirmed.
			}
			s.status = Sat
			s.Models = append(s.Models, s.extractModel())
			return Sat
		}

		s.TotalDecisions++
		s.tr.pushDecisionLevel()
		if s.theory != nil {
			s.theory.IncreaseDecisionLevel()
		}
		s.enqueue(lit, NoAntecedent)
	}
}

// restartDue reports whether the search should cancel back to the base
// level before making its next decision (spec §4.4 "Restart policy").
func (s *Solver) restartDue(conflictsSinceRestart, budget int64) bool {
	if s.decisionLevel() <= s.baseLevel {
		return false
	}
	switch s.opts.Restart {
	case RestartFast:
		const minConflicts = 20 // avoid thrashing on noisy early EMA estimates
		return conflictsSinceRestart > minConflicts && s.fastCR.val() < s.slowCR.val()
	default:
		return conflictsSinceRestart >= budget
	}
}

// nextDecision returns the next literal to assign as a decision: an
// unsatisfied assumption first, in order, then a variable chosen from the
// activity heap (spec §4.4 "Decision heuristic"). ok is false either
// because every variable is already assigned, or because an assumption
// conflicted with the current assignment (in which case s.unsat is set).
func (s *Solver) nextDecision(assumptions []Literal, idx *int) (Literal, bool) {
	// Rescan from the first assumption: a backjump or an installed lemma may
	// have unassigned assumptions decided earlier.
	*idx = 0
	for *idx < len(assumptions) {
		lit := assumptions[*idx]
		*idx++
		switch s.LitValue(lit) {
		case True:
			continue
		case False:
			s.unsat = true
			return 0, false
		default:
			return lit, true
		}
	}
	return s.pickDecisionLiteral()
}

// pickDecisionLiteral pops the highest-activity unassigned variable from the
// ordering heap, occasionally substituting a uniformly random unassigned
// variable instead (spec §4.4 "Random decisions"). Heap entries can go
// briefly stale when a variable is assigned without being explicitly
// removed (e.g. a unit fact enqueued directly); such entries are skipped.
func (s *Solver) pickDecisionLiteral() (Literal, bool) {
	if s.opts.RandomProbability > 0 && s.rng.Float64() < s.opts.RandomProbability {
		if v, ok := s.randomUnassignedVar(); ok {
			return s.literalForDecision(v), true
		}
	}

	for {
		v, ok := s.order.PopMax()
		if !ok {
			return 0, false
		}
		if s.VarValue(v) == Unknown {
			return s.literalForDecision(v), true
		}
	}
}

// randomUnassignedVar samples a handful of uniformly random variable ids,
// returning the first unassigned one found; it gives up rather than scan
// the whole variable set when the assignment is nearly complete.
func (s *Solver) randomUnassignedVar() (int, bool) {
	n := s.NumVariables()
	if n == 0 {
		return 0, false
	}
	const attempts = 8
	for i := 0; i < attempts; i++ {
		v := s.rng.Intn(n)
		if s.VarValue(v) == Unknown && s.order.Contains(v) {
			s.order.Remove(v)
			return v, true
		}
	}
	return 0, false
}

// literalForDecision chooses v's polarity according to the configured
// branching mode, falling back to the heap's saved phase for
// BranchingDefault and for BranchingTheory (no attached Theory currently
// exposes a polarity preference hook).
func (s *Solver) literalForDecision(v int) Literal {
	var positive bool
	switch s.opts.BranchingMode {
	case BranchingPositive:
		positive = true
	case BranchingNegative:
		positive = false
	default:
		positive = s.order.Polarity(v)
	}
	if positive {
		return PositiveLiteral(v)
	}
	return NegativeLiteral(v)
}

// extractModel snapshots the current total assignment as a model, recorded
// on Sat (spec §3 "Models").
func (s *Solver) extractModel() []bool {
	model := make([]bool, s.NumVariables())
	for v := 0; v < s.NumVariables(); v++ {
		model[v] = s.VarValue(v) == True
	}
	return model
}

// Interrupt requests that a running Solve return StatusUnknown at its next
// loop iteration (spec §5 "Cancellation": checked only between decisions,
// never inside a propagation or conflict-analysis pass).
func (s *Solver) Interrupt() {
	s.interrupted = true
}

// ClearInterrupt resets the interrupt flag so the solver can be resumed.
func (s *Solver) ClearInterrupt() {
	s.interrupted = false
}
