package sat

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	satheap "github.com/rhartert/boolsmt/sat/heap"
)

// Solver is the Boolean CDCL core: clause store, watched-literal index,
// assignment trail, variable-activity heap, propagation engine, conflict
// analysis, learned-clause management, and the incremental push/pop
// protocol (spec §2, components C1-C9). A Theory may be attached to extend
// it into the Boolean backbone of an SMT engine (C10); without one attached
// it behaves as a plain SAT solver, exactly like the teacher repository.
type Solver struct {
	arena    clauseArena
	watches  watchIndex
	binaries binaryIndex
	tr       trail
	order    *satheap.VarOrder

	clauseInc   float64
	clauseDecay float64

	constraints []ClauseHandle // problem clauses, for Simplify/GC/Pop
	learnts     []ClauseHandle // learned clauses, for ReduceDB

	nbUnitClauses int // count of unit facts asserted at base level, for push/pop bookkeeping

	// Theory integration (C10, C11 collaborator).
	theory    Theory
	atoms     []Atom
	hasAtom   []bool
	theoryLit []Literal // literals forming the conflict the theory reported, if any

	baseLevel int
	unsat     bool
	status    Status

	// Incremental stack (C9).
	lemmas      *lemmaQueue
	trailStack  []trailSnapshot
	checkpoints []checkpoint

	opts   Options
	rng    *rand.Rand
	fastCR ema // short-window average of learned-clause LBD
	slowCR ema // long-window counterpart; RestartFast fires when fast dips below slow

	interrupted bool

	// searchCount counts completed Solve calls, used to enforce
	// Options.MultipleChecks.
	searchCount int

	// Stats.
	TotalConflicts  int64
	TotalRestarts   int64
	TotalDecisions  int64
	TotalIterations int64
	startTime       time.Time

	Models [][]bool

	// Reusable scratch buffers (avoid per-call allocation in hot paths).
	seenVar      resetSet
	tmpLearnt    []Literal
	tmpReason    []Literal
	levelTouched uint32 // 32-bit "levels touched" bitmask scratch for minimization (spec §4.3 step 4)
}

// trailSnapshot is one push frame (spec §3 "Trail stack").
type trailSnapshot struct {
	nvars           int
	unitClauses     int
	binaryClauses   int
	problemClauses  int
	booleanCursor   int
	theoryCursor    int
}

// checkpoint marks a variable-creation point during search (spec §3
// "Checkpoint stack", §4.8).
type checkpoint struct {
	decisionLevel int
	nvars         int
}

// NewSolver returns a Solver configured with the given options. Variable 0
// is predefined as the constant true (TrueLit/FalseLit), matching spec §3.
func NewSolver(opts Options) *Solver {
	s := &Solver{
		clauseInc:   1,
		clauseDecay: opts.ClauseDecay,
		order:       satheap.New(opts.VariableDecay, opts.PhaseSaving),
		lemmas:      newLemmaQueue(16),
		opts:        opts,
		rng:         rand.New(rand.NewSource(int64(opts.RandomSeed))),
		fastCR:      newEMA(0.95),
		slowCR:      newEMA(0.9995),
	}
	s.AddVariable() // variable 0: the predefined constant true
	s.tr.assign(TrueLit, NoAntecedent)
	s.order.Remove(0) // never offered as a decision: its value never changes
	return s
}

// NewDefaultSolver returns a Solver using DefaultOptions.
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultOptions)
}

func (s *Solver) NumVariables() int     { return s.tr.numVars() }
func (s *Solver) NumAssigns() int       { return len(s.tr.lits) }
func (s *Solver) NumConstraints() int   { return len(s.constraints) }
func (s *Solver) NumLearnts() int       { return len(s.learnts) }
func (s *Solver) Status() Status        { return s.status }
func (s *Solver) decisionLevel() int    { return s.tr.decisionLevel() }

func (s *Solver) VarValue(v int) LBool   { return s.tr.value(PositiveLiteral(v)) }
func (s *Solver) LitValue(l Literal) LBool { return s.tr.value(l) }

// AddVariable declares a new Boolean variable and returns its id.
func (s *Solver) AddVariable() int {
	s.tr.grow()
	s.watches.grow()
	s.binaries.grow()
	s.seenVar.grow()
	s.atoms = append(s.atoms, 0)
	s.hasAtom = append(s.hasAtom, false)
	return s.order.AddVar(0, false)
}

// RegisterAtom associates variable v's literals with a theory atom, so that
// assignments to v are forwarded to the attached Theory (spec §4.2).
func (s *Solver) RegisterAtom(v int, atom Atom) {
	s.atoms[v] = atom
	s.hasAtom[v] = true
}

// AttachTheory installs the theory solver the propagation engine will
// drive. Must be called before Solve.
func (s *Solver) AttachTheory(t Theory) {
	s.theory = t
}

func (s *Solver) watch(c ClauseHandle, at Literal, blocker Literal) {
	s.watches.watch(at, c, blocker)
}

func (s *Solver) unwatch(c ClauseHandle, at Literal) {
	s.watches.unwatch(at, c)
}

// enqueue assigns l to true with the given antecedent. It returns false if
// l is already false (a conflicting assignment) and true otherwise
// (whether newly assigned or already true), matching the teacher's enqueue
// contract.
func (s *Solver) enqueue(l Literal, reason Antecedent) bool {
	switch s.tr.value(l) {
	case False:
		return false
	case True:
		return true
	default:
		s.tr.assign(l, reason)
		return true
	}
}

// BumpClauseActivity increases a learned clause's activity and rescales
// every learned clause's activity if it overflows (spec §4.3 "Activity
// rules").
func (s *Solver) BumpClauseActivity(h ClauseHandle) {
	c := s.arena.get(h)
	c.activity += s.clauseInc
	if c.activity > 1e100 {
		s.clauseInc *= 1e-100
		for _, lh := range s.learnts {
			s.arena.get(lh).activity *= 1e-100
		}
	}
}

func (s *Solver) DecayClauseActivity() {
	s.clauseInc *= 1 / s.clauseDecay
}

func (s *Solver) bumpVarActivity(l Literal) {
	s.order.Bump(l.VarID())
}

func (s *Solver) decayVarActivity() {
	s.order.Decay()
}

func (s *Solver) fatalf(format string, args ...any) {
	log.Panicf(format, args...)
}

func (s *Solver) String() string {
	return fmt.Sprintf("Solver[vars=%d constraints=%d learnts=%d]", s.NumVariables(), s.NumConstraints(), s.NumLearnts())
}
