package sat

import "time"

// RestartSchedule selects how the search-budget growth between restarts is
// computed (spec §6 "Search parameters").
type RestartSchedule uint8

const (
	// RestartMinisat grows the conflict budget geometrically, as the
	// teacher's Solve loop does (numConflicts += numConflicts/10 between
	// restarts).
	RestartMinisat RestartSchedule = iota
	// RestartFast restarts aggressively when a short-window EMA of the LBD
	// of learned clauses dips below a long-window EMA of the same, in the spirit of
	// Yices's smt_core.c restart heuristics (see SPEC_FULL §5).
	RestartFast
)

// BranchingMode selects how a decision literal's polarity is chosen (spec §6
// "branching mode"): BranchingDefault takes the heap's saved phase, while
// BranchingPositive and BranchingNegative always pick that polarity.
type BranchingMode uint8

const (
	BranchingDefault BranchingMode = iota
	BranchingPositive
	BranchingNegative
	// BranchingTheory takes the heap's saved phase, exactly as
	// BranchingDefault does: Theory has no polarity-preference method, so
	// the attached theory is not consulted.
	BranchingTheory
)

// Options configures a Solver. DefaultOptions mirrors the teacher's
// defaults, generalized with the remaining spec §6 search parameters.
type Options struct {
	ClauseDecay   float64
	VariableDecay float64
	MaxConflicts  int64
	Timeout       time.Duration
	PhaseSaving   bool

	RandomSeed        uint64
	RandomProbability  float64 // probability of a uniformly random decision
	BranchingMode     BranchingMode

	Restart RestartSchedule

	// Learned-clause reduction (spec §4.5).
	InitialLearnedLimit int     // clauses learned before the first ReduceDB
	LearnedGrowthFactor float64 // growth of the limit after each reduction
	GlueClauseLBD       uint32  // clauses with lbd <= this are exempt from the activity sweep

	// Mode selection (spec §6 "Configuration"): these gate which
	// incremental operations are legal rather than changing search
	// behavior directly.
	MultipleChecks bool // allow Solve to be called more than once
	PushPop        bool // allow the caller to invoke Push/Pop directly
	// CleanInterrupt wraps every Solve call in an implicit push, committed
	// silently on a conclusive result and left open on Interrupted so
	// CleanupAfterInterrupt can restore the exact pre-search state (spec
	// §4.7, §5 "clean-interrupt mechanism").
	CleanInterrupt bool
}

var DefaultOptions = Options{
	ClauseDecay:         0.999,
	VariableDecay:       0.95,
	MaxConflicts:        -1,
	Timeout:             -1,
	PhaseSaving:         true,
	RandomProbability:   0.02,
	BranchingMode:       BranchingDefault,
	Restart:             RestartMinisat,
	InitialLearnedLimit: 100,
	LearnedGrowthFactor: 1.05,
	GlueClauseLBD:       2,
	MultipleChecks:      true,
	PushPop:             true,
	CleanInterrupt:      false,
}
