package sat

// Atom is an opaque handle by which the core refers to a theory-owned atom.
// The core never inspects an Atom's contents; it only routes literal
// assignments to the theory solver that created it (spec §3 "Atom table",
// §6 "Theory-solver interface").
type Atom uint32

// ArithBackend names a specialized decision procedure for a group of
// linear-arithmetic atoms (spec §4.9 "Difference-logic detection"): a
// containing context aggregates counters across the asserted atoms and
// picks one via its own ClassifyArithmetic, then forwards the choice to
// whichever theory is attached. Defined here, alongside Atom, so both
// package theory and package context can refer to it without a cycle.
type ArithBackend uint8

const (
	// BackendSimplex is the general linear-arithmetic decision procedure,
	// sound for any problem but without the polynomial-time guarantee
	// difference logic gets from a graph-based algorithm.
	BackendSimplex ArithBackend = iota
	// BackendFloydWarshall is the specialized difference-logic (IDL/RDL)
	// decision procedure: valid only when every atom is a two-variable
	// unit-coefficient difference constraint, picked when the problem is
	// small or dense enough for the quadratic graph algorithm to win.
	BackendFloydWarshall
)

// FinalCheckResult is the outcome of a theory's FinalCheck call (spec §6).
type FinalCheckResult uint8

const (
	FinalContinue FinalCheckResult = iota // no objection; the core may stop (Sat) if fully assigned
	FinalSat                              // the theory confirms satisfiability
	FinalUnknown                          // the theory cannot decide (e.g. incompleteness, resource limit)
)

// Theory is the narrow interface the core consumes to drive a theory
// solver (spec §6 "External interfaces — Theory-solver interface"). It is
// defined here, at the point of use, so sat has no dependency on any
// concrete theory implementation; package theory provides richer per-sort
// sub-interfaces and a no-op mock built against this interface.
type Theory interface {
	// Control.
	StartInternalization()
	StartSearch()
	// Propagate asks the theory to derive further consequences from the
	// atoms it has been told about so far. It returns false if doing so
	// produced a conflict; the theory must have recorded one via the core's
	// conflict-reporting path (see Solver.ReportTheoryConflict) before returning.
	Propagate() bool
	FinalCheck() FinalCheckResult
	IncreaseDecisionLevel()
	Backtrack(level int)
	Push()
	Pop()
	Reset()

	// AssertAtom notifies the theory that atom was just assigned the truth
	// value carried by lit (lit.IsPositive() gives the polarity). It returns
	// false if the assignment is immediately contradictory; the theory must
	// have recorded a conflict via Solver.ReportTheoryConflict before returning.
	AssertAtom(atom Atom, lit Literal) bool

	// ExpandExplanation expands a previously-returned generic antecedent
	// (identified by the opaque tag the theory itself chose when it
	// asserted lit) into a set of literals whose conjunction implies lit.
	// Every literal written to out must strictly precede lit in the trail
	// (spec §5 "causality").
	ExpandExplanation(lit Literal, tag uint32, out []Literal) []Literal

	// DeleteAtom notifies the theory that atom is being garbage collected
	// (spec §4.8) and must not be referenced again.
	DeleteAtom(atom Atom)
}
