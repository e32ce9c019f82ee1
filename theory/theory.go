// Package theory collects the richer per-sort interfaces a theory solver
// attached to a sat.Solver is expected to satisfy, beyond the narrow
// sat.Theory surface the core itself depends on, plus a no-op implementation
// useful for testing the Boolean core in isolation.
package theory

import "github.com/rhartert/boolsmt/sat"

// Arithmetic extends sat.Theory with the operations a context package needs
// to internalize and explain linear-arithmetic atoms (spec §4.9 "Arithmetic
// polynomial elimination", "Difference-logic auto-detection"). A concrete
// arithmetic theory (Simplex-based or difference-logic specialized) would
// implement this alongside sat.Theory.
type Arithmetic interface {
	sat.Theory

	// AssertBound notifies the theory of a bound atom (x <= c, x >= c, or
	// x == c) newly assigned by the core, identified by the Atom handle
	// AssertAtom will later receive. Returns false on immediate
	// infeasibility, following the same conflict-reporting convention as
	// sat.Theory.AssertAtom.
	AssertBound(atom sat.Atom) bool

	// Value returns the current feasible value assigned to variable id by
	// the theory's internal model, used to build a satisfying assignment
	// once the core reports Sat.
	Value(variable int) (num, den int64)

	// PreferBackend tells the theory which specialized decision procedure
	// the containing context's difference-logic auto-detection picked for
	// the arithmetic atoms asserted so far (spec §4.9 "Difference-logic
	// detection"). A theory that only implements one procedure may ignore
	// this; it is advisory, not a capability negotiation.
	PreferBackend(backend sat.ArithBackend)
}

// Bitvector extends sat.Theory with bit-vector-specific internalization
// hooks (spec §4.9 "Bit-vector polynomial rewriting").
type Bitvector interface {
	sat.Theory

	// Width returns the declared bit-width of a bit-vector term, identified
	// by the same opaque id space the containing context uses for terms.
	Width(term int) int
}

// Functions extends sat.Theory with the congruence-closure hooks needed for
// uninterpreted functions and equality reasoning (spec §4.9 "Equality
// abstraction").
type Functions interface {
	sat.Theory

	// Merge asserts that two terms are equal, as discovered by equality
	// abstraction or direct assertion. Returns false on an immediate
	// contradiction (e.g. merging two terms already forced distinct).
	Merge(a, b int) bool
}

// NoOp is a sat.Theory that accepts every atom and never propagates,
// restarts, or reports a conflict. context.New attaches it as the default
// theory, so the theory-integration code paths (RegisterAtom, AssertAtom
// delivery, Push/Pop forwarding) run without a real arithmetic or
// bit-vector solver.
type NoOp struct{}

var _ sat.Theory = NoOp{}
var _ Arithmetic = NoOp{}

func (NoOp) StartInternalization() {}
func (NoOp) StartSearch()          {}
func (NoOp) Propagate() bool       { return true }
func (NoOp) FinalCheck() sat.FinalCheckResult {
	return sat.FinalSat
}
func (NoOp) IncreaseDecisionLevel()                       {}
func (NoOp) Backtrack(level int)                          {}
func (NoOp) Push()                                        {}
func (NoOp) Pop()                                         {}
func (NoOp) Reset()                                       {}
func (NoOp) AssertAtom(atom sat.Atom, lit sat.Literal) bool { return true }
func (NoOp) ExpandExplanation(lit sat.Literal, tag uint32, out []sat.Literal) []sat.Literal {
	return out
}
func (NoOp) DeleteAtom(atom sat.Atom) {}

// AssertBound always accepts the bound: NoOp carries no arithmetic model to
// contradict it.
func (NoOp) AssertBound(atom sat.Atom) bool { return true }

// Value always reports zero, since NoOp never solves for a feasible point.
func (NoOp) Value(variable int) (num, den int64) { return 0, 1 }

// PreferBackend is a no-op: NoOp carries no decision procedure to steer.
func (NoOp) PreferBackend(backend sat.ArithBackend) {}
