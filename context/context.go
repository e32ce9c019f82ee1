// Package context implements the term-level front end (spec component C11)
// that sits above the CDCL core in package sat: a hash-consed term DAG,
// top-level flattening and substitution elimination, Tseitin internalization
// of Boolean structure, and an incremental assertion stack mirroring
// sat.Solver's own Push/Pop/checkpoint protocol one level up, at the
// granularity of terms instead of clauses.
package context

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rhartert/boolsmt/sat"
	"github.com/rhartert/boolsmt/theory"
)

// Context is the user-facing handle for building and solving a formula. It
// owns the term DAG and the attached sat.Solver, and translates every
// asserted term into the clauses and atoms the solver actually reasons
// about.
type Context struct {
	tt     *termTable
	b      *builder
	opts   Config
	solver *sat.Solver
	theory theory.Arithmetic
	gate   *gateManager

	// arithStats accumulates across every arithmetic atom internalized so
	// far, feeding ClassifyArithmetic's difference-logic auto-detection
	// (spec §4.9); arithBackend is the most recent choice forwarded to
	// theory via PreferBackend.
	arithStats   *ArithStats
	arithBackend sat.ArithBackend

	// scopes tags every Push with a random id, so a caller can log or assert
	// which scope a given Pop is closing without the Context needing to
	// expose sat.Solver's internal level counters.
	scopes []uuid.UUID
}

// New creates a Context with no attached arithmetic theory: arithmetic
// atoms can still be built and asserted, but resolve only through whatever
// Boolean structure surrounds them (no Simplex/difference-logic reasoning).
func New(opts Config) *Context {
	return NewWithTheory(opts, theory.NoOp{})
}

// NewWithTheory creates a Context whose arithmetic atoms are delegated to
// th, e.g. a difference-logic or Simplex-based implementation of
// theory.Arithmetic.
func NewWithTheory(opts Config, th theory.Arithmetic) *Context {
	solverOpts := sat.DefaultOptions
	solver := sat.NewSolver(solverOpts)
	solver.AttachTheory(th)

	tt := newTermTable()
	c := &Context{
		tt:         tt,
		b:          newBuilder(tt),
		opts:       opts,
		solver:     solver,
		theory:     th,
		arithStats: NewArithStats(),
	}
	c.gate = newGateManager(c.b, solver, c.internalizeAtom)
	return c
}

// BoolVar declares (or, if already declared under that name, returns) a
// fresh Boolean variable term.
func (c *Context) BoolVar(name string) TermID { return c.b.boolVar(name) }

// ArithVar declares (or returns) a fresh arithmetic variable term.
func (c *Context) ArithVar(name string) TermID { return c.b.arithVar(name) }

func (c *Context) Not(a TermID) TermID           { return c.b.not(a) }
func (c *Context) And(args ...TermID) TermID     { return c.b.and(args...) }
func (c *Context) Or(args ...TermID) TermID      { return c.b.or(args...) }
func (c *Context) Ite(i, t, e TermID) TermID     { return c.b.ite(i, t, e) }
func (c *Context) Eq(a, b TermID) TermID         { return c.b.eq(a, b) }
func (c *Context) ArithAtom(p *Polynomial, rel ArithRelation) TermID {
	return c.b.arithAtom(p, rel)
}

// internalizeAtom is the gateManager's atomFn: it turns a KindBoolVar term
// into a fresh solver variable (memoized, so repeated Boolean variables
// reuse one solver variable) and a KindArithAtom term into a
// theory-registered atom via RegisterAtom. Every arithmetic atom is folded
// into the running ArithStats first, and the resulting difference-logic
// auto-detection verdict is forwarded to the attached theory via
// PreferBackend, so the theory can re-specialize as more atoms arrive
// (spec §4.9 "Difference-logic detection").
func (c *Context) internalizeAtom(id TermID) sat.Literal {
	t := c.tt.get(id)
	if t.Kind == KindBoolVar {
		v := c.solver.AddVariable()
		return sat.PositiveLiteral(v)
	}

	c.arithStats.Observe(t.Poly, t.Rel)
	c.arithBackend = ClassifyArithmetic(*c.arithStats)
	c.theory.PreferBackend(c.arithBackend)

	v := c.solver.AddVariable()
	c.solver.RegisterAtom(v, sat.Atom(id))
	return sat.PositiveLiteral(v)
}

// ArithBackend reports the most recently chosen difference-logic backend
// (spec §4.9), i.e. the verdict last forwarded to the attached theory via
// PreferBackend.
func (c *Context) ArithBackend() sat.ArithBackend {
	return c.arithBackend
}

// Assert adds term to the formula: it must hold in every model produced by
// a subsequent Check. Top-level conjunctions and De Morgan'd disjunctions
// are flattened before internalization. When VarElim is enabled, an
// equality between two bare Boolean variables that earlier equalities of
// the same Assert already imply is skipped (the others become Iff gates),
// and an equality x == term with a bare Boolean x chosen for substitution
// is eliminated by giving x the term's literal, provided x has not been
// internalized yet; every other equality is asserted as an Iff gate.
func (c *Context) Assert(term TermID) *Error {
	flat := flatten(c.b, c.opts, term)

	if c.opts.Has(EqAbstract) {
		for _, pair := range deriveEqualities(c.b, flat) {
			flat.TopEqs = append(flat.TopEqs, c.b.eq(pair[0], pair[1]))
		}
	}

	// Phase 1 (merge): two bare Boolean variables already known equal
	// through a chain of earlier top-level equalities need no additional
	// gate, since asserting the chain already forces them into the same
	// union-find class.
	redundant := make(map[TermID]bool)
	subst := make(map[TermID]TermID)
	if c.opts.Has(VarElim) {
		uf := newUnionFind(len(c.tt.terms))
		for _, eq := range flat.TopEqs {
			lhs, rhs := eqOperands(c.tt, eq)
			if c.tt.get(lhs).Kind == KindBoolVar && c.tt.get(rhs).Kind == KindBoolVar {
				if uf.find(int(lhs)) == uf.find(int(rhs)) {
					redundant[eq] = true
				} else {
					uf.union(int(lhs), int(rhs))
				}
				continue
			}
			subst[lhs] = rhs
		}
		subst = discoverSubstitutions(subst, func(id TermID) []TermID {
			return dependsOnVars(c.tt, id)
		})
	}

	for _, eq := range flat.TopEqs {
		if redundant[eq] {
			continue
		}
		lhs, rhs := eqOperands(c.tt, eq)
		if def, ok := subst[lhs]; ok && def == rhs && c.tt.get(lhs).Kind == KindBoolVar {
			if _, done := c.gate.lits[lhs]; !done {
				// Eliminated: lhs shares rhs's literal from here on.
				c.gate.lits[lhs] = c.gate.literalOf(rhs)
				continue
			}
		}
		if err := c.gate.assertTrue(c.b.eq(lhs, rhs)); err != nil {
			return wrapError(TriviallyUnsat, err, "asserting equality")
		}
	}
	for _, a := range flat.TopAtoms {
		if err := c.gate.assertTrue(a); err != nil {
			return wrapError(TriviallyUnsat, err, "asserting atom")
		}
	}
	for _, f := range flat.TopFormulas {
		if err := c.gate.assertTrue(f); err != nil {
			return wrapError(TriviallyUnsat, err, "asserting formula")
		}
	}
	return nil
}

// Check solves the current assertion stack.
func (c *Context) Check() (sat.Status, *Error) {
	status := c.solver.Solve(nil)
	if status == sat.StatusUnknown {
		return status, newError(Timeout, "check did not reach a conclusion")
	}
	return status, nil
}

// Push opens a new assertion scope, tagged with a fresh random id so the
// caller can refer to it in logs without reaching into the solver's level
// counters.
func (c *Context) Push() uuid.UUID {
	id := uuid.New()
	c.scopes = append(c.scopes, id)
	c.solver.Push()
	return id
}

// Pop closes the most recently opened scope, discarding every assertion
// and declaration made since the matching Push.
func (c *Context) Pop() error {
	if len(c.scopes) == 0 {
		return fmt.Errorf("context: Pop called with no matching Push")
	}
	c.scopes = c.scopes[:len(c.scopes)-1]
	c.solver.Pop()
	// Forget the literals of terms internalized inside the closed scope: the
	// solver has just deleted their variables.
	n := c.solver.NumVariables()
	for id, l := range c.gate.lits {
		if l.VarID() >= n {
			delete(c.gate.lits, id)
		}
	}
	return nil
}

// Checkpoint marks the current declaration high-water mark for later
// garbage collection: once every variable declared since becomes
// unassigned again, the solver reclaims them automatically on backtrack
// (spec §4.8 "dynamic atom/variable deletion").
func (c *Context) Checkpoint() {
	c.solver.PushCheckpoint()
}

// Version reports the module's semantic version (spec §6 "Version
// reporting").
func (c *Context) Version() string {
	return VersionInfo().String()
}

// Theory returns the arithmetic theory backing this Context's arithmetic
// atoms (theory.NoOp{} if none was attached via NewWithTheory).
func (c *Context) Theory() theory.Arithmetic {
	return c.theory
}
