package context

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/rhartert/boolsmt/sat"
)

// Polynomial is a linear combination of arithmetic variables plus a
// constant: sum(Coeffs[v] * v) + Const. Arithmetic atoms compare a
// Polynomial against zero (see Term.Rel); the internalization pipeline never
// needs nonlinear terms, matching spec §4.9's "linear arithmetic" scope.
// Coeffs is keyed by the int(TermID) of the KindArithVar term each
// coefficient applies to, so dependsOnVars can walk from an arithmetic atom
// back to the arithmetic variable terms it mentions.
type Polynomial struct {
	Coeffs map[int]float64
	Const  float64
}

// NewPolynomial returns an empty (constant zero) polynomial.
func NewPolynomial() *Polynomial {
	return &Polynomial{Coeffs: make(map[int]float64)}
}

// AddTerm adds coeff*variable to p, dropping the entry if the running
// coefficient cancels to exactly zero.
func (p *Polynomial) AddTerm(coeff float64, variable int) *Polynomial {
	p.Coeffs[variable] += coeff
	if p.Coeffs[variable] == 0 {
		delete(p.Coeffs, variable)
	}
	return p
}

// AddConst adds c to the polynomial's constant term.
func (p *Polynomial) AddConst(c float64) *Polynomial {
	p.Const += c
	return p
}

// NumVars reports how many distinct variables have a nonzero coefficient.
func (p *Polynomial) NumVars() int { return len(p.Coeffs) }

func (p *Polynomial) String() string {
	if len(p.Coeffs) == 0 {
		return fmt.Sprintf("%g", p.Const)
	}
	vars := make([]int, 0, len(p.Coeffs))
	for v := range p.Coeffs {
		vars = append(vars, v)
	}
	sort.Ints(vars)

	var sb strings.Builder
	for i, v := range vars {
		if i > 0 {
			sb.WriteString(" + ")
		}
		fmt.Fprintf(&sb, "%g*x%d", p.Coeffs[v], v)
	}
	if p.Const != 0 {
		fmt.Fprintf(&sb, " + %g", p.Const)
	}
	return sb.String()
}

// ArithClass is the fragment a polynomial constraint falls into, used to
// pick the cheapest sound theory for it (spec §4.9 "Difference-logic
// auto-detection").
type ArithClass uint8

const (
	// ArithTrivial has no variables at all (a constant comparison, already
	// decidable without any theory).
	ArithTrivial ArithClass = iota
	// ArithDifference is of the form x - y <= c or x <= c / x >= c: at most
	// two variables, with unit (+-1) coefficients, the fragment a
	// difference-logic (graph-based) theory decides in polynomial time
	// without a general Simplex.
	ArithDifference
	// ArithGeneral needs a full linear-arithmetic theory.
	ArithGeneral
)

// classifyFragment inspects p and reports the weakest fragment it fits: a
// per-atom signal ArithStats.Observe uses to track whether every asserted
// atom stays within the difference-logic fragment, distinct from the
// aggregate backend choice ClassifyArithmetic makes across the whole
// asserted set.
func classifyFragment(p *Polynomial) ArithClass {
	switch p.NumVars() {
	case 0:
		return ArithTrivial
	case 1:
		for _, c := range p.Coeffs {
			if math.Abs(c) == 1 {
				return ArithDifference
			}
		}
		return ArithGeneral
	case 2:
		unit := 0
		for _, c := range p.Coeffs {
			if math.Abs(c) == 1 {
				unit++
			}
		}
		if unit == 2 {
			return ArithDifference
		}
		return ArithGeneral
	default:
		return ArithGeneral
	}
}

// eliminatePolynomial applies the arithmetic elimination pass (spec §4.9
// "Arithmetic polynomial elimination"): it folds duplicate variable
// occurrences (already maintained as an invariant by Polynomial.AddTerm) and
// detects a polynomial that is trivially always true or always false once
// every variable has a known substituted constant value, via subst.
//
// This is intentionally a normalization pass, not a decision procedure: it
// never needs to reason about variables it cannot resolve to a constant.
func eliminatePolynomial(p *Polynomial, subst map[int]float64) (*Polynomial, bool) {
	out := NewPolynomial()
	out.Const = p.Const
	for v, c := range p.Coeffs {
		if val, ok := subst[v]; ok {
			out.Const += c * val
			continue
		}
		out.AddTerm(c, v)
	}
	return out, out.NumVars() == 0
}

// ArithStats aggregates the counters the density/magnitude heuristic in
// ClassifyArithmetic needs across every arithmetic atom asserted so far
// (spec §4.9 "Difference-logic detection"): distinct variables mentioned,
// atoms seen, top-level equalities among them, the running sum of
// absolute constants (an overflow guard, mirroring the original's
// sum_const check), and whether every atom observed so far still fits the
// difference-logic fragment.
type ArithStats struct {
	Vars          map[int]struct{}
	NumAtoms      int
	NumEqs        int
	SumAbsConst   float64
	AllDifference bool
}

// NewArithStats returns an empty stats accumulator. AllDifference starts
// true: it is only falsified once a non-difference atom is observed.
func NewArithStats() *ArithStats {
	return &ArithStats{Vars: make(map[int]struct{}), AllDifference: true}
}

// Observe folds one arithmetic atom into the running stats: p's polynomial
// and rel, the relation it was compared under.
func (a *ArithStats) Observe(p *Polynomial, rel ArithRelation) {
	for v := range p.Coeffs {
		a.Vars[v] = struct{}{}
	}
	a.NumAtoms++
	if rel == RelEq {
		a.NumEqs++
	}
	a.SumAbsConst += math.Abs(p.Const)
	if classifyFragment(p) == ArithGeneral {
		a.AllDifference = false
	}
}

// NumVars reports the number of distinct arithmetic variables observed.
func (a *ArithStats) NumVars() int { return len(a.Vars) }

// Thresholds mirror the original's create_auto_idl_solver /
// create_auto_rdl_solver density heuristic (spec §4.9): an integer
// overflow guard, a hard variable-count ceiling for the quadratic
// Floyd-Warshall algorithm, a small-problem fast path, and an
// atoms-per-variable density cutoff for everything in between.
const (
	arithSumConstOverflow = 1 << 30
	arithMaxVarsForFW     = 1000
	arithSmallProblemVars = 200
	arithDensityThreshold = 10.0
)

// ClassifyArithmetic picks the decision procedure the containing Context
// should route its arithmetic atoms to, given the aggregate stats observed
// across every atom asserted so far (spec §4.9 "Difference-logic
// detection", SPEC_FULL §5). Floyd-Warshall is never chosen unless every
// observed atom is itself within the difference-logic fragment: the
// density heuristic only decides between two otherwise-sound options, and
// a general linear atom makes Floyd-Warshall unsound outright.
func ClassifyArithmetic(stats ArithStats) sat.ArithBackend {
	if !stats.AllDifference {
		return sat.BackendSimplex
	}
	if stats.SumAbsConst >= arithSumConstOverflow {
		return sat.BackendSimplex
	}
	numVars := stats.NumVars()
	if numVars >= arithMaxVarsForFW {
		return sat.BackendSimplex
	}
	if numVars <= arithSmallProblemVars || stats.NumEqs == 0 {
		return sat.BackendFloydWarshall
	}
	density := float64(stats.NumAtoms) / float64(numVars)
	if density >= arithDensityThreshold {
		return sat.BackendFloydWarshall
	}
	return sat.BackendSimplex
}
