package context

import "github.com/rhartert/boolsmt/sat"

// gateManager internalizes Boolean-structured terms into sat.Literals by
// Tseitin expansion: each compound node gets a single fresh solver variable
// equisatisfiable with its definition, and the defining clauses are added
// immediately rather than deferred, matching the teacher's own eager
// unit-clause-at-a-time DIMACS loading style.
//
// Atom internalization (KindBoolVar, KindArithAtom) is delegated to atomFn
// so the translator can route arithmetic atoms through the attached theory
// instead of the gate manager needing to know about Polynomial at all.
type gateManager struct {
	b      *builder
	tt     *termTable
	solver *sat.Solver
	lits   map[TermID]sat.Literal
	atomFn func(id TermID) sat.Literal
}

func newGateManager(b *builder, solver *sat.Solver, atomFn func(TermID) sat.Literal) *gateManager {
	g := &gateManager{
		b:      b,
		tt:     b.tt,
		solver: solver,
		lits:   make(map[TermID]sat.Literal),
		atomFn: atomFn,
	}
	g.lits[TrueTerm] = sat.TrueLit
	g.lits[FalseTerm] = sat.FalseLit
	return g
}

// literalOf returns the literal equisatisfiable with id, internalizing it
// (and, recursively, any operand not already internalized) on first use.
func (g *gateManager) literalOf(id TermID) sat.Literal {
	if l, ok := g.lits[id]; ok {
		return l
	}

	t := g.tt.get(id)
	var l sat.Literal
	switch t.Kind {
	case KindBoolVar, KindArithAtom:
		l = g.atomFn(id)
	case KindNot:
		l = g.literalOf(t.Args[0]).Opposite()
		g.lits[id] = l
		return l
	case KindAnd:
		l = g.internalizeAnd(t.Args)
	case KindOr:
		// Or(a...) == Not(And(Not a...)): reuse the And encoding on the
		// negated operands and negate the defining variable back.
		negated := make([]TermID, len(t.Args))
		for i, a := range t.Args {
			negated[i] = g.b.not(a)
		}
		l = g.internalizeAnd(negated).Opposite()
	case KindIte:
		l = g.internalizeIte(t.Args[0], t.Args[1], t.Args[2])
	case KindEq:
		l = g.internalizeIff(t.Args[0], t.Args[1])
	default:
		panic("context: gate manager cannot internalize term kind " + t.Kind.String())
	}

	g.lits[id] = l
	return l
}

// internalizeAnd introduces a fresh variable g equisatisfiable with
// And(args...) via the standard Tseitin clauses:
//
//	(g -> a_i) for each i:       (-g, a_i)
//	(a_1 & ... & a_n -> g):      (-a_1, ..., -a_n, g)
func (g *gateManager) internalizeAnd(args []TermID) sat.Literal {
	argLits := make([]sat.Literal, len(args))
	for i, a := range args {
		argLits[i] = g.literalOf(a)
	}

	gv := g.solver.AddVariable()
	gl := sat.PositiveLiteral(gv)

	for _, al := range argLits {
		g.solver.AddClauseOnTheFly([]sat.Literal{gl.Opposite(), al})
	}

	big := make([]sat.Literal, 0, len(argLits)+1)
	for _, al := range argLits {
		big = append(big, al.Opposite())
	}
	big = append(big, gl)
	g.solver.AddClauseOnTheFly(big)

	return gl
}

// internalizeIte introduces a fresh variable g equisatisfiable with
// Ite(cond, then, els):
//
//	(cond & then -> g), (cond & -then -> -g)
//	(-cond & els -> g), (-cond & -els -> -g)
func (g *gateManager) internalizeIte(cond, then, els TermID) sat.Literal {
	cl := g.literalOf(cond)
	tl := g.literalOf(then)
	el := g.literalOf(els)

	gv := g.solver.AddVariable()
	gl := sat.PositiveLiteral(gv)

	g.solver.AddClauseOnTheFly([]sat.Literal{cl.Opposite(), tl.Opposite(), gl})
	g.solver.AddClauseOnTheFly([]sat.Literal{cl.Opposite(), tl, gl.Opposite()})
	g.solver.AddClauseOnTheFly([]sat.Literal{cl, el.Opposite(), gl})
	g.solver.AddClauseOnTheFly([]sat.Literal{cl, el, gl.Opposite()})

	return gl
}

// internalizeIff introduces a fresh variable g equisatisfiable with (a <->
// b), used both for a bare Boolean equality and, via eq, for any two terms
// the translator chooses not to substitution-eliminate.
func (g *gateManager) internalizeIff(a, b TermID) sat.Literal {
	al := g.literalOf(a)
	bl := g.literalOf(b)

	gv := g.solver.AddVariable()
	gl := sat.PositiveLiteral(gv)

	g.solver.AddClauseOnTheFly([]sat.Literal{gl.Opposite(), al.Opposite(), bl})
	g.solver.AddClauseOnTheFly([]sat.Literal{gl.Opposite(), al, bl.Opposite()})
	g.solver.AddClauseOnTheFly([]sat.Literal{gl, al, bl})
	g.solver.AddClauseOnTheFly([]sat.Literal{gl, al.Opposite(), bl.Opposite()})

	return gl
}

// assertTrue forces id's literal to hold unconditionally, the direct
// encoding of a TopAtoms or TopFormulas entry from flatten.
func (g *gateManager) assertTrue(id TermID) error {
	l := g.literalOf(id)
	return g.solver.AddClause([]sat.Literal{l})
}
