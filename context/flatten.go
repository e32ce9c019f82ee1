package context

// flattenResult partitions an asserted formula into the three buckets the
// internalization pipeline treats differently (spec §4.9 "top-level
// flattening"):
//   - TopEqs: equalities between two terms, candidates for substitution
//     elimination before any clause is ever built.
//   - TopAtoms: atomic literals (a Boolean variable, an arithmetic atom, or
//     the negation of one) that must hold unconditionally.
//   - TopFormulas: everything else, requiring full gate internalization.
type flattenResult struct {
	TopEqs      []TermID
	TopAtoms    []TermID
	TopFormulas []TermID
}

// flatten decomposes root under the assumption that it must evaluate to
// true, pushing polarity through Not and distributing the top-level
// conjunction: And(a, b) asserted true means a and b must each hold, and by
// De Morgan so does Not(Or(a, b)), which the builder already represents as
// And(Not(a), Not(b)) and which is therefore split by the And case. This mirrors
// how the teacher's DIMACS loader strips away structure the solver doesn't
// need to see one unit clause at a time, generalized to Boolean structure
// instead of a flat clause list.
func flatten(b *builder, opts Config, root TermID) *flattenResult {
	r := &flattenResult{}
	var walk func(id TermID, positive bool)
	walk = func(id TermID, positive bool) {
		t := b.tt.get(id)
		switch {
		case t.Kind == KindNot:
			walk(t.Args[0], !positive)
		case t.Kind == KindAnd && positive:
			for _, a := range t.Args {
				walk(a, true)
			}
		case t.Kind == KindOr && !positive && opts.Has(FlattenOr):
			for _, a := range t.Args {
				walk(a, false)
			}
		default:
			leaf := id
			if !positive {
				leaf = b.not(id)
			}
			classify(b, opts, leaf, r)
		}
	}
	walk(root, true)
	return r
}

func classify(b *builder, opts Config, id TermID, r *flattenResult) {
	t := b.tt.get(id)
	switch {
	case t.Kind == KindEq && opts.Has(TopEqSubst):
		r.TopEqs = append(r.TopEqs, id)
	case b.isAtomic(id):
		r.TopAtoms = append(r.TopAtoms, id)
	default:
		r.TopFormulas = append(r.TopFormulas, id)
	}
}

// eqOperands returns the two sides of an equality term, panicking if id is
// not a KindEq node: a caller bug, not a condition the internalizer should
// ever have to report as a user-facing Error.
func eqOperands(tt *termTable, id TermID) (TermID, TermID) {
	t := tt.get(id)
	if t.Kind != KindEq {
		panic("context: eqOperands called on a " + t.Kind.String() + " term")
	}
	return t.Args[0], t.Args[1]
}

// dependsOnVars returns every bare variable (Boolean or arithmetic) that id
// directly mentions, the dependency function discoverSubstitutions needs to
// build its candidate graph.
func dependsOnVars(tt *termTable, id TermID) []TermID {
	t := tt.get(id)
	switch t.Kind {
	case KindBoolVar, KindArithVar:
		return []TermID{id}
	case KindArithAtom:
		out := make([]TermID, 0, t.Poly.NumVars())
		for v := range t.Poly.Coeffs {
			out = append(out, TermID(v))
		}
		return out
	default:
		var out []TermID
		for _, a := range t.Args {
			out = append(out, dependsOnVars(tt, a)...)
		}
		return out
	}
}
