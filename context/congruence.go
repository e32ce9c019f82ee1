package context

// deriveEqualities implements "Equality abstraction" (spec §4.9): for a
// UF-only problem (no arithmetic atoms among the top-level terms), it runs
// a partition-refinement congruence closure across flat's three buckets and
// returns every implied equality it can derive beyond the ones already
// asserted, as (lhs, rhs) TermID pairs ready to be added as new top-level
// equalities.
//
// Since And/Or/Not/Eq nodes are already structurally hash-consed (two
// syntactically identical terms share one TermID), the only source of
// non-obvious implied equality in this term algebra is Ite: two distinct
// Ite(cond1, then1, else1) and Ite(cond2, then2, else2) terms are
// congruent, and hence forced equal, whenever their respective operands
// are already known equal. This is the classical Downey-Sethi-Tarjan
// partition-refinement formulation of congruence closure, restricted to
// the one "function symbol" (Ite) this algebra has beyond the boolean
// connectives.
func deriveEqualities(b *builder, flat *flattenResult) [][2]TermID {
	if hasArithmetic(b.tt, flat) {
		return nil
	}

	uf := newUnionFind(len(b.tt.terms))
	for _, eq := range flat.TopEqs {
		lhs, rhs := eqOperands(b.tt, eq)
		uf.union(int(lhs), int(rhs))
	}

	var ites []TermID
	seen := make(map[TermID]bool)
	var collect func(id TermID)
	collect = func(id TermID) {
		if seen[id] {
			return
		}
		seen[id] = true
		t := b.tt.get(id)
		if t.Kind == KindIte {
			ites = append(ites, id)
		}
		for _, a := range t.Args {
			collect(a)
		}
	}
	for _, bucket := range [][]TermID{flat.TopEqs, flat.TopAtoms, flat.TopFormulas} {
		for _, id := range bucket {
			collect(id)
		}
	}

	var derived [][2]TermID
	alreadyEq := func(x, y TermID) bool { return uf.find(int(x)) == uf.find(int(y)) }

	// Refine to a fixpoint: merging two Ite nodes by congruence can expose
	// a further congruence between a third pair that depended on it.
	for changed := true; changed; {
		changed = false
		for i := 0; i < len(ites); i++ {
			for j := i + 1; j < len(ites); j++ {
				a, c := b.tt.get(ites[i]), b.tt.get(ites[j])
				if alreadyEq(ites[i], ites[j]) {
					continue
				}
				if alreadyEq(a.Args[0], c.Args[0]) && alreadyEq(a.Args[1], c.Args[1]) && alreadyEq(a.Args[2], c.Args[2]) {
					uf.union(int(ites[i]), int(ites[j]))
					derived = append(derived, [2]TermID{ites[i], ites[j]})
					changed = true
				}
			}
		}
	}
	return derived
}

// hasArithmetic reports whether any top-level term mentions an arithmetic
// atom or variable, in which case the problem is not UF-only and
// deriveEqualities does not apply.
func hasArithmetic(tt *termTable, flat *flattenResult) bool {
	seen := make(map[TermID]bool)
	var walk func(id TermID) bool
	walk = func(id TermID) bool {
		if seen[id] {
			return false
		}
		seen[id] = true
		t := tt.get(id)
		if t.Kind == KindArithVar || t.Kind == KindArithAtom {
			return true
		}
		for _, a := range t.Args {
			if walk(a) {
				return true
			}
		}
		return false
	}
	for _, bucket := range [][]TermID{flat.TopEqs, flat.TopAtoms, flat.TopFormulas} {
		for _, id := range bucket {
			if walk(id) {
				return true
			}
		}
	}
	return false
}
