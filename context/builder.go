package context

import "fmt"

// builder constructs hash-consed Term nodes against a termTable: two calls
// building the structurally identical term return the same TermID.
type builder struct {
	tt *termTable
}

func newBuilder(tt *termTable) *builder { return &builder{tt: tt} }

func (b *builder) boolVar(name string) TermID {
	key := fmt.Sprintf("v:%s", name)
	return b.tt.intern(key, func() *Term {
		return &Term{Kind: KindBoolVar, Name: name}
	})
}

func (b *builder) arithVar(name string) TermID {
	key := fmt.Sprintf("a:%s", name)
	return b.tt.intern(key, func() *Term {
		return &Term{Kind: KindArithVar, Name: name}
	})
}

// not returns the negation of id, unfolding a double negation instead of
// wrapping it (Not(Not(x)) == x) and swapping True/False directly.
func (b *builder) not(id TermID) TermID {
	t := b.tt.get(id)
	switch t.Kind {
	case KindTrue:
		return FalseTerm
	case KindFalse:
		return TrueTerm
	case KindNot:
		return t.Args[0]
	}
	key := fmt.Sprintf("n:%d", id)
	return b.tt.intern(key, func() *Term {
		return &Term{Kind: KindNot, Args: []TermID{id}}
	})
}

// and returns the conjunction of args, simplifying away True operands and
// short-circuiting to False if any operand is False.
func (b *builder) and(args ...TermID) TermID {
	kept := make([]TermID, 0, len(args))
	for _, a := range args {
		switch b.tt.get(a).Kind {
		case KindTrue:
			continue
		case KindFalse:
			return FalseTerm
		}
		kept = append(kept, a)
	}
	if len(kept) == 0 {
		return TrueTerm
	}
	if len(kept) == 1 {
		return kept[0]
	}
	key := fmt.Sprintf("a:%v", kept)
	return b.tt.intern(key, func() *Term {
		return &Term{Kind: KindAnd, Args: kept}
	})
}

// or returns the disjunction of args, the De Morgan dual of and.
func (b *builder) or(args ...TermID) TermID {
	negated := make([]TermID, len(args))
	for i, a := range args {
		negated[i] = b.not(a)
	}
	return b.not(b.and(negated...))
}

func (b *builder) ite(cond, then, els TermID) TermID {
	switch b.tt.get(cond).Kind {
	case KindTrue:
		return then
	case KindFalse:
		return els
	}
	if then == els {
		return then
	}
	key := fmt.Sprintf("i:%d:%d:%d", cond, then, els)
	return b.tt.intern(key, func() *Term {
		return &Term{Kind: KindIte, Args: []TermID{cond, then, els}}
	})
}

func (b *builder) eq(lhs, rhs TermID) TermID {
	if lhs == rhs {
		return TrueTerm
	}
	if lhs > rhs {
		lhs, rhs = rhs, lhs
	}
	key := fmt.Sprintf("e:%d:%d", lhs, rhs)
	return b.tt.intern(key, func() *Term {
		return &Term{Kind: KindEq, Args: []TermID{lhs, rhs}}
	})
}

// arithAtom returns the term asserting p's relation to zero.
func (b *builder) arithAtom(p *Polynomial, rel ArithRelation) TermID {
	key := fmt.Sprintf("r:%d:%s", rel, p)
	return b.tt.intern(key, func() *Term {
		return &Term{Kind: KindArithAtom, Poly: p, Rel: rel}
	})
}

// isAtomic reports whether id is a leaf the translator can internalize
// directly into a single literal, without further Boolean structure to
// expand: a variable, a constant, an arithmetic atom, or the negation of
// one of those.
func (b *builder) isAtomic(id TermID) bool {
	t := b.tt.get(id)
	if t.Kind == KindNot {
		t = b.tt.get(t.Args[0])
	}
	switch t.Kind {
	case KindBoolVar, KindArithAtom, KindTrue, KindFalse:
		return true
	default:
		return false
	}
}
