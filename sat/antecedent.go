package sat

// AntecedentKind discriminates the four antecedent variants the original
// engine packs into a tagged pointer (see spec §9, "tagged-pointer
// antecedents"). We hold the same four variants as an explicit Go sum type
// instead, indexing into clause storage by handle rather than by pointer so
// that the clause arena stays relocatable and handle validity can be
// checked (see design note "intrusive watched lists").
type AntecedentKind uint8

const (
	// AntecedentDecision marks a variable that was assigned by a decision
	// (or is unassigned); it carries no explanation.
	AntecedentDecision AntecedentKind = iota
	// AntecedentClause0 means the literal at slot 0 of the named clause is
	// the implied literal.
	AntecedentClause0
	// AntecedentClause1 means the literal at slot 1 of the named clause is
	// the implied literal.
	AntecedentClause1
	// AntecedentLiteral means the literal was implied by a binary clause:
	// Lit holds that clause's other literal, which is false, so its
	// negation is the single literal that implies this one.
	AntecedentLiteral
	// AntecedentGeneric is an opaque, theory-provided explanation that must
	// be expanded on demand via Theory.ExpandExplanation.
	AntecedentGeneric
)

// Antecedent is the reason a trail literal was assigned: a decision (none),
// another literal, a clause, or an opaque theory explanation.
type Antecedent struct {
	Kind   AntecedentKind
	Clause ClauseHandle // valid when Kind is AntecedentClause0/1
	Lit    Literal       // valid when Kind is AntecedentLiteral
	Tag    uint32         // opaque, forwarded to Theory.ExpandExplanation when Kind is AntecedentGeneric
}

// NoAntecedent is the antecedent of a decision literal.
var NoAntecedent = Antecedent{Kind: AntecedentDecision}

func clause0Antecedent(c ClauseHandle) Antecedent {
	return Antecedent{Kind: AntecedentClause0, Clause: c}
}

func clause1Antecedent(c ClauseHandle) Antecedent {
	return Antecedent{Kind: AntecedentClause1, Clause: c}
}

func literalAntecedent(l Literal) Antecedent {
	return Antecedent{Kind: AntecedentLiteral, Lit: l}
}

func genericAntecedent(tag uint32) Antecedent {
	return Antecedent{Kind: AntecedentGeneric, Tag: tag}
}

// IsDecision reports whether the antecedent corresponds to a decision
// literal (no explanation).
func (a Antecedent) IsDecision() bool {
	return a.Kind == AntecedentDecision
}
