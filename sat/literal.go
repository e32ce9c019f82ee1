package sat

import "fmt"

// Literal is a signed reference to a boolean Variable: Literal = 2*variable +
// polarity. Negation toggles the low (polarity) bit. Variable 0 is
// predefined as the constant "true", so TrueLit and FalseLit are always
// valid literals even before any variable has been declared by the caller.
type Literal int32

const (
	// TrueLit is the literal of the predefined constant-true variable.
	TrueLit Literal = 0
	// FalseLit is the negation of TrueLit.
	FalseLit Literal = 1
)

// PositiveLiteral returns the literal asserting that variable v is true.
func PositiveLiteral(v int) Literal {
	return Literal(v) * 2
}

// NegativeLiteral returns the literal asserting that variable v is false.
func NegativeLiteral(v int) Literal {
	return Literal(v)*2 + 1
}

// VarID returns the id of the variable l refers to.
func (l Literal) VarID() int {
	return int(l) / 2
}

// IsPositive reports whether l asserts its variable rather than its negation.
func (l Literal) IsPositive() bool {
	return l&1 == 0
}

// Opposite returns the negation of l.
func (l Literal) Opposite() Literal {
	return l ^ 1
}

func (l Literal) String() string {
	if l.IsPositive() {
		return fmt.Sprintf("%d", l.VarID())
	}
	return fmt.Sprintf("!%d", l.VarID())
}
