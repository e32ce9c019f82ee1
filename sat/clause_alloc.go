//go:build !clausepool

package sat

func newClauseRecord(literals []Literal, learned bool) *Clause {
	c := &Clause{prevPos: 2}
	if learned {
		c.status = statusLearned
	}
	c.literals = make([]Literal, len(literals))
	copy(c.literals, literals)
	return c
}

func freeClauseRecord(c *Clause) {
	c.literals = nil
}
