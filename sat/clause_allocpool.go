//go:build clausepool

// Build with -tags clausepool to recycle clause literal slices through a set
// of size-classed sync.Pools instead of letting the garbage collector reclaim
// them. This trades a bit of bookkeeping for fewer allocations on workloads
// that churn through many short-lived learned clauses (ReduceDB sweeps).

package sat

import "sync"

var pool8 = sync.Pool{
	New: func() any {
		s := make([]Literal, 0, 8)
		return &s
	},
}

var pool64 = sync.Pool{
	New: func() any {
		s := make([]Literal, 0, 64)
		return &s
	},
}

var pool256 = sync.Pool{
	New: func() any {
		s := make([]Literal, 0, 256)
		return &s
	},
}

var poolHuge = sync.Pool{
	New: func() any {
		s := make([]Literal, 0, 512)
		return &s
	},
}

func poolFor(n int) *sync.Pool {
	switch {
	case n <= 8:
		return &pool8
	case n <= 64:
		return &pool64
	case n <= 256:
		return &pool256
	default:
		return &poolHuge
	}
}

func newClauseRecord(literals []Literal, learned bool) *Clause {
	c := &Clause{prevPos: 2}
	if learned {
		c.status = statusLearned
	}

	ref := poolFor(len(literals)).Get().(*[]Literal)
	c.literals = (*ref)[:0]
	c.literals = append(c.literals, literals...)
	return c
}

func freeClauseRecord(c *Clause) {
	if c.literals == nil {
		return
	}
	s := c.literals[:0]
	poolFor(cap(s)).Put(&s)
	c.literals = nil
}
