package sat

import "testing"

// TestReduceDBUpperHalfIsSweptUnconditionally pins down the two-tier rule
// from spec §4.5 step 2: only the lower-activity half of the sorted learnt
// set gets an activity-threshold reprieve. A clause in the upper half must
// be removed even when its own activity sits above the average, unless it
// is locked or explicitly protected.
func TestReduceDBUpperHalfIsSweptUnconditionally(t *testing.T) {
	s := NewDefaultSolver()
	freshClause := func(activity float64, lbd uint32, protected bool) ClauseHandle {
		v1, v2, v3 := s.AddVariable(), s.AddVariable(), s.AddVariable()
		lits := []Literal{PositiveLiteral(v1), PositiveLiteral(v2), PositiveLiteral(v3)}
		h := s.installClause(lits, true)
		c := s.arena.get(h)
		c.activity = activity
		c.lbd = lbd
		c.setProtected(protected)
		return h
	}

	belowAvgNotGlue := freshClause(1, s.opts.GlueClauseLBD+5, false)
	glueLowActivity := freshClause(2, s.opts.GlueClauseLBD, false)
	aboveAvgUnlocked := freshClause(10, s.opts.GlueClauseLBD+5, false)
	aboveAvgProtected := freshClause(11, s.opts.GlueClauseLBD+5, true)

	s.learnts = []ClauseHandle{belowAvgNotGlue, glueLowActivity, aboveAvgUnlocked, aboveAvgProtected}
	s.ReduceDB()

	kept := make(map[ClauseHandle]bool, len(s.learnts))
	for _, h := range s.learnts {
		kept[h] = true
	}

	if kept[belowAvgNotGlue] {
		t.Error("a non-glue, below-average lower-half clause survived ReduceDB")
	}
	if !kept[glueLowActivity] {
		t.Error("a glue clause in the lower half was removed by ReduceDB")
	}
	if kept[aboveAvgUnlocked] {
		t.Error("an unlocked, unprotected upper-half clause survived ReduceDB despite above-average activity")
	}
	if !kept[aboveAvgProtected] {
		t.Error("a protected upper-half clause was removed by ReduceDB")
	}
}
