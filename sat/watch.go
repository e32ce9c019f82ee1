package sat

// watcher is one entry of a per-literal watch list: clause references the
// watching clause by handle (see ClauseHandle), and blocker is a literal
// already known to be in the clause other than the watched one. If blocker
// is true, the clause is already satisfied and propagation can skip
// re-examining it entirely — the same "guard literal" optimization the
// teacher repository uses to avoid loading cold clauses from memory.
type watcher struct {
	clause  ClauseHandle
	blocker Literal
}

// watchIndex is the two-watched-literal index (spec §3 "Watched-literal
// index" and §4.1): for every literal l and every clause c that has l in
// slot 0 or 1, c appears exactly once in lists[l.Opposite()], the list
// propagation scans when l.Opposite() is assigned, i.e. when l becomes false.
type watchIndex struct {
	lists [][]watcher
}

func (w *watchIndex) grow() {
	w.lists = append(w.lists, nil, nil) // one per literal of the new variable
}

// truncate drops the watch lists of every literal belonging to a variable
// with id >= n. Callers must have already removed (via unwatch/release) any
// clause that still watches one of those literals.
func (w *watchIndex) truncate(n int) {
	w.lists = w.lists[:2*n]
}

func (w *watchIndex) watch(l Literal, c ClauseHandle, blocker Literal) {
	w.lists[l] = append(w.lists[l], watcher{clause: c, blocker: blocker})
}

// unwatch removes clause c from the watch list of literal l. Clause removal
// is rare relative to propagation, so a linear scan is acceptable (same
// trade-off the teacher repo makes).
func (w *watchIndex) unwatch(l Literal, c ClauseHandle) {
	list := w.lists[l]
	j := 0
	for i := range list {
		if list[i].clause != c {
			list[j] = list[i]
			j++
		}
	}
	w.lists[l] = list[:j]
}

// binaryIndex is the binary-clause index (spec §3 "Binary-clause index"):
// binary clauses are never allocated as Clause objects, only recorded in
// these per-literal companion lists.
type binaryIndex struct {
	companions [][]Literal

	// undo records (l1, l2) pairs added above base level so that Pop can
	// remove exactly the binary clauses introduced since the matching Push
	// (spec §4.7 "restores the binary-clause vectors").
	undo []binaryPair
}

type binaryPair struct {
	l1, l2 Literal
}

func (b *binaryIndex) grow() {
	b.companions = append(b.companions, nil, nil)
}

// add records clause {l1, l2} in both per-literal lists and appends it to
// the persistent undo log. Entries added at base level 0 are never
// actually undone in practice (no Pop ever targets below the first Push),
// but logging them unconditionally keeps Pop's bookkeeping a single
// truncation instead of two cases.
func (b *binaryIndex) add(l1, l2 Literal) {
	b.companions[l1] = append(b.companions[l1], l2)
	b.companions[l2] = append(b.companions[l2], l1)
	b.undo = append(b.undo, binaryPair{l1, l2})
}

func (b *binaryIndex) count() int { return len(b.undo) }

// truncateUndo drops every companion pair added at or after undo log
// position n and removes them from the companion lists, used by Pop.
func (b *binaryIndex) truncateUndo(n int) {
	for i := len(b.undo) - 1; i >= n; i-- {
		p := b.undo[i]
		b.removeCompanion(p.l1, p.l2)
		b.removeCompanion(p.l2, p.l1)
	}
	b.undo = b.undo[:n]
}

// truncateVars drops the companion lists of every literal belonging to a
// variable with id >= n. Callers must have already cleared every
// cross-reference a surviving variable's companion list held to one of
// those literals (see removeCompanion).
func (b *binaryIndex) truncateVars(n int) {
	b.companions = b.companions[:2*n]
}

func (b *binaryIndex) removeCompanion(l, companion Literal) {
	list := b.companions[l]
	for i, c := range list {
		if c == companion {
			list[i] = list[len(list)-1]
			b.companions[l] = list[:len(list)-1]
			return
		}
	}
}
