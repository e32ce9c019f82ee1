// Package heap implements the variable-activity ordering heap (spec §4.4,
// component C5): a max-heap over variables keyed by activity, with strict
// ordering "(activity_x > activity_y) or (equal activity and x < y)",
// rescaling, and phase-saving on eviction.
//
// It is a thin wrapper around github.com/rhartert/yagh, the same generic
// indexed-heap library the teacher repository uses for this exact purpose.
package heap

import "github.com/rhartert/yagh"

// VarOrder tracks the set of currently-unassigned variables ordered by
// activity, plus the "preferred polarity" bit phase-saving restores on the
// next decision involving that variable.
type VarOrder struct {
	order *yagh.IntMap[float64]

	activities []float64
	increment  float64
	decay      float64

	polarity    []bool
	phaseSaving bool
}

// New returns an empty VarOrder. decay is the per-conflict activity decay
// factor (spec: "every conflict decays all variable activities by a
// constant factor"); phaseSaving enables restoring a variable's last known
// polarity at its next decision.
func New(decay float64, phaseSaving bool) *VarOrder {
	return &VarOrder{
		order:       yagh.New[float64](0),
		increment:   1,
		decay:       decay,
		phaseSaving: phaseSaving,
	}
}

// NumVars returns the number of variables known to this heap.
func (vo *VarOrder) NumVars() int {
	return len(vo.activities)
}

// AddVar declares a new variable with the given initial activity and
// initial preferred polarity, and inserts it into the heap as unassigned.
func (vo *VarOrder) AddVar(initActivity float64, initPolarity bool) int {
	v := len(vo.activities)
	vo.activities = append(vo.activities, initActivity)
	vo.polarity = append(vo.polarity, initPolarity)
	vo.order.GrowBy(1)
	vo.order.Put(v, -initActivity)
	return v
}

// Truncate drops every variable with id >= n from the heap's bookkeeping.
// Used by the incremental stack when popping variables created after a
// checkpoint (spec §4.8).
func (vo *VarOrder) Truncate(n int) {
	vo.activities = vo.activities[:n]
	vo.polarity = vo.polarity[:n]
}

// Contains reports whether v is currently in the heap (i.e. unassigned and
// not yet popped this search).
func (vo *VarOrder) Contains(v int) bool {
	return vo.order.Contains(v)
}

// Insert inserts v back into the heap, e.g. because it was just unassigned
// by backtracking. assignedPositive is the value v held right before being
// unassigned; when phase saving is enabled it becomes v's next preferred
// polarity.
func (vo *VarOrder) Insert(v int, assignedPositive bool) {
	if vo.phaseSaving {
		vo.polarity[v] = assignedPositive
	}
	vo.order.Put(v, -vo.activities[v])
}

// Remove takes v out of the heap without touching its saved polarity. Used
// when a decision is made directly (rather than popped from the heap), and
// when a variable is deleted by the checkpoint/garbage-collection path.
func (vo *VarOrder) Remove(v int) {
	if vo.order.Contains(v) {
		vo.order.Remove(v)
	}
}

// Polarity returns the preferred polarity that should be used the next time
// v is picked as a decision variable.
func (vo *VarOrder) Polarity(v int) bool {
	return vo.polarity[v]
}

// PopMax removes and returns the unassigned variable with highest activity
// (ties broken by lowest id, via yagh's insertion-order tie-break on equal
// priority). The second return is false if the heap is empty.
func (vo *VarOrder) PopMax() (int, bool) {
	entry, ok := vo.order.Pop()
	if !ok {
		return 0, false
	}
	return entry.Elem, true
}

// Bump increases v's activity by the current increment, rescaling every
// variable's activity (and the increment itself) if v's new activity
// crosses the overflow-avoidance threshold.
func (vo *VarOrder) Bump(v int) {
	newActivity := vo.activities[v] + vo.increment
	vo.activities[v] = newActivity
	if vo.order.Contains(v) {
		vo.order.Put(v, -newActivity)
	}
	if newActivity > 1e100 {
		vo.rescale()
	}
}

// Decay shrinks the effective weight of past activity bumps relative to
// future ones by growing the increment instead of shrinking every score.
func (vo *VarOrder) Decay() {
	vo.increment /= vo.decay
	if vo.increment > 1e100 {
		vo.rescale()
	}
}

func (vo *VarOrder) rescale() {
	vo.increment *= 1e-100
	for v, a := range vo.activities {
		na := a * 1e-100
		vo.activities[v] = na
		if vo.order.Contains(v) {
			vo.order.Put(v, -na)
		}
	}
}

// Activity returns v's current activity score, mostly for diagnostics/tests.
func (vo *VarOrder) Activity(v int) float64 {
	return vo.activities[v]
}
