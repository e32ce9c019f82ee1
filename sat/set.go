package sat

// resetSet is a set of small integers (variable ids) that supports O(1)
// membership test, insertion, and "clear everything" via a generation
// counter instead of a real wipe. It backs the "seen" marks conflict
// analysis uses to avoid processing the same variable twice while walking
// the trail (spec §4.3 steps 2-4).
type resetSet struct {
	stampedAt []uint32
	stamp     uint32
}

func (rs *resetSet) contains(v int) bool {
	return rs.stampedAt[v] == rs.stamp
}

func (rs *resetSet) add(v int) {
	rs.stampedAt[v] = rs.stamp
}

// clear discards all members in O(1) by advancing the generation counter.
// On the rare wraparound it falls back to a real zeroing pass.
func (rs *resetSet) clear() {
	rs.stamp++
	if rs.stamp == 0 {
		rs.stamp = 1
		for i := range rs.stampedAt {
			rs.stampedAt[i] = 0
		}
	}
}

func (rs *resetSet) grow() {
	rs.stampedAt = append(rs.stampedAt, 0)
}

func (rs *resetSet) truncate(n int) {
	rs.stampedAt = rs.stampedAt[:n]
}
