package sat

// ema is an exponential moving average, used to track the LBD of recently
// learned clauses that drives the EMA-informed restart trigger (see SPEC_FULL §5 —
// supplementing the fixed geometric schedule with a moving-average
// signal, in the same spirit as Yices's smt_core.c restart heuristics).
type ema struct {
	decay float64
	value float64
	init  bool
}

func newEMA(decay float64) ema {
	return ema{decay: decay}
}

func (e *ema) add(x float64) {
	if !e.init {
		e.init = true
		e.value = x
		return
	}
	e.value = e.decay*e.value + x*(1-e.decay)
}

func (e *ema) val() float64 {
	return e.value
}
