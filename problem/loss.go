package problem

import (
	"math"

	"github.com/cbarrick/cgp/tree"
)

// MSE computes the mean squared error of tree t's predictions against
// samples. Any NaN or infinite pointwise error propagates to +Inf for the
// whole fitness, isolating pathological trees (division by zero, etc.) so
// that minimization naturally discards them.
//
// gonum's stat package has no MSE primitive with this NaN/Inf propagation
// rule, so the loop is hand-written.
func MSE(t tree.Tree, samples []Sample) float64 {
	if len(samples) == 0 {
		return math.Inf(1)
	}
	sum := 0.0
	for _, s := range samples {
		pred := t.Eval(s.Inputs)
		diff := pred - s.Target
		sq := diff * diff
		if math.IsNaN(sq) || math.IsInf(sq, 0) {
			return math.Inf(1)
		}
		sum += sq
	}
	return sum / float64(len(samples))
}
