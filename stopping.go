package nn

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// stopReason checks the stopping criteria after the given (zero-based) epoch, returning StopNone
// if training should continue. The criteria are only checked once epoch > SkipStopChecks.
func (t *trainer) stopReason(epoch int) StopReason {
	if epoch <= t.args.SkipStopChecks {
		return StopNone
	}

	cost := t.hist.Cost
	last := cost[len(cost)-1]

	watched := cost
	if t.doCV {
		watched = t.hist.CVCost
	}
	if stagnated(watched, t.args.StopThreshold) {
		return StopStagnation
	}

	if last <= t.args.MinTrainCost {
		return StopMinTrainCost
	}

	if t.doCV && t.hist.CVCost[len(t.hist.CVCost)-1] <= t.args.MinCVCost {
		return StopMinCVCost
	}

	if len(cost) > 1 && math.Abs(last-cost[len(cost)-2]) < t.args.Tolerance {
		return StopTolerance
	}

	return StopNone
}

// stagnated returns whether the latest cost, reduced by the threshold, is still above the best
// cost so far.
func stagnated(costs []float64, threshold float64) bool {
	return (1-threshold)*costs[len(costs)-1] > floats.Min(costs)
}
