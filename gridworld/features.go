package gridworld

import (
	"math"

	"github.com/CodeStranger-Fred/gridagents/mdp"
	"github.com/CodeStranger-Fred/gridagents/qlearning"
)

// DistanceExtractor describes a move by how far it lands from the nearest
// positive exit, so states that look alike share what was learned.
type DistanceExtractor struct {
	World *World
}

func (d DistanceExtractor) Features(s mdp.State, a mdp.Action) qlearning.FeatureVector {
	f := qlearning.FeatureVector{"bias": 1.0}
	if s == TerminalState {
		return f
	}
	if r, ok := d.World.IsExit(s); ok {
		f["exiting"] = r / d.maxReward()
		return f
	}
	next := d.World.Shift(s, a)
	if dist, ok := d.nearestExit(next); ok {
		f["exit-distance"] = dist / float64(d.World.Rows+d.World.Cols)
	}
	return f
}

func (d DistanceExtractor) maxReward() float64 {
	m := 0.0
	for _, s := range d.World.States() {
		if r, ok := d.World.IsExit(s); ok {
			m = math.Max(m, math.Abs(r))
		}
	}
	if m == 0 {
		return 1
	}
	return m
}

func (d DistanceExtractor) nearestExit(s mdp.State) (float64, bool) {
	r0, c0 := d.World.ToCoordinates(s)
	best := math.Inf(1)
	for _, e := range d.World.States() {
		if r, ok := d.World.IsExit(e); ok && r > 0 {
			r1, c1 := d.World.ToCoordinates(e)
			best = math.Min(best, math.Abs(float64(r0-r1))+math.Abs(float64(c0-c1)))
		}
	}
	return best, !math.IsInf(best, 1)
}
