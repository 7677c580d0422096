package mdp

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/CodeStranger-Fred/gridagents/internal/logging"
)

// ValueIteration runs a fixed number of synchronous Bellman sweeps over an
// MDP and then acts greedily on the result. Each sweep reads only the table
// produced by the previous one.
type ValueIteration struct {
	mdp        MDP
	discount   float64
	iterations int
	values     Values
	log        logrus.FieldLogger
}

type Option func(*ValueIteration)

func WithLogger(l logrus.FieldLogger) Option {
	return func(v *ValueIteration) {
		if l != nil {
			v.log = l
		}
	}
}

func NewValueIteration(m MDP, discount float64, iterations int, opts ...Option) *ValueIteration {
	v := &ValueIteration{
		mdp:        m,
		discount:   discount,
		iterations: iterations,
		values:     Values{},
		log:        logging.NewNullLogger(),
	}
	for _, o := range opts {
		o(v)
	}

	for i := 0; i < iterations; i++ {
		delta := v.Sweep()
		v.log.WithFields(logrus.Fields{
			"iteration": i + 1,
			"delta":     delta,
		}).Debug("value iteration sweep")
	}
	return v
}

// Sweep performs one more iteration and returns the largest change to any
// state's value.
func (v *ValueIteration) Sweep() float64 {
	next := make(Values, len(v.values))
	delta := 0.0
	for _, s := range v.mdp.States() {
		value := 0.0
		if !v.mdp.IsTerminal(s) {
			if actions := v.mdp.PossibleActions(s); len(actions) > 0 {
				_, value = Argmax(actions, func(a Action) float64 { return v.QValue(s, a) })
			}
		}
		next[s] = value
		delta = math.Max(delta, math.Abs(value-v.values.Value(s)))
	}
	v.values = next
	return delta
}

func (v *ValueIteration) Value(s State) float64 {
	return v.values.Value(s)
}

func (v *ValueIteration) Values() Values {
	return v.values.Copy()
}

// QValue is the expected return of taking a in s and then following the
// current value table.
func (v *ValueIteration) QValue(s State, a Action) float64 {
	total := 0.0
	for _, o := range v.mdp.TransitionStatesAndProbs(s, a) {
		r := v.mdp.Reward(s, a, o.Value)
		total += float64(o.Probability) * (r + v.discount*v.values.Value(o.Value))
	}
	return total
}

// Policy is the greedy action under the current values. Ties go to the
// action listed first by the MDP.
func (v *ValueIteration) Policy(s State) Action {
	if v.mdp.IsTerminal(s) {
		return NoAction
	}
	a, _ := Argmax(v.mdp.PossibleActions(s), func(a Action) float64 { return v.QValue(s, a) })
	return a
}

// Action returns the policy action; value iteration never explores.
func (v *ValueIteration) Action(s State) Action {
	return v.Policy(s)
}

func (v *ValueIteration) Iterations() int {
	return v.iterations
}
