package mdp

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deterministic builds a Model where every action leads to exactly one state.
func deterministic(states []State, terminal []State, edges map[State]map[Action]State, rewards map[State]map[Action]float64) Model {
	actions := DiscreteActionSpace{Mapping: map[State][]Action{}}
	for _, s := range states {
		for _, a := range []Action{"X", "Y", "east", "west"} {
			if _, ok := edges[s][a]; ok {
				actions.Mapping[s] = append(actions.Mapping[s], a)
			}
		}
	}
	term := map[State]bool{}
	for _, s := range terminal {
		term[s] = true
	}
	return Model{
		StateSpace:  DiscreteStateSpace{States: states},
		ActionSpace: actions,
		TransitionFunction: TransitionFunc(func(s State, a Action) Distribution[State] {
			return Certain(edges[s][a])
		}),
		RewardFunction: RewardFunc(func(s State, a Action, _ State) float64 {
			return rewards[s][a]
		}),
		Terminal: term,
	}
}

func TestTerminalSingleState(t *testing.T) {
	m := Model{
		StateSpace:         DiscreteStateSpace{States: []State{"end"}},
		TransitionFunction: TransitionFunc(func(State, Action) Distribution[State] { return nil }),
		Terminal:           map[State]bool{"end": true},
	}
	for _, n := range []int{0, 1, 25} {
		vi := NewValueIteration(m, 0.9, n)
		assert.Equal(t, 0.0, vi.Value("end"))
		assert.Equal(t, NoAction, vi.Policy("end"))
		assert.Equal(t, NoAction, vi.Action("end"))
	}
}

func TestStateWithoutActionsIsWorthZero(t *testing.T) {
	m := deterministic([]State{"stuck"}, nil, nil, nil)
	vi := NewValueIteration(m, 0.9, 10)
	assert.Equal(t, 0.0, vi.Value("stuck"))
	assert.Equal(t, NoAction, vi.Policy("stuck"))
}

func TestPolicyPrefersHigherReward(t *testing.T) {
	m := deterministic(
		[]State{"s", "done"},
		[]State{"done"},
		map[State]map[Action]State{"s": {"X": "done", "Y": "done"}},
		map[State]map[Action]float64{"s": {"X": 10, "Y": 0}},
	)
	vi := NewValueIteration(m, 0.9, 5)
	assert.Equal(t, Action("X"), vi.Policy("s"))
	assert.Equal(t, 10.0, vi.Value("s"))
	assert.Equal(t, 10.0, vi.QValue("s", "X"))
	assert.Equal(t, 0.0, vi.QValue("s", "Y"))
}

func TestTiesGoToFirstAction(t *testing.T) {
	m := deterministic(
		[]State{"s", "done"},
		[]State{"done"},
		map[State]map[Action]State{"s": {"X": "done", "Y": "done"}},
		map[State]map[Action]float64{"s": {"X": 1, "Y": 1}},
	)
	assert.Equal(t, Action("X"), NewValueIteration(m, 0.9, 3).Policy("s"))
}

func TestSweepsAreSynchronous(t *testing.T) {
	// s1 is listed before s0; an in-place sweep would already see V(s1)
	// when updating s0 on the first iteration.
	m := deterministic(
		[]State{"s1", "s0", "end"},
		[]State{"end"},
		map[State]map[Action]State{
			"s0": {"east": "s1"},
			"s1": {"east": "end"},
		},
		map[State]map[Action]float64{"s1": {"east": 1}},
	)
	vi := NewValueIteration(m, 0.9, 1)
	assert.Equal(t, 1.0, vi.Value("s1"))
	assert.Equal(t, 0.0, vi.Value("s0"))

	vi = NewValueIteration(m, 0.9, 2)
	assert.InDelta(t, 0.9, vi.Value("s0"), 1e-12)
}

func TestStochasticBackup(t *testing.T) {
	m := Model{
		StateSpace:  DiscreteStateSpace{States: []State{"s", "good", "bad"}},
		ActionSpace: DiscreteActionSpace{Mapping: map[State][]Action{"s": {"go"}}},
		TransitionFunction: TransitionFunc(func(State, Action) Distribution[State] {
			return Distribution[State]{{Value: "good", Probability: 0.75}, {Value: "bad", Probability: 0.25}}
		}),
		RewardFunction: RewardFunc(func(_ State, _ Action, s1 State) float64 {
			if s1 == "good" {
				return 4
			}
			return -4
		}),
		Terminal: map[State]bool{"good": true, "bad": true},
	}
	vi := NewValueIteration(m, 0.5, 3)
	assert.InDelta(t, 2.0, vi.Value("s"), 1e-12)
	assert.Equal(t, Action("go"), vi.Policy("s"))
}

func TestConvergedValuesAreStable(t *testing.T) {
	states := []State{"a", "b", "c", "d", "exit"}
	edges := map[State]map[Action]State{
		"a": {"east": "b", "west": "a"},
		"b": {"east": "c", "west": "a"},
		"c": {"east": "d", "west": "b"},
		"d": {"east": "exit", "west": "c"},
	}
	rewards := map[State]map[Action]float64{
		"a": {"east": -0.1, "west": -0.1},
		"b": {"east": -0.1, "west": -0.1},
		"c": {"east": -0.1, "west": -0.1},
		"d": {"east": 5, "west": -0.1},
	}
	vi := NewValueIteration(deterministic(states, []State{"exit"}, edges, rewards), 0.9, 200)
	before := vi.Values()
	delta := vi.Sweep()
	assert.Less(t, delta, 1e-9)
	for s, v := range before {
		assert.InDelta(t, v, vi.Value(s), 1e-9, string(s))
	}
	for _, s := range []State{"a", "b", "c", "d"} {
		assert.Equal(t, Action("east"), vi.Policy(s), string(s))
	}
	assert.Equal(t, 200, vi.Iterations())
}

func TestDistribution(t *testing.T) {
	d := Distribution[State]{}
	d.Add("a", 0.5)
	d.Add("b", 0.25)
	d.Add("a", 0.25)
	require.Len(t, d, 2)
	assert.Equal(t, Probability(0.75), d.Probability("a"))
	assert.Equal(t, Probability(0), d.Probability("zzz"))
	assert.NoError(t, d.Check())

	d.Add("c", 0.5)
	assert.Error(t, d.Check())
	assert.Panics(t, func() { d.Choose(nil) })

	assert.Error(t, Distribution[State]{{Value: "a", Probability: 1.5}, {Value: "b", Probability: -0.5}}.Check())
}

func TestChooseSkipsImpossibleOutcomes(t *testing.T) {
	d := Distribution[State]{{Value: "never", Probability: 0}, {Value: "always", Probability: 1}}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		assert.Equal(t, State("always"), d.Choose(rng))
	}
}

func TestEpsilonGreedy(t *testing.T) {
	actions := []Action{"north", "south", "east", "west"}

	greedy := EpsilonGreedy(actions, "east", 0)
	assert.NoError(t, greedy.Check())
	assert.Equal(t, Probability(1), greedy.Probability("east"))

	explore := EpsilonGreedy(actions, "east", 1)
	assert.NoError(t, explore.Check())
	for _, a := range actions {
		assert.InDelta(t, 0.25, float64(explore.Probability(a)), 1e-12)
	}

	mixed := EpsilonGreedy(actions, "east", 0.2)
	assert.InDelta(t, 0.85, float64(mixed.Probability("east")), 1e-12)
	assert.InDelta(t, 0.05, float64(mixed.Probability("west")), 1e-12)

	assert.Empty(t, EpsilonGreedy(nil, NoAction, 0.5))
}

func TestQValues(t *testing.T) {
	q := QValues{}
	assert.Equal(t, 0.0, q.Get("s", "a"))
	assert.Empty(t, q, "reads must not allocate rows")

	q.Set("s", "b", 2)
	q.Set("s", "c", 2)
	a, v := q.Argmax("s", []Action{"a", "b", "c"})
	assert.Equal(t, Action("b"), a)
	assert.Equal(t, 2.0, v)

	a, v = q.Argmax("s", nil)
	assert.Equal(t, NoAction, a)
	assert.Equal(t, 0.0, v)

	a, _ = q.Argmax("other", []Action{"x", "y"})
	assert.Equal(t, Action("x"), a)
}

func TestEpisodeReturn(t *testing.T) {
	ep := Episode{
		{State0: "a", Action: "east", State1: "b", Reward: 1},
		{State0: "b", Action: "east", State1: "c", Reward: 1},
		{State0: "c", Action: "exit", State1: "end", Reward: 10},
	}
	assert.InDelta(t, 1+0.5+2.5, ep.Return(0.5), 1e-12)
	assert.Equal(t, 0.0, Episode{}.Return(0.9))
}

func TestSample(t *testing.T) {
	m := deterministic(
		[]State{"s", "done"},
		[]State{"done"},
		map[State]map[Action]State{"s": {"X": "done"}},
		map[State]map[Action]float64{"s": {"X": 3}},
	)
	s1, r := Sample(m, "s", "X", rand.New(rand.NewSource(3)))
	assert.Equal(t, State("done"), s1)
	assert.Equal(t, 3.0, r)
}
