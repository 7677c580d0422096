package mdp

import "math/rand"

type Transition struct {
	State0 State
	Action Action
	State1 State
	Reward float64
}

type Episode []Transition

// Return is the discounted sum of rewards from the first step.
func (e Episode) Return(discount float64) float64 {
	g := 0.0
	for i := len(e) - 1; i >= 0; i-- {
		g = e[i].Reward + discount*g
	}
	return g
}

// Sample draws the next state of taking a in s and the reward for it.
func Sample(m MDP, s State, a Action, rng *rand.Rand) (State, float64) {
	s1 := m.TransitionStatesAndProbs(s, a).Choose(rng)
	return s1, m.Reward(s, a, s1)
}
