// Package mdp models Markov decision processes and solves them by value
// iteration.
package mdp

type State string

type Action string

// NoAction is chosen in states that have no legal actions.
const NoAction Action = ""

// MDP is everything value iteration and the learning agents need to know
// about an environment.
type MDP interface {
	States() []State
	PossibleActions(state State) []Action
	TransitionStatesAndProbs(state State, action Action) Distribution[State]
	Reward(state State, action Action, next State) float64
	IsTerminal(state State) bool
}

type ActionSpace interface {
	Actions(State) []Action
}

type TransitionFunction interface {
	Transition(State, Action) Distribution[State]
}

type RewardFunction interface {
	Reward(State, Action, State) float64
}

type TransitionFunc func(State, Action) Distribution[State]

func (f TransitionFunc) Transition(s State, a Action) Distribution[State] { return f(s, a) }

type RewardFunc func(State, Action, State) float64

func (f RewardFunc) Reward(s0 State, a Action, s1 State) float64 { return f(s0, a, s1) }

type DiscreteStateSpace struct {
	States []State
}

type DiscreteActionSpace struct {
	Mapping map[State][]Action
}

func (das DiscreteActionSpace) Actions(s State) []Action {
	return das.Mapping[s]
}

// Model assembles an MDP out of a state list and pluggable functions.
type Model struct {
	StateSpace         DiscreteStateSpace
	ActionSpace        ActionSpace
	TransitionFunction TransitionFunction
	RewardFunction     RewardFunction
	Terminal           map[State]bool
}

func (m Model) States() []State {
	return m.StateSpace.States
}

func (m Model) PossibleActions(s State) []Action {
	if m.ActionSpace == nil {
		return nil
	}
	return m.ActionSpace.Actions(s)
}

func (m Model) TransitionStatesAndProbs(s State, a Action) Distribution[State] {
	return m.TransitionFunction.Transition(s, a)
}

func (m Model) Reward(s0 State, a Action, s1 State) float64 {
	if m.RewardFunction == nil {
		return 0
	}
	return m.RewardFunction.Reward(s0, a, s1)
}

func (m Model) IsTerminal(s State) bool {
	return m.Terminal[s]
}
