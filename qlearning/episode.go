package qlearning

import (
	"math/rand"

	"github.com/CodeStranger-Fred/gridagents/mdp"
)

// RunEpisode lets agent act in env from start until a terminal state, a
// state without legal actions, or maxSteps transitions (0 means no limit).
// Every transition is fed back to the agent.
func RunEpisode(env mdp.MDP, start mdp.State, agent *Agent, rng *rand.Rand, maxSteps int) mdp.Episode {
	var episode mdp.Episode
	agent.StartEpisode()

	state := start
	for step := 0; maxSteps <= 0 || step < maxSteps; step++ {
		if env.IsTerminal(state) {
			break
		}
		action := agent.Action(state)
		if action == mdp.NoAction {
			break
		}
		next, reward := mdp.Sample(env, state, action, rng)
		agent.ObserveTransition(state, action, next, reward)

		episode = append(episode, mdp.Transition{
			State0: state,
			Action: action,
			State1: next,
			Reward: reward,
		})
		state = next
	}

	agent.StopEpisode()
	return episode
}

// Train runs episodes back to back and returns the discounted return of
// each one.
func Train(env mdp.MDP, start mdp.State, agent *Agent, episodes int, rng *rand.Rand, maxSteps int) []float64 {
	returns := make([]float64, 0, episodes)
	discount := agent.Config().Discount
	for i := 0; i < episodes; i++ {
		ep := RunEpisode(env, start, agent, rng, maxSteps)
		returns = append(returns, ep.Return(discount))
	}
	return returns
}
