// Package qlearning implements tabular and approximate Q-learning agents
// and the episode loop that trains them against an mdp.MDP.
package qlearning

import (
	"math/rand"
	"time"

	"github.com/sanity-io/litter"
	"github.com/sirupsen/logrus"

	"github.com/CodeStranger-Fred/gridagents/internal/logging"
	"github.com/CodeStranger-Fred/gridagents/mdp"
)

// Config holds the learning parameters.
//
//	Epsilon     - exploration rate
//	Alpha       - learning rate
//	Discount    - discount factor
//	NumTraining - number of training episodes; no learning after these many episodes
type Config struct {
	Epsilon     float64 `mapstructure:"epsilon" yaml:"epsilon"`
	Alpha       float64 `mapstructure:"alpha" yaml:"alpha"`
	Discount    float64 `mapstructure:"discount" yaml:"discount"`
	NumTraining int     `mapstructure:"episodes" yaml:"episodes"`
}

func DefaultConfig() Config {
	return Config{Epsilon: 0.05, Alpha: 0.2, Discount: 0.8, NumTraining: 0}
}

// LegalActions is supplied by the host environment.
type LegalActions func(mdp.State) []mdp.Action

type Agent struct {
	cfg       Config
	legal     LegalActions
	estimator Estimator
	rng       *rand.Rand
	log       logrus.FieldLogger

	episodesSoFar     int
	episodeRewards    float64
	accumTrainRewards float64
	accumTestRewards  float64
}

type AgentOption func(*Agent)

func WithRand(rng *rand.Rand) AgentOption {
	return func(a *Agent) {
		if rng != nil {
			a.rng = rng
		}
	}
}

func WithLogger(l logrus.FieldLogger) AgentOption {
	return func(a *Agent) {
		if l != nil {
			a.log = l
		}
	}
}

// NewAgent returns a tabular Q-learning agent.
func NewAgent(cfg Config, legal LegalActions, opts ...AgentOption) *Agent {
	return newAgent(cfg, legal, NewTabular(), opts...)
}

// NewApproximateAgent returns an agent whose Q-values are linear in the
// features produced by extractor.
func NewApproximateAgent(cfg Config, legal LegalActions, extractor FeatureExtractor, opts ...AgentOption) *Agent {
	return newAgent(cfg, legal, NewLinear(extractor), opts...)
}

func newAgent(cfg Config, legal LegalActions, est Estimator, opts ...AgentOption) *Agent {
	a := &Agent{
		cfg:       cfg,
		legal:     legal,
		estimator: est,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		log:       logging.NewNullLogger(),
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

func (a *Agent) Config() Config { return a.cfg }

func (a *Agent) Estimator() Estimator { return a.estimator }

func (a *Agent) QValue(s mdp.State, action mdp.Action) float64 {
	return a.estimator.QValue(s, action)
}

// Value is the best Q-value over the legal actions in s, or 0 when there
// are none.
func (a *Agent) Value(s mdp.State) float64 {
	_, v := mdp.Argmax(a.legal(s), func(action mdp.Action) float64 { return a.QValue(s, action) })
	return v
}

// Policy is the greedy action in s, or mdp.NoAction in a terminal state.
func (a *Agent) Policy(s mdp.State) mdp.Action {
	best, _ := mdp.Argmax(a.legal(s), func(action mdp.Action) float64 { return a.QValue(s, action) })
	return best
}

// Action picks a uniformly random legal action with probability epsilon and
// the policy action otherwise.
func (a *Agent) Action(s mdp.State) mdp.Action {
	actions := a.legal(s)
	if len(actions) == 0 {
		return mdp.NoAction
	}
	return mdp.EpsilonGreedy(actions, a.Policy(s), a.cfg.Epsilon).Choose(a.rng)
}

// Update folds one observed transition into the estimator.
func (a *Agent) Update(s mdp.State, action mdp.Action, next mdp.State, reward float64) {
	sample := reward + a.cfg.Discount*a.Value(next)
	a.estimator.Update(s, action, sample, a.cfg.Alpha)
}

// ObserveTransition records the reward for episode accounting and then
// learns from it.
func (a *Agent) ObserveTransition(s mdp.State, action mdp.Action, next mdp.State, reward float64) {
	a.episodeRewards += reward
	a.Update(s, action, next, reward)
}

func (a *Agent) StartEpisode() {
	a.episodeRewards = 0
}

// StopEpisode closes the books on an episode. Once NumTraining episodes
// have run, exploration and learning are switched off.
func (a *Agent) StopEpisode() {
	if a.IsInTraining() {
		a.accumTrainRewards += a.episodeRewards
	} else {
		a.accumTestRewards += a.episodeRewards
	}
	a.episodesSoFar++
	a.log.WithFields(logrus.Fields{
		"episode": a.episodesSoFar,
		"reward":  a.episodeRewards,
	}).Debug("episode finished")

	if a.episodesSoFar >= a.cfg.NumTraining {
		a.cfg.Epsilon = 0
		a.cfg.Alpha = 0
	}
	if a.episodesSoFar == a.cfg.NumTraining {
		a.final()
	}
}

func (a *Agent) final() {
	fields := logrus.Fields{
		"episodes":        a.episodesSoFar,
		"average_rewards": a.AverageTrainingReward(),
	}
	a.log.WithFields(fields).Info("training finished")
	if l, ok := a.estimator.(*Linear); ok {
		w := l.Weights()
		a.log.Debugf("final weights: %s", litter.Sdump(w))
		for _, f := range w.Sorted() {
			a.log.WithFields(logrus.Fields{"feature": f, "weight": w[f]}).Debug("final weight")
		}
	}
}

func (a *Agent) IsInTraining() bool { return a.episodesSoFar < a.cfg.NumTraining }

func (a *Agent) IsInTesting() bool { return !a.IsInTraining() }

func (a *Agent) EpisodesSoFar() int { return a.episodesSoFar }

func (a *Agent) AverageTrainingReward() float64 {
	n := a.episodesSoFar
	if n > a.cfg.NumTraining {
		n = a.cfg.NumTraining
	}
	if n == 0 {
		return 0
	}
	return a.accumTrainRewards / float64(n)
}

func (a *Agent) AverageTestReward() float64 {
	n := a.episodesSoFar - a.cfg.NumTraining
	if n <= 0 {
		return 0
	}
	return a.accumTestRewards / float64(n)
}
