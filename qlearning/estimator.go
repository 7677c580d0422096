package qlearning

import "github.com/CodeStranger-Fred/gridagents/mdp"

// Estimator stores Q-values and moves them towards a sampled target
// r + γ·V(s').
type Estimator interface {
	QValue(s mdp.State, a mdp.Action) float64
	Update(s mdp.State, a mdp.Action, sample, alpha float64)
}

// Tabular keeps one Q-value per state/action pair.
type Tabular struct {
	q mdp.QValues
}

func NewTabular() *Tabular {
	return &Tabular{q: mdp.QValues{}}
}

func (t *Tabular) QValue(s mdp.State, a mdp.Action) float64 {
	return t.q.Get(s, a)
}

func (t *Tabular) Update(s mdp.State, a mdp.Action, sample, alpha float64) {
	t.q.Set(s, a, (1-alpha)*t.q.Get(s, a)+alpha*sample)
}

func (t *Tabular) QValues() mdp.QValues {
	return t.q
}

// Linear approximates Q(s,a) as w·f(s,a).
type Linear struct {
	weights   Weights
	extractor FeatureExtractor
}

func NewLinear(extractor FeatureExtractor) *Linear {
	return &Linear{weights: Weights{}, extractor: extractor}
}

func (l *Linear) QValue(s mdp.State, a mdp.Action) float64 {
	return l.weights.Dot(l.extractor.Features(s, a))
}

// Update only touches weights of features present in f(s,a).
func (l *Linear) Update(s mdp.State, a mdp.Action, sample, alpha float64) {
	features := l.extractor.Features(s, a)
	difference := sample - l.weights.Dot(features)
	for f, x := range features {
		l.weights[f] += alpha * difference * x
	}
}

// Weights returns a snapshot; later updates do not show through.
func (l *Linear) Weights() Weights {
	return l.weights.Copy()
}
