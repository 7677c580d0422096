package qlearning

import (
	"fmt"
	"sort"

	"github.com/CodeStranger-Fred/gridagents/mdp"
)

type Feature string

// FeatureVector is a sparse mapping from feature to value for one
// state/action pair.
type FeatureVector map[Feature]float64

type FeatureExtractor interface {
	Features(s mdp.State, a mdp.Action) FeatureVector
}

// IdentityExtractor gives every state/action pair its own indicator
// feature, which makes the linear agent behave like the tabular one.
type IdentityExtractor struct{}

func (IdentityExtractor) Features(s mdp.State, a mdp.Action) FeatureVector {
	return FeatureVector{Feature(fmt.Sprintf("(%s, %s)", s, a)): 1.0}
}

type Weights map[Feature]float64

func (w Weights) Dot(f FeatureVector) float64 {
	total := 0.0
	for feat, x := range f {
		total += w[feat] * x
	}
	return total
}

func (w Weights) Copy() Weights {
	out := make(Weights, len(w))
	for f, x := range w {
		out[f] = x
	}
	return out
}

// Sorted lists feature names in lexical order for stable output.
func (w Weights) Sorted() []Feature {
	names := make([]Feature, 0, len(w))
	for f := range w {
		names = append(names, f)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
