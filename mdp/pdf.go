package mdp

import (
	"fmt"
	"math"
	"math/rand"
)

type Probability float64

type Outcome[T comparable] struct {
	Value       T
	Probability Probability
}

// Distribution is a discrete distribution that keeps outcomes in insertion
// order, so sampling with a seeded source is reproducible.
type Distribution[T comparable] []Outcome[T]

func Certain[T comparable](v T) Distribution[T] {
	return Distribution[T]{{Value: v, Probability: 1}}
}

// Add merges p into an existing outcome or appends a new one.
func (d *Distribution[T]) Add(v T, p Probability) {
	for i := range *d {
		if (*d)[i].Value == v {
			(*d)[i].Probability += p
			return
		}
	}
	*d = append(*d, Outcome[T]{Value: v, Probability: p})
}

func (d Distribution[T]) Probability(v T) Probability {
	for _, o := range d {
		if o.Value == v {
			return o.Probability
		}
	}
	return 0
}

func (d Distribution[T]) Check() error {
	sum := 0.0
	for _, o := range d {
		if o.Probability < 0 {
			return fmt.Errorf("negative probability %v for %v", o.Probability, o.Value)
		}
		sum += float64(o.Probability)
	}
	if math.Abs(sum-1) > .001 {
		return fmt.Errorf("probabilities sum to %v, not 1", sum)
	}
	return nil
}

// Choose samples an outcome. A nil rng falls back to the global source.
func (d Distribution[T]) Choose(rng *rand.Rand) T {
	if err := d.Check(); err != nil {
		panic(err)
	}
	var v float64
	if rng == nil {
		v = rand.Float64()
	} else {
		v = rng.Float64()
	}
	cumulative := 0.0
	var last T
	for _, o := range d {
		if o.Probability == 0 {
			continue
		}
		cumulative += float64(o.Probability)
		if v < cumulative {
			return o.Value
		}
		last = o.Value
	}
	return last
}

// EpsilonGreedy puts 1-ε on best and spreads ε uniformly over all actions.
func EpsilonGreedy(actions []Action, best Action, epsilon float64) Distribution[Action] {
	pdf := Distribution[Action]{}
	if len(actions) == 0 {
		return pdf
	}
	share := Probability(epsilon / float64(len(actions)))
	for _, a := range actions {
		if a == best {
			pdf.Add(a, Probability(1.0-epsilon)+share)
		} else {
			pdf.Add(a, share)
		}
	}
	return pdf
}
