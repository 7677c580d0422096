// Package search implements graph search over an abstract Problem:
// depth-first, breadth-first, uniform-cost and A*.
package search

import "errors"

// ErrNoPath is returned when the frontier runs dry without reaching a goal.
// An empty path with a nil error means the start state is already a goal.
var ErrNoPath = errors.New("search: frontier exhausted without reaching a goal")

type Successor[S comparable, A any] struct {
	State  S
	Action A
	Cost   float64
}

// Problem is the contract every search problem satisfies. Step costs are
// expected to be non-negative; nothing here checks that.
type Problem[S comparable, A any] interface {
	StartState() S
	IsGoalState(state S) bool
	Successors(state S) []Successor[S, A]
	CostOfActions(actions []A) float64
}

// Heuristic estimates the remaining cost from state to the nearest goal.
type Heuristic[S comparable, A any] func(state S, problem Problem[S, A]) float64

func NullHeuristic[S comparable, A any](S, Problem[S, A]) float64 {
	return 0
}

// Node is a frontier entry: a state, the actions that reached it and their
// cumulative cost.
type Node[S comparable, A any] struct {
	State S
	Path  []A
	Cost  float64
}

// extend never shares a backing array with path, so entries already in a
// frontier keep their own actions.
func extend[A any](path []A, action A) []A {
	next := make([]A, len(path)+1)
	copy(next, path)
	next[len(path)] = action
	return next
}
