package gridworld

import (
	"math"

	"github.com/CodeStranger-Fred/gridagents/mdp"
	"github.com/CodeStranger-Fred/gridagents/search"
)

// PositionProblem asks for a path from the start cell to a goal cell.
// Moves are deterministic, exits are ordinary cells, every step costs
// CostFn of the cell entered.
type PositionProblem struct {
	world  *World
	start  mdp.State
	goal   mdp.State
	CostFn func(mdp.State) float64

	Expanded []mdp.State
}

// NewPositionProblem targets goal, or the best-paying exit when goal is
// empty.
func NewPositionProblem(w *World, goal mdp.State) *PositionProblem {
	if goal == "" {
		goal = w.BestExit()
	}
	return &PositionProblem{
		world:  w,
		start:  w.Start(),
		goal:   goal,
		CostFn: func(mdp.State) float64 { return 1 },
	}
}

// BestExit is the exit cell with the highest reward; ties go to the first
// one in row-major order.
func (w *World) BestExit() mdp.State {
	best := mdp.State("")
	bestR := math.Inf(-1)
	for _, s := range w.States() {
		if r, ok := w.IsExit(s); ok && r > bestR {
			best, bestR = s, r
		}
	}
	return best
}

func (p *PositionProblem) Goal() mdp.State { return p.goal }

func (p *PositionProblem) StartState() mdp.State { return p.start }

func (p *PositionProblem) IsGoalState(s mdp.State) bool { return s == p.goal }

func (p *PositionProblem) Successors(s mdp.State) []search.Successor[mdp.State, mdp.Action] {
	p.Expanded = append(p.Expanded, s)
	var out []search.Successor[mdp.State, mdp.Action]
	for _, a := range []mdp.Action{North, South, East, West} {
		next := p.world.Shift(s, a)
		if next == s {
			continue
		}
		out = append(out, search.Successor[mdp.State, mdp.Action]{State: next, Action: a, Cost: p.CostFn(next)})
	}
	return out
}

// CostOfActions returns +Inf for a sequence that bumps into a wall.
func (p *PositionProblem) CostOfActions(actions []mdp.Action) float64 {
	s := p.start
	total := 0.0
	for _, a := range actions {
		next := p.world.Shift(s, a)
		if next == s {
			return math.Inf(1)
		}
		s = next
		total += p.CostFn(s)
	}
	return total
}

// ManhattanHeuristic is admissible for a PositionProblem with unit costs.
// Any other problem, or one whose goal is not a cell, gets zero.
func ManhattanHeuristic(s mdp.State, problem search.Problem[mdp.State, mdp.Action]) float64 {
	p, ok := problem.(*PositionProblem)
	if !ok || !p.world.IsCell(p.goal) || !p.world.IsCell(s) {
		return 0
	}
	r0, c0 := p.world.ToCoordinates(s)
	r1, c1 := p.world.ToCoordinates(p.goal)
	return math.Abs(float64(r0-r1)) + math.Abs(float64(c0-c1))
}

// Heuristics resolves a heuristic by name for the command line.
func Heuristics(name string) (search.Heuristic[mdp.State, mdp.Action], bool) {
	switch name {
	case "", "null", "nullHeuristic":
		return search.NullHeuristic[mdp.State, mdp.Action], true
	case "manhattan", "manhattanHeuristic":
		return ManhattanHeuristic, true
	}
	return nil, false
}
