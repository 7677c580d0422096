// Package gridworld is a small grid game with walls and exit cells. A World
// is an mdp.MDP for value iteration and Q-learning and backs a
// search.Problem for path finding.
package gridworld

import (
	"fmt"
	"strconv"

	"github.com/CodeStranger-Fred/gridagents/mdp"
)

const (
	North mdp.Action = "north"
	West  mdp.Action = "west"
	South mdp.Action = "south"
	East  mdp.Action = "east"
	Exit  mdp.Action = "exit"
)

// TerminalState is entered by taking Exit from an exit cell.
const TerminalState mdp.State = "TERMINAL"

type cellKind int

const (
	open cellKind = iota
	wall
	exit
)

type cell struct {
	kind   cellKind
	reward float64
}

type World struct {
	Name         string
	Rows         int
	Cols         int
	Noise        float64
	LivingReward float64

	cells [][]cell
	start mdp.State
}

func (w *World) Check() error {
	if w.Noise < 0 || w.Noise > 1 {
		return fmt.Errorf("gridworld %q: noise %v outside [0, 1]", w.Name, w.Noise)
	}
	if w.start == "" {
		return fmt.Errorf("gridworld %q: no start cell", w.Name)
	}
	return nil
}

func (w *World) Start() mdp.State {
	return w.start
}

func (w *World) State(r int, c int) mdp.State {
	if r < 0 || c < 0 || r >= w.Rows || c >= w.Cols {
		panic("off board")
	}
	return mdp.State(strconv.Itoa(r*w.Cols + c))
}

// IsCell reports whether s names a cell on the board, wall or not.
func (w *World) IsCell(s mdp.State) bool {
	n, err := strconv.Atoi(string(s))
	return err == nil && n >= 0 && n < w.Rows*w.Cols
}

func (w *World) ToCoordinates(s0 mdp.State) (int, int) {
	s0n, err := strconv.Atoi(string(s0))
	if err != nil {
		panic(fmt.Sprintf("bad state %q: %v", s0, err))
	}
	if s0n < 0 || s0n >= w.Rows*w.Cols {
		panic("bad state")
	}
	return s0n / w.Cols, s0n % w.Cols
}

func (w *World) cellAt(s mdp.State) cell {
	r, c := w.ToCoordinates(s)
	return w.cells[r][c]
}

func (w *World) IsWall(r, c int) bool {
	return w.cells[r][c].kind == wall
}

// IsExit reports whether s is an exit cell and what exiting it pays.
func (w *World) IsExit(s mdp.State) (float64, bool) {
	if s == TerminalState {
		return 0, false
	}
	cl := w.cellAt(s)
	return cl.reward, cl.kind == exit
}

func (w *World) States() []mdp.State {
	states := []mdp.State{TerminalState}
	for r := 0; r < w.Rows; r++ {
		for c := 0; c < w.Cols; c++ {
			if !w.IsWall(r, c) {
				states = append(states, w.State(r, c))
			}
		}
	}
	return states
}

func (w *World) PossibleActions(s mdp.State) []mdp.Action {
	if s == TerminalState {
		return nil
	}
	if _, ok := w.IsExit(s); ok {
		return []mdp.Action{Exit}
	}
	return []mdp.Action{North, West, South, East}
}

// TransitionStatesAndProbs moves in the intended direction with
// probability 1-Noise and slips to either perpendicular direction with
// Noise/2 each. Moves into walls or off the board stay put.
func (w *World) TransitionStatesAndProbs(s0 mdp.State, action mdp.Action) mdp.Distribution[mdp.State] {
	if s0 == TerminalState {
		return nil
	}
	if _, ok := w.IsExit(s0); ok {
		if action != Exit {
			panic("illegal action " + string(action) + " in exit cell")
		}
		return mdp.Certain(TerminalState)
	}

	left, right := perpendicular(action)
	pdf := mdp.Distribution[mdp.State]{}
	pdf.Add(w.Shift(s0, action), mdp.Probability(1-w.Noise))
	pdf.Add(w.Shift(s0, left), mdp.Probability(w.Noise/2))
	pdf.Add(w.Shift(s0, right), mdp.Probability(w.Noise/2))
	return pdf
}

func (w *World) Reward(s0 mdp.State, a mdp.Action, s1 mdp.State) float64 {
	if s0 == TerminalState {
		return 0
	}
	if r, ok := w.IsExit(s0); ok {
		return r
	}
	return w.LivingReward
}

func (w *World) IsTerminal(s mdp.State) bool {
	return s == TerminalState
}

func perpendicular(action mdp.Action) (mdp.Action, mdp.Action) {
	switch action {
	case North, South:
		return West, East
	case West, East:
		return North, South
	}
	panic("unhandled action: " + string(action))
}

// Shift is the deterministic result of moving from s0.
func (w *World) Shift(s0 mdp.State, action mdp.Action) mdp.State {
	r0, c0 := w.ToCoordinates(s0)

	var r1, c1 int
	switch action {
	case North:
		r1 = r0 - 1
		c1 = c0
	case South:
		r1 = r0 + 1
		c1 = c0
	case East:
		r1 = r0
		c1 = c0 + 1
	case West:
		r1 = r0
		c1 = c0 - 1
	default:
		panic("unhandled action: " + string(action))
	}

	if r1 != w.ClipRow(r1) || c1 != w.ClipCol(c1) || w.IsWall(r1, c1) {
		return s0
	}
	return w.State(r1, c1)
}

func (w *World) ClipRow(r1 int) int {
	if r1 < 0 {
		r1 = 0
	}
	if r1 > w.Rows-1 {
		r1 = w.Rows - 1
	}
	return r1
}

func (w *World) ClipCol(c1 int) int {
	if c1 < 0 {
		c1 = 0
	}
	if c1 > w.Cols-1 {
		c1 = w.Cols - 1
	}
	return c1
}
