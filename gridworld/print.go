package gridworld

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"

	"github.com/CodeStranger-Fred/gridagents/mdp"
)

// Printer draws a World to a terminal, one fixed-width column per cell.
type Printer struct {
	world *World
	out   io.Writer
	au    aurora.Aurora
}

func (w *World) Printer(out io.Writer, colors bool) *Printer {
	return &Printer{world: w, out: out, au: aurora.NewAurora(colors)}
}

var arrows = map[mdp.Action]string{
	North:        "^",
	South:        "v",
	East:         ">",
	West:         "<",
	Exit:         "x",
	mdp.NoAction: ".",
}

// PrintState marks the agent's cell.
func (p *Printer) PrintState(current mdp.State) {
	p.grid(func(s mdp.State) aurora.Value {
		if s == current {
			return p.au.Green(fmt.Sprintf("%7s", "@"))
		}
		if r, ok := p.world.IsExit(s); ok {
			return p.exitColor(r, fmt.Sprintf("%7s", format2x2(r)))
		}
		return p.au.Blue(fmt.Sprintf("%7s", "_"))
	})
}

func (p *Printer) PrintValues(value func(mdp.State) float64) {
	p.grid(func(s mdp.State) aurora.Value {
		v := value(s)
		if _, ok := p.world.IsExit(s); ok {
			return p.exitColor(v, format2x2(v))
		}
		return p.au.Blue(format2x2(v))
	})
}

func (p *Printer) PrintPolicy(policy func(mdp.State) mdp.Action) {
	p.grid(func(s mdp.State) aurora.Value {
		arrow, ok := arrows[policy(s)]
		if !ok {
			arrow = "?"
		}
		if r, exitCell := p.world.IsExit(s); exitCell {
			return p.exitColor(r, fmt.Sprintf("%7s", arrow))
		}
		return p.au.Blue(fmt.Sprintf("%7s", arrow))
	})
}

func (p *Printer) exitColor(r float64, text string) aurora.Value {
	if r < 0 {
		return p.au.Red(text)
	}
	return p.au.Green(text)
}

func (p *Printer) grid(render func(mdp.State) aurora.Value) {
	w := p.world
	for r := 0; r < w.Rows; r++ {
		for c := 0; c < w.Cols; c++ {
			if w.IsWall(r, c) {
				fmt.Fprint(p.out, p.au.Gray(12, fmt.Sprintf("%7s", "#####")))
			} else {
				fmt.Fprint(p.out, render(w.State(r, c)))
			}
			fmt.Fprint(p.out, p.au.White("|"))
		}
		fmt.Fprintln(p.out)
	}
}

func format2x2(x float64) string {
	if x < 0 {
		return " -" + fmt.Sprintf("%05.2f", -x)
	}
	return fmt.Sprintf("  %05.2f", x)
}
