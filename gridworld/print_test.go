package gridworld

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CodeStranger-Fred/gridagents/mdp"
)

func TestPrintValues(t *testing.T) {
	w := book(t)
	var buf bytes.Buffer
	w.Printer(&buf, false).PrintValues(func(s mdp.State) float64 {
		if s == "7" {
			return -1
		}
		return 0.5
	})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "  00.50|  00.50|  00.50|  00.50|", lines[0])
	assert.Equal(t, "  00.50|  #####|  00.50| -01.00|", lines[1])
}

func TestPrintPolicy(t *testing.T) {
	w := book(t)
	var buf bytes.Buffer
	w.Printer(&buf, false).PrintPolicy(func(s mdp.State) mdp.Action {
		if _, ok := w.IsExit(s); ok {
			return Exit
		}
		return East
	})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, "      >|      >|      >|      x|", lines[0])
}

func TestPrintState(t *testing.T) {
	w := book(t)
	var buf bytes.Buffer
	w.Printer(&buf, false).PrintState(w.Start())
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, "      @|      _|      _|      _|", lines[2])
	assert.Equal(t, "      _|      _|      _|  01.00|", lines[0])
}
