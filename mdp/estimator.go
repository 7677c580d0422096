package mdp

// Values maps states to estimated returns. Missing states read as zero.
type Values map[State]float64

func (v Values) Value(s State) float64 {
	return v[s]
}

func (v Values) Copy() Values {
	out := make(Values, len(v))
	for s, x := range v {
		out[s] = x
	}
	return out
}

// QValues maps state/action pairs to estimated returns. Reading an unseen
// pair yields zero and does not allocate.
type QValues map[State]map[Action]float64

func (q QValues) Get(s State, a Action) float64 {
	return q[s][a]
}

func (q QValues) Set(s State, a Action, v float64) {
	row, ok := q[s]
	if !ok {
		row = make(map[Action]float64)
		q[s] = row
	}
	row[a] = v
}

func (q QValues) Argmax(s State, actions []Action) (Action, float64) {
	return Argmax(actions, func(a Action) float64 { return q.Get(s, a) })
}

// Argmax scores actions in order and keeps the first best one. With no
// actions it returns NoAction and zero.
func Argmax(actions []Action, score func(Action) float64) (Action, float64) {
	if len(actions) == 0 {
		return NoAction, 0
	}
	bestA := actions[0]
	bestV := score(bestA)
	for _, a := range actions[1:] {
		if v := score(a); v > bestV {
			bestV = v
			bestA = a
		}
	}
	return bestA, bestV
}
