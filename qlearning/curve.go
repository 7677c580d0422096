package qlearning

// Curve is the per-episode return of one configuration, averaged over runs.
type Curve struct {
	Name    string
	Returns []float64
}

// RunRepeatedly calls train once per run and averages the returns episode
// by episode. Each call should build a fresh agent so runs do not share
// state. Runs that stop early contribute only the episodes they have.
func RunRepeatedly(name string, runs int, train func(run int) []float64) Curve {
	var sums []float64
	var counts []int
	for i := 0; i < runs; i++ {
		for t, g := range train(i) {
			if t >= len(sums) {
				sums = append(sums, 0)
				counts = append(counts, 0)
			}
			sums[t] += g
			counts[t]++
		}
	}

	avg := make([]float64, len(sums))
	for t := range sums {
		avg[t] = sums[t] / float64(counts[t])
	}
	return Curve{Name: name, Returns: avg}
}
