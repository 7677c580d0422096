package search

import "fmt"

// GraphSearch expands states in whatever order frontier yields them.
// Entries for states that were expanded after being pushed stay in the
// frontier and are skipped when popped.
func GraphSearch[S comparable, A any](problem Problem[S, A], frontier Frontier[Node[S, A]]) ([]A, error) {
	visited := make(map[S]struct{})
	frontier.Push(Node[S, A]{State: problem.StartState(), Path: []A{}})

	for !frontier.IsEmpty() {
		current := frontier.Pop()
		if _, ok := visited[current.State]; ok {
			continue
		}
		if problem.IsGoalState(current.State) {
			return current.Path, nil
		}
		visited[current.State] = struct{}{}

		for _, succ := range problem.Successors(current.State) {
			if _, ok := visited[succ.State]; ok {
				continue
			}
			frontier.Push(Node[S, A]{State: succ.State, Path: extend(current.Path, succ.Action)})
		}
	}
	return nil, ErrNoPath
}

// DepthFirst searches the deepest nodes first.
func DepthFirst[S comparable, A any](problem Problem[S, A]) ([]A, error) {
	return GraphSearch(problem, &Stack[Node[S, A]]{})
}

// BreadthFirst searches the shallowest nodes first. With uniform step costs
// the returned path has the fewest actions.
func BreadthFirst[S comparable, A any](problem Problem[S, A]) ([]A, error) {
	return GraphSearch(problem, &Queue[Node[S, A]]{})
}

// UniformCost searches the node of least cumulative cost first.
func UniformCost[S comparable, A any](problem Problem[S, A]) ([]A, error) {
	frontier := NewPriorityQueue[Node[S, A], S]()
	visited := make(map[S]struct{})
	costs := make(map[S]float64)

	start := problem.StartState()
	costs[start] = 0
	frontier.Push(Node[S, A]{State: start, Path: []A{}}, start, 0)

	for !frontier.IsEmpty() {
		current := frontier.Pop()
		if _, ok := visited[current.State]; ok {
			continue
		}
		if problem.IsGoalState(current.State) {
			return current.Path, nil
		}
		visited[current.State] = struct{}{}
		cost := costs[current.State]

		for _, succ := range problem.Successors(current.State) {
			candidate := cost + succ.Cost
			next := Node[S, A]{State: succ.State, Path: extend(current.Path, succ.Action), Cost: candidate}

			known, seen := costs[succ.State]
			switch {
			case !seen:
				frontier.Push(next, succ.State, candidate)
			case known > candidate:
				frontier.Update(next, succ.State, candidate)
			default:
				continue
			}
			costs[succ.State] = candidate
		}
	}
	return nil, ErrNoPath
}

// AStar searches the node with the lowest cost plus heuristic first. A nil
// heuristic means NullHeuristic. The result is optimal only when the
// heuristic never overestimates.
func AStar[S comparable, A any](problem Problem[S, A], heuristic Heuristic[S, A]) ([]A, error) {
	if heuristic == nil {
		heuristic = NullHeuristic[S, A]
	}
	frontier := NewPriorityQueue[Node[S, A], S]()
	closed := make(map[S]struct{})

	start := problem.StartState()
	frontier.Push(Node[S, A]{State: start, Path: []A{}}, start, heuristic(start, problem))

	for !frontier.IsEmpty() {
		current := frontier.Pop()
		if problem.IsGoalState(current.State) {
			return current.Path, nil
		}
		if _, ok := closed[current.State]; ok {
			continue
		}
		closed[current.State] = struct{}{}

		for _, succ := range problem.Successors(current.State) {
			g := current.Cost + succ.Cost
			next := Node[S, A]{State: succ.State, Path: extend(current.Path, succ.Action), Cost: g}
			frontier.Push(next, succ.State, g+heuristic(succ.State, problem))
		}
	}
	return nil, ErrNoPath
}

// Func is the shape shared by every search in this package once a heuristic
// has been bound.
type Func[S comparable, A any] func(problem Problem[S, A]) ([]A, error)

// Lookup resolves the short algorithm names dfs, bfs, ucs and astar. The
// heuristic is only used by astar.
func Lookup[S comparable, A any](name string, heuristic Heuristic[S, A]) (Func[S, A], error) {
	switch name {
	case "dfs", "depthFirstSearch":
		return DepthFirst[S, A], nil
	case "bfs", "breadthFirstSearch":
		return BreadthFirst[S, A], nil
	case "ucs", "uniformCostSearch":
		return UniformCost[S, A], nil
	case "astar", "aStarSearch":
		return func(problem Problem[S, A]) ([]A, error) {
			return AStar(problem, heuristic)
		}, nil
	}
	return nil, fmt.Errorf("search: unknown algorithm %q (want one of %v)", name, Algorithms())
}

func Algorithms() []string {
	return []string{"dfs", "bfs", "ucs", "astar"}
}
