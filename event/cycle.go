package event

import "fmt"

// Visitation states for the cycle check.
const (
	white = iota // not visited yet
	gray         // on the current DFS path
	black        // fully explored
)

// CheckAcyclic verifies that the mother→daughter relation of the view is a
// forest-like DAG by depth-first search with three-colour marking: reaching a
// gray vertex again is a back edge, hence a cycle.
//
// Roots are tried in member order so the reported path is deterministic.
//
// Errors:
//   - ErrCycleDetected wrapped with the offending path (mother first).
//
// Complexity: O(V + E) time, O(V) memory.
func (v *View) CheckAcyclic() error {
	state := make(map[Handle]int, len(v.members))
	path := make([]Handle, 0, len(v.members))

	for _, h := range v.members {
		if state[h] != white {
			continue
		}
		if cyc := v.visit(h, state, &path); cyc != nil {
			return fmt.Errorf("view %q: %w: %v", v.Name, ErrCycleDetected, cyc)
		}
	}

	return nil
}

// visit explores the daughters of h and returns the closed cycle on the first
// back edge, or nil.
func (v *View) visit(h Handle, state map[Handle]int, path *[]Handle) []Handle {
	state[h] = gray
	*path = append(*path, h)

	for _, d := range v.daughters[h] {
		switch state[d] {
		case white:
			if cyc := v.visit(d, state, path); cyc != nil {
				return cyc
			}
		case gray:
			// back edge: slice the path from d and close the loop
			idx := indexOf(*path, d)
			cyc := append([]Handle(nil), (*path)[idx:]...)

			return append(cyc, d)
		}
	}

	*path = (*path)[:len(*path)-1]
	state[h] = black

	return nil
}

func indexOf(s []Handle, h Handle) int {
	for i, x := range s {
		if x == h {
			return i
		}
	}

	return -1
}
