package ready

// Cycle extracts one dependency loop from a deadlocked graph. It returns
// nil when [Graph.Deadlocked] is false.
//
// The walk starts at an arbitrary blocked task and follows one unresolved
// dependency per step until it revisits a task; everything from that first
// revisit onward is the loop. The result starts and ends with the same
// task, and each task in it depends on the one that follows. Which loop is
// found, and at which member it starts, is unspecified.
//
// The walk can also run aground on a planned task that has no unresolved
// dependencies of its own. The graph still counts as deadlocked, but no
// loop is reachable from the chosen start, and Cycle returns nil. Cost is
// proportional to the length of the walk.
func (g *Graph[T]) Cycle() []T {
	if !g.Deadlocked() {
		return nil
	}

	var cur *node[T]
	for _, n := range g.blocked {
		cur = n
		break
	}

	index := make(map[*node[T]]int)
	var path []*node[T]
	for {
		if at, seen := index[cur]; seen {
			loop := path[at:]
			cycle := make([]T, 0, len(loop)+1)
			for _, n := range loop {
				cycle = append(cycle, n.task)
			}
			return append(cycle, cur.task)
		}
		index[cur] = len(path)
		path = append(path, cur)

		var next *node[T]
		for _, d := range cur.ins {
			next = d
			break
		}
		if next == nil {
			return nil
		}
		cur = next
	}
}
