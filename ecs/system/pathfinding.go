package system

import (
	"container/heap"
	"math"

	"github.com/milk9111/zompocalypse/ecs/component"
)

const (
	straightCost = 1.0
	diagonalCost = 1.414
)

// Orthogonal steps first, then diagonals. Expansion order decides which of
// two equal-cost parents a cell keeps.
var pathDirections = [8]component.Cell{
	{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0},
	{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1},
}

// FindPath runs A* over grid from start to goal, both clamped into the grid.
// The result includes both endpoints and is empty when either endpoint is
// blocked or the goal is unreachable.
//
// The Manhattan heuristic overestimates diagonal moves, so the returned path
// is not guaranteed to be the cheapest one.
func FindPath(start, goal component.Cell, grid *component.Grid) []component.Cell {
	if grid == nil || grid.Width <= 0 || grid.Height <= 0 {
		return nil
	}

	start = grid.ClampCell(start)
	goal = grid.ClampCell(goal)
	if grid.Blocked(start) || grid.Blocked(goal) {
		return nil
	}

	gridW := grid.Width
	size := gridW * grid.Height
	index := func(c component.Cell) int { return c.Y*gridW + c.X }

	cameFrom := make([]int, size)
	for i := range cameFrom {
		cameFrom[i] = -1
	}
	closed := make([]bool, size)
	inOpen := make([]*openItem, size)

	open := &openSet{}
	heap.Init(open)

	seq := 0
	push := func(c component.Cell, g float64) *openItem {
		item := &openItem{pos: c, g: g, f: g + heuristic(c, goal), seq: seq}
		seq++
		heap.Push(open, item)
		inOpen[index(c)] = item
		return item
	}
	push(start, 0)

	startIdx := index(start)
	goalIdx := index(goal)

	for open.Len() > 0 {
		current := heap.Pop(open).(*openItem)
		curIdx := index(current.pos)
		inOpen[curIdx] = nil

		if curIdx == goalIdx {
			return reconstructPath(cameFrom, gridW, startIdx, goalIdx)
		}
		closed[curIdx] = true

		for i, d := range pathDirections {
			n := component.Cell{X: current.pos.X + d.X, Y: current.pos.Y + d.Y}
			if !grid.InBounds(n) || grid.Blocked(n) {
				continue
			}
			idx := index(n)
			if closed[idx] {
				continue
			}

			cost := straightCost
			if i >= 4 {
				cost = diagonalCost
			}
			g := current.g + cost

			if existing := inOpen[idx]; existing != nil {
				if g < existing.g {
					existing.g = g
					existing.f = g + heuristic(n, goal)
					existing.seq = seq
					seq++
					heap.Fix(open, existing.index)
					cameFrom[idx] = curIdx
				}
				continue
			}

			push(n, g)
			cameFrom[idx] = curIdx
		}
	}

	return nil
}

func reconstructPath(cameFrom []int, gridW int, startIdx, goalIdx int) []component.Cell {
	path := make([]component.Cell, 0, 32)
	cur := goalIdx
	for cur != -1 {
		path = append(path, component.Cell{X: cur % gridW, Y: cur / gridW})
		if cur == startIdx {
			break
		}
		cur = cameFrom[cur]
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func heuristic(a, b component.Cell) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y))
}

// PathCost sums the step costs along a path.
func PathCost(path []component.Cell) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		dx := path[i].X - path[i-1].X
		dy := path[i].Y - path[i-1].Y
		if dx != 0 && dy != 0 {
			total += diagonalCost
		} else {
			total += straightCost
		}
	}
	return total
}

type openItem struct {
	pos   component.Cell
	f     float64
	g     float64
	seq   int
	index int
}

// openSet orders by f, then by insertion so equal-f cells pop first in first out.
type openSet []*openItem

func (o openSet) Len() int { return len(o) }
func (o openSet) Less(i, j int) bool {
	if o[i].f != o[j].f {
		return o[i].f < o[j].f
	}
	return o[i].seq < o[j].seq
}
func (o openSet) Swap(i, j int) {
	o[i], o[j] = o[j], o[i]
	o[i].index = i
	o[j].index = j
}
func (o *openSet) Push(x any) {
	item := x.(*openItem)
	item.index = len(*o)
	*o = append(*o, item)
}
func (o *openSet) Pop() any {
	old := *o
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*o = old[:n-1]
	return item
}
