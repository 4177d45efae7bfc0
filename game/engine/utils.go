package engine

// CountCellType counts the cells of a given symbol in the grid.
func CountCellType(grid *Grid, cell Cell) int {
	return len(grid.FindAll(cell))
}

// CountLayoutCell counts occurrences of a symbol in raw layout rows,
// without building a Grid. Used by the analysis tooling.
func CountLayoutCell(layout []string, cell Cell) int {
	count := 0
	for _, row := range layout {
		for _, ch := range row {
			if Cell(string(ch)) == cell {
				count++
			}
		}
	}
	return count
}

// StraightLineResolvable reports whether the egg at pos would resolve
// (reach a nest or a pan) when pushed in dir with nothing else on the
// board moving. A coarse heuristic for the analyze tool, not game
// logic: other eggs are treated as obstacles frozen in place.
func StraightLineResolvable(grid *Grid, pos Position, dir Direction) bool {
	cur := pos
	for {
		nxt := dir.Next(cur)
		adj, ok := grid.Peek(nxt)
		if !ok {
			return false
		}
		switch adj {
		case Floor:
			cur = nxt
		case Pan, EmptyNest:
			return true
		default:
			return false
		}
	}
}

// ResolvableEggs counts eggs that some single straight push would
// resolve. Levels where this is zero need multi-move setups.
func ResolvableEggs(grid *Grid) int {
	count := 0
	for _, egg := range grid.FindAll(Egg) {
		for _, dir := range []Direction{Left, Right, Forward, Back} {
			if StraightLineResolvable(grid, egg, dir) {
				count++
				break
			}
		}
	}
	return count
}
