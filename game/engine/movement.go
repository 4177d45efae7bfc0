package engine

import "sort"

// FrameFunc observes the grid after each wave of a move resolution.
// The tui uses it for animation frames, the websocket hub for
// broadcasting intermediate states. The grid must not be mutated by
// the observer.
type FrameFunc func(*Grid)

// Resolve runs one player move to completion, wave after wave, until
// no egg can move further. MovesRemaining must already be charged for
// this move; the nest reward reads it as the post-charge budget.
// It returns the number of eggs resolved (fried or nested).
//
// Every coordinate written here was validated by Peek on the same
// call, so Set never sees an out-of-bounds position.
func (gs *GameState) Resolve(dir Direction, frame FrameFunc) int {
	resolved := 0

	active := make([]Position, len(gs.Eggs))
	copy(active, gs.Eggs)

	for len(active) > 0 {
		sortWavefront(active, dir)

		var next []Position
		for _, cur := range active {
			nxt := dir.Next(cur)
			adj, ok := gs.Grid.Peek(nxt)
			if !ok {
				continue // board edge, egg stays put
			}

			switch adj {
			case Floor:
				gs.Grid.Set(nxt, Egg)
				gs.Grid.Set(cur, Floor)
				next = append(next, nxt)
			case Pan:
				// pan cell keeps its identity, egg is gone
				gs.Grid.Set(cur, Floor)
				gs.Score -= PanPenalty
				resolved++
			case EmptyNest:
				gs.Grid.Set(nxt, ClosedNest)
				gs.Grid.Set(cur, Floor)
				gs.Score += NestReward + gs.MovesRemaining
				resolved++
			default:
				// wall, another egg, or an opaque symbol: stop in place
			}
		}

		active = next
		if frame != nil {
			frame(gs.Grid)
		}
	}

	// The grid is authoritative for the next move, independent of the
	// per-wave bookkeeping above.
	gs.Eggs = gs.Grid.FindAll(Egg)

	// Play continues exactly when MovesRemaining-1 is non-zero and
	// eggs remain. The -1 is inherited game behavior: the last
	// budgeted move is never offered. Kept as-is on purpose.
	gs.Terminal = !(gs.MovesRemaining-1 != 0 && len(gs.Eggs) > 0)

	return resolved
}

// sortWavefront orders the active eggs so that within each line of
// motion the egg closest to the direction of travel comes first.
// This ordering is what makes the waves collision-free: a trailing
// egg can never move into a cell its leader has not yet vacated, and
// no two eggs ever share a destination in the same wave.
//
// Key: (orthogonal-axis coordinate, in-line coordinate), ascending
// for a negative-polarity direction, descending for positive.
func sortWavefront(eggs []Position, dir Direction) {
	horizontal := dir.Axis() == Horizontal
	ascending := dir.Polarity() == Negative

	sort.SliceStable(eggs, func(a, b int) bool {
		pa, pb := eggs[a], eggs[b]
		var orthA, lineA, orthB, lineB int
		if horizontal {
			orthA, lineA = pa.Row, pa.Col
			orthB, lineB = pb.Row, pb.Col
		} else {
			orthA, lineA = pa.Col, pa.Row
			orthB, lineB = pb.Col, pb.Row
		}
		if ascending {
			if orthA != orthB {
				return orthA < orthB
			}
			return lineA < lineB
		}
		if orthA != orthB {
			return orthA > orthB
		}
		return lineA > lineB
	})
}
