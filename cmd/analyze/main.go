// Command analyze prints quick, human-readable heuristics about level
// files in the project's levels directory. It summarizes dimensions,
// the move budget, egg/nest/pan counts, and highlights eggs that no
// straight-line roll can put into a nest.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/eggroll-game/eggroll/game/engine"
)

func main() {
	levelDir := "levels"
	if len(os.Args) > 1 {
		levelDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(levelDir, "*.txt"))
	if err != nil || len(files) == 0 {
		fmt.Printf("No level files found in %s\n", levelDir)
		os.Exit(1)
	}

	for _, file := range files {
		fmt.Printf("\n=== Analyzing %s ===\n", filepath.Base(file))
		analyzeLevel(file)
	}
}

func analyzeLevel(path string) {
	level, err := engine.LoadLevel(path)
	if err != nil {
		fmt.Printf("Error loading level: %v\n", err)
		return
	}

	grid := engine.NewGrid(level.Layout)

	eggs := engine.CountCellType(grid, engine.Egg)
	nests := engine.CountCellType(grid, engine.EmptyNest)
	pans := engine.CountCellType(grid, engine.Pan)
	closed := engine.CountCellType(grid, engine.ClosedNest)

	fmt.Printf("Name: %s\n", level.Name)
	fmt.Printf("Grid Size: %d x %d\n", grid.Rows(), grid.Cols())
	fmt.Printf("Move Budget: %d\n", level.Moves)
	fmt.Printf("Eggs: %d\n", eggs)
	fmt.Printf("Open Nests: %d\n", nests)
	fmt.Printf("Pans: %d\n", pans)
	if closed > 0 {
		fmt.Printf("Closed Nests: %d\n", closed)
	}

	if eggs == 0 {
		fmt.Printf("⚠️  WARNING: level has no eggs, nothing to play\n")
		return
	}

	fmt.Printf("Nests per Egg: %.2f\n", float64(nests)/float64(eggs))
	if nests < eggs {
		fmt.Printf("⚠️  WARNING: %d eggs but only %d open nests, a perfect clear is impossible\n", eggs, nests)
	}

	// Eggs with at least one single-move path into a nest
	resolvable := engine.ResolvableEggs(grid)
	fmt.Printf("Straight-line Resolvable Eggs: %d/%d\n", resolvable, eggs)

	switch {
	case resolvable == 0:
		fmt.Printf("⚠️  WARNING: no egg can reach a nest in a single move, the level needs multi-move setups\n")
	case resolvable == eggs && level.Moves >= eggs:
		fmt.Printf("✅ Every egg has a one-move path to a nest\n")
	default:
		fmt.Printf("✅ %d of %d eggs have a one-move path to a nest\n", resolvable, eggs)
	}
}
