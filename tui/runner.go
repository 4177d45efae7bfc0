package tui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/eggroll-game/eggroll/game/engine"
	"github.com/eggroll-game/eggroll/game/leaderboard"
)

// Runner drives an interactive game session over the given reader
// and writer. Tick is the delay between animation frames; zero
// disables the delay, which tests rely on.
type Runner struct {
	In   io.Reader
	Out  io.Writer
	Tick time.Duration

	// ClearScreen emits ANSI clear codes before each frame. Leave it
	// off when Out is not a terminal.
	ClearScreen bool
}

func NewRunner(in io.Reader, out io.Writer, tick time.Duration) *Runner {
	return &Runner{In: in, Out: out, Tick: tick}
}

// Run plays the engine's level to completion. Invalid input never
// charges a move; "quit" leaves the game without a leaderboard
// evaluation. A nil board skips the leaderboard flow entirely.
func (r *Runner) Run(eng *engine.GameEngine, board *leaderboard.Board) error {
	scanner := bufio.NewScanner(r.In)
	quit := false

	for eng.CanAccept() {
		r.display(eng.GetState())
		fmt.Fprint(r.Out, "Enter a move: ")

		if !scanner.Scan() {
			quit = true
			break
		}
		input := scanner.Text()

		if engine.IsQuit(input) {
			quit = true
			break
		}

		dir, err := engine.ParseDirection(input)
		if err != nil {
			continue
		}

		eng.Move(dir, func(g *engine.Grid) {
			r.displayWave(g)
		})
	}

	r.display(eng.GetState())

	if board != nil {
		if !quit && eng.IsTerminal() && board.Qualifies(eng.GetScore()) {
			if err := r.recordScore(scanner, board, eng.GetScore()); err != nil {
				fmt.Fprintf(r.Out, "Could not save score: %v\n", err)
			}
		}
		r.leaderboardPrompt(scanner, eng.GetState(), board)
	}

	return scanner.Err()
}

func (r *Runner) recordScore(scanner *bufio.Scanner, board *leaderboard.Board, score int) error {
	fmt.Fprint(r.Out, "Please input your name: ")
	if !scanner.Scan() {
		return nil
	}
	name := strings.TrimSpace(scanner.Text())
	if name == "" {
		return nil
	}
	return board.Submit(name, score)
}

func (r *Runner) leaderboardPrompt(scanner *bufio.Scanner, state *engine.GameState, board *leaderboard.Board) {
	for {
		r.display(state)
		fmt.Fprint(r.Out, "Show leaderboard? [Y/n/clear]: ")

		if !scanner.Scan() {
			return
		}

		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "y":
			r.clear()
			fmt.Fprintf(r.Out, "TOP %d SCORES\n\n", leaderboard.Length)
			fmt.Fprint(r.Out, board.Render())
			fmt.Fprintln(r.Out)
			return
		case "n":
			return
		case "clear":
			if err := board.Clear(); err != nil {
				fmt.Fprintf(r.Out, "Could not clear leaderboard: %v\n", err)
			}
			return
		default:
			r.clear()
		}
	}
}

// display shows the grid followed by the stats block, then holds the
// frame for one tick.
func (r *Runner) display(state *engine.GameState) {
	r.clear()
	fmt.Fprintln(r.Out, state.Grid.Render())
	fmt.Fprintf(r.Out, "Previous Moves: %s\n", strings.Join(state.PreviousMoves, ""))
	fmt.Fprintf(r.Out, "Remaining Moves: %d\n", state.MovesRemaining)
	fmt.Fprintf(r.Out, "Points: %d\n", state.Score)
	r.sleep()
}

// displayWave shows one mid-move animation frame without the stats.
func (r *Runner) displayWave(g *engine.Grid) {
	r.clear()
	fmt.Fprintln(r.Out, g.Render())
	r.sleep()
}

func (r *Runner) clear() {
	if r.ClearScreen {
		fmt.Fprint(r.Out, "\033[2J\033[H")
	}
}

func (r *Runner) sleep() {
	if r.Tick > 0 {
		time.Sleep(r.Tick)
	}
}
