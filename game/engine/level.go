package engine

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ParseLevel reads a level in the plain-text format:
//
//	line 1:        row count R
//	line 2:        move budget M
//	lines 3..2+R:  board rows of equal length
//	remaining:     up to LeaderboardLength "name - score" lines
//
// The parsed level is validated before being returned, so the core
// never receives inconsistent geometry.
func ParseLevel(name string, r io.Reader) (*Level, error) {
	scanner := bufio.NewScanner(r)

	readLine := func(what string) (string, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", fmt.Errorf("failed to read %s: %w", what, err)
			}
			return "", fmt.Errorf("unexpected end of file reading %s", what)
		}
		return scanner.Text(), nil
	}

	rowsLine, err := readLine("row count")
	if err != nil {
		return nil, err
	}
	rows, err := strconv.Atoi(strings.TrimSpace(rowsLine))
	if err != nil {
		return nil, fmt.Errorf("row count must be an integer, got %q", rowsLine)
	}

	movesLine, err := readLine("move budget")
	if err != nil {
		return nil, err
	}
	moves, err := strconv.Atoi(strings.TrimSpace(movesLine))
	if err != nil {
		return nil, fmt.Errorf("move budget must be an integer, got %q", movesLine)
	}

	layout := make([]string, 0, rows)
	for i := 0; i < rows; i++ {
		row, err := readLine(fmt.Sprintf("board row %d", i+1))
		if err != nil {
			return nil, err
		}
		layout = append(layout, row)
	}

	var scoreLines []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		scoreLines = append(scoreLines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leaderboard trailer: %w", err)
	}

	level := &Level{
		Name:       name,
		Rows:       rows,
		Moves:      moves,
		Layout:     layout,
		ScoreLines: scoreLines,
	}

	if err := ValidateLevel(level); err != nil {
		return nil, err
	}

	return level, nil
}

// LoadLevel reads and parses a level file from disk. The level name is
// the file's base name without extension.
func LoadLevel(path string) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	return ParseLevel(name, f)
}

// ValidateLevel checks a level for consistent, playable geometry.
func ValidateLevel(level *Level) error {
	if level == nil {
		return fmt.Errorf("level validation: level is nil")
	}
	if level.Rows < MinRows {
		return fmt.Errorf("level validation: row count must be at least %d, got %d", MinRows, level.Rows)
	}
	if level.Moves < MinMoves {
		return fmt.Errorf("level validation: move budget must be at least %d, got %d", MinMoves, level.Moves)
	}
	if len(level.Layout) != level.Rows {
		return fmt.Errorf("level validation: expected %d board rows, got %d", level.Rows, len(level.Layout))
	}

	width := len([]rune(level.Layout[0]))
	if width < 1 {
		return fmt.Errorf("level validation: board rows must be non-empty")
	}
	for i, row := range level.Layout {
		if len([]rune(row)) != width {
			return fmt.Errorf("level validation: row %d has length %d, expected %d", i+1, len([]rune(row)), width)
		}
	}

	if len(level.ScoreLines) > LeaderboardLength {
		return fmt.Errorf("level validation: leaderboard trailer has %d lines, maximum is %d", len(level.ScoreLines), LeaderboardLength)
	}

	return nil
}

// InitGameStateFromLevel creates a fresh game state for the level.
func InitGameStateFromLevel(level *Level) *GameState {
	grid := NewGrid(level.Layout)

	return &GameState{
		Grid:           grid,
		MovesRemaining: level.Moves,
		Eggs:           grid.FindAll(Egg),
		Score:          0,
		Terminal:       false,
		LevelName:      level.Name,
		Message:        "Roll every egg into a nest. Watch out for the pans!",
		PreviousMoves:  []string{},
		MoveHistory:    []MoveRecord{},
		TotalMoves:     0,
	}
}
