package engine

import (
	"strings"
	"testing"
)

const sampleLevel = `3
5
#0.
.O#
P..
alice - 20
bob - 15
`

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("sample", strings.NewReader(sampleLevel))
	if err != nil {
		t.Fatalf("Unexpected parse error: %v", err)
	}

	if level.Rows != 3 {
		t.Errorf("Expected 3 rows, got %d", level.Rows)
	}
	if level.Moves != 5 {
		t.Errorf("Expected move budget 5, got %d", level.Moves)
	}
	if len(level.Layout) != 3 || level.Layout[1] != ".O#" {
		t.Errorf("Unexpected layout: %v", level.Layout)
	}
	if len(level.ScoreLines) != 2 || level.ScoreLines[0] != "alice - 20" {
		t.Errorf("Unexpected score lines: %v", level.ScoreLines)
	}
}

func TestParseLevel_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"non-integer row count", "x\n5\n..\n..\n"},
		{"non-integer move budget", "2\nfive\n..\n..\n"},
		{"missing board rows", "3\n5\n..\n"},
		{"row length mismatch", "2\n5\n...\n..\n"},
		{"empty file", ""},
		{"zero rows", "0\n5\n"},
		{"zero moves", "1\n0\n..\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := ParseLevel("bad", strings.NewReader(test.input)); err == nil {
				t.Errorf("Expected error for %s", test.name)
			}
		})
	}
}

func TestParseLevel_TrailerTooLong(t *testing.T) {
	var b strings.Builder
	b.WriteString("1\n5\n...\n")
	for i := 0; i < LeaderboardLength+1; i++ {
		b.WriteString("p - 1\n")
	}

	if _, err := ParseLevel("bad", strings.NewReader(b.String())); err == nil {
		t.Error("Expected error for oversized leaderboard trailer")
	}
}

func TestParseLevel_SkipsBlankTrailerLines(t *testing.T) {
	level, err := ParseLevel("sample", strings.NewReader("1\n3\n0.O\n\nalice - 7\n\n"))
	if err != nil {
		t.Fatalf("Unexpected parse error: %v", err)
	}
	if len(level.ScoreLines) != 1 {
		t.Errorf("Expected one score line, got %v", level.ScoreLines)
	}
}

func TestLevelRenderRoundTrip(t *testing.T) {
	level, err := ParseLevel("sample", strings.NewReader(sampleLevel))
	if err != nil {
		t.Fatalf("Unexpected parse error: %v", err)
	}

	state := InitGameStateFromLevel(level)

	want := strings.Join(level.Layout, "\n")
	if got := state.Grid.Render(); got != want {
		t.Errorf("Render round trip mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestInitGameStateFromLevel(t *testing.T) {
	level := &Level{Name: "init", Rows: 2, Moves: 7, Layout: []string{"0.0", "..0"}}

	state := InitGameStateFromLevel(level)

	if state.MovesRemaining != 7 {
		t.Errorf("Expected 7 moves, got %d", state.MovesRemaining)
	}
	if len(state.Eggs) != 3 {
		t.Errorf("Expected 3 eggs, got %d", len(state.Eggs))
	}
	if state.Terminal {
		t.Error("Expected fresh state to be non-terminal")
	}
	if state.Score != 0 {
		t.Errorf("Expected score 0, got %d", state.Score)
	}
	if state.LevelName != "init" {
		t.Errorf("Expected level name carried over, got %q", state.LevelName)
	}
}

func TestValidateLevel(t *testing.T) {
	valid := &Level{Name: "ok", Rows: 1, Moves: 1, Layout: []string{"0O"}}
	if err := ValidateLevel(valid); err != nil {
		t.Errorf("Expected valid level, got %v", err)
	}

	if err := ValidateLevel(nil); err == nil {
		t.Error("Expected error for nil level")
	}

	mismatch := &Level{Name: "bad", Rows: 2, Moves: 1, Layout: []string{"0O"}}
	if err := ValidateLevel(mismatch); err == nil {
		t.Error("Expected error for row count mismatch")
	}
}
