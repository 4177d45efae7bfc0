package leaderboard

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseEntry(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Entry
		wantErr bool
	}{
		{name: "simple", line: "alice - 20", want: Entry{Name: "alice", Score: 20}},
		{name: "negative score", line: "bob - -5", want: Entry{Name: "bob", Score: -5}},
		{name: "separator in name collapses", line: "a - b - 7", want: Entry{Name: "ab", Score: 7}},
		{name: "no separator", line: "alice 20", wantErr: true},
		{name: "non-numeric score", line: "alice - lots", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEntry(tt.line)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q", tt.line)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestParseEntries_SortsAndSkipsBlanks(t *testing.T) {
	entries, err := ParseEntries([]string{"alice - 10", "", "bob - 30", "carol - 10"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := []Entry{{"bob", 30}, {"carol", 10}, {"alice", 10}}
	if len(entries) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(entries))
	}
	for i, e := range entries {
		if e != want[i] {
			t.Errorf("Entry %d: expected %+v, got %+v", i, want[i], e)
		}
	}
}

func TestBoard_Qualifies(t *testing.T) {
	store := NewMemoryStore()
	board, err := NewBoard(store)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !board.Qualifies(-5) {
		t.Error("Any score qualifies on a board with fewer than 10 entries")
	}

	for i := 0; i < Length; i++ {
		if err := board.Submit("player", 10+i); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}

	if board.Qualifies(10) {
		t.Error("Score equal to the minimum must not qualify on a full board")
	}
	if !board.Qualifies(11) {
		t.Error("Score above the minimum must qualify")
	}
}

func TestBoard_SubmitTrimsToLength(t *testing.T) {
	store := NewMemoryStore()
	board, err := NewBoard(store)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for i := 0; i < Length+3; i++ {
		if err := board.Submit("player", i); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}

	entries := board.Entries()
	if len(entries) != Length {
		t.Fatalf("Expected %d entries, got %d", Length, len(entries))
	}
	if entries[0].Score != Length+2 {
		t.Errorf("Expected top score %d, got %d", Length+2, entries[0].Score)
	}
	if entries[Length-1].Score != 3 {
		t.Errorf("Expected lowest kept score 3, got %d", entries[Length-1].Score)
	}

	persisted, err := store.Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(persisted) != Length {
		t.Errorf("Expected %d persisted entries, got %d", Length, len(persisted))
	}
}

func TestBoard_TieBreakByNameDescending(t *testing.T) {
	store := NewMemoryStore(Entry{"alice", 10}, Entry{"zed", 10}, Entry{"mia", 10})
	board, err := NewBoard(store)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	entries := board.Entries()
	wantNames := []string{"zed", "mia", "alice"}
	for i, name := range wantNames {
		if entries[i].Name != name {
			t.Errorf("Position %d: expected %s, got %s", i, name, entries[i].Name)
		}
	}
}

func TestBoard_Render(t *testing.T) {
	store := NewMemoryStore(Entry{"alice", 20}, Entry{"bo", 5})
	board, err := NewBoard(store)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := "" +
		"PLAYER| SCORES\n" +
		"------+-------\n" +
		"alice | 20\n" +
		"bo    | 5\n"
	if got := board.Render(); got != want {
		t.Errorf("Unexpected table:\n%q\nwant:\n%q", got, want)
	}
}

func TestBoard_RenderEmpty(t *testing.T) {
	board, err := NewBoard(NewMemoryStore())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := "" +
		"PLAYER| SCORES\n" +
		"-+-------\n"
	if got := board.Render(); got != want {
		t.Errorf("Unexpected table:\n%q\nwant:\n%q", got, want)
	}
}

const levelFile = `2
5
0.O
#P.
alice - 20
bob - 15
`

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classic.txt")
	if err := os.WriteFile(path, []byte(levelFile), 0644); err != nil {
		t.Fatalf("Failed to write level file: %v", err)
	}

	store := NewFileStore(path)
	entries, err := store.Load()
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}
	if len(entries) != 2 || entries[0].Name != "alice" {
		t.Fatalf("Unexpected entries: %+v", entries)
	}

	board, err := NewBoard(store)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := board.Submit("carol", 25); err != nil {
		t.Fatalf("Failed to submit: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read back: %v", err)
	}
	want := "2\n5\n0.O\n#P.\ncarol - 25\nalice - 20\nbob - 15\n"
	if string(data) != want {
		t.Errorf("Unexpected file contents:\n%q\nwant:\n%q", string(data), want)
	}
}

func TestFileStore_ClearKeepsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classic.txt")
	if err := os.WriteFile(path, []byte(levelFile), 0644); err != nil {
		t.Fatalf("Failed to write level file: %v", err)
	}

	store := NewFileStore(path)
	if err := store.Clear(); err != nil {
		t.Fatalf("Failed to clear: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read back: %v", err)
	}
	want := "2\n5\n0.O\n#P.\n"
	if string(data) != want {
		t.Errorf("Unexpected file contents:\n%q\nwant:\n%q", string(data), want)
	}
}

func TestFileStore_TruncatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.txt")
	if err := os.WriteFile(path, []byte("3\n5\n0.O\n"), 0644); err != nil {
		t.Fatalf("Failed to write level file: %v", err)
	}

	if _, err := NewFileStore(path).Load(); err == nil {
		t.Error("Expected error for truncated level file")
	}
}
