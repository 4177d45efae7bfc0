package session

import (
	"errors"
	"fmt"
	"testing"

	"github.com/eggroll-game/eggroll/game/engine"
	"github.com/eggroll-game/eggroll/game/service"
)

// stubLevels is a minimal in-memory service.LevelManager for tests.
type stubLevels struct {
	level *engine.Level
}

func (s *stubLevels) Load(name string) (*engine.Level, error) {
	if name != s.level.Name {
		return nil, fmt.Errorf("level %q not found", name)
	}
	return s.level, nil
}

func (s *stubLevels) List() ([]*service.LevelInfo, error) {
	return []*service.LevelInfo{{LevelID: s.level.Name, Name: s.level.Name}}, nil
}

func (s *stubLevels) Default() *engine.Level { return s.level }
func (s *stubLevels) Path(name string) string { return name + ".txt" }
func (s *stubLevels) Refresh() error          { return nil }

func newFilePersistence(t *testing.T) *FilePersistence {
	t.Helper()
	fp, err := NewFilePersistence(t.TempDir(), &stubLevels{level: testLevel()})
	if err != nil {
		t.Fatalf("Failed to create persistence: %v", err)
	}
	return fp
}

func TestFilePersistence_SaveLoadRoundTrip(t *testing.T) {
	fp := newFilePersistence(t)
	m := NewManagerWithPersistence(fp)

	sess, err := m.Create("ab12", testLevel())
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	// Advance the game so the persisted state is non-trivial
	if rec := sess.Engine.Move(engine.Right, nil); rec == nil {
		t.Fatal("Expected the move to be accepted")
	}
	if err := m.Save("ab12"); err != nil {
		t.Fatalf("Failed to save session: %v", err)
	}

	loaded, err := fp.Load("ab12")
	if err != nil {
		t.Fatalf("Failed to load session: %v", err)
	}

	wantState := sess.Engine.GetState()
	gotState := loaded.Engine.GetState()

	if gotState.Grid.Render() != wantState.Grid.Render() {
		t.Errorf("Board mismatch:\n%s\nwant:\n%s", gotState.Grid.Render(), wantState.Grid.Render())
	}
	if gotState.Score != wantState.Score {
		t.Errorf("Expected score %d, got %d", wantState.Score, gotState.Score)
	}
	if gotState.MovesRemaining != wantState.MovesRemaining {
		t.Errorf("Expected %d moves remaining, got %d", wantState.MovesRemaining, gotState.MovesRemaining)
	}
	if gotState.Terminal != wantState.Terminal {
		t.Errorf("Expected terminal=%v, got %v", wantState.Terminal, gotState.Terminal)
	}
	if len(gotState.Eggs) != len(wantState.Eggs) {
		t.Errorf("Expected %d eggs, got %d", len(wantState.Eggs), len(gotState.Eggs))
	}
	if len(gotState.MoveHistory) != 1 {
		t.Errorf("Expected 1 history entry, got %d", len(gotState.MoveHistory))
	}
	if len(gotState.PreviousMoves) != 1 || gotState.PreviousMoves[0] != "→" {
		t.Errorf("Expected previous moves [→], got %v", gotState.PreviousMoves)
	}
}

func TestFilePersistence_LoadMissing(t *testing.T) {
	fp := newFilePersistence(t)

	if _, err := fp.Load("none"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestFilePersistence_DeleteAndListAll(t *testing.T) {
	fp := newFilePersistence(t)
	m := NewManagerWithPersistence(fp)

	if _, err := m.Create("ab12", testLevel()); err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	if _, err := m.Create("cd34", testLevel()); err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	ids, err := fp.ListAll()
	if err != nil {
		t.Fatalf("Failed to list sessions: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("Expected 2 persisted sessions, got %d", len(ids))
	}

	if err := fp.Delete("ab12"); err != nil {
		t.Fatalf("Failed to delete: %v", err)
	}
	if fp.Exists("ab12") {
		t.Error("Expected session file to be gone")
	}
	if err := fp.Delete("ab12"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestManager_GetFallsBackToPersistence(t *testing.T) {
	fp := newFilePersistence(t)
	m := NewManagerWithPersistence(fp)

	if _, err := m.Create("ab12", testLevel()); err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	// A fresh manager sharing the same persistence must find it
	m2 := NewManagerWithPersistence(fp)
	sess, err := m2.Get("ab12")
	if err != nil {
		t.Fatalf("Failed to load through persistence: %v", err)
	}
	if sess.ID != "ab12" {
		t.Errorf("Expected session ab12, got %s", sess.ID)
	}
	if m2.Count() != 1 {
		t.Errorf("Expected the loaded session to be cached, got count %d", m2.Count())
	}
}

func TestManager_LoadPersistedSessions(t *testing.T) {
	fp := newFilePersistence(t)
	m := NewManagerWithPersistence(fp)

	if _, err := m.Create("ab12", testLevel()); err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	m2 := NewManagerWithPersistence(fp)
	if err := m2.LoadPersistedSessions(); err != nil {
		t.Fatalf("Failed to load persisted sessions: %v", err)
	}
	if m2.Count() != 1 {
		t.Errorf("Expected 1 loaded session, got %d", m2.Count())
	}
}
