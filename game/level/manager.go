package level

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/eggroll-game/eggroll/game/engine"
	"github.com/eggroll-game/eggroll/game/service"
)

var (
	ErrLevelNotFound = errors.New("level not found")
	ErrInvalidLevel  = errors.New("invalid level")
)

// Manager handles level loading and caching
type Manager struct {
	levelDir     string
	defaultLevel *engine.Level
	levels       map[string]*engine.Level
	mu           sync.RWMutex
}

// NewManager creates a new level manager
func NewManager(levelDir string) (*Manager, error) {
	if _, err := os.Stat(levelDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("level directory does not exist: %s", levelDir)
	}

	m := &Manager{
		levelDir: levelDir,
		levels:   make(map[string]*engine.Level),
	}

	if err := m.loadDefaultLevel(); err != nil {
		return nil, fmt.Errorf("failed to load default level: %w", err)
	}

	return m, nil
}

// Load loads a level by name
func (m *Manager) Load(name string) (*engine.Level, error) {
	m.mu.RLock()
	// Check cache first
	if level, exists := m.levels[name]; exists {
		m.mu.RUnlock()
		return level, nil
	}
	m.mu.RUnlock()

	// Load from file
	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if level, exists := m.levels[name]; exists {
		return level, nil
	}

	path := m.pathFor(name)

	level, err := engine.LoadLevel(path)
	if err != nil {
		if os.IsNotExist(err) || errors.Is(err, os.ErrNotExist) {
			return nil, ErrLevelNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidLevel, err)
	}

	m.levels[name] = level
	return level, nil
}

// Path returns the file path a level name resolves to. The file is the
// persistence target for the level's leaderboard trailer.
func (m *Manager) Path(name string) string {
	return m.pathFor(name)
}

func (m *Manager) pathFor(name string) string {
	filename := name
	if !strings.HasSuffix(filename, ".txt") {
		filename = name + ".txt"
	}
	return filepath.Join(m.levelDir, filename)
}

// List returns information about all available levels
func (m *Manager) List() ([]*service.LevelInfo, error) {
	entries, err := os.ReadDir(m.levelDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read level directory: %w", err)
	}

	var levels []*service.LevelInfo

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".txt")

		level, err := m.Load(name)
		if err != nil {
			// Skip files that do not parse as levels
			continue
		}

		cols := 0
		if len(level.Layout) > 0 {
			cols = len([]rune(level.Layout[0]))
		}

		levels = append(levels, &service.LevelInfo{
			Filename: entry.Name(),
			LevelID:  name,
			Name:     level.Name,
			Rows:     level.Rows,
			Cols:     cols,
			Moves:    level.Moves,
			Eggs:     engine.CountLayoutCell(level.Layout, engine.Egg),
			Nests:    engine.CountLayoutCell(level.Layout, engine.EmptyNest),
		})
	}

	return levels, nil
}

// Default returns the default level
func (m *Manager) Default() *engine.Level {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultLevel
}

// SetDefault sets the default level by name
func (m *Manager) SetDefault(name string) error {
	level, err := m.Load(name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultLevel = level
	return nil
}

// Refresh reloads all cached levels from disk. Needed after a
// leaderboard submission rewrites a level file's trailer.
func (m *Manager) Refresh() error {
	m.mu.Lock()
	m.levels = make(map[string]*engine.Level)
	m.mu.Unlock()

	return m.loadDefaultLevel()
}

// loadDefaultLevel loads the default level, preferring classic.txt
func (m *Manager) loadDefaultLevel() error {
	level, err := m.Load("classic")
	if err != nil {
		levels, listErr := m.List()
		if listErr != nil || len(levels) == 0 {
			return fmt.Errorf("no loadable levels in %s", m.levelDir)
		}

		level, err = m.Load(levels[0].LevelID)
		if err != nil {
			return err
		}
	}

	m.mu.Lock()
	m.defaultLevel = level
	m.mu.Unlock()
	return nil
}
