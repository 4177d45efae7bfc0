package leaderboard

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Length is the maximum number of entries a board keeps.
const Length = 10

// padding is the gap between text and dividers in the rendered table.
const padding = 1

// Entry is one leaderboard row.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// ParseEntry parses a "name - score" line. A name that itself contains
// " - " has the separator collapsed out of it, matching historical
// files.
func ParseEntry(line string) (Entry, error) {
	parts := strings.Split(line, " - ")
	if len(parts) < 2 {
		return Entry{}, fmt.Errorf("malformed leaderboard line %q", line)
	}

	score, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return Entry{}, fmt.Errorf("malformed score in leaderboard line %q", line)
	}

	return Entry{
		Name:  strings.Join(parts[:len(parts)-1], ""),
		Score: score,
	}, nil
}

// FormatEntry renders an entry as a "name - score" line.
func FormatEntry(e Entry) string {
	return fmt.Sprintf("%s - %d", e.Name, e.Score)
}

// ParseEntries parses trailer lines, skipping blanks.
func ParseEntries(lines []string) ([]Entry, error) {
	var entries []Entry
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		e, err := ParseEntry(line)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	sortEntries(entries)
	return entries, nil
}

// sortEntries orders by score descending, breaking ties by name
// descending.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Name > entries[j].Name
	})
}

// Board holds the ranked entries for one level and persists changes
// through its Store.
type Board struct {
	entries []Entry
	store   Store
}

// NewBoard loads a board from the given store.
func NewBoard(store Store) (*Board, error) {
	entries, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	sortEntries(entries)

	return &Board{entries: entries, store: store}, nil
}

// Entries returns a copy of the ranked entries.
func (b *Board) Entries() []Entry {
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Qualifies reports whether a score earns a spot on the board.
func (b *Board) Qualifies(score int) bool {
	if len(b.entries) < Length {
		return true
	}
	return score > b.minScore()
}

func (b *Board) minScore() int {
	if len(b.entries) == 0 {
		return 0
	}
	min := b.entries[0].Score
	for _, e := range b.entries[1:] {
		if e.Score < min {
			min = e.Score
		}
	}
	return min
}

// Submit records a new score, re-ranks, trims to Length and persists.
func (b *Board) Submit(name string, score int) error {
	b.entries = append(b.entries, Entry{Name: name, Score: score})
	sortEntries(b.entries)
	if len(b.entries) > Length {
		b.entries = b.entries[:Length]
	}
	return b.store.Save(b.entries)
}

// Clear drops all entries and truncates the persisted trailer.
func (b *Board) Clear() error {
	b.entries = nil
	return b.store.Clear()
}

// Render formats the board as the PLAYER|SCORES table.
func (b *Board) Render() string {
	maxPlayer := 0
	maxScore := len("SCORES")
	for _, e := range b.entries {
		if w := len(e.Name); w > maxPlayer {
			maxPlayer = w
		}
		if w := len(strconv.Itoa(e.Score)); w > maxScore {
			maxScore = w
		}
	}
	maxPlayer += padding
	maxScore += padding

	var sb strings.Builder

	writeRow := func(player, score string) {
		fill := maxPlayer - len(player)
		if fill < 0 {
			fill = 0
		}
		sb.WriteString(player)
		sb.WriteString(strings.Repeat(" ", fill))
		sb.WriteString("|")
		sb.WriteString(strings.Repeat(" ", padding))
		sb.WriteString(score)
		sb.WriteString("\n")
	}

	writeRow("PLAYER", "SCORES")
	sb.WriteString(strings.Repeat("-", maxPlayer))
	sb.WriteString("+")
	sb.WriteString(strings.Repeat("-", maxScore))
	sb.WriteString("\n")

	for _, e := range b.entries {
		writeRow(e.Name, strconv.Itoa(e.Score))
	}

	return sb.String()
}
