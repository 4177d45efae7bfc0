package engine

// Cell represents the symbol occupying a single grid cell. Cells read
// from a level file that are not part of the game alphabet are kept
// as-is; the resolver treats them as obstacles and the renderer echoes
// them unchanged.
type Cell string

const (
	Wall       Cell = "#"
	Floor      Cell = "."
	Egg        Cell = "0"
	EmptyNest  Cell = "O"
	Pan        Cell = "P"
	ClosedNest Cell = "@"
)

const (
	// Validation constants
	MinRows  = 1
	MinMoves = 1

	// Scoring
	PanPenalty = 5
	NestReward = 10

	// Leaderboard capacity
	LeaderboardLength = 10
)

// Position is a row/column coordinate on the grid. Row increases
// downward, Col to the right.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Level represents a parsed level file
type Level struct {
	Name       string   `json:"name"`
	Rows       int      `json:"rows"`
	Moves      int      `json:"moves"`
	Layout     []string `json:"layout"`
	ScoreLines []string `json:"score_lines,omitempty"`
}

// GameState represents the complete state of one playthrough
type GameState struct {
	Grid           *Grid      `json:"-"`
	MovesRemaining int        `json:"moves_remaining"`
	Eggs           []Position `json:"eggs"`
	Score          int        `json:"score"`
	Terminal       bool       `json:"terminal"`
	LevelName      string     `json:"level_name"`
	Message        string     `json:"message,omitempty"`

	// PreviousMoves collects the glyphs of accepted moves in order.
	// The slice is owned by this state and never shared.
	PreviousMoves []string `json:"previous_moves"`

	MoveHistory []MoveRecord `json:"move_history"`
	TotalMoves  int          `json:"total_moves"`
}

// MoveRecord represents a single resolved move in the game history
type MoveRecord struct {
	Direction     string `json:"direction"`
	Glyph         string `json:"glyph"`
	ScoreDelta    int    `json:"score_delta"`
	EggsResolved  int    `json:"eggs_resolved"`
	EggsRemaining int    `json:"eggs_remaining"`
	MovesLeft     int    `json:"moves_left"`
	Timestamp     int64  `json:"timestamp"`
	MoveNumber    int    `json:"move_number"`
}
