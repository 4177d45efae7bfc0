// Command bruteforcer searches for high-scoring move sequences by
// driving the game server's REST API. It enumerates direction
// sequences up to the level's move budget, resetting the session
// between attempts, and reports the best sequence found.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

var directions = []string{"left", "right", "forward", "back"}

type GameState struct {
	MovesRemaining int      `json:"moves_remaining"`
	Score          int      `json:"score"`
	Terminal       bool     `json:"terminal"`
	LevelName      string   `json:"level_name"`
	PreviousMoves  []string `json:"previous_moves"`
}

type SessionResponse struct {
	ID        string     `json:"id"`
	LevelName string     `json:"level_name"`
	GameState *GameState `json:"game_state"`
	Board     string     `json:"board"`
}

type MoveResponse struct {
	Success   bool       `json:"success"`
	GameState *GameState `json:"game_state"`
	Board     string     `json:"board"`
	GameOver  bool       `json:"game_over"`
	Message   string     `json:"message"`
}

type ResetResponse struct {
	Message string     `json:"message"`
	State   *GameState `json:"state"`
	Board   string     `json:"board"`
}

type Client struct {
	baseURL   string
	sessionID string
	client    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) CreateSession(levelID string) (*SessionResponse, error) {
	var reqBody []byte
	var err error

	if levelID != "" {
		reqBody, err = json.Marshal(map[string]string{"level_id": levelID})
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
	}

	resp, err := c.client.Post(c.baseURL+"/api/sessions", "application/json", bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("create session failed: %s - %s", resp.Status, string(body))
	}

	var session SessionResponse
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("parse session response: %w", err)
	}

	c.sessionID = session.ID
	return &session, nil
}

func (c *Client) Move(direction string) (*MoveResponse, error) {
	reqBody, err := json.Marshal(map[string]string{"direction": direction})
	if err != nil {
		return nil, fmt.Errorf("marshal move: %w", err)
	}

	url := fmt.Sprintf("%s/api/sessions/%s/move", c.baseURL, c.sessionID)
	resp, err := c.client.Post(url, "application/json", bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("execute move: %w", err)
	}
	defer resp.Body.Close()

	var moveResp MoveResponse
	if err := json.NewDecoder(resp.Body).Decode(&moveResp); err != nil {
		return nil, fmt.Errorf("parse move response: %w", err)
	}

	return &moveResp, nil
}

func (c *Client) Reset() (*GameState, error) {
	url := fmt.Sprintf("%s/api/sessions/%s/reset", c.baseURL, c.sessionID)
	resp, err := c.client.Post(url, "application/json", nil)
	if err != nil {
		return nil, fmt.Errorf("reset: %w", err)
	}
	defer resp.Body.Close()

	var resetResp ResetResponse
	if err := json.NewDecoder(resp.Body).Decode(&resetResp); err != nil {
		return nil, fmt.Errorf("parse reset response: %w", err)
	}

	return resetResp.State, nil
}

// playSequence resets the session, plays the sequence until the game
// ends, and returns the final score and whether the game ended early.
func playSequence(client *Client, seq []int, delay time.Duration) (score int, used int, err error) {
	if _, err := client.Reset(); err != nil {
		return 0, 0, err
	}

	for i, d := range seq {
		resp, err := client.Move(directions[d])
		if err != nil {
			return 0, i, err
		}
		if delay > 0 {
			time.Sleep(delay)
		}
		if resp.GameState != nil {
			score = resp.GameState.Score
		}
		if resp.GameOver || !resp.Success {
			return score, i + 1, nil
		}
	}
	return score, len(seq), nil
}

// nextSequence advances seq like an odometer in base len(directions).
// It returns false once every sequence has been visited.
func nextSequence(seq []int) bool {
	for i := len(seq) - 1; i >= 0; i-- {
		seq[i]++
		if seq[i] < len(directions) {
			return true
		}
		seq[i] = 0
	}
	return false
}

func describe(seq []int, used int) string {
	names := make([]string, 0, used)
	for _, d := range seq[:used] {
		names = append(names, directions[d])
	}
	return strings.Join(names, " ")
}

func main() {
	serverURL := flag.String("url", "http://localhost:8080", "Game server URL")
	levelID := flag.String("level", "", "Level name (empty uses the server default)")
	maxDepth := flag.Int("max-depth", 6, "Maximum sequence length to try (capped by the move budget)")
	maxAttempts := flag.Int("max-attempts", 0, "Maximum sequences to try (0 = unlimited)")
	verbose := flag.Bool("v", false, "Verbose output")
	delayMs := flag.Int("delay", 0, "Delay between moves in milliseconds (0 = no delay)")
	flag.Parse()

	log.Printf("Connecting to game server at %s", *serverURL)
	client := NewClient(*serverURL)

	session, err := client.CreateSession(*levelID)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}
	log.Printf("Session %s on level %s", session.ID, session.LevelName)

	depth := *maxDepth
	if session.GameState != nil && session.GameState.MovesRemaining < depth {
		depth = session.GameState.MovesRemaining
	}
	if depth < 1 {
		log.Fatalf("Nothing to search: move budget is %d", depth)
	}
	log.Printf("Searching sequences up to length %d", depth)

	delay := time.Duration(*delayMs) * time.Millisecond

	bestScore := -1 << 31
	var bestSeq string
	attempts := 0
	start := time.Now()

	seq := make([]int, depth)
	for {
		attempts++
		score, used, err := playSequence(client, seq, delay)
		if err != nil {
			log.Fatalf("Attempt %d failed: %v", attempts, err)
		}

		if score > bestScore {
			bestScore = score
			bestSeq = describe(seq, used)
			log.Printf("New best after %d attempts: score %d with [%s]", attempts, bestScore, bestSeq)
		} else if *verbose {
			log.Printf("Attempt %d: score %d with [%s]", attempts, score, describe(seq, used))
		}

		if *maxAttempts > 0 && attempts >= *maxAttempts {
			log.Printf("Attempt limit reached")
			break
		}
		if !nextSequence(seq) {
			break
		}
	}

	log.Printf("Done: %d attempts in %s", attempts, time.Since(start).Round(time.Millisecond))
	fmt.Printf("Best score: %d\n", bestScore)
	fmt.Printf("Best sequence: %s\n", bestSeq)
}
