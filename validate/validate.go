// Command validate provides a small CLI that validates level text
// files in a level directory. It checks:
//   - Header lines (row count and move budget must be positive integers)
//   - Grid consistency (row count matches, all rows equal width)
//   - Allowed characters (#, ., 0, O, P, @)
//   - Leaderboard trailer shape (at most 10 parseable "name - score" lines)
//   - Presence of at least one egg (0) and enough open nests (O)
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

const leaderboardLength = 10

// validateLevel loads and validates a single level text file. It
// performs header, grid, alphabet, trailer, and playability checks.
func validateLevel(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	lines := readLines(string(data))
	if len(lines) < 2 {
		result.Valid = false
		result.Errors = append(result.Errors, "File must have a row count line and a move budget line")
		return result
	}

	rows, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil || rows < 1 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Row count must be a positive integer, got %q", lines[0]))
		return result
	}

	moves, err := strconv.Atoi(strings.TrimSpace(lines[1]))
	if err != nil || moves < 1 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Move budget must be a positive integer, got %q", lines[1]))
	}

	if len(lines) < 2+rows {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Expected %d board rows, file has %d", rows, len(lines)-2))
		return result
	}

	layout := lines[2 : 2+rows]
	trailer := lines[2+rows:]

	gridWidth := -1
	eggCount := 0
	nestCount := 0
	panCount := 0
	validChars := map[rune]bool{
		'#': true, // wall
		'.': true, // floor
		'0': true, // egg
		'O': true, // empty nest
		'P': true, // frying pan
		'@': true, // closed nest
	}

	for i, row := range layout {
		cells := []rune(row)
		if gridWidth == -1 {
			gridWidth = len(cells)
		} else if len(cells) != gridWidth {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Inconsistent grid width at row %d: expected %d, got %d", i+1, gridWidth, len(cells)))
		}

		for j, char := range cells {
			if !validChars[char] {
				result.Valid = false
				result.Errors = append(result.Errors, fmt.Sprintf("Invalid character %q at position [%d,%d]", char, i+1, j+1))
			}
			switch char {
			case '0':
				eggCount++
			case 'O':
				nestCount++
			case 'P':
				panCount++
			}
		}
	}

	if gridWidth < 1 {
		result.Valid = false
		result.Errors = append(result.Errors, "Board rows must be non-empty")
	}

	if eggCount == 0 {
		result.Valid = false
		result.Errors = append(result.Errors, "Must have at least 1 egg (0)")
	}

	if nestCount == 0 {
		result.Valid = false
		result.Errors = append(result.Errors, "Must have at least 1 open nest (O)")
	}

	// Validate the leaderboard trailer
	if len(trailer) > leaderboardLength {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Leaderboard trailer has %d lines, maximum is %d", len(trailer), leaderboardLength))
	}
	for i, line := range trailer {
		if err := checkTrailerLine(line); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Bad leaderboard line %d: %v", i+1, err))
		}
	}

	// Add informational data
	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Grid: %dx%d", rows, gridWidth))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Move budget: %d", moves))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Eggs: %d", eggCount))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Open nests: %d", nestCount))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Pans: %d", panCount))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Leaderboard entries: %d", len(trailer)))
	}

	return result
}

// checkTrailerLine verifies one "name - score" leaderboard line.
func checkTrailerLine(line string) error {
	parts := strings.Split(line, " - ")
	if len(parts) < 2 {
		return fmt.Errorf("expected \"name - score\", got %q", line)
	}
	if _, err := strconv.Atoi(parts[len(parts)-1]); err != nil {
		return fmt.Errorf("score %q is not an integer", parts[len(parts)-1])
	}
	if strings.Join(parts[:len(parts)-1], "") == "" {
		return fmt.Errorf("player name is empty in %q", line)
	}
	return nil
}

// readLines splits file content into lines, dropping trailing blank
// lines but keeping interior ones.
func readLines(content string) []string {
	scanner := bufio.NewScanner(strings.NewReader(content))
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// main scans the level directory for *.txt files and validates each
// one, printing a concise report and exiting with non-zero status if
// any are invalid.
func main() {
	levelDir := "../levels"
	if len(os.Args) > 1 {
		levelDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(levelDir, "*.txt"))
	if err != nil {
		fmt.Printf("Error finding level files: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Printf("No level files found in %s\n", levelDir)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateLevel(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All levels are valid!")
	} else {
		fmt.Println("❌ Some levels have errors")
		os.Exit(1)
	}
}
