package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// RootBranch is one of the arbiter's four root-direction search results,
// recorded for offline inspection of a single move decision.
type RootBranch struct {
	ID          string  `json:"id"`
	Direction   string  `json:"direction"`
	Scores      []int64 `json:"scores"`
	LongestPath int     `json:"longest_path"`
	AreaControl int     `json:"area_control"`
	Board       string  `json:"board"`
}

// DecisionTrace is the full set of root branches considered for one
// calculate_move call, plus the direction ultimately chosen.
type DecisionTrace struct {
	ID       string       `json:"id"`
	GameID   string       `json:"game_id"`
	Turn     int          `json:"turn"`
	Branches []RootBranch `json:"branches"`
	Chosen   string       `json:"chosen"`
	Outcome  int          `json:"outcome"`
}

// WriteDecisionTrace serializes a DecisionTrace to dir as a timestamped JSON
// file. Purely diagnostic — never called from the hot /move path, only from
// an optional tracing hook wired through config.
func WriteDecisionTrace(dir string, trace DecisionTrace) error {
	if dir == "" {
		return nil
	}
	if trace.ID == "" {
		trace.ID = uuid.New().String()
	}

	timestamp := time.Now().Format("20060102_150405.000000")
	fileName := fmt.Sprintf("%s_%s.json", timestamp, trace.ID)
	path := filepath.Join(dir, fileName)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create trace file: %w", err)
	}
	defer file.Close()

	if err := json.NewEncoder(file).Encode(trace); err != nil {
		return fmt.Errorf("encode trace: %w", err)
	}
	return nil
}
