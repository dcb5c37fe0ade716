package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// AgentConfig identifies one agent configuration under study.
type AgentConfig struct {
	ID         int
	Kind       string // "mcts", "minimax" or "random"
	Iterations int
	Duration   time.Duration
	Cutoff     int
	Heuristic  bool
	Depth      int
}

// GameRecord is one played game between two configs.
type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID, moves first
	Agent2 int
	GameMetric
}

// MoveRecord ties a move metric to its game.
type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// Writer persists experiment results as CSV files under a timestamped
// directory.
type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<experiment>/<timestamp> and returns a writer
// bound to it.
func NewWriter(root, experiment string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102-150405")
	baseDir := filepath.Join(root, experiment, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// Dir returns the directory results are written to.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(w.baseDir, name))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}
	return nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "kind", "iterations", "duration_ms", "cutoff", "heuristic", "depth"}
	rows := make([][]string, 0, len(configs))
	for _, c := range configs {
		rows = append(rows, []string{
			strconv.Itoa(c.ID),
			c.Kind,
			strconv.Itoa(c.Iterations),
			strconv.FormatInt(c.Duration.Milliseconds(), 10),
			strconv.Itoa(c.Cutoff),
			strconv.FormatBool(c.Heuristic),
			strconv.Itoa(c.Depth),
		})
	}
	return w.writeCSV("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "winner", "total_moves", "duration_ms"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			strconv.Itoa(r.Agent1),
			strconv.Itoa(r.Agent2),
			strconv.Itoa(r.Winner),
			strconv.Itoa(r.TotalMoves),
			strconv.FormatInt(r.Duration.Milliseconds(), 10),
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "iterations", "full_playouts", "tree_size", "duration_us"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Game),
			strconv.Itoa(r.Step),
			strconv.Itoa(r.Player),
			strconv.Itoa(r.Iterations),
			strconv.Itoa(r.FullPlayouts),
			strconv.Itoa(r.TreeSize),
			strconv.FormatInt(r.Duration.Microseconds(), 10),
		})
	}
	return w.writeCSV("move_records.csv", header, rows)
}
