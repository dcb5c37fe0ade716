package cmd

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"connect4/agent"
	"connect4/searcher"
)

// Config carries the agent hyperparameters. Zero/absent values fall back to
// the defaults from DefaultConfig.
type Config struct {
	Minimax struct {
		Depth int `yaml:"depth"`
	} `yaml:"minimax"`
	MCTS struct {
		Iterations  int     `yaml:"iterations"`
		Duration    string  `yaml:"duration"` // e.g. "500ms"; overrides iterations when set
		Exploration float64 `yaml:"exploration"`
		Cutoff      int     `yaml:"cutoff"`
		Heuristic   bool    `yaml:"heuristic"`
	} `yaml:"mcts"`
	QLearner struct {
		Alpha     float64 `yaml:"alpha"`
		Gamma     float64 `yaml:"gamma"`
		Epsilon   float64 `yaml:"epsilon"`
		TablePath string  `yaml:"table_path"`
	} `yaml:"qlearner"`
}

func DefaultConfig() Config {
	var c Config
	c.Minimax.Depth = searcher.DefaultDepth
	c.MCTS.Iterations = 2000
	c.MCTS.Exploration = searcher.DefaultExploration
	c.QLearner.Alpha = agent.DefaultAlpha
	c.QLearner.Gamma = agent.DefaultGamma
	c.QLearner.Epsilon = agent.DefaultEpsilon
	return c
}

// LoadConfig returns the defaults, overlaid with the YAML file at path when
// one is given.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config: %w", err)
	}
	return config, nil
}

// newAgent builds the named agent kind from the config.
func newAgent(kind string, config Config) (agent.Agent, error) {
	switch kind {
	case "minimax":
		return searcher.NewMinimax(searcher.WithDepth(config.Minimax.Depth)), nil
	case "mcts":
		options := []searcher.Option{
			searcher.WithIterations(config.MCTS.Iterations),
			searcher.WithExploration(config.MCTS.Exploration),
			searcher.WithCutoff(config.MCTS.Cutoff),
		}
		if config.MCTS.Duration != "" {
			duration, err := time.ParseDuration(config.MCTS.Duration)
			if err != nil {
				return nil, fmt.Errorf("invalid mcts duration: %w", err)
			}
			options = []searcher.Option{
				searcher.WithDuration(duration),
				searcher.WithExploration(config.MCTS.Exploration),
				searcher.WithCutoff(config.MCTS.Cutoff),
			}
		}
		if config.MCTS.Heuristic {
			options = append(options, searcher.WithHeuristicPolicy())
		}
		return searcher.NewMCTS(options...), nil
	case "qlearner":
		q := agent.NewQLearner(config.QLearner.Alpha, config.QLearner.Gamma, config.QLearner.Epsilon, nil)
		if path := config.QLearner.TablePath; path != "" {
			if err := q.Load(path); err != nil {
				return nil, fmt.Errorf("failed to load Q-table: %w", err)
			}
		}
		return q, nil
	case "random":
		return agent.NewRandom(nil), nil
	}
	return nil, fmt.Errorf("unknown agent kind %q", kind)
}
