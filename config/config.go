package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/chunkpath/pathfind"
	"github.com/udisondev/chunkpath/transition"
)

// Config holds all engine configuration. Grid and chunk dimensions are
// in tiles; tile size is in world units.
type Config struct {
	// World dimensions
	GridWidth   int     `yaml:"grid_width"`
	GridHeight  int     `yaml:"grid_height"`
	ChunkWidth  int     `yaml:"chunk_width"`
	ChunkHeight int     `yaml:"chunk_height"`
	TileSize    float64 `yaml:"tile_size"`

	// Local (single-chunk) search
	LocalAlgorithm  string  `yaml:"local_algorithm"` // astar | jps | registered name
	LocalHeuristic  string  `yaml:"local_heuristic"`
	HeuristicWeight float64 `yaml:"heuristic_weight"`
	AllowDiagonal   bool    `yaml:"allow_diagonal"`
	SmoothPaths     bool    `yaml:"smooth_paths"`

	// Hierarchical search; empty heuristic selects Dijkstra
	HierarchicalHeuristic string `yaml:"hierarchical_heuristic"`

	// Transition point placement
	MaxTransitionPoints   int    `yaml:"max_transition_points"`
	TransitionPointMethod string `yaml:"transition_point_method"` // center | margin
	TransitionPointMargin int    `yaml:"transition_point_margin"`

	LogLevel string `yaml:"log_level"`
}

// Default returns a Config with sensible defaults: a 256x256 tile world
// in 16x16 chunks, weighted A* with octile heuristic.
func Default() Config {
	return Config{
		GridWidth:             256,
		GridHeight:            256,
		ChunkWidth:            16,
		ChunkHeight:           16,
		TileSize:              32,
		LocalAlgorithm:        "astar",
		LocalHeuristic:        string(pathfind.Octile),
		HeuristicWeight:       1.0,
		AllowDiagonal:         true,
		HierarchicalHeuristic: string(pathfind.Euclidean),
		MaxTransitionPoints:   2,
		TransitionPointMethod: string(transition.PlaceCenter),
		TransitionPointMargin: 4,
		LogLevel:              "info",
	}
}

// Load reads engine config from a YAML file. A missing file returns
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks required fields. The local algorithm name is resolved
// against the strategy registry later, at engine construction, so
// externally registered strategies stay usable.
func (c Config) Validate() error {
	if c.GridWidth <= 0 || c.GridHeight <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", c.GridWidth, c.GridHeight)
	}
	if c.ChunkWidth <= 0 || c.ChunkHeight <= 0 {
		return fmt.Errorf("chunk dimensions must be positive, got %dx%d", c.ChunkWidth, c.ChunkHeight)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("tile size must be positive, got %v", c.TileSize)
	}
	if c.HeuristicWeight < 1 {
		return fmt.Errorf("heuristic weight must be >= 1.0, got %v", c.HeuristicWeight)
	}
	if c.LocalAlgorithm == "" {
		return fmt.Errorf("local algorithm is required")
	}
	if _, err := pathfind.ParseHeuristic(c.LocalHeuristic); err != nil {
		return fmt.Errorf("local heuristic: %w", err)
	}
	if c.HierarchicalHeuristic != "" {
		if _, err := pathfind.ParseHeuristic(c.HierarchicalHeuristic); err != nil {
			return fmt.Errorf("hierarchical heuristic: %w", err)
		}
	}
	if _, err := transition.ParsePlacement(c.TransitionPointMethod); err != nil {
		return err
	}
	if c.TransitionPointMethod == string(transition.PlaceCenter) && c.MaxTransitionPoints < 1 {
		return fmt.Errorf("max transition points must be >= 1, got %d", c.MaxTransitionPoints)
	}
	if c.TransitionPointMethod == string(transition.PlaceMargin) && c.TransitionPointMargin < 1 {
		return fmt.Errorf("transition point margin must be >= 1, got %d", c.TransitionPointMargin)
	}
	return nil
}
