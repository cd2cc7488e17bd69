package hpath

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/chunkpath/config"
	"github.com/udisondev/chunkpath/geo"
	"github.com/udisondev/chunkpath/pathfind"
	"github.com/udisondev/chunkpath/transition"
)

// Pathfinder is the hierarchical pathfinding engine facade. It validates
// configuration, wires the configured search strategies and orchestrates
// coordinate transforms, the transition graph and segment building.
//
// A single instance is not safe for a rebuild concurrent with a query;
// callers serialize those. Independent instances share nothing.
type Pathfinder struct {
	cfg       config.Config
	transform geo.Transform
	provider  geo.Provider
	local     pathfind.Strategy
	localCfg  pathfind.Config
	hierHeur  pathfind.Heuristic
	builder   *transition.Builder
}

// New validates the configuration and wires an engine around the chunk
// data provider. Validation failures wrap ErrConfig.
func New(cfg config.Config, provider geo.Provider) (*Pathfinder, error) {
	if provider == nil {
		return nil, fmt.Errorf("%w: chunk data provider is required", ErrConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	local, err := pathfind.Lookup(cfg.LocalAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	transform := geo.Transform{
		ChunkWidth:  cfg.ChunkWidth,
		ChunkHeight: cfg.ChunkHeight,
		TileSize:    cfg.TileSize,
	}
	localCfg := pathfind.Config{
		Heuristic:     pathfind.Heuristic(cfg.LocalHeuristic),
		Weight:        cfg.HeuristicWeight,
		AllowDiagonal: cfg.AllowDiagonal,
	}

	builder := transition.NewBuilder(transform, provider, local, localCfg, transition.Options{
		GridChunksX: ceilDiv(cfg.GridWidth, cfg.ChunkWidth),
		GridChunksY: ceilDiv(cfg.GridHeight, cfg.ChunkHeight),
		Method:      transition.PlacementMethod(cfg.TransitionPointMethod),
		MaxPoints:   cfg.MaxTransitionPoints,
		Margin:      cfg.TransitionPointMargin,
	})

	return &Pathfinder{
		cfg:       cfg,
		transform: transform,
		provider:  provider,
		local:     local,
		localCfg:  localCfg,
		hierHeur:  pathfind.Heuristic(cfg.HierarchicalHeuristic),
		builder:   builder,
	}, nil
}

// Transform exposes the engine's coordinate transform.
func (p *Pathfinder) Transform() geo.Transform { return p.transform }

// RebuildGraph builds (or rebuilds, after InvalidateGraph) the transition
// graph. Building never happens implicitly on a query path.
func (p *Pathfinder) RebuildGraph() *transition.Graph {
	return p.builder.Rebuild()
}

// InvalidateGraph marks the transition graph stale after chunk data
// changed; the next RebuildGraph call rescans.
func (p *Pathfinder) InvalidateGraph() {
	p.builder.Invalidate()
}

// Graph returns the current transition graph for inspection (nil before
// the first build).
func (p *Pathfinder) Graph() *transition.Graph {
	return p.builder.Graph()
}

// SetTransitionPoints builds the graph from a caller-supplied declarative
// point list; edges are computed by local search.
func (p *Pathfinder) SetTransitionPoints(specs []transition.PointSpec) error {
	_, err := p.builder.UsePoints(specs)
	return err
}

// SetGraph installs a caller-supplied pre-built graph verbatim.
func (p *Pathfinder) SetGraph(g *transition.Graph) {
	p.builder.UseGraph(g)
}

// FindPath routes between two world positions. Returns the ordered
// segment list, or (nil, nil) when no route exists. Positions outside
// the grid wrap ErrOutOfBounds.
func (p *Pathfinder) FindPath(start, end geo.World) ([]Segment, error) {
	if err := p.checkBounds(start); err != nil {
		return nil, err
	}
	if err := p.checkBounds(end); err != nil {
		return nil, err
	}

	startChunk, localStart := p.transform.ToLocal(p.transform.WorldToTile(start))
	endChunk, localEnd := p.transform.ToLocal(p.transform.WorldToTile(end))

	if !p.provider(startChunk).Walkable(localStart) || !p.provider(endChunk).Walkable(localEnd) {
		return nil, nil // blocked endpoint, unreachable
	}

	graph := p.builder.Graph()

	// Same chunk: try the direct local route and short-circuit with no
	// transition hops. On failure (a wall splits the chunk) fall through
	// to the transition graph, which may route around through neighbors.
	if startChunk == endChunk {
		if path := p.local.Find(p.provider(startChunk), localStart, localEnd, p.localCfg); path != nil {
			return NewSegmentBuilder(graph, p.transform).Build(start, end, nil)
		}
	}

	if graph == nil {
		slog.Debug("transition graph not built, cross-chunk query unreachable",
			"start", startChunk, "end", endChunk)
		return nil, nil
	}

	search := NewSearch(graph, p.transform, p.hierHeur, p.cfg.HeuristicWeight)
	entry := search.NearestPoint(startChunk, start, endChunk)
	exit := search.NearestPoint(endChunk, end, startChunk)
	if entry == nil || exit == nil {
		return nil, nil
	}

	ids := search.FindNodePath(entry.ID, exit.ID)
	if ids == nil {
		return nil, nil
	}

	return NewSegmentBuilder(graph, p.transform).Build(start, end, ids)
}

// FindLocalPath is a thin single-chunk wrapper over the configured local
// strategy, with optional smoothing. Used for stepwise recomputation and
// debugging.
func (p *Pathfinder) FindLocalPath(chunk geo.ChunkID, start, end geo.Tile) []geo.Tile {
	data := p.provider(chunk)
	path := p.local.Find(data, start, end, p.localCfg)
	if path != nil && p.cfg.SmoothPaths {
		path = pathfind.Smooth(data, path)
	}
	return path
}

// FindTransitionPath returns the raw node-id sequence between two
// transition points, for introspection and testing. Nil when the graph
// is unbuilt or disconnected between the nodes.
func (p *Pathfinder) FindTransitionPath(startID, endID string) []string {
	graph := p.builder.Graph()
	if graph == nil {
		return nil
	}
	return NewSearch(graph, p.transform, p.hierHeur, p.cfg.HeuristicWeight).FindNodePath(startID, endID)
}

func (p *Pathfinder) checkBounds(w geo.World) error {
	t := p.transform.WorldToTile(w)
	if t.X < 0 || t.X >= p.cfg.GridWidth || t.Y < 0 || t.Y >= p.cfg.GridHeight {
		return fmt.Errorf("%w: (%v, %v)", ErrOutOfBounds, w.X, w.Y)
	}
	return nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
