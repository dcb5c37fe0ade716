package metrics

import "time"

// SearchMetric describes one completed move search.
type SearchMetric struct {
	Duration     time.Duration
	Iterations   int
	FullPlayouts int // playouts that reached a true terminal state
	Cutoff       int
	Heuristic    bool
	TreeSize     int
}

// MoveMetric ties a search metric to its place in a game.
type MoveMetric struct {
	Step   int
	Player int
	SearchMetric
}

// GameMetric summarizes one finished game.
type GameMetric struct {
	StartingPlayer int
	Winner         int // 0 for a draw
	StartTime      time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector gathers metrics during a single search. The searcher calls it
// from its iteration loop; a search installs a fresh collection via Start.
type Collector interface {
	Start(cutoff int, heuristic bool)
	AddIteration()
	AddFullPlayout()
	SetTreeSize(size int)
	Complete() SearchMetric
}

type collector struct {
	startTime    time.Time
	cutoff       int
	heuristic    bool
	iterations   int
	fullPlayouts int
	treeSize     int
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(cutoff int, heuristic bool) {
	c.startTime = time.Now()
	c.cutoff = cutoff
	c.heuristic = heuristic
	c.iterations = 0
	c.fullPlayouts = 0
	c.treeSize = 0
}

func (c *collector) AddIteration() {
	c.iterations++
}

func (c *collector) AddFullPlayout() {
	c.fullPlayouts++
}

func (c *collector) SetTreeSize(size int) {
	c.treeSize = size
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration:     time.Since(c.startTime),
		Iterations:   c.iterations,
		FullPlayouts: c.fullPlayouts,
		Cutoff:       c.cutoff,
		Heuristic:    c.heuristic,
		TreeSize:     c.treeSize,
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a no-op collector, the default when a search
// runs without instrumentation.
func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) Start(cutoff int, heuristic bool) {}
func (dummyCollector) AddIteration()                    {}
func (dummyCollector) AddFullPlayout()                  {}
func (dummyCollector) SetTreeSize(size int)             {}
func (dummyCollector) Complete() SearchMetric           { return SearchMetric{} }
