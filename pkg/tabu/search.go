// Package tabu drives a ramsey.Graph toward a zero-score coloring with a tabu
// search of infinite tenure: every coloring ever visited stays forbidden, ties
// between equally good moves are broken uniformly at random, and the walk is
// never restarted.
package tabu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"os"
	"time"

	"github.com/dd0wney/ramsey-tabu/pkg/coloring"
	"github.com/dd0wney/ramsey-tabu/pkg/logging"
	"github.com/dd0wney/ramsey-tabu/pkg/metrics"
	"github.com/dd0wney/ramsey-tabu/pkg/ramsey"
)

var (
	// ErrStuck means every legal move leads to an already visited coloring.
	ErrStuck = errors.New("tabu: no non-tabu move left")
	// ErrStepLimit means Options.MaxSteps was reached before success.
	ErrStepLimit = errors.New("tabu: step limit reached")
)

// State is the driver's position in its Running -> Improved -> Success cycle.
type State int

const (
	Running State = iota
	Improved
	Success
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Improved:
		return "improved"
	case Success:
		return "success"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Improvement is announced each time the score drops below the best seen.
type Improvement struct {
	SearchID int
	Step     int64
	Score    int64
	Coloring coloring.Matrix
}

// Options configure a search. The zero value is a silent, unlimited search
// seeded with 0.
type Options struct {
	// Announce enables OnImprove (or, when OnImprove is nil, printing the
	// improved coloring to Out).
	Announce  bool
	OnImprove func(Improvement)
	Out       io.Writer

	// Rand, when set, takes precedence over Seed.
	Rand *rand.Rand
	Seed uint64

	// SearchID tags logs, metrics and announcements when several searches run.
	SearchID int
	// MaxSteps bounds Run; 0 means unlimited.
	MaxSteps int64

	Logger  logging.Logger
	Metrics *metrics.Registry
}

// Result is what a search hands back, on success or not.
type Result struct {
	Graph    *ramsey.Graph
	Coloring coloring.Matrix
	Steps    int64
	Score    int64
	Visited  int
}

// NewRand returns the PCG-backed generator used for a given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Search is a single-threaded stepping driver over one graph.
type Search struct {
	g       *ramsey.Graph
	rng     *rand.Rand
	opts    Options
	logger  logging.Logger
	label   string
	visited map[uint64]struct{}

	score   int64
	best    int64
	hasBest bool
	steps   int64
	state   State

	candidates []ramsey.Move
}

// NewSearch prepares a search starting from g's current coloring. The search
// mutates g as it steps.
func NewSearch(g *ramsey.Graph, opts Options) *Search {
	rng := opts.Rand
	if rng == nil {
		rng = NewRand(opts.Seed)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	s := &Search{
		g:       g,
		rng:     rng,
		opts:    opts,
		logger:  logger.With(logging.Component("tabu"), logging.SearchID(opts.SearchID)),
		label:   g.Kind().String(),
		visited: map[uint64]struct{}{g.IdentityHash(): {}},
		score:   g.Score(),
		state:   Running,
	}
	if s.score == 0 {
		s.state = Success
	}
	return s
}

// Step performs one tabu move. It is a no-op once Success is reached, and
// returns ErrStuck when no non-tabu move exists.
func (s *Search) Step() (State, error) {
	if s.state == Success {
		return s.state, nil
	}
	start := time.Now()

	s.candidates = s.candidates[:0]
	evaluated := 0
	bestDelta := int64(math.MaxInt64)
	for mv := range s.g.LegalMoves() {
		if _, seen := s.visited[s.g.HashAfter(mv)]; seen {
			continue
		}
		evaluated++
		d := s.g.MoveDelta(mv)
		switch {
		case d < bestDelta:
			bestDelta = d
			s.candidates = append(s.candidates[:0], mv)
		case d == bestDelta:
			s.candidates = append(s.candidates, mv)
		}
	}
	if len(s.candidates) == 0 {
		return s.state, fmt.Errorf("%w after %d steps (%d colorings visited)", ErrStuck, s.steps, len(s.visited))
	}

	mv := s.candidates[s.rng.IntN(len(s.candidates))]
	s.visited[s.g.HashAfter(mv)] = struct{}{}
	if err := s.g.Apply(mv); err != nil {
		return s.state, err
	}
	s.score += bestDelta
	s.steps++

	s.state = Running
	if !s.hasBest || s.score < s.best {
		s.best, s.hasBest = s.score, true
		s.state = Improved
	}
	if s.score == 0 {
		s.state = Success
	}

	s.logger.Debug("step",
		logging.Step(s.steps),
		logging.Score(s.score),
		logging.String("move", mv.String()),
		logging.Int("candidates", len(s.candidates)),
	)
	if s.opts.Metrics != nil {
		s.opts.Metrics.RecordStep(s.label, evaluated, s.state != Running, time.Since(start))
	}
	if s.state != Running {
		s.improved()
	}
	return s.state, nil
}

func (s *Search) improved() {
	s.logger.Info("improved", logging.Step(s.steps), logging.Score(s.score), logging.Int("visited", len(s.visited)))
	if s.opts.Metrics != nil {
		s.opts.Metrics.SetSearchProgress(s.opts.SearchID, s.score, len(s.visited))
	}
	if !s.opts.Announce {
		return
	}
	imp := Improvement{
		SearchID: s.opts.SearchID,
		Step:     s.steps,
		Score:    s.score,
		Coloring: s.g.Coloring(),
	}
	if s.opts.OnImprove != nil {
		s.opts.OnImprove(imp)
		return
	}
	fmt.Fprintf(s.opts.Out, "search %d, step %d, score %d\n%s\n\n", imp.SearchID, imp.Step, imp.Score, imp.Coloring)
}

// State returns the state after the last step.
func (s *Search) State() State { return s.state }

// Steps returns the number of moves applied so far.
func (s *Search) Steps() int64 { return s.steps }

// Score returns the running score.
func (s *Search) Score() int64 { return s.score }

// BestScore returns the lowest score reached by a step, if any step was taken.
func (s *Search) BestScore() (int64, bool) { return s.best, s.hasBest }

// Visited returns the size of the tabu set, including the start coloring.
func (s *Search) Visited() int { return len(s.visited) }

// Graph returns the graph being searched.
func (s *Search) Graph() *ramsey.Graph { return s.g }

// Result snapshots the current position.
func (s *Search) Result() *Result {
	return &Result{
		Graph:    s.g,
		Coloring: s.g.Coloring(),
		Steps:    s.steps,
		Score:    s.score,
		Visited:  len(s.visited),
	}
}

// Run steps until the score reaches zero. ctx is checked between steps, never
// during one. On failure the partial Result is returned with the error.
func Run(ctx context.Context, g *ramsey.Graph, opts Options) (*Result, error) {
	s := NewSearch(g, opts)
	for s.state != Success {
		if err := ctx.Err(); err != nil {
			return s.Result(), err
		}
		if opts.MaxSteps > 0 && s.steps >= opts.MaxSteps {
			return s.Result(), fmt.Errorf("%w: %d steps, score %d", ErrStepLimit, s.steps, s.score)
		}
		if _, err := s.Step(); err != nil {
			return s.Result(), err
		}
	}
	return s.Result(), nil
}
