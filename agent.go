package main

import (
	"io"
	"log"
	"strings"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/runtime/options"
)

// DefaultMaxSteps bounds a run when no ceiling is configured.
// BFS has no pruning and never terminates on a cyclic map with an unreachable goal without it.
const DefaultMaxSteps = 50000

var ErrUnknownAlgorithm = ierrors.New("unknown search algorithm")

// Algorithm names a search strategy
type Algorithm string

const (
	AlgorithmBFS    Algorithm = "bfs"
	AlgorithmDFS    Algorithm = "dfs"
	AlgorithmGreedy Algorithm = "greedy"
	AlgorithmAStar  Algorithm = "astar"
)

// Algorithms lists all strategies in a stable order
var Algorithms = []Algorithm{AlgorithmBFS, AlgorithmDFS, AlgorithmGreedy, AlgorithmAStar}

// ParseAlgorithm accepts the canonical names plus a few common spellings
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs", "breadth-first":
		return AlgorithmBFS, nil
	case "dfs", "depth-first":
		return AlgorithmDFS, nil
	case "greedy", "best-first", "greedy-best-first":
		return AlgorithmGreedy, nil
	case "astar", "a*", "a-star":
		return AlgorithmAStar, nil
	}
	return "", ierrors.Wrapf(ErrUnknownAlgorithm, "%q", name)
}

// Outcome is the terminal state of a search
type Outcome string

const (
	OutcomeFound     Outcome = "found"
	OutcomeExhausted Outcome = "exhausted"
)

// SearchResult is either Found with a path from start to goal, or Exhausted with an empty path
type SearchResult struct {
	Outcome          Outcome  `json:"outcome"`
	Path             Path     `json:"path"`
	Final            Position `json:"finalPosition"` // Last position the agent reached
	Steps            int      `json:"steps"`
	StepLimitReached bool     `json:"stepLimitReached"`
}

// Found reports whether the goal was reached
func (r SearchResult) Found() bool {
	return r.Outcome == OutcomeFound
}

// Agent performs one search step per Act call until done
type Agent interface {
	Act() (done bool, err error)
	Result() SearchResult
}

// Settings are shared by all search agents
type Settings struct {
	MaxSteps    int
	Logger      *log.Logger
	StepLogging bool
	Trace       *Trace
}

// WithMaxSteps sets the step ceiling; n <= 0 disables it
func WithMaxSteps(n int) options.Option[Settings] {
	return func(s *Settings) {
		s.MaxSteps = n
	}
}

func WithLogger(logger *log.Logger) options.Option[Settings] {
	return func(s *Settings) {
		s.Logger = logger
	}
}

// WithStepLogging logs every expansion, not only the outcome
func WithStepLogging(enabled bool) options.Option[Settings] {
	return func(s *Settings) {
		s.StepLogging = enabled
	}
}

// WithTrace records every step of the run into trace
func WithTrace(trace *Trace) options.Option[Settings] {
	return func(s *Settings) {
		s.Trace = trace
	}
}

// NewAgent builds the agent for the given algorithm against env
func NewAgent(algorithm Algorithm, env Environment, opts ...options.Option[Settings]) (Agent, error) {
	switch algorithm {
	case AlgorithmBFS:
		return NewBFSAgent(env, opts...), nil
	case AlgorithmDFS:
		return NewDFSAgent(env, opts...), nil
	case AlgorithmGreedy:
		return NewGreedyAgent(env, opts...), nil
	case AlgorithmAStar:
		return NewAStarAgent(env, opts...), nil
	}
	return nil, ierrors.Wrapf(ErrUnknownAlgorithm, "%q", algorithm)
}

// Run keeps the agent acting until it reaches the goal or runs out of options
func Run(agent Agent) (SearchResult, error) {
	for {
		done, err := agent.Act()
		if err != nil {
			return agent.Result(), err
		}
		if done {
			return agent.Result(), nil
		}
	}
}

// searcher holds the state common to all agents: the belief state built from
// the latest percept, step accounting and the terminal result.
type searcher struct {
	algorithm Algorithm
	env       Environment
	settings  *Settings
	belief    Percept
	result    SearchResult
	done      bool
}

func newSearcher(algorithm Algorithm, env Environment, opts []options.Option[Settings]) *searcher {
	settings := options.Apply(&Settings{
		MaxSteps: DefaultMaxSteps,
		Logger:   log.New(io.Discard, "", 0),
	}, opts)

	belief := env.InitialPercepts()
	if settings.Trace != nil {
		settings.Trace.begin(algorithm, belief.Position, belief.Goal)
	}

	return &searcher{
		algorithm: algorithm,
		env:       env,
		settings:  settings,
		belief:    belief,
		result: SearchResult{
			Outcome: OutcomeExhausted,
			Path:    Path{},
			Final:   belief.Position,
		},
	}
}

// Result returns the current result; it is final once Act reported done
func (s *searcher) Result() SearchResult {
	return s.result
}

// Belief returns the latest percept
func (s *searcher) Belief() Percept {
	return s.belief
}

// stepLimitReached ends the run once the configured number of steps was taken
func (s *searcher) stepLimitReached() bool {
	if s.settings.MaxSteps <= 0 || s.result.Steps < s.settings.MaxSteps {
		return false
	}
	s.result.StepLimitReached = true
	s.settings.Logger.Printf("⚠️  %s stopped at step limit %d\n", s.algorithm, s.settings.MaxSteps)
	s.exhaust()
	return true
}

// moveTo counts a step, signals the environment and refreshes the belief state
func (s *searcher) moveTo(p Position) error {
	s.result.Steps++
	percept, err := s.env.Signal(Action{GoTo: p})
	if err != nil {
		return ierrors.Wrapf(err, "%s step %d", s.algorithm, s.result.Steps)
	}
	s.belief = percept
	s.result.Final = percept.Position
	return nil
}

// startsAtGoal finishes a run that begins on the goal before any step is taken
func (s *searcher) startsAtGoal() bool {
	if s.result.Steps > 0 || !s.atGoal() {
		return false
	}
	s.succeed(Path{s.belief.Position})
	return true
}

func (s *searcher) atGoal() bool {
	return s.belief.Position == s.belief.Goal
}

func (s *searcher) record(frontierSize, visitedSize int) {
	if s.settings.StepLogging {
		s.settings.Logger.Printf("   step %d: at %s, frontier %d, visited %d\n",
			s.result.Steps, s.belief.Position, frontierSize, visitedSize)
	}
	if s.settings.Trace != nil {
		s.settings.Trace.record(TraceStep{
			Step:         s.result.Steps,
			Position:     s.belief.Position,
			FrontierSize: frontierSize,
			VisitedSize:  visitedSize,
		})
	}
}

func (s *searcher) succeed(path Path) {
	s.result.Outcome = OutcomeFound
	s.result.Path = path
	s.done = true
	s.settings.Logger.Printf("✅ %s reached goal %s in %d steps (%d waypoints)\n",
		s.algorithm, s.belief.Goal, s.result.Steps, len(path))
	s.complete()
}

func (s *searcher) exhaust() {
	s.result.Outcome = OutcomeExhausted
	s.result.Path = Path{}
	s.done = true
	s.settings.Logger.Printf("❌ %s did not reach goal %s after %d steps, stopped at %s\n",
		s.algorithm, s.belief.Goal, s.result.Steps, s.result.Final)
	s.complete()
}

func (s *searcher) complete() {
	if s.settings.Trace != nil {
		s.settings.Trace.complete(s.result)
	}
}
