package main

import (
	"bytes"
	"log"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

var ringCells = [][]int{
	{0, 0, 0},
	{0, 1, 0},
	{0, 0, 0},
}

type searchCase struct {
	name  string
	cells [][]int
	start Position
	goal  Position
}

var reachableCases = []searchCase{
	{"corridor", demoCells, Position{0, 0}, Position{2, 2}},
	{"open 2x2", [][]int{{0, 0}, {0, 0}}, Position{0, 0}, Position{1, 1}},
	{"open 3x3", [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, Position{0, 0}, Position{2, 2}},
	{"u-turn", [][]int{{0, 1, 0}, {0, 1, 0}, {0, 0, 0}}, Position{0, 0}, Position{0, 2}},
	{"ring", ringCells, Position{0, 0}, Position{2, 2}},
	{"start is goal", demoCells, Position{1, 1}, Position{1, 1}},
}

// requireValidPath checks the path starts at start, ends at goal and only
// moves between adjacent free cells.
func requireValidPath(t *testing.T, grid *GridMap, path Path, start, goal Position) {
	t.Helper()

	require.NotEmpty(t, path)
	require.Equal(t, start, path[0])
	require.Equal(t, goal, path.Last())
	for i, p := range path {
		require.True(t, grid.IsFree(p), "%s is not a free cell", p)
		if i > 0 {
			require.True(t, path[i-1].IsAdjacent(p), "%s and %s are not adjacent", path[i-1], p)
		}
	}
}

func requireNoDuplicates(t *testing.T, path Path) {
	t.Helper()

	seen := make(map[Position]bool, len(path))
	for _, p := range path {
		require.False(t, seen[p], "%s appears twice in %v", p, path)
		seen[p] = true
	}
}

func TestAgentsFindReachableGoals(t *testing.T) {
	for _, tc := range reachableCases {
		for _, algorithm := range Algorithms {
			env := mustEnvironment(t, tc.cells, tc.start, tc.goal)

			agent, err := NewAgent(algorithm, env)
			require.NoError(t, err)

			result, err := Run(agent)
			require.NoError(t, err, "%s/%s", tc.name, algorithm)
			require.True(t, result.Found(), "%s/%s", tc.name, algorithm)
			require.False(t, result.StepLimitReached)
			require.Equal(t, tc.goal, result.Final)
			require.Equal(t, tc.goal, env.Position())
			requireValidPath(t, env.Grid(), result.Path, tc.start, tc.goal)

			if algorithm != AlgorithmBFS {
				requireNoDuplicates(t, result.Path)
			}
		}
	}
}

func TestAStarCorridorScenario(t *testing.T) {
	env := mustEnvironment(t, demoCells, Position{0, 0}, Position{2, 2})

	result, err := Run(NewAStarAgent(env))
	require.NoError(t, err)
	require.Equal(t, OutcomeFound, result.Outcome)
	require.Equal(t, Position{2, 2}, result.Final)
	// Diagonal moves are allowed, so the corridor is crossed through (1,1).
	require.Equal(t, Path{{0, 0}, {1, 1}, {2, 2}}, result.Path)
	require.Equal(t, 3, result.Steps)
}

func TestUninformedAgentsOnBlockedGoal(t *testing.T) {
	env := mustEnvironment(t, demoCells, Position{0, 0}, Position{0, 2})

	result, err := Run(NewBFSAgent(env, WithMaxSteps(500)))
	require.NoError(t, err)
	require.Equal(t, OutcomeExhausted, result.Outcome)
	require.Empty(t, result.Path)
	require.True(t, result.StepLimitReached)

	env = mustEnvironment(t, demoCells, Position{0, 0}, Position{0, 2})

	result, err = Run(NewDFSAgent(env))
	require.NoError(t, err)
	require.Equal(t, OutcomeExhausted, result.Outcome)
	require.Empty(t, result.Path)
	require.False(t, result.StepLimitReached)
}

func TestBFSFindsDiagonalOnOpenGrid(t *testing.T) {
	env := mustEnvironment(t, [][]int{{0, 0}, {0, 0}}, Position{0, 0}, Position{1, 1})

	result, err := Run(NewBFSAgent(env))
	require.NoError(t, err)
	require.Equal(t, Path{{0, 0}, {1, 1}}, result.Path)
	require.Len(t, result.Path, 2)
}

func TestBFSStepCeilingOnCyclicMap(t *testing.T) {
	env := mustEnvironment(t, ringCells, Position{0, 0}, Position{1, 1})

	agent := NewBFSAgent(env, WithMaxSteps(1000))
	result, err := Run(agent)
	require.NoError(t, err)
	require.Equal(t, OutcomeExhausted, result.Outcome)
	require.True(t, result.StepLimitReached)
	require.Equal(t, 1000, result.Steps)
	require.Empty(t, result.Path)

	// Every ring cell has at least two free neighbours, so each step grows the frontier.
	require.Greater(t, agent.FrontierSize(), 1000)

	done, err := agent.Act()
	require.NoError(t, err)
	require.True(t, done)
}

func TestPruningAgentsTerminateOnUnreachableGoal(t *testing.T) {
	for _, algorithm := range []Algorithm{AlgorithmDFS, AlgorithmGreedy, AlgorithmAStar} {
		env := mustEnvironment(t, ringCells, Position{0, 0}, Position{1, 1})

		agent, err := NewAgent(algorithm, env)
		require.NoError(t, err)

		result, err := Run(agent)
		require.NoError(t, err)
		require.Equal(t, OutcomeExhausted, result.Outcome, algorithm)
		require.False(t, result.StepLimitReached, algorithm)
		require.Empty(t, result.Path)
		require.NotEqual(t, Position{1, 1}, result.Final)
		require.True(t, env.Grid().IsFree(result.Final))
	}
}

func TestDisconnectedGoal(t *testing.T) {
	cells := [][]int{
		{0, 0, 1, 0},
		{0, 0, 1, 0},
	}

	for _, algorithm := range Algorithms {
		env := mustEnvironment(t, cells, Position{0, 0}, Position{1, 3})

		agent, err := NewAgent(algorithm, env, WithMaxSteps(2000))
		require.NoError(t, err)

		result, err := Run(agent)
		require.NoError(t, err)
		require.False(t, result.Found(), algorithm)
		require.Empty(t, result.Path)
	}
}

func TestInformedAgentsVisitedSetGrowsMonotonically(t *testing.T) {
	cells := [][]int{
		{0, 0, 0, 0, 0},
		{0, 1, 1, 1, 0},
		{0, 0, 0, 1, 0},
		{1, 1, 0, 1, 0},
		{0, 0, 0, 0, 0},
	}

	for _, algorithm := range []Algorithm{AlgorithmGreedy, AlgorithmAStar} {
		env := mustEnvironment(t, cells, Position{2, 2}, Position{4, 0})
		trace := NewTrace()

		agent, err := NewAgent(algorithm, env, WithTrace(trace))
		require.NoError(t, err)

		result, err := Run(agent)
		require.NoError(t, err)
		require.True(t, result.Found(), algorithm)
		requireValidPath(t, env.Grid(), result.Path, Position{2, 2}, Position{4, 0})

		require.Len(t, trace.Steps, result.Steps)
		for i := 1; i < len(trace.Steps); i++ {
			require.GreaterOrEqual(t, trace.Steps[i].VisitedSize, trace.Steps[i-1].VisitedSize)
		}

		var visited []Position
		switch a := agent.(type) {
		case *GreedyAgent:
			visited = a.Visited()
		case *AStarAgent:
			visited = a.Visited()
		}
		requireNoDuplicates(t, visited)
		require.Len(t, visited, trace.Steps[len(trace.Steps)-1].VisitedSize)
	}
}

func TestAStarCostSoFarMatchesPathLength(t *testing.T) {
	env := mustEnvironment(t, [][]int{
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
	}, Position{0, 0}, Position{2, 3})
	agent := NewAStarAgent(env)

	for {
		for _, entry := range agent.frontier.Entries() {
			require.InDelta(t, entry.Path.Length(), entry.Cost, 1e-9)
			require.InDelta(t, entry.Cost+entry.Path.Last().Distance(Position{2, 3}), entry.Priority, 1e-9)
		}

		done, err := agent.Act()
		require.NoError(t, err)
		if done {
			break
		}
	}

	result := agent.Result()
	require.True(t, result.Found())
	require.InDelta(t, 3+math.Sqrt2, result.Path.Length(), 1e-9)
}

func TestGreedyTieBreakPrefersLatestDiscovery(t *testing.T) {
	// (1,1) is blocked, (1,0) and (1,2) are equally far from the goal.
	env := mustEnvironment(t, [][]int{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	}, Position{0, 1}, Position{2, 1})
	agent := NewGreedyAgent(env)

	_, err := agent.Act()
	require.NoError(t, err)

	// Neighbours of (0,1) in report order: (0,2), (0,0), (1,2), (1,0).
	// (1,2) and (1,0) tie; (1,0) was discovered last and wins.
	_, err = agent.Act()
	require.NoError(t, err)
	require.Equal(t, Position{1, 0}, agent.Belief().Position)
}

type rejectingEnvironment struct {
	start Position
}

func (e *rejectingEnvironment) InitialPercepts() Percept {
	return Percept{Position: e.start, Available: []Position{{-5, -5}}, Goal: Position{9, 9}}
}

func (e *rejectingEnvironment) Signal(action Action) (Percept, error) {
	if action.GoTo != e.start {
		return Percept{}, ErrInvalidMove
	}
	return e.InitialPercepts(), nil
}

func TestRunSurfacesEnvironmentErrors(t *testing.T) {
	for _, algorithm := range Algorithms {
		agent, err := NewAgent(algorithm, &rejectingEnvironment{start: Position{0, 0}})
		require.NoError(t, err)

		_, err = Run(agent)
		require.ErrorIs(t, err, ErrInvalidMove, algorithm)
	}
}

func TestNewAgentUnknownAlgorithm(t *testing.T) {
	env := mustEnvironment(t, demoCells, Position{0, 0}, Position{2, 2})

	_, err := NewAgent("dijkstra", env)
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestParseAlgorithm(t *testing.T) {
	tests := map[string]Algorithm{
		"bfs":           AlgorithmBFS,
		"Breadth-First": AlgorithmBFS,
		"dfs":           AlgorithmDFS,
		" greedy ":      AlgorithmGreedy,
		"best-first":    AlgorithmGreedy,
		"A*":            AlgorithmAStar,
		"astar":         AlgorithmAStar,
	}
	for input, expected := range tests {
		algorithm, err := ParseAlgorithm(input)
		require.NoError(t, err, input)
		require.Equal(t, expected, algorithm)
	}

	_, err := ParseAlgorithm("")
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestStepLogging(t *testing.T) {
	var buf bytes.Buffer
	env := mustEnvironment(t, demoCells, Position{0, 0}, Position{2, 2})

	_, err := Run(NewGreedyAgent(env, WithLogger(log.New(&buf, "", 0)), WithStepLogging(true)))
	require.NoError(t, err)
	require.Contains(t, buf.String(), "step 1: at (0,0)")
	require.Contains(t, buf.String(), "greedy reached goal (2,2) in 3 steps")
}

func TestInformedAgentsStartingOnGoalTakeNoSteps(t *testing.T) {
	for _, algorithm := range []Algorithm{AlgorithmGreedy, AlgorithmAStar} {
		env := mustEnvironment(t, demoCells, Position{1, 1}, Position{1, 1})
		trace := NewTrace()

		agent, err := NewAgent(algorithm, env, WithTrace(trace))
		require.NoError(t, err)

		result, err := Run(agent)
		require.NoError(t, err)
		require.True(t, result.Found(), algorithm)
		require.Zero(t, result.Steps, algorithm)
		require.Equal(t, Path{{1, 1}}, result.Path)
		require.Equal(t, Position{1, 1}, result.Final)
		require.Empty(t, trace.Steps)
		require.Equal(t, OutcomeFound, trace.Outcome)
	}
}
