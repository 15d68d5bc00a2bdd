package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/spf13/pflag"
)

const usage = `usage:
  grid-planner                         run the built-in demo (A* then greedy)
  grid-planner run <scenario.yaml>     run a scenario file [--trace file] [--verbose]
  grid-planner serve                   start the HTTP route service [--bind-address :8080]`

func main() {
	if len(os.Args) < 2 {
		if err := runDemo(os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	var err error
	switch os.Args[1] {
	case "run":
		err = runCommand(os.Args[2:], os.Stdout)
	case "serve":
		err = serveCommand(os.Args[2:])
	default:
		err = ierrors.Errorf("unknown command %q\n%s", os.Args[1], usage)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// runDemo runs A* and then greedy search on a fixed 3x3 map and prints where each ended
func runDemo(w io.Writer) error {
	grid, err := NewGridMap([][]int{
		{0, 0, 1},
		{1, 0, 1},
		{1, 0, 0},
	})
	if err != nil {
		return err
	}

	env, err := NewEnvironment(grid, Position{Row: 0, Col: 0}, Position{Row: 2, Col: 2})
	if err != nil {
		return err
	}

	for _, algorithm := range []Algorithm{AlgorithmAStar, AlgorithmGreedy} {
		agent, err := NewAgent(algorithm, env)
		if err != nil {
			return err
		}

		result, err := Run(agent)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s: %s\n", algorithm, result.Final)
	}

	return nil
}

func runCommand(args []string, w io.Writer) error {
	flags := pflag.NewFlagSet("run", pflag.ContinueOnError)
	traceFile := flags.String("trace", "", "write the run trace as JSON to this file")
	verbose := flags.BoolP("verbose", "v", false, "log every expansion step")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return ierrors.Errorf("run expects exactly one scenario file\n%s", usage)
	}

	scenario, err := LoadScenario(flags.Arg(0))
	if err != nil {
		return err
	}

	env, err := scenario.Environment()
	if err != nil {
		return err
	}

	trace := NewTrace()
	agent, err := NewAgent(scenario.Algorithm, env,
		WithMaxSteps(scenario.MaxSteps),
		WithLogger(log.Default()),
		WithStepLogging(*verbose),
		WithTrace(trace),
	)
	if err != nil {
		return err
	}

	if scenario.MaxSteps == 0 {
		log.Printf("⚠️  %s sets max_steps: 0, the search runs without a step limit\n", scenario.Name)
	}
	log.Printf("🔍 Running %s on %s (%dx%d)\n", scenario.Algorithm, scenario.Name, scenario.Grid.Rows(), scenario.Grid.Cols())
	result, err := Run(agent)
	if err != nil {
		return err
	}

	printReport(w, scenario, result)

	if *traceFile != "" {
		return SaveTrace(trace, *traceFile)
	}
	return nil
}

func printReport(w io.Writer, scenario *Scenario, result SearchResult) {
	fmt.Fprintf(w, "scenario:  %s\n", scenario.Name)
	fmt.Fprintf(w, "algorithm: %s\n", scenario.Algorithm)
	fmt.Fprintf(w, "outcome:   %s\n", result.Outcome)
	fmt.Fprintf(w, "steps:     %d\n", result.Steps)
	fmt.Fprintf(w, "final:     %s\n", result.Final)
	if result.StepLimitReached {
		fmt.Fprintf(w, "note:      step limit %d reached\n", scenario.MaxSteps)
	}
	if result.Found() {
		fmt.Fprintf(w, "path:      %v\n", []Position(result.Path))
		fmt.Fprintf(w, "length:    %.3f\n", result.Path.Length())
		obstacles := NewObstacleIndex(scenario.Grid).ObstaclesNearPath(result.Path, 1)
		fmt.Fprintf(w, "obstacles: %d near path\n", len(obstacles))
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, scenario.Grid.Render(result.Path, scenario.Start, scenario.Goal))
}

func serveCommand(args []string) error {
	flags := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	bindAddress := flags.String("bind-address", ":8080", "address the HTTP server listens on")
	if err := flags.Parse(args); err != nil {
		return err
	}

	log.Println("========================================")
	log.Println("🚀 Grid Planner Server")
	log.Println("========================================")
	log.Println("Endpoints:")
	log.Println("  POST /route   - Search a path on a submitted grid")
	log.Println("  GET  /health  - Check server status")
	log.Println("")
	log.Println("CORS enabled for all origins")
	log.Printf("Server starting on %s\n", *bindAddress)
	log.Println("========================================")

	return http.ListenAndServe(*bindAddress, newServeMux())
}
