package main

import (
	"os"

	"github.com/iotaledger/hive.go/ierrors"
	"gopkg.in/yaml.v3"
)

var ErrInvalidScenario = ierrors.New("invalid scenario")

// ScenarioConfig is the YAML layout of a scenario file
type ScenarioConfig struct {
	Name      string `yaml:"name"`
	Algorithm string `yaml:"algorithm"`
	MaxSteps  *int   `yaml:"max_steps"`
	Map       string `yaml:"map"`
	Start     []int  `yaml:"start"`
	Goal      []int  `yaml:"goal"`
}

// Scenario is a fully resolved simulation run
type Scenario struct {
	Name      string
	Algorithm Algorithm
	MaxSteps  int
	Grid      *GridMap
	Start     Position
	Goal      Position
}

// ParseScenario decodes a YAML scenario. Explicit start/goal entries take
// precedence over S/G markers in the map.
func ParseScenario(data []byte) (*Scenario, error) {
	var config ScenarioConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, ierrors.Wrapf(ErrInvalidScenario, "yaml: %s", err)
	}

	algorithm, err := ParseAlgorithm(config.Algorithm)
	if err != nil {
		return nil, ierrors.Wrapf(ErrInvalidScenario, "%s", err)
	}

	name := config.Name
	if name == "" {
		name = "scenario"
	}

	mapFile, err := ParseGridMap(name, config.Map)
	if err != nil {
		return nil, ierrors.Wrapf(ErrInvalidScenario, "%s", err)
	}

	scenario := &Scenario{
		Name:      name,
		Algorithm: algorithm,
		MaxSteps:  DefaultMaxSteps,
		Grid:      mapFile.Grid,
		Start:     mapFile.Start,
		Goal:      mapFile.Goal,
	}
	if config.MaxSteps != nil {
		if *config.MaxSteps < 0 {
			return nil, ierrors.Wrapf(ErrInvalidScenario, "max_steps must not be negative, got %d", *config.MaxSteps)
		}
		// 0 runs without a step ceiling
		scenario.MaxSteps = *config.MaxSteps
	}

	switch {
	case config.Start != nil:
		start, ok := positionFromPair(config.Start)
		if !ok {
			return nil, ierrors.Wrapf(ErrInvalidScenario, "start must be [row, col], got %v", config.Start)
		}
		scenario.Start = start
	case !mapFile.HasStart:
		return nil, ierrors.Wrap(ErrInvalidScenario, "no start given and no S marker in map")
	}

	switch {
	case config.Goal != nil:
		goal, ok := positionFromPair(config.Goal)
		if !ok {
			return nil, ierrors.Wrapf(ErrInvalidScenario, "goal must be [row, col], got %v", config.Goal)
		}
		scenario.Goal = goal
	case !mapFile.HasGoal:
		return nil, ierrors.Wrap(ErrInvalidScenario, "no goal given and no G marker in map")
	}

	return scenario, nil
}

// LoadScenario reads a scenario file from disk
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to read scenario")
	}
	return ParseScenario(data)
}

// Environment builds the environment the scenario describes
func (s *Scenario) Environment() (*GridEnvironment, error) {
	return NewEnvironment(s.Grid, s.Start, s.Goal)
}
