package main

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/iotaledger/hive.go/ierrors"
)

// TraceStep is the state of a run after one expansion
type TraceStep struct {
	Step         int      `json:"step"`
	Position     Position `json:"position"`
	FrontierSize int      `json:"frontierSize"`
	VisitedSize  int      `json:"visitedSize"`
}

// Trace is the recorded history of a single search run
type Trace struct {
	RunID            string      `json:"runId"`
	CreatedAt        time.Time   `json:"createdAt"`
	Algorithm        Algorithm   `json:"algorithm"`
	Start            Position    `json:"start"`
	Goal             Position    `json:"goal"`
	Steps            []TraceStep `json:"steps"`
	Outcome          Outcome     `json:"outcome"`
	StepLimitReached bool        `json:"stepLimitReached"`
	Path             Path        `json:"path"`
	PathLength       float64     `json:"pathLength"`
}

// NewTrace creates an empty trace with a fresh run ID
func NewTrace() *Trace {
	return &Trace{
		RunID:     uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Steps:     make([]TraceStep, 0),
		Path:      Path{},
	}
}

func (t *Trace) begin(algorithm Algorithm, start, goal Position) {
	t.Algorithm = algorithm
	t.Start = start
	t.Goal = goal
}

func (t *Trace) record(step TraceStep) {
	t.Steps = append(t.Steps, step)
}

func (t *Trace) complete(result SearchResult) {
	t.Outcome = result.Outcome
	t.StepLimitReached = result.StepLimitReached
	t.Path = result.Path
	t.PathLength = result.Path.Length()
}

// SaveTrace serializes and saves the trace to a JSON file
func SaveTrace(trace *Trace, filename string) error {
	log.Printf("💾 Saving trace %s to %s...\n", trace.RunID, filename)

	data, err := json.MarshalIndent(trace, "", "  ")
	if err != nil {
		return ierrors.Wrap(err, "failed to marshal trace")
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return ierrors.Wrap(err, "failed to write file")
	}

	log.Printf("   ✅ Trace saved (%d steps, %d bytes)\n", len(trace.Steps), len(data))
	return nil
}

// LoadTrace deserializes a trace from a JSON file
func LoadTrace(filename string) (*Trace, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to read file")
	}

	var trace Trace
	if err := json.Unmarshal(data, &trace); err != nil {
		return nil, ierrors.Wrap(err, "failed to unmarshal trace")
	}

	return &trace, nil
}
