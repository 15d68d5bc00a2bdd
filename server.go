package main

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/iotaledger/hive.go/lo"
)

type RouteRequest struct {
	Grid      [][]int `json:"grid"`
	Start     []int   `json:"start"`
	Goal      []int   `json:"goal"`
	Algorithm string  `json:"algorithm"`
	MaxSteps  int     `json:"maxSteps,omitempty"` // 0 uses DefaultMaxSteps
}

type RouteResponse struct {
	Path             [][2]int `json:"path"`
	Success          bool     `json:"success"`
	Outcome          Outcome  `json:"outcome"`
	FinalPosition    [2]int   `json:"finalPosition"`
	Steps            int      `json:"steps"`
	StepLimitReached bool     `json:"stepLimitReached,omitempty"`
	PathLength       float64  `json:"pathLength,omitempty"`
	NearbyObstacles  [][2]int `json:"nearbyObstacles,omitempty"`
	Message          string   `json:"message,omitempty"`
}

// withCORS answers preflight requests and allows cross-origin calls for the given methods
func withCORS(handler http.HandlerFunc, methods ...string) http.HandlerFunc {
	allowed := strings.Join(append(methods, http.MethodOptions), ", ")

	return func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		header.Set("Access-Control-Allow-Origin", "*")
		header.Set("Access-Control-Allow-Methods", allowed)
		header.Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		handler(w, r)
	}
}

// POST /route - run one search on the submitted grid
func routeHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("========================================")
	log.Println("📍 Route request received")

	if r.Method != http.MethodPost {
		log.Printf("❌ Method not allowed: %s\n", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Invalid request body: %v\n", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	algorithm, err := ParseAlgorithm(req.Algorithm)
	if err != nil {
		log.Printf("❌ %v\n", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	start, okStart := positionFromPair(req.Start)
	goal, okGoal := positionFromPair(req.Goal)
	if !okStart || !okGoal {
		log.Println("❌ Start and goal must be [row, col] pairs")
		http.Error(w, "Start and goal must be [row, col] pairs", http.StatusBadRequest)
		return
	}

	grid, err := NewGridMap(req.Grid)
	if err != nil {
		log.Printf("❌ Invalid grid: %v\n", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	env, err := NewEnvironment(grid, start, goal)
	if err != nil {
		log.Printf("❌ Invalid start or goal: %v\n", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	log.Printf("   Grid:      %dx%d\n", grid.Rows(), grid.Cols())
	log.Printf("   Start:     %s\n", start)
	log.Printf("   Goal:      %s\n", goal)
	log.Printf("   Algorithm: %s\n", algorithm)

	if req.MaxSteps < 0 {
		log.Printf("❌ Invalid maxSteps: %d\n", req.MaxSteps)
		http.Error(w, "maxSteps must not be negative", http.StatusBadRequest)
		return
	}

	maxSteps := req.MaxSteps
	if maxSteps == 0 {
		maxSteps = DefaultMaxSteps
	}

	agent, err := NewAgent(algorithm, env, WithMaxSteps(maxSteps), WithLogger(log.Default()))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := Run(agent)
	if err != nil {
		log.Printf("❌ Search failed: %v\n", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := RouteResponse{
		Path:             result.Path.Pairs(),
		Success:          result.Found(),
		Outcome:          result.Outcome,
		FinalPosition:    [2]int{result.Final.Row, result.Final.Col},
		Steps:            result.Steps,
		StepLimitReached: result.StepLimitReached,
	}

	if !result.Found() {
		response.Message = "No path found"
		if result.StepLimitReached {
			response.Message = "Step limit reached before the goal was found"
		}
	} else {
		response.PathLength = result.Path.Length()
		response.NearbyObstacles = lo.Map(NewObstacleIndex(grid).ObstaclesNearPath(result.Path, 1), func(p Position) [2]int {
			return [2]int{p.Row, p.Col}
		})
		log.Printf("   Distance: %.2f cells\n", response.PathLength)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
	log.Println("========================================")
}

// GET /health - Health check endpoint
func healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":     "ready",
		"algorithms": Algorithms,
	})
}

func newServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/route", withCORS(routeHandler, http.MethodPost))
	mux.HandleFunc("/health", withCORS(healthHandler, http.MethodGet))
	return mux
}
