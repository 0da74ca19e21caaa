package app

import (
	"context"
	"time"

	"stocksim/internal/calculator"
	"stocksim/internal/domain"
	"stocksim/internal/logger"
	"stocksim/internal/simulation"

	"github.com/google/uuid"
)

// SimulationHandler runs one simulation request end to end: generate the
// paths, summarize the batch, report timing.
type SimulationHandler struct {
	PathGenerator simulation.PathGenerator
}

type SimulationResult struct {
	RunID   uuid.UUID                `json:"runId"`
	Paths   []domain.SimulatedPath   `json:"paths"`
	Summary *calculator.BatchSummary `json:"summary"`
}

func (h SimulationHandler) Run(ctx context.Context, params domain.SimulationParams) (*SimulationResult, error) {
	log := logger.FromContext(ctx)
	runID := uuid.New()
	start := time.Now()

	paths, err := h.PathGenerator.Generate(params)
	if err != nil {
		return nil, err
	}

	summary, err := calculator.CalculateBatchSummary(paths)
	if err != nil {
		return nil, err
	}

	log.Infow("simulation complete",
		"runID", runID,
		"numPaths", len(paths),
		"steps", params.Steps,
		"elapsedMs", time.Since(start).Milliseconds(),
	)

	return &SimulationResult{
		RunID:   runID,
		Paths:   paths,
		Summary: summary,
	}, nil
}
