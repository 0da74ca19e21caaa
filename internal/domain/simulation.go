package domain

// SimulationParams holds everything needed to run one GBM batch. It is
// constructed from user input and validated once before any paths are
// generated.
type SimulationParams struct {
	InitialPrice float64
	Drift        float64
	Volatility   float64
	// Horizon is the total simulated time span, in years.
	Horizon float64
	// Steps is the number of discrete increments; paths have Steps+1 points.
	Steps    int
	NumPaths int
	// Seed, when set, makes the whole batch reproducible.
	Seed *int64
}

// SimulatedPath is one price trajectory over the discretized time grid.
// Times and Prices always have the same length and are never mutated after
// generation.
type SimulatedPath struct {
	Times  []float64 `json:"times"`
	Prices []float64 `json:"prices"`
}
