package simulation

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"

	"stocksim/internal/domain"
)

type PathGenerator interface {
	Generate(params domain.SimulationParams) ([]domain.SimulatedPath, error)
}

type pathGeneratorHandler struct{}

func NewPathGenerator() PathGenerator {
	return pathGeneratorHandler{}
}

// Generate produces NumPaths independent GBM trajectories using the exact
// closed-form solution S_k = S0 * exp((mu - sigma^2/2) t_k + sigma W_k),
// so step count only affects plotting resolution, not accuracy. All paths
// in a batch draw from one random source, consumed in path order, so a
// seeded batch reproduces identically.
func (h pathGeneratorHandler) Generate(params domain.SimulationParams) ([]domain.SimulatedPath, error) {
	if params.NumPaths == 0 {
		params.NumPaths = 1
	}
	if err := validateParams(params); err != nil {
		return nil, err
	}

	seed, err := resolveSeed(params.Seed)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))

	dt := params.Horizon / float64(params.Steps)
	sqrtDt := math.Sqrt(dt)
	driftTerm := params.Drift - 0.5*params.Volatility*params.Volatility

	paths := make([]domain.SimulatedPath, 0, params.NumPaths)
	for i := 0; i < params.NumPaths; i++ {
		times := make([]float64, params.Steps+1)
		prices := make([]float64, params.Steps+1)
		prices[0] = params.InitialPrice

		var w float64
		for k := 1; k <= params.Steps; k++ {
			w += sqrtDt * rng.NormFloat64()
			t := float64(k) * dt
			times[k] = t
			prices[k] = params.InitialPrice * math.Exp(driftTerm*t+params.Volatility*w)
		}

		paths = append(paths, domain.SimulatedPath{
			Times:  times,
			Prices: prices,
		})
	}

	return paths, nil
}

func validateParams(params domain.SimulationParams) error {
	if math.IsNaN(params.InitialPrice) || math.IsInf(params.InitialPrice, 0) || params.InitialPrice <= 0 {
		return &InvalidParameterError{Field: "initialPrice", Reason: "must be a positive number"}
	}
	if math.IsNaN(params.Drift) || math.IsInf(params.Drift, 0) {
		return &InvalidParameterError{Field: "drift", Reason: "must be a finite number"}
	}
	if math.IsNaN(params.Volatility) || math.IsInf(params.Volatility, 0) || params.Volatility < 0 {
		return &InvalidParameterError{Field: "volatility", Reason: "must be a non-negative number"}
	}
	if math.IsNaN(params.Horizon) || math.IsInf(params.Horizon, 0) || params.Horizon <= 0 {
		return &InvalidParameterError{Field: "horizon", Reason: "must be a positive number"}
	}
	if params.Steps < 1 {
		return &InvalidParameterError{Field: "steps", Reason: "must be >= 1"}
	}
	if params.NumPaths < 1 {
		return &InvalidParameterError{Field: "numPaths", Reason: "must be >= 1"}
	}
	return nil
}

// resolveSeed returns the caller's seed when set, otherwise draws one from
// the OS entropy source. Generate never touches the process-global rand
// state.
func resolveSeed(seed *int64) (int64, error) {
	if seed != nil {
		return *seed, nil
	}
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}
	return int64(binary.LittleEndian.Uint64(buf[:])), nil
}
