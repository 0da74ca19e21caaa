package calculator

import (
	"fmt"
	"math"

	"stocksim/internal/domain"

	"github.com/montanaflynn/stats"
)

// BatchSummary describes a batch of simulated paths: the distribution of
// terminal prices across paths, the mean simple return over the horizon,
// and the annualized realized volatility of the first path.
type BatchSummary struct {
	TerminalMean         float64 `json:"terminalMean"`
	TerminalMin          float64 `json:"terminalMin"`
	TerminalMax          float64 `json:"terminalMax"`
	TerminalStdev        float64 `json:"terminalStdev"`
	MeanReturn           float64 `json:"meanReturn"`
	AnnualizedVolatility float64 `json:"annualizedVolatility"`
}

func CalculateBatchSummary(paths []domain.SimulatedPath) (*BatchSummary, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("cannot summarize an empty batch")
	}

	terminal := make([]float64, len(paths))
	returns := make([]float64, len(paths))
	for i, p := range paths {
		if len(p.Prices) < 2 {
			return nil, fmt.Errorf("path %d has fewer than 2 points", i)
		}
		last := p.Prices[len(p.Prices)-1]
		terminal[i] = last
		returns[i] = last/p.Prices[0] - 1
	}

	mean, err := stats.Mean(terminal)
	if err != nil {
		return nil, fmt.Errorf("failed to compute terminal mean: %w", err)
	}
	min, err := stats.Min(terminal)
	if err != nil {
		return nil, fmt.Errorf("failed to compute terminal min: %w", err)
	}
	max, err := stats.Max(terminal)
	if err != nil {
		return nil, fmt.Errorf("failed to compute terminal max: %w", err)
	}

	// sample stdev needs at least two paths; a single path has no spread
	terminalStdev := 0.0
	if len(terminal) >= 2 {
		terminalStdev, err = stats.StandardDeviationSample(terminal)
		if err != nil {
			return nil, fmt.Errorf("failed to compute terminal stdev: %w", err)
		}
	}

	meanReturn, err := stats.Mean(returns)
	if err != nil {
		return nil, fmt.Errorf("failed to compute mean return: %w", err)
	}

	realizedVol, err := annualizedVolatility(paths[0])
	if err != nil {
		return nil, err
	}

	return &BatchSummary{
		TerminalMean:         mean,
		TerminalMin:          min,
		TerminalMax:          max,
		TerminalStdev:        terminalStdev,
		MeanReturn:           meanReturn,
		AnnualizedVolatility: realizedVol,
	}, nil
}

// annualizedVolatility scales the sample stdev of the path's log returns by
// sqrt(1/dt), the same convention the sqrt(252) daily annualization uses.
func annualizedVolatility(path domain.SimulatedPath) (float64, error) {
	n := len(path.Prices)
	if n < 3 {
		return 0, nil
	}

	logReturns := make([]float64, 0, n-1)
	for k := 1; k < n; k++ {
		logReturns = append(logReturns, math.Log(path.Prices[k]/path.Prices[k-1]))
	}

	stdev, err := stats.StandardDeviationSample(logReturns)
	if err != nil {
		return 0, fmt.Errorf("failed to compute log return stdev: %w", err)
	}

	dt := path.Times[1] - path.Times[0]
	if dt <= 0 {
		return 0, fmt.Errorf("path has non-increasing times")
	}

	return stdev * math.Sqrt(1/dt), nil
}
