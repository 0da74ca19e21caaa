package simulation

import (
	"math"
	"testing"

	"stocksim/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func int64Ptr(i int64) *int64 {
	return &i
}

func Test_Generate(t *testing.T) {
	h := NewPathGenerator()

	t.Run("returns numPaths paths with steps+1 points", func(t *testing.T) {
		paths, err := h.Generate(domain.SimulationParams{
			InitialPrice: 100,
			Drift:        0.05,
			Volatility:   0.2,
			Horizon:      1.0,
			Steps:        252,
			NumPaths:     3,
			Seed:         int64Ptr(42),
		})
		require.NoError(t, err)
		require.Len(t, paths, 3)
		for _, p := range paths {
			require.Len(t, p.Times, 253)
			require.Len(t, p.Prices, 253)
			require.Equal(t, 100.0, p.Prices[0])
		}
	})

	t.Run("times are evenly spaced from 0 to horizon", func(t *testing.T) {
		paths, err := h.Generate(domain.SimulationParams{
			InitialPrice: 50,
			Drift:        0.1,
			Volatility:   0.3,
			Horizon:      2.0,
			Steps:        8,
			Seed:         int64Ptr(7),
		})
		require.NoError(t, err)
		require.Len(t, paths, 1)

		times := paths[0].Times
		require.Equal(t, 0.0, times[0])
		require.InDelta(t, 2.0, times[len(times)-1], 1e-12)
		dt := 2.0 / 8
		for k := 1; k < len(times); k++ {
			require.InDelta(t, dt, times[k]-times[k-1], 1e-12)
			require.Greater(t, times[k], times[k-1])
		}
	})

	t.Run("zero volatility degenerates to exponential growth", func(t *testing.T) {
		paths, err := h.Generate(domain.SimulationParams{
			InitialPrice: 100,
			Drift:        0.05,
			Volatility:   0,
			Horizon:      1.0,
			Steps:        12,
			Seed:         int64Ptr(1),
		})
		require.NoError(t, err)

		p := paths[0]
		for k := range p.Times {
			want := 100 * math.Exp(0.05*p.Times[k])
			require.InDelta(t, want, p.Prices[k], 1e-9)
			require.False(t, math.IsNaN(p.Prices[k]))
		}
	})

	t.Run("same seed reproduces identical prices", func(t *testing.T) {
		params := domain.SimulationParams{
			InitialPrice: 100,
			Drift:        0.05,
			Volatility:   0.2,
			Horizon:      1.0,
			Steps:        252,
			NumPaths:     2,
			Seed:         int64Ptr(42),
		}
		first, err := h.Generate(params)
		require.NoError(t, err)
		second, err := h.Generate(params)
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff(first, second))
	})

	t.Run("different seeds diverge", func(t *testing.T) {
		params := domain.SimulationParams{
			InitialPrice: 100,
			Drift:        0.05,
			Volatility:   0.2,
			Horizon:      1.0,
			Steps:        50,
			Seed:         int64Ptr(1),
		}
		first, err := h.Generate(params)
		require.NoError(t, err)

		params.Seed = int64Ptr(2)
		second, err := h.Generate(params)
		require.NoError(t, err)

		require.NotEqual(t, first[0].Prices, second[0].Prices)
	})

	t.Run("unseeded batch still produces full paths", func(t *testing.T) {
		paths, err := h.Generate(domain.SimulationParams{
			InitialPrice: 100,
			Drift:        0.05,
			Volatility:   0.2,
			Horizon:      1.0,
			Steps:        10,
		})
		require.NoError(t, err)
		require.Len(t, paths, 1)
		require.Len(t, paths[0].Prices, 11)
	})

	t.Run("example scenario stays strictly positive", func(t *testing.T) {
		paths, err := h.Generate(domain.SimulationParams{
			InitialPrice: 100,
			Drift:        0.05,
			Volatility:   0.2,
			Horizon:      1.0,
			Steps:        252,
			NumPaths:     1,
			Seed:         int64Ptr(42),
		})
		require.NoError(t, err)
		require.Len(t, paths, 1)
		require.Equal(t, 100.0, paths[0].Prices[0])
		for _, price := range paths[0].Prices {
			require.Greater(t, price, 0.0)
		}
	})
}

func Test_Generate_invalidParams(t *testing.T) {
	h := NewPathGenerator()

	tests := []struct {
		name      string
		params    domain.SimulationParams
		wantField string
	}{
		{
			name: "negative initial price",
			params: domain.SimulationParams{
				InitialPrice: -5,
				Horizon:      1,
				Steps:        10,
			},
			wantField: "initialPrice",
		},
		{
			name: "zero steps",
			params: domain.SimulationParams{
				InitialPrice: 100,
				Horizon:      1,
				Steps:        0,
			},
			wantField: "steps",
		},
		{
			name: "zero horizon",
			params: domain.SimulationParams{
				InitialPrice: 100,
				Horizon:      0,
				Steps:        10,
			},
			wantField: "horizon",
		},
		{
			name: "negative volatility",
			params: domain.SimulationParams{
				InitialPrice: 100,
				Volatility:   -0.1,
				Horizon:      1,
				Steps:        10,
			},
			wantField: "volatility",
		},
		{
			name: "NaN drift",
			params: domain.SimulationParams{
				InitialPrice: 100,
				Drift:        math.NaN(),
				Horizon:      1,
				Steps:        10,
			},
			wantField: "drift",
		},
		{
			name: "negative numPaths",
			params: domain.SimulationParams{
				InitialPrice: 100,
				Horizon:      1,
				Steps:        10,
				NumPaths:     -1,
			},
			wantField: "numPaths",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			paths, err := h.Generate(tc.params)
			require.Nil(t, paths)

			var invalidErr *InvalidParameterError
			require.ErrorAs(t, err, &invalidErr)
			require.Equal(t, tc.wantField, invalidErr.Field)
		})
	}
}
