package export

import (
	"fmt"
	"io"

	"stocksim/internal/domain"

	"github.com/gocarina/gocsv"
)

// PathPointRow is one CSV row: a single point of a single path.
type PathPointRow struct {
	Path  int     `csv:"path"`
	Step  int     `csv:"step"`
	Time  float64 `csv:"time"`
	Price float64 `csv:"price"`
}

// WritePathsCSV flattens a batch of paths into long-format CSV, one row per
// point, in generation order.
func WritePathsCSV(w io.Writer, paths []domain.SimulatedPath) error {
	rows := make([]PathPointRow, 0)
	for i, p := range paths {
		for k := range p.Times {
			rows = append(rows, PathPointRow{
				Path:  i,
				Step:  k,
				Time:  p.Times[k],
				Price: p.Prices[k],
			})
		}
	}

	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}
