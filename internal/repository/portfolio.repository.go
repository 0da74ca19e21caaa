package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"stocksim/internal/domain"
)

type PortfolioRepository interface {
	Get() (*domain.Portfolio, error)
	Save(portfolio *domain.Portfolio) error
}

type portfolioRepositoryHandler struct {
	FilePath string

	// the gin handlers may overlap; reads and writes of the state file
	// must not interleave
	mu sync.Mutex
}

func NewPortfolioRepository(filePath string) PortfolioRepository {
	return &portfolioRepositoryHandler{
		FilePath: filePath,
	}
}

// Get loads the saved portfolio. A missing or unreadable file falls back to
// a fresh portfolio with the default starting cash rather than failing the
// request.
func (h *portfolioRepositoryHandler) Get() (*domain.Portfolio, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := os.ReadFile(h.FilePath)
	if err != nil {
		return domain.NewPortfolio(), nil
	}

	portfolio := domain.Portfolio{}
	if err := json.Unmarshal(data, &portfolio); err != nil {
		return domain.NewPortfolio(), nil
	}

	return &portfolio, nil
}

func (h *portfolioRepositoryHandler) Save(portfolio *domain.Portfolio) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	toWrite := portfolio.DeepCopy()
	toWrite.Cash = toWrite.Cash.Round(2)

	data, err := json.Marshal(toWrite)
	if err != nil {
		return fmt.Errorf("failed to marshal portfolio: %w", err)
	}

	f, err := os.Create(h.FilePath)
	if err != nil {
		return fmt.Errorf("failed to create portfolio file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write portfolio: %w", err)
	}

	if err := f.Sync(); err != nil {
		return fmt.Errorf("fsync failed: %w", err)
	}

	return nil
}
