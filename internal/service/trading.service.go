package service

import (
	"errors"
	"fmt"

	"stocksim/internal/domain"
	"stocksim/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrInsufficientShares = errors.New("not enough shares")
)

type TradeService interface {
	Buy(input TradeInput) (*TradeResult, error)
	Sell(input TradeInput) (*TradeResult, error)
}

type tradeServiceHandler struct {
	PortfolioRepository repository.PortfolioRepository
}

func NewTradeService(portfolioRepository repository.PortfolioRepository) TradeService {
	return tradeServiceHandler{
		PortfolioRepository: portfolioRepository,
	}
}

// TradeInput is one buy or sell order at the price the shell is currently
// displaying (the last simulated price).
type TradeInput struct {
	Quantity int64
	Price    decimal.Decimal
}

type TradeResult struct {
	TradeID    uuid.UUID         `json:"tradeId"`
	TotalValue decimal.Decimal   `json:"totalValue"`
	Portfolio  *domain.Portfolio `json:"portfolio"`
}

func (input TradeInput) validate() error {
	if input.Quantity < 1 {
		return fmt.Errorf("quantity must be >= 1, got %d", input.Quantity)
	}
	if !input.Price.IsPositive() {
		return fmt.Errorf("price must be positive, got %s", input.Price)
	}
	return nil
}

func (h tradeServiceHandler) Buy(input TradeInput) (*TradeResult, error) {
	if err := input.validate(); err != nil {
		return nil, fmt.Errorf("failed to submit buy order: %w", err)
	}

	portfolio, err := h.PortfolioRepository.Get()
	if err != nil {
		return nil, err
	}

	cost := input.Price.Mul(decimal.NewFromInt(input.Quantity))
	if cost.GreaterThan(portfolio.Cash) {
		return nil, fmt.Errorf("%w: need %s, have %s", ErrInsufficientFunds, cost, portfolio.Cash)
	}

	portfolio.Cash = portfolio.Cash.Sub(cost)
	portfolio.SharesOwned += input.Quantity

	if err := h.PortfolioRepository.Save(portfolio); err != nil {
		return nil, fmt.Errorf("failed to persist portfolio after buy: %w", err)
	}

	return &TradeResult{
		TradeID:    uuid.New(),
		TotalValue: cost,
		Portfolio:  portfolio,
	}, nil
}

func (h tradeServiceHandler) Sell(input TradeInput) (*TradeResult, error) {
	if err := input.validate(); err != nil {
		return nil, fmt.Errorf("failed to submit sell order: %w", err)
	}

	portfolio, err := h.PortfolioRepository.Get()
	if err != nil {
		return nil, err
	}

	if input.Quantity > portfolio.SharesOwned {
		return nil, fmt.Errorf("%w: want to sell %d, own %d", ErrInsufficientShares, input.Quantity, portfolio.SharesOwned)
	}

	revenue := input.Price.Mul(decimal.NewFromInt(input.Quantity))
	portfolio.Cash = portfolio.Cash.Add(revenue)
	portfolio.SharesOwned -= input.Quantity

	if err := h.PortfolioRepository.Save(portfolio); err != nil {
		return nil, fmt.Errorf("failed to persist portfolio after sell: %w", err)
	}

	return &TradeResult{
		TradeID:    uuid.New(),
		TotalValue: revenue,
		Portfolio:  portfolio,
	}, nil
}
