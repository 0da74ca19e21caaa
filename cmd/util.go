package cmd

import (
	"fmt"

	"stocksim/api"
	"stocksim/internal/app"
	"stocksim/internal/config"
	"stocksim/internal/logger"
	"stocksim/internal/repository"
	"stocksim/internal/service"
	"stocksim/internal/simulation"
)

func InitializeDependencies() (*api.ApiHandler, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New()

	portfolioRepository := repository.NewPortfolioRepository(cfg.PortfolioFile)
	tradeService := service.NewTradeService(portfolioRepository)
	simulationHandler := app.SimulationHandler{
		PathGenerator: simulation.NewPathGenerator(),
	}

	apiHandler := &api.ApiHandler{
		SimulationHandler:   simulationHandler,
		TradeService:        tradeService,
		PortfolioRepository: portfolioRepository,
		Logger:              log,
	}

	return apiHandler, cfg, nil
}
