package api

import (
	"context"

	"stocksim/internal/domain"
	"stocksim/internal/logger"

	"github.com/gin-gonic/gin"
)

type simulateRequest struct {
	InitialPrice float64 `json:"initialPrice"`
	Drift        float64 `json:"drift"`
	Volatility   float64 `json:"volatility"`
	Horizon      float64 `json:"horizon"`
	Steps        int     `json:"steps"`
	NumPaths     int     `json:"numPaths"`
	Seed         *int64  `json:"seed"`
}

func (r simulateRequest) toParams() domain.SimulationParams {
	return domain.SimulationParams{
		InitialPrice: r.InitialPrice,
		Drift:        r.Drift,
		Volatility:   r.Volatility,
		Horizon:      r.Horizon,
		Steps:        r.Steps,
		NumPaths:     r.NumPaths,
		Seed:         r.Seed,
	}
}

func (m ApiHandler) simulate(c *gin.Context) {
	var requestBody simulateRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	ctx := logger.AddToContext(context.Background(), m.Logger)
	result, err := m.SimulationHandler.Run(ctx, requestBody.toParams())
	if err != nil {
		returnSimulationError(err, c)
		return
	}

	c.JSON(200, result)
}
