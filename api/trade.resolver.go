package api

import (
	"errors"
	"fmt"

	"stocksim/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type tradeRequest struct {
	Side     string  `json:"side"`
	Quantity int64   `json:"quantity"`
	Price    float64 `json:"price"`
}

func (m ApiHandler) trade(c *gin.Context) {
	var requestBody tradeRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	if requestBody.Quantity < 1 {
		returnErrorJsonCode(fmt.Errorf("quantity must be >= 1, got %d", requestBody.Quantity), c, 400)
		return
	}
	if requestBody.Price <= 0 {
		returnErrorJsonCode(fmt.Errorf("price must be positive, got %f", requestBody.Price), c, 400)
		return
	}

	input := service.TradeInput{
		Quantity: requestBody.Quantity,
		Price:    decimal.NewFromFloat(requestBody.Price),
	}

	var (
		result *service.TradeResult
		err    error
	)
	switch requestBody.Side {
	case "buy":
		result, err = m.TradeService.Buy(input)
	case "sell":
		result, err = m.TradeService.Sell(input)
	default:
		returnErrorJsonCode(fmt.Errorf("unknown trade side %q", requestBody.Side), c, 400)
		return
	}

	if err != nil {
		if errors.Is(err, service.ErrInsufficientFunds) || errors.Is(err, service.ErrInsufficientShares) {
			returnErrorJsonCode(err, c, 400)
			return
		}
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, result)
}
