package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) portfolio(c *gin.Context) {
	portfolio, err := m.PortfolioRepository.Get()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, portfolio)
}
