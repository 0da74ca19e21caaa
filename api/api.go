package api

import (
	"errors"
	"fmt"
	"time"

	"stocksim/internal/app"
	"stocksim/internal/repository"
	"stocksim/internal/service"
	"stocksim/internal/simulation"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ApiHandler struct {
	SimulationHandler   app.SimulationHandler
	TradeService        service.TradeService
	PortfolioRepository repository.PortfolioRepository
	Logger              *zap.SugaredLogger
}

func (m ApiHandler) StartApi(port int) error {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", m.index)
	router.POST("/simulate", m.simulate)
	router.POST("/simulate/export", m.exportSimulation)
	router.GET("/portfolio", m.portfolio)
	router.POST("/trade", m.trade)

	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// returnSimulationError maps the generator's error taxonomy onto status
// codes: rejected parameters are the client's fault, a dead entropy source
// is ours.
func returnSimulationError(err error, c *gin.Context) {
	var invalidErr *simulation.InvalidParameterError
	if errors.As(err, &invalidErr) {
		c.AbortWithStatusJSON(400, gin.H{
			"error": invalidErr.Error(),
			"field": invalidErr.Field,
		})
		return
	}
	returnErrorJson(err, c)
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	start := time.Now()
	ctx.Next()
	m.Logger.Infow("request",
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
		"status", ctx.Writer.Status(),
		"elapsedMs", time.Since(start).Milliseconds(),
	)
}
