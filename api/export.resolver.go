package api

import (
	"bytes"

	"stocksim/internal/export"

	"github.com/gin-gonic/gin"
)

// exportSimulation runs the same batch as /simulate but answers with a CSV
// download instead of JSON.
func (m ApiHandler) exportSimulation(c *gin.Context) {
	var requestBody simulateRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	paths, err := m.SimulationHandler.PathGenerator.Generate(requestBody.toParams())
	if err != nil {
		returnSimulationError(err, c)
		return
	}

	buf := bytes.Buffer{}
	if err := export.WritePathsCSV(&buf, paths); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="simulation.csv"`)
	c.Data(200, "text/csv", buf.Bytes())
}
