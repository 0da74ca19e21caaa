package api

import (
	_ "embed"

	"github.com/gin-gonic/gin"
)

//go:embed index.html
var indexHTML []byte

func (m ApiHandler) index(c *gin.Context) {
	c.Data(200, "text/html; charset=utf-8", indexHTML)
}
