package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/menu-service/utils"
)

// ImportLoggerMiddleware records the start and outcome of bulk menu imports.
// The form is left to the handler so a body over the size cap surfaces there.
func ImportLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.InfoLogger.Printf("Menu import started from %s", c.ClientIP())

		c.Next()

		mid, sid := c.Request.FormValue("MID"), c.Request.FormValue("SID")
		if c.Writer.Status() == 200 {
			utils.InfoLogger.Printf("Menu import finished for MID=%s SID=%s", mid, sid)
		} else {
			utils.ErrorLogger.Printf("Menu import failed for MID=%s SID=%s with status %d", mid, sid, c.Writer.Status())
		}
	}
}
