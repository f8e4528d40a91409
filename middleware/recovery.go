package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"ideaboard/utils"

	"github.com/gin-gonic/gin"
)

func EnhancedRecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic serving %s %s: %v\n%s", c.Request.Method, c.Request.URL.Path, err, debug.Stack())
				utils.TrackError("panic", "recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, &utils.Response{
					Success: false,
					Error:   "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
