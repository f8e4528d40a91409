package middleware

import "github.com/gin-gonic/gin"

func CacheControlMiddleware(value string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", value)
		c.Next()
	}
}

// NoStore keeps per-session API responses out of shared caches.
func NoStore() gin.HandlerFunc {
	return CacheControlMiddleware("no-store")
}
