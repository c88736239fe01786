package middleware

import (
	"context"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// VisitorTracker records page visits fire-and-forget. It must never fail or
// delay the enclosing request, so the write runs in its own goroutine with
// its own deadline and errors are only logged.
func VisitorTracker(visitorUC domain.VisitorUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		userAgent := c.Request.UserAgent()
		if userAgent == "" {
			userAgent = "Unknown"
		}
		page := c.Request.URL.Path

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := visitorUC.RecordVisit(ctx, ip, userAgent, page); err != nil {
				logger.Log.Warn("Visitor tracking error", "ip", ip, "error", err)
			}
		}()

		c.Next()
	}
}
