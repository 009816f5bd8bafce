package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RequestLogger writes one line per request.
func RequestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			req, res := c.Request(), c.Response()
			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.Int("status", res.Status),
				zap.Duration("latency", time.Since(start)),
			}
			if acc, ok := CurrentAccount(c); ok {
				fields = append(fields, zap.Uint("account_id", acc.ID))
			}
			if err != nil {
				log.Warn("request failed", append(fields, zap.Error(err))...)
				return nil
			}
			log.Info("request", fields...)
			return nil
		}
	}
}
