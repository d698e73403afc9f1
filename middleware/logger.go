package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/kamil5b/sewa-alat-berat/logger"
)

func RequestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	status := c.Response().StatusCode()
	if e, ok := err.(*fiber.Error); ok {
		status = e.Code
	} else if err != nil {
		status = fiber.StatusInternalServerError
	}
	kv := []interface{}{
		"method", c.Method(),
		"path", c.Path(),
		"status", status,
		"latency", time.Since(start).String(),
		"ip", c.IP(),
	}
	switch {
	case status >= 500:
		logger.Log.Error("request", append(kv, "error", err)...)
	case status >= 400:
		logger.Log.Warn("request", kv...)
	default:
		logger.Log.Info("request", kv...)
	}
	return err
}
