package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Christopheryu29/store-management-api/internal/observability/metrics"
)

// MetricsMiddleware registra contador e histograma Prometheus por petición.
// Usa la ruta registrada (c.Route().Path) y no el path crudo, para que los
// IDs no exploten la cardinalidad de las etiquetas.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		metrics.ObserveHTTPRequest(c.Method(), c.Route().Path, strconv.Itoa(status), time.Since(start))
		return err
	}
}
