package middleware

import (
	"strconv"
	"time"

	"nevod_store/internal/metrics"

	"github.com/labstack/echo/v4"
)

// PrometheusMetrics считает количество и длительность HTTP-запросов
// в разрезе метода, маршрута и статуса ответа
func PrometheusMetrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		duration := time.Since(start).Seconds()

		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request().Method,
			c.Path(),
			strconv.Itoa(c.Response().Status),
		).Inc()

		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request().Method,
			c.Path(),
		).Observe(duration)

		return err
	}
}
