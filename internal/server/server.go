package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/gyeh/carebalance/internal/metrics"
)

// New builds the HTTP surface: /v1 engine routes, /healthz and /metrics.
func New(log zerolog.Logger, reg *prometheus.Registry) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	mc := metrics.NewCollector("carebalance", reg)

	e.Use(RequestID())
	e.Use(AccessLog(log))
	e.Use(Recovery(log, mc))
	e.Use(middleware.BodyLimit(MaxBodySize))

	h := NewHandler(log, mc)
	h.RegisterRoutes(e.Group("/v1"))

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	return e
}
