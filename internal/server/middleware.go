package server

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gyeh/carebalance/internal/metrics"
)

// Context keys set by the middleware and the evaluate handler.
const (
	ctxRequestID = "request_id"
	ctxAlerts    = "alerts"
)

// MaxBodySize caps request bodies. A snapshot is a few hundred bytes.
const MaxBodySize = "64K"

// RequestID stamps every request with a UUID, reusing X-Request-ID when sent.
// The same ID is returned as the evaluation ID.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(echo.HeaderXRequestID)
			if rid == "" {
				rid = uuid.New().String()
			}
			c.Set(ctxRequestID, rid)
			c.Response().Header().Set(echo.HeaderXRequestID, rid)
			return next(c)
		}
	}
}

// AccessLog writes one line per request. Server errors log at error level,
// client errors at warn, the rest at info. Evaluations also carry their
// alert count.
func AccessLog(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := responseStatus(c, err)
			var evt *zerolog.Event
			switch {
			case status >= http.StatusInternalServerError:
				evt = logger.Error().Err(err)
			case status >= http.StatusBadRequest:
				evt = logger.Warn().Err(err)
			default:
				evt = logger.Info()
			}

			rid, _ := c.Get(ctxRequestID).(string)
			evt = evt.
				Str("request_id", rid).
				Str("method", c.Request().Method).
				Str("route", c.Path()).
				Int("status", status).
				Dur("latency", time.Since(start))
			if n, ok := c.Get(ctxAlerts).(int); ok {
				evt = evt.Int("alerts", n)
			}
			evt.Msg("request")
			return err
		}
	}
}

// responseStatus is the status the client will see once echo's error
// handler has run.
func responseStatus(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}

// Recovery turns a panic in a handler into a 500 and counts it. It must be
// registered inside AccessLog so the failed request is still logged.
func Recovery(logger zerolog.Logger, mc *metrics.Collector) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if mc != nil {
					mc.PanicsTotal.WithLabelValues(c.Path()).Inc()
				}
				stack := make([]byte, 4096)
				stack = stack[:runtime.Stack(stack, false)]
				rid, _ := c.Get(ctxRequestID).(string)
				logger.Error().
					Str("request_id", rid).
					Str("route", c.Path()).
					Str("panic", fmt.Sprint(r)).
					Bytes("stack", stack).
					Msg("handler panicked")
				err = echo.NewHTTPError(http.StatusInternalServerError, "evaluation failed")
			}()
			return next(c)
		}
	}
}
