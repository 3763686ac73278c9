// Package handlers – error classification.
//
// ErrorHandler is the single terminal stage that turns a failure recorded on
// the gin context (c.Error) into an HTTP response. Handlers and the router's
// NoRoute fallback never write error bodies themselves.
//
//	RouteNotFound    → 404 {"msg":"Route not found"}
//	InvalidParameter → 400 {"msg":"bad request - <param> <reason>"}
//	NotFound         → 404 {"msg":"<param> not found"}
//	RateLimited      → 429 {"msg":"Too many requests"}
//	Internal (panic) → 500 {"msg":"Internal server error"}
//	anything else    → 500 {"msg":"Internal server error"}
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tbourn/go-games-backend/internal/services"
)

// apiErrors counts classified failures by kind.
var apiErrors = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_errors_total",
		Help: "Total number of classified API errors.",
	},
	[]string{"kind"},
)

func init() {
	prometheus.MustRegister(apiErrors)
}

// ErrorHandler returns the classifier middleware. It must run inside any
// middleware that wraps the response writer (e.g. gzip) so its body is
// written through it.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		status, msg, kind := classify(err)
		apiErrors.WithLabelValues(kind.String()).Inc()
		fail(c, status, msg, err)
	}
}

// classify maps err to status, public message, and the counted kind. Errors
// that are not *services.Error are treated as storage failures.
func classify(err error) (int, string, services.Kind) {
	var se *services.Error
	if !errors.As(err, &se) {
		return http.StatusInternalServerError, services.MsgInternal, services.KindStorage
	}
	switch se.Kind {
	case services.KindRouteNotFound:
		return http.StatusNotFound, se.Message(), se.Kind
	case services.KindInvalidParameter:
		return http.StatusBadRequest, se.Message(), se.Kind
	case services.KindNotFound:
		return http.StatusNotFound, se.Message(), se.Kind
	case services.KindRateLimited:
		return http.StatusTooManyRequests, se.Message(), se.Kind
	case services.KindInternal:
		return http.StatusInternalServerError, services.MsgInternal, se.Kind
	default:
		return http.StatusInternalServerError, services.MsgInternal, services.KindStorage
	}
}

// RouteNotFound is the NoRoute handler: it records the RouteNotFound variant
// for the classifier.
func RouteNotFound(c *gin.Context) {
	_ = c.Error(services.ErrRouteNotFound)
}
