// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the response helpers shared by all endpoints. Success
// bodies are always a single named wrapper ({"review": {...}},
// {"categories": [...]}); error bodies are always {"msg": "..."} and are only
// ever written by the classifier in errors.go.
//
// Example error response:
//
//	HTTP/1.1 404 Not Found
//	{ "msg": "review_id not found" }
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-games-backend/internal/http/middleware"
)

// ErrorResponse is the error envelope returned by every endpoint.
type ErrorResponse struct {
	// Human-readable message, safe to show to users
	Msg string `json:"msg" example:"review_id not found"`
}

// fail aborts the request with an error envelope. Server errors (>=500) are
// logged with the request-scoped logger together with the underlying cause.
func fail(c *gin.Context, status int, msg string, cause error) {
	if status >= http.StatusInternalServerError {
		ev := middleware.LoggerFrom(c).Error().Int("status", status)
		if cause != nil {
			ev = ev.Err(cause)
		}
		ev.Msg("api error")
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Msg: msg})
}

// ok writes a 200 JSON response.
func ok(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}
