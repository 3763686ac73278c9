package services

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

// classify maps a gateway error to a service error. Zero rows become
// NotFound(param); anything else, including a deadline, is a storage failure.
func classify(err error, param string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(param)
	}
	return Storage(err)
}

// withDeadline bounds ctx by d when d is positive.
func withDeadline(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// endSpan records err on span when it is a storage failure. Client errors
// (bad parameter, not found) leave the span status unset.
func endSpan(span trace.Span, err error) {
	if err != nil && KindOf(err) == KindStorage {
		span.RecordError(err)
		span.SetStatus(codes.Error, "storage failure")
	}
	span.End()
}
