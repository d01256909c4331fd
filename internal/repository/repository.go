package repository

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/nba-data-client/internal/logging"
	"github.com/preston-bernstein/nba-data-client/internal/result"
)

// fail classifies err once and logs the outcome.
func fail[T any](ctx context.Context, logger *slog.Logger, endpoint string, err error, attrs ...any) result.Result[T] {
	classified := Classify(err)
	attrs = append(attrs,
		logging.FieldEndpoint, endpoint,
		logging.FieldErrorKind, string(classified.Kind),
	)
	if classified.HasCode() {
		attrs = append(attrs, logging.FieldStatusCode, classified.Code)
	}
	logging.Warn(logging.FromContext(ctx, logger), classified.Message, attrs...)
	return result.Failure[T](classified)
}
