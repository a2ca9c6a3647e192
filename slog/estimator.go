package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/metarule"
)

// Ensure LoggingEstimator implements metarule.ReadTimeEstimator.
var _ metarule.ReadTimeEstimator = (*LoggingEstimator)(nil)

// LoggingEstimator wraps a ReadTimeEstimator with logging.
// Failures are logged at warn level since the read time rule swallows them.
type LoggingEstimator struct {
	next   metarule.ReadTimeEstimator
	logger *slog.Logger
}

// NewLoggingEstimator creates a new LoggingEstimator.
func NewLoggingEstimator(next metarule.ReadTimeEstimator, logger *slog.Logger) *LoggingEstimator {
	return &LoggingEstimator{next: next, logger: logger}
}

// Estimate delegates to the wrapped estimator and logs the operation.
func (e *LoggingEstimator) Estimate(html string) (rt *metarule.ReadTime, err error) {
	defer func(begin time.Time) {
		if err != nil {
			e.logger.Warn("read time estimate failed",
				"size", len(html),
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		var words, images int
		if rt != nil {
			words, images = rt.TotalWords, rt.TotalImages
		}
		e.logger.Debug("read time estimate",
			"size", len(html),
			"words", words,
			"images", images,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Estimate(html)
}
