package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/metarule"
)

// Ensure LoggingResolver implements metarule.Resolver.
var _ metarule.Resolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a Resolver with debug logging for field resolution.
type LoggingResolver struct {
	next   metarule.Resolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next metarule.Resolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the outcome along with
// the index of the rule that produced the value, or -1 when no rule did.
func (r *LoggingResolver) Resolve(field metarule.Field, rules []metarule.Rule, c *metarule.Context) (v metarule.Value, ok bool) {
	index := -1
	defer func(begin time.Time) {
		if !ok {
			index = -1
		}
		r.logger.Debug("field resolution",
			"field", string(field),
			"url", pageURL(c),
			"rules", len(rules),
			"matched", ok,
			"index", index,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return r.next.Resolve(field, recordMatch(rules, &index), c)
}

// recordMatch wraps rules so that the position of the last rule returning a
// value is stored in index. Nil rules stay nil.
func recordMatch(rules []metarule.Rule, index *int) []metarule.Rule {
	if len(rules) == 0 {
		return rules
	}
	wrapped := make([]metarule.Rule, len(rules))
	for i, rule := range rules {
		if rule == nil {
			continue
		}
		wrapped[i] = metarule.RuleFunc(func(c *metarule.Context) (metarule.Value, bool) {
			v, ok := rule.Evaluate(c)
			if ok && v != nil {
				*index = i
			}
			return v, ok
		})
	}
	return wrapped
}

func pageURL(c *metarule.Context) string {
	if c == nil {
		return ""
	}
	return c.URL
}
