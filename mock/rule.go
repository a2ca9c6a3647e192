package mock

import "github.com/fwojciec/metarule"

var _ metarule.Rule = (*Rule)(nil)

// Rule is a mock implementation of metarule.Rule.
type Rule struct {
	EvaluateFn func(c *metarule.Context) (metarule.Value, bool)
}

func (r *Rule) Evaluate(c *metarule.Context) (metarule.Value, bool) {
	return r.EvaluateFn(c)
}

var _ metarule.Resolver = (*Resolver)(nil)

// Resolver is a mock implementation of metarule.Resolver.
type Resolver struct {
	ResolveFn func(field metarule.Field, rules []metarule.Rule, c *metarule.Context) (metarule.Value, bool)
}

func (r *Resolver) Resolve(field metarule.Field, rules []metarule.Rule, c *metarule.Context) (metarule.Value, bool) {
	return r.ResolveFn(field, rules, c)
}
