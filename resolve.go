package metarule

// Ensure FirstMatch implements Resolver at compile time.
var _ Resolver = (*FirstMatch)(nil)

// FirstMatch resolves a field to the value of the first rule that matches.
// Rules are evaluated in order and evaluation stops at the first match. A
// rule that panics is treated as not matching.
type FirstMatch struct{}

// NewFirstMatch creates a new FirstMatch resolver.
func NewFirstMatch() *FirstMatch {
	return &FirstMatch{}
}

// Resolve returns the first value produced by rules.
func (r *FirstMatch) Resolve(field Field, rules []Rule, c *Context) (Value, bool) {
	for _, rule := range rules {
		if v, ok := evaluate(rule, c); ok {
			return v, true
		}
	}
	return nil, false
}

// evaluate runs a single rule, converting panics and nil values into a
// non-match.
func evaluate(rule Rule, c *Context) (v Value, ok bool) {
	if rule == nil {
		return nil, false
	}
	defer func() {
		if recover() != nil {
			v, ok = nil, false
		}
	}()
	v, ok = rule.Evaluate(c)
	if !ok || v == nil {
		return nil, false
	}
	if rt, isReadTime := v.(*ReadTime); isReadTime && rt == nil {
		return nil, false
	}
	return v, true
}

// Extract resolves every field in rules and returns the collected values.
func Extract(r Resolver, rules RuleSet, c *Context) Result {
	result := make(Result, len(rules))
	for field, fieldRules := range rules {
		if v, ok := r.Resolve(field, fieldRules, c); ok {
			result[field] = v
		}
	}
	return result
}
