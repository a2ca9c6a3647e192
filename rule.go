package metarule

// Rule extracts and validates one candidate value for a field.
// It returns false when the page does not carry the value or the value is
// rejected by the field's validator.
type Rule interface {
	Evaluate(c *Context) (Value, bool)
}

// RuleFunc adapts an ordinary function to the Rule interface.
type RuleFunc func(c *Context) (Value, bool)

// Evaluate calls f(c).
func (f RuleFunc) Evaluate(c *Context) (Value, bool) {
	return f(c)
}

// RuleSet maps each field to its rules, ordered by priority.
type RuleSet map[Field][]Rule

// Clone returns a copy of the rule set whose lists can be modified without
// affecting rs.
func (rs RuleSet) Clone() RuleSet {
	other := make(RuleSet, len(rs))
	for field, rules := range rs {
		other[field] = append([]Rule(nil), rules...)
	}
	return other
}

// Prepend adds rules in front of the existing rules for field, giving them
// priority. A nil rule set is allocated on first use.
func (rs *RuleSet) Prepend(field Field, rules ...Rule) {
	if *rs == nil {
		*rs = make(RuleSet)
	}
	(*rs)[field] = append(append([]Rule(nil), rules...), (*rs)[field]...)
}

// Append adds rules after the existing rules for field. A nil rule set is
// allocated on first use.
func (rs *RuleSet) Append(field Field, rules ...Rule) {
	if *rs == nil {
		*rs = make(RuleSet)
	}
	(*rs)[field] = append((*rs)[field], rules...)
}

// Resolver picks the value of a field from its rules.
type Resolver interface {
	// Resolve evaluates rules against c and returns the selected value.
	// Returns false when no rule produced a value.
	Resolve(field Field, rules []Rule, c *Context) (Value, bool)
}
