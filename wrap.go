package metarule

import "strings"

// Date wraps src with ValidateDate.
func Date(src Source) Rule {
	return RuleFunc(func(c *Context) (Value, bool) {
		raw, ok := src(c.Document)
		if !ok {
			return nil, false
		}
		v, ok := ValidateDate(raw)
		if !ok {
			return nil, false
		}
		return Text(v), true
	})
}

// URL wraps src with ValidateURL, resolving relative values against the
// page URL.
func URL(src Source) Rule {
	return RuleFunc(func(c *Context) (Value, bool) {
		raw, ok := src(c.Document)
		if !ok {
			return nil, false
		}
		v, ok := ValidateURL(c.URLs, raw, c.URL)
		if !ok {
			return nil, false
		}
		return Text(v), true
	})
}

// Handle wraps src with ValidateHandle.
func Handle(src Source) Rule {
	return RuleFunc(func(c *Context) (Value, bool) {
		raw, ok := src(c.Document)
		if !ok {
			return nil, false
		}
		v, ok := ValidateHandle(raw)
		if !ok {
			return nil, false
		}
		return Text(v), true
	})
}

// Keywords wraps src with ValidateKeywords.
func Keywords(src Source) Rule {
	return RuleFunc(func(c *Context) (Value, bool) {
		raw, ok := src(c.Document)
		if !ok {
			return nil, false
		}
		tags, ok := ValidateKeywords(raw)
		if !ok {
			return nil, false
		}
		return Tags(tags), true
	})
}

// HashTags wraps a list of tag labels such as "#golang", dropping the first
// "#" of each label before normalizing.
func HashTags(src ListSource) Rule {
	return RuleFunc(func(c *Context) (Value, bool) {
		raw := src(c.Document)
		labels := make([]string, len(raw))
		for i, l := range raw {
			labels[i] = strings.Replace(l, "#", "", 1)
		}
		tags, ok := NormalizeTags(labels)
		if !ok {
			return nil, false
		}
		return Tags(tags), true
	})
}

// LinkedDataTags wraps a JSON-LD source with ParseLinkedDataTags.
func LinkedDataTags(src Source, prefix string) Rule {
	return RuleFunc(func(c *Context) (Value, bool) {
		raw, ok := src(c.Document)
		if !ok {
			return nil, false
		}
		tags, ok := ParseLinkedDataTags(raw, prefix)
		if !ok {
			return nil, false
		}
		return Tags(tags), true
	})
}

// ReadingTime estimates the reading time of the fragment returned by src. The
// estimate is returned exactly as the estimator produced it.
func ReadingTime(src Source) Rule {
	return RuleFunc(func(c *Context) (Value, bool) {
		if c.Estimator == nil {
			return nil, false
		}
		fragment, ok := src(c.Document)
		if !ok || fragment == "" {
			return nil, false
		}
		rt, err := c.Estimator.Estimate(fragment)
		if err != nil || rt == nil {
			return nil, false
		}
		return rt, true
	})
}
