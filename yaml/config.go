// Package yaml loads declarative rule definitions from YAML so that new page
// conventions can be supported without code changes.
//
// A config lists rules in priority order:
//
//	rules:
//	  - field: image
//	    selector: 'meta[name="parsely-image-url"]'
//	    attr: content
//	    wrap: url
//	  - field: keywords
//	    position: back
//	    selector: '.post-tags a'
//	    texts: true
//	    wrap: hashtags
//
// Rules with position "front" (the default) take priority over the rules
// they are applied to; rules with position "back" are tried after them.
package yaml

import (
	"errors"
	"io"
	"slices"

	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/metarule"
	"gopkg.in/yaml.v3"
)

// Wrap kinds accepted in a rule definition.
const (
	WrapDate       = "date"
	WrapURL        = "url"
	WrapHandle     = "handle"
	WrapKeywords   = "keywords"
	WrapHashTags   = "hashtags"
	WrapLinkedData = "linkeddata"
	WrapReadTime   = "readtime"
)

// fieldWraps lists the wraps that produce a value of the right kind for each
// field.
var fieldWraps = map[metarule.Field][]string{
	metarule.FieldImage:          {WrapURL},
	metarule.FieldModified:       {WrapDate},
	metarule.FieldSiteTwitter:    {WrapHandle},
	metarule.FieldCreatorTwitter: {WrapHandle},
	metarule.FieldKeywords:       {WrapKeywords, WrapHashTags, WrapLinkedData},
	metarule.FieldReadTime:       {WrapReadTime},
}

// Rule positions relative to existing rules.
const (
	PositionFront = "front"
	PositionBack  = "back"
)

// Config is a list of rule definitions.
type Config struct {
	Rules []RuleConfig `yaml:"rules"`
}

// RuleConfig defines one rule: where to read the raw value and how to
// validate it. Exactly one of Attr, HTML and Texts must be set.
type RuleConfig struct {
	Field    string `yaml:"field"`
	Position string `yaml:"position"`
	Selector string `yaml:"selector"`
	Attr     string `yaml:"attr"`
	HTML     bool   `yaml:"html"`
	Texts    bool   `yaml:"texts"`
	Wrap     string `yaml:"wrap"`
	Prefix   string `yaml:"prefix"`
}

// Load decodes and validates a config. Unknown keys are rejected.
func Load(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, metarule.Errorf(metarule.EINVALID, "failed to parse rule config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate returns an error if any rule definition is invalid.
func (c *Config) Validate() error {
	for i := range c.Rules {
		if err := c.Rules[i].Validate(); err != nil {
			return metarule.Errorf(metarule.EINVALID, "rule %d: %s", i, metarule.ErrorMessage(err))
		}
	}
	return nil
}

// Validate returns an error if the rule definition is invalid.
func (rc *RuleConfig) Validate() error {
	if !metarule.Field(rc.Field).IsValid() {
		return metarule.Errorf(metarule.EINVALID, "unknown field %q", rc.Field)
	}

	switch rc.Position {
	case "", PositionFront, PositionBack:
	default:
		return metarule.Errorf(metarule.EINVALID, "unknown position %q", rc.Position)
	}

	if rc.Selector == "" {
		return metarule.Errorf(metarule.EINVALID, "selector required")
	}
	if _, err := cascadia.Compile(rc.Selector); err != nil {
		return metarule.Errorf(metarule.EINVALID, "invalid selector %q: %v", rc.Selector, err)
	}

	sources := 0
	if rc.Attr != "" {
		sources++
	}
	if rc.HTML {
		sources++
	}
	if rc.Texts {
		sources++
	}
	if sources != 1 {
		return metarule.Errorf(metarule.EINVALID, "exactly one of attr, html, texts required")
	}

	switch rc.Wrap {
	case WrapHashTags:
		if !rc.Texts {
			return metarule.Errorf(metarule.EINVALID, "wrap %q requires texts", rc.Wrap)
		}
	case WrapDate, WrapURL, WrapHandle, WrapKeywords, WrapLinkedData, WrapReadTime:
		if rc.Texts {
			return metarule.Errorf(metarule.EINVALID, "wrap %q cannot read texts", rc.Wrap)
		}
	default:
		return metarule.Errorf(metarule.EINVALID, "unknown wrap %q", rc.Wrap)
	}

	if !slices.Contains(fieldWraps[metarule.Field(rc.Field)], rc.Wrap) {
		return metarule.Errorf(metarule.EINVALID, "wrap %q not allowed for field %q", rc.Wrap, rc.Field)
	}

	return nil
}

// Rule builds the rule described by rc. Returns EINVALID if rc is invalid.
func (rc *RuleConfig) Rule() (metarule.Rule, error) {
	if err := rc.Validate(); err != nil {
		return nil, err
	}

	if rc.Wrap == WrapHashTags {
		return metarule.HashTags(metarule.Texts(rc.Selector)), nil
	}

	src := metarule.Attr(rc.Selector, rc.Attr)
	if rc.HTML {
		src = metarule.InnerHTML(rc.Selector)
	}

	switch rc.Wrap {
	case WrapDate:
		return metarule.Date(src), nil
	case WrapURL:
		return metarule.URL(src), nil
	case WrapHandle:
		return metarule.Handle(src), nil
	case WrapKeywords:
		return metarule.Keywords(src), nil
	case WrapLinkedData:
		prefix := rc.Prefix
		if prefix == "" {
			prefix = metarule.DefaultTagPrefix
		}
		return metarule.LinkedDataTags(src, prefix), nil
	case WrapReadTime:
		return metarule.ReadingTime(src), nil
	default:
		return nil, metarule.Errorf(metarule.EINVALID, "unknown wrap %q", rc.Wrap)
	}
}

// Apply returns a copy of rs with the configured rules added. Front rules
// keep their relative order and precede the existing rules; back rules
// follow them. The config is validated first; rs is left untouched on error.
func (c *Config) Apply(rs metarule.RuleSet) (metarule.RuleSet, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	out := rs.Clone()
	front := make(map[metarule.Field][]metarule.Rule)
	for i := range c.Rules {
		rc := &c.Rules[i]
		rule, err := rc.Rule()
		if err != nil {
			return nil, err
		}
		field := metarule.Field(rc.Field)
		if rc.Position == PositionBack {
			out.Append(field, rule)
			continue
		}
		front[field] = append(front[field], rule)
	}
	for field, rules := range front {
		out.Prepend(field, rules...)
	}
	return out, nil
}
