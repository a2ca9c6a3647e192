package metarule

import (
	"encoding/json"
	"strings"
)

// DefaultTagPrefix marks the linked data keywords that are article tags.
const DefaultTagPrefix = "Tag:"

// ValidateDate trims a date-like value and rejects it if nothing remains.
func ValidateDate(raw string) (string, bool) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", false
	}
	return v, true
}

// ValidateURL accepts raw only if it is a URL or a relative reference, and
// returns it resolved against baseURL.
func ValidateURL(urls URLResolver, raw, baseURL string) (string, bool) {
	if urls == nil || !urls.IsURL(raw) {
		return "", false
	}
	return urls.Resolve(baseURL, raw)
}

// ValidateHandle accepts a Twitter handle only if it starts with "@".
// The handle is returned unchanged.
func ValidateHandle(raw string) (string, bool) {
	if raw == "" || raw[0] != '@' {
		return "", false
	}
	return raw, true
}

// NormalizeTags lowercases and trims every tag and replaces spaces with
// hyphens. Returns false only for an empty list.
func NormalizeTags(raw []string) ([]string, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	tags := make([]string, len(raw))
	for i, t := range raw {
		tags[i] = strings.ReplaceAll(strings.TrimSpace(strings.ToLower(t)), " ", "-")
	}
	return tags, true
}

// ValidateKeywords splits a comma separated keyword list into normalized
// tags. A value without any comma is rejected.
func ValidateKeywords(raw string) ([]string, bool) {
	if !strings.Contains(raw, ",") {
		return nil, false
	}
	return NormalizeTags(strings.Split(raw, ","))
}

// linkedData is the part of a JSON-LD record carrying keywords.
type linkedData struct {
	Keywords []json.RawMessage `json:"keywords"`
}

// ParseLinkedDataTags reads the keywords array of a JSON-LD record and
// returns the entries namespaced with prefix, prefix removed. Entries
// without the prefix and non-string entries are skipped. Invalid JSON, a
// missing or non-array keywords property, or no namespaced entry yields
// false.
func ParseLinkedDataTags(raw, prefix string) ([]string, bool) {
	var data linkedData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, false
	}
	var tags []string
	for _, k := range data.Keywords {
		var s string
		if err := json.Unmarshal(k, &s); err != nil {
			continue
		}
		if tag, ok := strings.CutPrefix(s, prefix); ok {
			tags = append(tags, tag)
		}
	}
	return NormalizeTags(tags)
}
