package metarule

// Value is the validated output of a rule. It is one of Text, Tags or
// *ReadTime.
type Value interface {
	isValue()
}

// Text is a single string value such as an image URL, a Twitter handle or a
// modification date.
type Text string

// Tags is a normalized list of keywords.
type Tags []string

// ReadTime is the estimate produced by a ReadTimeEstimator. Durations are in
// minutes.
type ReadTime struct {
	HumanizedDuration           string  `json:"humanizedDuration"`
	Duration                    float64 `json:"duration"`
	TotalWords                  int     `json:"totalWords"`
	WordTime                    float64 `json:"wordTime"`
	TotalImages                 int     `json:"totalImages"`
	ImageTime                   float64 `json:"imageTime"`
	OtherLanguageTimeCharacters int     `json:"otherLanguageTimeCharacters"`
	OtherLanguageTime           float64 `json:"otherLanguageTime"`
}

func (Text) isValue()      {}
func (Tags) isValue()      {}
func (*ReadTime) isValue() {}

// Result maps each resolved field to its value. Fields for which no rule
// matched have no entry.
type Result map[Field]Value

// Get returns the value for a field and whether it was resolved.
func (r Result) Get(field Field) (Value, bool) {
	v, ok := r[field]
	return v, ok
}

// Text returns the string value for a field.
// Returns false if the field is absent or holds a different kind of value.
func (r Result) Text(field Field) (string, bool) {
	v, ok := r[field].(Text)
	return string(v), ok
}

// Tags returns the tag list for a field.
// Returns false if the field is absent or holds a different kind of value.
func (r Result) Tags(field Field) ([]string, bool) {
	v, ok := r[field].(Tags)
	return []string(v), ok
}

// ReadTime returns the reading time estimate for a field.
// Returns false if the field is absent or holds a different kind of value.
func (r Result) ReadTime(field Field) (*ReadTime, bool) {
	v, ok := r[field].(*ReadTime)
	return v, ok && v != nil
}
