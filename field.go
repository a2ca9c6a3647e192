package metarule

// Field names a metadata slot filled by a list of rules.
type Field string

// Supported metadata fields.
const (
	FieldImage          Field = "image"
	FieldKeywords       Field = "keywords"
	FieldReadTime       Field = "readTime"
	FieldModified       Field = "modified"
	FieldSiteTwitter    Field = "siteTwitter"
	FieldCreatorTwitter Field = "creatorTwitter"
)

// Fields returns every supported field in a fixed order.
func Fields() []Field {
	return []Field{
		FieldImage,
		FieldKeywords,
		FieldReadTime,
		FieldModified,
		FieldSiteTwitter,
		FieldCreatorTwitter,
	}
}

// IsValid reports whether f is one of the supported fields.
func (f Field) IsValid() bool {
	for _, known := range Fields() {
		if f == known {
			return true
		}
	}
	return false
}
