package metarule

// readTimeSelectors locate the article body on sites known to publish one,
// most specific first.
var readTimeSelectors = []string{
	".article__data",
	".article-content",
	".uni-paragraph",
	".episode-body-summary",
	"article",
	"#readme",
	".post__content",
}

// imageMeta lists the meta tags carrying the page's preview image, in order
// of preference.
var imageMeta = []string{
	`meta[property="og:image:secure_url"]`,
	`meta[property="og:image:url"]`,
	`meta[property="og:image"]`,
	`meta[name="twitter:image:src"]`,
	`meta[name="twitter:image"]`,
	`meta[itemprop="image"]`,
}

// Option customizes the rule set returned by DefaultRules.
type Option func(*options)

type options struct {
	tagPrefix string
	content   ContentExtractor
}

// WithTagPrefix sets the prefix identifying article tags among JSON-LD
// keywords. Defaults to DefaultTagPrefix.
func WithTagPrefix(prefix string) Option {
	return func(o *options) {
		o.tagPrefix = prefix
	}
}

// WithContentFallback adds a last read time rule that estimates the main
// content found by ext, for pages matching none of the known selectors.
func WithContentFallback(ext ContentExtractor) Option {
	return func(o *options) {
		o.content = ext
	}
}

// DefaultRules returns the built-in rules for every supported field.
// The returned set is a fresh copy and may be modified by the caller.
func DefaultRules(opts ...Option) RuleSet {
	o := options{tagPrefix: DefaultTagPrefix}
	for _, opt := range opts {
		opt(&o)
	}

	rs := RuleSet{
		FieldModified: {
			Date(Attr(`meta[property="article:modified_time"]`, "content")),
		},
		FieldSiteTwitter: {
			Handle(Attr(`meta[name="twitter:site"]`, "content")),
		},
		FieldCreatorTwitter: {
			Handle(Attr(`meta[name="twitter:creator"]`, "content")),
		},
		FieldKeywords: {
			HashTags(Texts(".tags > .tag")),
			LinkedDataTags(InnerHTML(`script[type="application/ld+json"]`), o.tagPrefix),
			Keywords(Attr(`meta[name="keywords"]`, "content")),
		},
	}

	for _, sel := range imageMeta {
		rs.Append(FieldImage, URL(Attr(sel, "content")))
	}

	for _, sel := range readTimeSelectors {
		rs.Append(FieldReadTime, ReadingTime(InnerHTML(sel)))
	}
	if o.content != nil {
		rs.Append(FieldReadTime, ReadingTime(Content(o.content)))
	}

	return rs
}
