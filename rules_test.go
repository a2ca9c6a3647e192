package metarule_test

import (
	"testing"

	"github.com/fwojciec/metarule"
	"github.com/fwojciec/metarule/goquery"
	"github.com/fwojciec/metarule/mock"
	"github.com/fwojciec/metarule/url"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extractHTML(t *testing.T, html string, rules metarule.RuleSet) metarule.Result {
	t.Helper()

	doc, err := goquery.NewDocument(html)
	require.NoError(t, err)

	return metarule.Extract(metarule.NewFirstMatch(), rules, &metarule.Context{
		Document:  doc,
		URL:       "https://example.com/post",
		URLs:      url.NewResolver(),
		Estimator: goquery.NewEstimator(),
	})
}

func TestDefaultRules_CoversEveryField(t *testing.T) {
	t.Parallel()

	rules := metarule.DefaultRules()

	for _, field := range metarule.Fields() {
		assert.NotEmpty(t, rules[field], "field %s", field)
	}
}

func TestDefaultRules_EmptyDocument(t *testing.T) {
	t.Parallel()

	result := extractHTML(t, "<html><head></head><body></body></html>", metarule.DefaultRules())

	assert.Empty(t, result)
}

func TestDefaultRules_Image(t *testing.T) {
	t.Parallel()

	t.Run("prefers secure URL", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<meta name="twitter:image" content="https://example.com/twitter.png">
<meta property="og:image" content="https://example.com/og.png">
<meta property="og:image:secure_url" content="https://example.com/secure.png">
</head><body></body></html>`

		img, ok := extractHTML(t, html, metarule.DefaultRules()).Text(metarule.FieldImage)

		require.True(t, ok)
		assert.Equal(t, "https://example.com/secure.png", img)
	})

	t.Run("skips invalid value and resolves relative fallback", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<meta property="og:image" content="not a url">
<meta name="twitter:image:src" content="/img/photo.jpg">
</head><body></body></html>`

		img, ok := extractHTML(t, html, metarule.DefaultRules()).Text(metarule.FieldImage)

		require.True(t, ok)
		assert.Equal(t, "https://example.com/img/photo.jpg", img)
	})

	t.Run("skips placeholder og image", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<meta property="og:image" content="#">
<meta name="twitter:image" content=" https://example.com/twitter.png
">
</head><body></body></html>`

		img, ok := extractHTML(t, html, metarule.DefaultRules()).Text(metarule.FieldImage)

		require.True(t, ok)
		assert.Equal(t, "https://example.com/twitter.png", img)
	})

	t.Run("reads itemprop image", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta itemprop="image" content="https://cdn.example.org/i.jpg"></head><body></body></html>`

		img, ok := extractHTML(t, html, metarule.DefaultRules()).Text(metarule.FieldImage)

		require.True(t, ok)
		assert.Equal(t, "https://cdn.example.org/i.jpg", img)
	})
}

func TestDefaultRules_Twitter(t *testing.T) {
	t.Parallel()

	html := `<html><head>
<meta name="twitter:site" content="@example">
<meta name="twitter:creator" content="alice">
</head><body></body></html>`

	result := extractHTML(t, html, metarule.DefaultRules())

	site, ok := result.Text(metarule.FieldSiteTwitter)
	require.True(t, ok)
	assert.Equal(t, "@example", site)
	_, ok = result.Get(metarule.FieldCreatorTwitter)
	assert.False(t, ok, "handle without @ is rejected")
}

func TestDefaultRules_Modified(t *testing.T) {
	t.Parallel()

	html := `<html><head><meta property="article:modified_time" content=" 2024-05-01T08:00:00+00:00 "></head><body></body></html>`

	modified, ok := extractHTML(t, html, metarule.DefaultRules()).Text(metarule.FieldModified)

	require.True(t, ok)
	assert.Equal(t, "2024-05-01T08:00:00+00:00", modified)
}

func TestDefaultRules_Keywords(t *testing.T) {
	t.Parallel()

	t.Run("prefers tag links", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<meta name="keywords" content="meta,keywords">
</head><body>
<div class="tags"><a class="tag">#Go</a><a class="tag">#WebDev</a></div>
</body></html>`

		tags, ok := extractHTML(t, html, metarule.DefaultRules()).Tags(metarule.FieldKeywords)

		require.True(t, ok)
		assert.Equal(t, []string{"go", "webdev"}, tags)
	})

	t.Run("reads linked data tags", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<script type="application/ld+json">{"@type":"NewsArticle","keywords":["Tag:Go","Tag:Web Dev","Topic:x"]}</script>
<meta name="keywords" content="meta,keywords">
</head><body></body></html>`

		tags, ok := extractHTML(t, html, metarule.DefaultRules()).Tags(metarule.FieldKeywords)

		require.True(t, ok)
		assert.Equal(t, []string{"go", "web-dev"}, tags)
	})

	t.Run("falls back to meta keywords after malformed linked data", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<script type="application/ld+json">{"keywords": [</script>
<meta name="keywords" content="Go, Web Dev,AI">
</head><body></body></html>`

		tags, ok := extractHTML(t, html, metarule.DefaultRules()).Tags(metarule.FieldKeywords)

		require.True(t, ok)
		assert.Equal(t, []string{"go", "web-dev", "ai"}, tags)
	})

	t.Run("rejects single meta keyword", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta name="keywords" content="golang"></head><body></body></html>`

		_, ok := extractHTML(t, html, metarule.DefaultRules()).Get(metarule.FieldKeywords)

		assert.False(t, ok)
	})

	t.Run("uses custom tag prefix", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<script type="application/ld+json">{"keywords":["Tag:go","Topic:rust"]}</script>
</head><body></body></html>`

		tags, ok := extractHTML(t, html, metarule.DefaultRules(metarule.WithTagPrefix("Topic:"))).Tags(metarule.FieldKeywords)

		require.True(t, ok)
		assert.Equal(t, []string{"rust"}, tags)
	})
}

func TestDefaultRules_ReadTime(t *testing.T) {
	t.Parallel()

	t.Run("estimates most specific container", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<article><p>one two three four five six</p></article>
<div class="article-content"><p>one two</p></div>
</body></html>`

		rt, ok := extractHTML(t, html, metarule.DefaultRules()).ReadTime(metarule.FieldReadTime)

		require.True(t, ok)
		assert.Equal(t, 2, rt.TotalWords)
	})

	t.Run("absent without known container", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="story"><p>Words here.</p></div></body></html>`

		_, ok := extractHTML(t, html, metarule.DefaultRules()).Get(metarule.FieldReadTime)

		assert.False(t, ok)
	})

	t.Run("content fallback runs last", func(t *testing.T) {
		t.Parallel()

		ext := &mock.ContentExtractor{
			ExtractFn: func(string) (*metarule.ContentResult, error) {
				return &metarule.ContentResult{ContentHTML: "<p>alpha beta gamma</p>"}, nil
			},
		}
		html := `<html><body><div class="story"><p>Words here.</p></div></body></html>`

		rt, ok := extractHTML(t, html, metarule.DefaultRules(metarule.WithContentFallback(ext))).ReadTime(metarule.FieldReadTime)

		require.True(t, ok)
		assert.Equal(t, 3, rt.TotalWords)
	})
}

func TestDefaultRules_ReturnsFreshCopy(t *testing.T) {
	t.Parallel()

	rs := metarule.DefaultRules()
	rs.Prepend(metarule.FieldImage, always(metarule.Text("x")))

	assert.Len(t, metarule.DefaultRules()[metarule.FieldImage], 6)
}
