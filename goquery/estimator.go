package goquery

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/metarule"
	"golang.org/x/net/html"
)

// Reading speed defaults.
const (
	DefaultWordsPerMinute    = 275
	DefaultImageSeconds      = 12
	DefaultCJKCharsPerMinute = 500
	minImageSeconds          = 3
)

var (
	wordPattern = regexp.MustCompile(`\w+`)

	// cjkPattern matches Chinese, Japanese and Korean characters, which are
	// read per character rather than per word.
	cjkPattern = regexp.MustCompile(`[\x{3040}-\x{30ff}\x{3400}-\x{4dbf}\x{4e00}-\x{9fff}\x{f900}-\x{faff}\x{ff66}-\x{ff9f}]`)
)

// Ensure Estimator implements metarule.ReadTimeEstimator at compile time.
var _ metarule.ReadTimeEstimator = (*Estimator)(nil)

// Estimator estimates reading time from the words, CJK characters and
// images of an HTML fragment.
type Estimator struct {
	wordsPerMinute    float64
	imageSeconds      float64
	cjkCharsPerMinute float64
}

// EstimatorOption configures an Estimator.
type EstimatorOption func(*Estimator)

// WithWordsPerMinute sets the reading speed for word-based text.
// Defaults to DefaultWordsPerMinute.
func WithWordsPerMinute(n float64) EstimatorOption {
	return func(e *Estimator) {
		e.wordsPerMinute = n
	}
}

// WithImageSeconds sets the time spent on the first image. Each following
// image costs one second less, down to three seconds.
// Defaults to DefaultImageSeconds.
func WithImageSeconds(n float64) EstimatorOption {
	return func(e *Estimator) {
		e.imageSeconds = n
	}
}

// WithCJKCharsPerMinute sets the reading speed for CJK characters.
// Defaults to DefaultCJKCharsPerMinute.
func WithCJKCharsPerMinute(n float64) EstimatorOption {
	return func(e *Estimator) {
		e.cjkCharsPerMinute = n
	}
}

// NewEstimator creates a new Estimator.
func NewEstimator(opts ...EstimatorOption) *Estimator {
	e := &Estimator{
		wordsPerMinute:    DefaultWordsPerMinute,
		imageSeconds:      DefaultImageSeconds,
		cjkCharsPerMinute: DefaultCJKCharsPerMinute,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Estimate returns the reading time of an HTML fragment.
func (e *Estimator) Estimate(fragment string) (*metarule.ReadTime, error) {
	if strings.TrimSpace(fragment) == "" {
		return nil, metarule.Errorf(metarule.EINVALID, "empty HTML fragment")
	}
	if e.wordsPerMinute <= 0 || e.cjkCharsPerMinute <= 0 {
		return nil, metarule.Errorf(metarule.EINVALID, "reading speed must be positive")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, metarule.Errorf(metarule.EINVALID, "failed to parse HTML: %v", err)
	}

	images := doc.Find("img, image").Length()
	doc.Find("script, style, noscript, template").Remove()

	text := visibleText(doc.Selection)
	cjk := len(cjkPattern.FindAllStringIndex(text, -1))
	words := len(wordPattern.FindAllStringIndex(cjkPattern.ReplaceAllString(text, " "), -1))

	rt := &metarule.ReadTime{
		TotalWords:                  words,
		WordTime:                    float64(words) / e.wordsPerMinute,
		TotalImages:                 images,
		ImageTime:                   e.imageMinutes(images),
		OtherLanguageTimeCharacters: cjk,
		OtherLanguageTime:           float64(cjk) / e.cjkCharsPerMinute,
	}
	rt.Duration = rt.WordTime + rt.ImageTime + rt.OtherLanguageTime
	rt.HumanizedDuration = humanize(rt.Duration)
	return rt, nil
}

// imageMinutes charges imageSeconds for the first image and one second less
// for each following one, never less than minImageSeconds.
func (e *Estimator) imageMinutes(count int) float64 {
	var seconds float64
	for i := 0; i < count; i++ {
		seconds += math.Max(e.imageSeconds-float64(i), minImageSeconds)
	}
	return seconds / 60
}

// visibleText joins the text nodes under s with spaces so that words in
// adjacent elements are not merged.
func visibleText(s *goquery.Selection) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range s.Nodes {
		walk(n)
	}
	return b.String()
}

func humanize(minutes float64) string {
	switch {
	case minutes < 0.5:
		return "less than a minute"
	case minutes < 1.5:
		return "a minute"
	default:
		return fmt.Sprintf("%d minutes", int(math.Ceil(minutes)))
	}
}
