package chat

import (
	"html"
	"net/url"
	"regexp"
	"slices"
	"strings"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/microcosm-cc/bluemonday"
)

var (
	linkDirective = regexp.MustCompile(`(?m)[ \t]*LINK:\s*(/\S+)[ \t]*`)
	bareURL       = regexp.MustCompile(`https?://[^\s<>"]+`)
	blankLines    = regexp.MustCompile(`\n{3,}`)
)

const (
	sentencePunctuation = ".,;:!?"
	artifactPunctuation = ".,;:!?)]}*'\"»"
)

type Formatter struct {
	knownDomains []string
	sanitizer    *bluemonday.Policy
}

func NewFormatter(knownDomains []string) *Formatter {
	return &Formatter{knownDomains: knownDomains, sanitizer: bluemonday.StrictPolicy()}
}

// Format strips markup, pulls out LINK:/path directives and splits the prose into text and link segments.
func (f *Formatter) Format(reply string) *models.ChatResponse {
	text := strings.TrimSpace(html.UnescapeString(f.sanitizer.Sanitize(reply)))

	links := []string{}
	for _, m := range linkDirective.FindAllStringSubmatch(text, -1) {
		path := strings.TrimRight(m[1], sentencePunctuation)
		if !slices.Contains(links, path) {
			links = append(links, path)
		}
	}

	text = linkDirective.ReplaceAllString(text, "")
	text = blankLines.ReplaceAllString(strings.TrimSpace(text), "\n\n")

	return &models.ChatResponse{
		Reply:    text,
		Links:    links,
		Segments: f.Linkify(text),
	}
}

// Linkify splits text around bare URLs. Trailing punctuation is never part of
// a link, and links to known domains also drop quote and bracket artifacts.
func (f *Formatter) Linkify(text string) []models.Segment {
	segments := []models.Segment{}
	last := 0

	for _, loc := range bareURL.FindAllStringIndex(text, -1) {
		href := text[loc[0]:loc[1]]

		cutset := sentencePunctuation
		if f.isKnown(href) {
			cutset = artifactPunctuation
		}

		href = strings.TrimRight(href, cutset)
		end := loc[0] + len(href)

		if loc[0] > last {
			segments = append(segments, models.Segment{Kind: models.SegmentText, Text: text[last:loc[0]]})
		}

		segments = append(segments, models.Segment{Kind: models.SegmentLink, Text: href, Href: href})
		last = end
	}

	if last < len(text) {
		segments = append(segments, models.Segment{Kind: models.SegmentText, Text: text[last:]})
	}

	return segments
}

func (f *Formatter) isKnown(href string) bool {
	u, err := url.Parse(strings.TrimRight(href, artifactPunctuation))
	if err != nil {
		return false
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")

	for _, d := range f.knownDomains {
		d = strings.ToLower(strings.TrimSpace(d))
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}

	return false
}
