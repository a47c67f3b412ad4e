package blogs

import (
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"github.com/PuerkitoBio/goquery"
)

// contentSelectors locates the main content region, most specific first.
// The first selector with a non-empty match wins; if none match the whole
// stripped document is converted.
var contentSelectors = []string{
	"article",
	".post-content",
	".entry-content",
	".blog-post-content",
	"main",
	"#main-content",
}

// strippedNodes never contribute readable content and commonly carry
// boilerplate that corrupts extraction.
const strippedNodes = "script, style, nav, header, footer"

var (
	multiBlankRE   = regexp.MustCompile(`\n\s*\n\s*\n`)
	leadingSpaceRE = regexp.MustCompile(`(?m)^\s+`)
)

// Normalize converts raw blog HTML into readable markdown: boilerplate
// nodes are removed, the main content region is selected via the fallback
// chain, converted to ATX-heading markdown, and whitespace is collapsed.
// On any parse or conversion failure the original input is returned
// unchanged; content delivery degrades, it never hard-fails.
func Normalize(html string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = html
		}
	}()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}

	doc.Find(strippedNodes).Remove()

	region := doc.Selection
	for _, sel := range contentSelectors {
		if s := doc.Find(sel).First(); s.Length() > 0 {
			region = s
			break
		}
	}

	conv := md.NewConverter("", true, nil)
	conv.Use(plugin.GitHubFlavored())
	markdown := conv.Convert(region)

	markdown = multiBlankRE.ReplaceAllString(markdown, "\n\n")
	markdown = leadingSpaceRE.ReplaceAllString(markdown, "")

	return strings.TrimSpace(markdown)
}
