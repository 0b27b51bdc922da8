package html

import (
	"html"
	"regexp"
	"strings"
)

// Pre-compiled regular expressions for HTML parsing performance.
var (
	scriptTag         = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleTag          = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	noscriptTag       = regexp.MustCompile(`(?is)<noscript[^>]*>.*?</noscript>`)
	headTag           = regexp.MustCompile(`(?is)<head[^>]*>.*?</head>`)
	svgTag            = regexp.MustCompile(`(?is)<svg[^>]*>.*?</svg>`)
	navTag            = regexp.MustCompile(`(?is)<(nav|footer)[^>]*>.*?</(nav|footer)>`)
	htmlComments      = regexp.MustCompile(`(?s)<!--.*?-->`)
	blockElements     = regexp.MustCompile(`(?i)</(p|div|br|hr|h[1-6]|li|tr|blockquote|pre|table|section|article)>`)
	openBlockElements = regexp.MustCompile(`(?i)<(p|div|h[1-6]|li|tr|blockquote|pre|table|section|article)[^>]*>`)
	brTags            = regexp.MustCompile(`(?i)<br\s*/?>`)
	hrTags            = regexp.MustCompile(`(?i)<hr\s*/?>`)
	allTags           = regexp.MustCompile(`<[^>]+>`)
	multiSpaces       = regexp.MustCompile(`[ \t\x{00a0}]+`)
)

// Text removes markup from page and returns its readable text,
// one non-empty trimmed line per block.
func Text(page string) string {
	// Drop elements whose text is never part of the regulation body.
	page = scriptTag.ReplaceAllString(page, "")
	page = styleTag.ReplaceAllString(page, "")
	page = noscriptTag.ReplaceAllString(page, "")
	page = headTag.ReplaceAllString(page, "")
	page = svgTag.ReplaceAllString(page, "")
	page = navTag.ReplaceAllString(page, "")
	page = htmlComments.ReplaceAllString(page, "")

	page = openBlockElements.ReplaceAllString(page, "\n")
	page = blockElements.ReplaceAllString(page, "\n")
	page = brTags.ReplaceAllString(page, "\n")
	page = hrTags.ReplaceAllString(page, "\n")

	page = allTags.ReplaceAllString(page, "")
	page = html.UnescapeString(page)
	page = multiSpaces.ReplaceAllString(page, " ")

	lines := strings.Split(page, "\n")
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			result = append(result, line)
		}
	}

	return strings.Join(result, "\n")
}
