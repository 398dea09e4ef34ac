package main

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// stripTags reduces operator-supplied HTML to plain text: tags and their
// attributes are dropped, entities are unescaped (the template layer escapes
// again on output) and whitespace is collapsed.
func stripTags(src string) string {
	out := strictPolicy.Sanitize(src)
	out = html.UnescapeString(out)
	return strings.Join(strings.Fields(out), " ")
}
