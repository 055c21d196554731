// Copyright (c) 2023 The KBase Project and its Contributors
// Copyright (c) 2023 Cohere Consulting, LLC
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do
// so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// The jats package converts JATS abstract markup, as served by Crossref, into
// a small HTML subset suitable for display.
//
// Conversion is textual: every occurrence of a source tag name is replaced by
// its target, in rule order, without parsing tag boundaries. A source name
// that appears inside a longer tag name (or inside text) is rewritten too, and
// an earlier rule can consume part of a later rule's source name ("list"
// rewrites the start of "list-item"). It is not an XML parser.
package jats

import (
	"regexp"
	"strings"
)

// the namespace prefix Crossref attaches to JATS element names
const DefaultPrefix = "jats:"

// A rule rewrites every occurrence of each of its source names to its target.
type Rule struct {
	Target  string
	Sources []string
}

// the rule table used by Convert
var DefaultRules = []Rule{
	{
		Target: "div",
		Sources: []string{
			"book",
			"body",
			"book-meta",
			"book-title-group",
			"contrib-group",
			"contrib",
			"name",
			"publisher",
			"pub-date",
			"book-part-meta",
			"title-group",
			"alternate-form",
			"sec-meta",
			"book-part",
			"back",
			"ref-list",
			"ref",
			"sec",
			"disp-quote",
			"fig",
			"book-id",
			"book-title",
			"subtitle",
			"volume",
			"surname",
			"given-names",
			"publisher-name",
			"publisher-loc",
			"isbn",
			"year",
			"day",
			"month",
			"elocation-id",
			"book-meta//title",
			"book-part-meta//title",
			"sec-meta//title",
			"book-meta//ext-link",
		},
	},
	{Target: "p", Sources: []string{"p", "title", "mixed-citation", "label", "caption"}},
	{Target: "h3", Sources: []string{"sec/title"}},
	{Target: "ul", Sources: []string{"list"}},
	{Target: "li", Sources: []string{"list-item"}},
	{Target: "i", Sources: []string{"italic"}},
	{Target: "b", Sources: []string{"bold"}},
	{Target: "a", Sources: []string{"ext-link"}},
}

// paragraphs holding nothing but a section label that duplicates record
// structure ("Abstract", "Motivation.", ...), with surrounding whitespace
var boilerplate = []*regexp.Regexp{
	regexp.MustCompile(`\s*<p>\s*[Aa]bstract[\s.]*</p>\s*`),
	regexp.MustCompile(`\s*<p>\s*[Mm]otivation[\s.]*</p>\s*`),
	regexp.MustCompile(`\s*<p>\s*[Rr]esults[\s.]*</p>\s*`),
}

// A Converter rewrites namespaced JATS markup using an ordered rule table.
type Converter struct {
	// namespace prefix removed from the markup before rules are applied
	Prefix string
	// rules applied in order
	Rules []Rule
}

// creates a converter with the default prefix and rule table
func NewConverter() Converter {
	return Converter{
		Prefix: DefaultPrefix,
		Rules:  DefaultRules,
	}
}

// converts the given JATS markup to HTML, removing boilerplate section-label
// paragraphs. Empty markup converts to an empty string. Unexpected markup
// passes through partially rewritten.
func (c Converter) Convert(markup string) string {
	if markup == "" {
		return ""
	}
	html := markup
	if c.Prefix != "" {
		html = strings.ReplaceAll(html, c.Prefix, "")
	}
	for _, rule := range c.Rules {
		for _, source := range rule.Sources {
			if source == "" {
				continue
			}
			html = strings.ReplaceAll(html, source, rule.Target)
		}
	}
	for _, label := range boilerplate {
		html = label.ReplaceAllString(html, "")
	}
	return html
}

// converts the given JATS markup to HTML using the default rules
func Convert(markup string) string {
	return NewConverter().Convert(markup)
}
