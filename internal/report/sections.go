// ABOUTME: Helpers for working with generated report HTML.
// ABOUTME: Strips provider code fences and extracts sections by id.
package report

import (
	"bytes"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var fenceRe = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*\\n?(.*?)\\n?```$")

// Clean trims whitespace and removes a Markdown code fence wrapped around
// the whole response, which providers often add around HTML.
func Clean(content string) string {
	content = strings.TrimSpace(content)
	if m := fenceRe.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	return content
}

// Section returns the HTML of the <section> element whose id matches,
// including the element itself.
func Section(content, id string) (string, bool) {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return "", false
	}

	node := findByID(doc, id)
	if node == nil {
		return "", false
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, node); err != nil {
		return "", false
	}
	return buf.String(), true
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode && n.Data == "section" {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}
