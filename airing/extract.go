package airing

import (
	"bytes"
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/nextairing/nextairing/source"
	"github.com/samber/mo"
	"golang.org/x/net/html"
)

// Selector matches the upcoming entries of a series listing page.
const Selector = "#episode-list li:not(.old)"

// Extract parses a listing page and reads the episode from the last item
// matched by Selector. Later items are closer to airing, so the last one wins.
//
// mo.None is returned when nothing matches; that is a normal outcome.
// A matched item with fewer than four element children yields a *MissingFieldError.
func Extract(r io.Reader) (mo.Option[*source.Episode], error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return mo.None[*source.Episode](), &ParseError{Cause: err}
	}

	return extractFrom(doc.Selection)
}

func extractFrom(root *goquery.Selection) (mo.Option[*source.Episode], error) {
	items := root.Find(Selector)
	if items.Length() == 0 {
		return mo.None[*source.Episode](), nil
	}

	children := items.Last().Children()

	values := make([]string, len(fields))
	for i, field := range fields {
		if i >= children.Length() {
			return mo.None[*source.Episode](), &MissingFieldError{Field: field}
		}
		values[i] = textOf(children.Get(i))
	}

	return mo.Some(&source.Episode{
		Series:    values[0],
		Number:    values[1],
		Title:     values[2],
		Countdown: values[3],
	}), nil
}

// textOf concatenates every text node below node, untouched.
func textOf(node *html.Node) string {
	var buffer bytes.Buffer
	collectText(node, &buffer)
	return buffer.String()
}

func collectText(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, buffer)
	}
}
