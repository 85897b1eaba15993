package internal

import (
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CloudEntry is one rendered word.
type CloudEntry struct {
	Word      string
	Count     int
	FontClass int
}

// CloudDocument is everything RenderCloud needs to produce a page.
type CloudDocument struct {
	Source        string
	StylesheetURL string
	Entries       []CloudEntry
}

// Heading returns the page title, e.g. "Top 3 words in notes.txt".
func (d CloudDocument) Heading() string {
	return "Top " + strconv.Itoa(len(d.Entries)) + " words in " + d.Source
}

// ScaleEntries derives the render entries of an already ordered list.
func ScaleEntries(list RankedList) []CloudEntry {
	entries := make([]CloudEntry, len(list.Entries))
	for i, wc := range list.Entries {
		entries[i] = CloudEntry{
			Word:      wc.Word,
			Count:     wc.Count,
			FontClass: FontSizeClass(wc.Count, list.MinCount, list.MaxCount),
		}
	}
	return entries
}

// BuildCloud returns the document tree of a tag cloud page.
func BuildCloud(d CloudDocument) *html.Node {
	heading := d.Heading()

	head := element(atom.Head)
	appendLines(head,
		withText(element(atom.Title), heading),
		element(atom.Link,
			html.Attribute{Key: "href", Val: d.StylesheetURL},
			html.Attribute{Key: "rel", Val: "stylesheet"},
			html.Attribute{Key: "type", Val: "text/css"},
		),
	)

	box := element(atom.P, html.Attribute{Key: "class", Val: cloudBoxClass})
	newline(box)
	for _, e := range d.Entries {
		span := element(atom.Span,
			html.Attribute{Key: "style", Val: spanStyle},
			html.Attribute{Key: "class", Val: FontClassName(e.FontClass)},
			html.Attribute{Key: "title", Val: "count: " + strconv.Itoa(e.Count)},
		)
		box.AppendChild(withText(span, e.Word))
		newline(box)
	}

	div := element(atom.Div, html.Attribute{Key: "class", Val: cloudDivClass})
	appendLines(div, box)

	body := element(atom.Body)
	appendLines(body, withText(element(atom.H2), heading), element(atom.Hr), div)

	root := element(atom.Html)
	appendLines(root, head, body)

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(root)
	doc.AppendChild(text("\n"))
	return doc
}

// RenderCloud writes the tag cloud page for d to w.
func RenderCloud(w io.Writer, d CloudDocument) error {
	return html.Render(w, BuildCloud(d))
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func withText(n *html.Node, s string) *html.Node {
	n.AppendChild(text(s))
	return n
}

func newline(n *html.Node) {
	n.AppendChild(text("\n"))
}

// appendLines appends children to parent, one per line.
func appendLines(parent *html.Node, children ...*html.Node) {
	newline(parent)
	for _, c := range children {
		parent.AppendChild(c)
		newline(parent)
	}
}
