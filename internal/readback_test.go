package internal

// Node-tree helpers used by tests to read rendered pages back.

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// WalkNodes visits node and its descendants depth-first until fn returns false.
func WalkNodes(node *html.Node, fn func(*html.Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		WalkNodes(child, fn)
	}
}

func FindElementByTag(doc *html.Node, tagName string) *html.Node {
	var result *html.Node
	WalkNodes(doc, func(n *html.Node) bool {
		if result != nil {
			return false
		}
		if n.Type == html.ElementNode && n.Data == tagName {
			result = n
			return false
		}
		return true
	})
	return result
}

func FindElementsByTag(doc *html.Node, tagName string) []*html.Node {
	var result []*html.Node
	WalkNodes(doc, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == tagName {
			result = append(result, n)
		}
		return true
	})
	return result
}

func AttrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func GetTextContent(node *html.Node) string {
	var sb strings.Builder
	WalkNodes(node, func(n *html.Node) bool {
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				if sb.Len() > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(text)
			}
		}
		return true
	})
	return sb.String()
}

// ReadCloud parses a rendered tag cloud page back into its source heading
// and entries. Spans that are not cloud entries are skipped.
func ReadCloud(doc *html.Node) (heading string, entries []CloudEntry) {
	if h := FindElementByTag(doc, "h2"); h != nil {
		heading = GetTextContent(h)
	}
	box := FindElementByTag(doc, "p")
	if box == nil || AttrValue(box, "class") != cloudBoxClass {
		return heading, nil
	}
	for _, span := range FindElementsByTag(box, "span") {
		class, ok := strings.CutPrefix(AttrValue(span, "class"), "f")
		if !ok {
			continue
		}
		count, ok := strings.CutPrefix(AttrValue(span, "title"), "count: ")
		if !ok {
			continue
		}
		entries = append(entries, CloudEntry{
			Word:      GetTextContent(span),
			Count:     atoiOrZero(count),
			FontClass: atoiOrZero(class),
		})
	}
	return heading, entries
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
