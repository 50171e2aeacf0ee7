package dataset

import (
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/shanehull/dateaug/internal/dateformat"
	"github.com/shanehull/dateaug/internal/types"
)

var whitespace = regexp.MustCompile(`[\n\t\r\s\xA0]+`)

var skippedElements = map[string]bool{
	"script": true,
	"style":  true,
	"head":   true,
}

// ParseHTML extracts every <p> element of a contract filing and keeps the
// ones holding a "<Month> <Day>, <Year>" label. The first label of each
// paragraph becomes its date span.
func ParseHTML(r io.Reader) ([]types.Paragraph, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var paragraphs []types.Paragraph
	var f func(*html.Node)

	f = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if skippedElements[n.Data] {
				return
			}
			if n.Data == "p" {
				text := strings.TrimSpace(whitespace.ReplaceAllString(extractText(n), " "))
				if start, end, ok := dateformat.FindLabel(text); ok {
					paragraphs = append(paragraphs, types.NewParagraph(text, start, end))
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}

	f(doc)

	return paragraphs, nil
}

func extractText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	if n.Type == html.ElementNode && n.Data == "br" {
		return " "
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(extractText(c))
	}
	return sb.String()
}
