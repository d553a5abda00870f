package parser

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/xcorail/redpen/internal/extractor"
	"github.com/xcorail/redpen/internal/model"
	"github.com/xcorail/redpen/internal/tokenizer"
)

// HTMLParser handles HTML. Heading tags open sections, ul/ol become list
// blocks, p/blockquote/td become paragraphs. The HTML tokenizer does not
// report source lines, so positions stay 0.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string, ex *extractor.SentenceExtractor, _ tokenizer.Tokenizer) (*model.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	doc := &model.Document{FileName: filename}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingLevel(n.Data); level > 0 {
				title := textContent(n)
				doc.AppendSection(model.NewSection(level, ex.Extract(title, 0)))
				return
			}

			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "ul", "ol":
				block := &model.ListBlock{}
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					if c.Type != html.ElementNode || c.Data != "li" {
						continue
					}
					t := textContent(c)
					if t == "" {
						continue
					}
					el := &model.ListElement{Level: 1}
					el.Sentences = ex.Extract(strings.Join(strings.Fields(t), " "), 0)
					block.AppendElement(el)
				}
				if len(block.Elements) > 0 {
					currentSection(doc).AppendListBlock(block)
				}
				return
			case "p", "td", "blockquote":
				t := textContent(n)
				if t != "" {
					appendParagraph(currentSection(doc), t, 0, ex)
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if body := findBody(root); body != nil {
		walk(body)
	} else {
		walk(root)
	}

	if len(doc.Sections) == 0 {
		doc.AppendSection(model.NewSection(0, nil))
	}
	return doc, nil
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
