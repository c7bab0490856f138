// ABOUTME: Converts generated report HTML into flowable layout blocks.
// ABOUTME: Supports headings, paragraphs, lists, and tables; inline markup is flattened.
package export

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// BlockKind classifies a rich-text block.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockListItem
	BlockTable
)

// Block is one flowable unit of the report body.
type Block struct {
	Kind BlockKind
	// Level is the heading level (1-3) for headings.
	Level int
	Text  string
	// Marker prefixes list items ("•" or "1.").
	Marker string
	Header []string
	Rows   [][]string
}

// ParseRichText splits HTML content into blocks. Text outside any block
// element becomes a paragraph.
func ParseRichText(content string) ([]Block, error) {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parse report html: %w", err)
	}
	p := &blockParser{}
	p.walk(doc)
	p.flush()
	return p.blocks, nil
}

type blockParser struct {
	blocks []Block
	loose  strings.Builder
}

func (p *blockParser) flush() {
	if text := collapse(p.loose.String()); text != "" {
		p.blocks = append(p.blocks, Block{Kind: BlockParagraph, Text: text})
	}
	p.loose.Reset()
}

func (p *blockParser) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		p.loose.WriteString(n.Data)
		return
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Head:
			return
		case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
			p.flush()
			level := int(n.Data[1] - '0')
			if level > 3 {
				level = 3
			}
			p.add(Block{Kind: BlockHeading, Level: level, Text: textOf(n)})
			return
		case atom.P, atom.Blockquote, atom.Pre:
			p.flush()
			p.add(Block{Kind: BlockParagraph, Text: textOf(n)})
			return
		case atom.Ul, atom.Ol:
			p.flush()
			p.list(n)
			return
		case atom.Table:
			p.flush()
			p.table(n)
			return
		case atom.Br:
			p.loose.WriteString("\n")
			return
		case atom.Div, atom.Section, atom.Article, atom.Header, atom.Footer:
			p.flush()
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				p.walk(c)
			}
			p.flush()
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.walk(c)
	}
}

func (p *blockParser) add(b Block) {
	if b.Text == "" && b.Kind != BlockTable {
		return
	}
	p.blocks = append(p.blocks, b)
}

func (p *blockParser) list(n *html.Node) {
	ordered := n.DataAtom == atom.Ol
	i := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.DataAtom != atom.Li {
			continue
		}
		i++
		marker := "•"
		if ordered {
			marker = fmt.Sprintf("%d.", i)
		}
		p.add(Block{Kind: BlockListItem, Text: textOf(c), Marker: marker})
	}
}

func (p *blockParser) table(n *html.Node) {
	b := Block{Kind: BlockTable}
	var visit func(*html.Node, bool)
	visit = func(n *html.Node, inHead bool) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.DataAtom {
			case atom.Thead:
				visit(c, true)
			case atom.Tbody, atom.Tfoot:
				visit(c, false)
			case atom.Tr:
				var cells []string
				allTH := true
				for cell := c.FirstChild; cell != nil; cell = cell.NextSibling {
					if cell.Type != html.ElementNode {
						continue
					}
					if cell.DataAtom == atom.Td || cell.DataAtom == atom.Th {
						cells = append(cells, textOf(cell))
						allTH = allTH && cell.DataAtom == atom.Th
					}
				}
				if len(cells) == 0 {
					continue
				}
				if (inHead || allTH) && b.Header == nil && len(b.Rows) == 0 {
					b.Header = cells
				} else {
					b.Rows = append(b.Rows, cells)
				}
			}
		}
	}
	visit(n, false)
	if b.Header != nil || len(b.Rows) > 0 {
		p.blocks = append(p.blocks, b)
	}
}

// textOf returns the collapsed text content of n, keeping <br> as newlines.
func textOf(n *html.Node) string {
	var b strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		if n.Type == html.ElementNode && n.DataAtom == atom.Br {
			b.WriteString("\n")
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return collapse(b.String())
}

// collapse folds runs of whitespace to single spaces within each line.
func collapse(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, l := range lines {
		if l = strings.Join(strings.Fields(l), " "); l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}
