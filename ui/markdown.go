package ui

import (
	"html/template"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Tags whose content is code or markup rather than readable text.
var rawTextTags = map[string]bool{
	"script":   true,
	"style":    true,
	"iframe":   true,
	"noscript": true,
	"textarea": true,
}

// RenderMarkdown converts the about text to HTML. Raw HTML in the source is
// dropped, along with the body of script-like elements.
func RenderMarkdown(src []byte) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	doc := p.Parse(src)
	stripRawHTML(doc)

	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.HrefTargetBlank | html.SkipHTML,
	})
	return template.HTML(markdown.Render(doc, renderer))
}

func stripRawHTML(doc ast.Node) {
	var drop []ast.Node
	inside := ""

	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		switch n := node.(type) {
		case *ast.HTMLBlock:
			drop = append(drop, n)
			return ast.SkipChildren
		case *ast.HTMLSpan:
			drop = append(drop, n)
			name, closing := htmlTagName(n.Literal)
			switch {
			case inside == "" && !closing && rawTextTags[name]:
				inside = name
			case closing && name == inside:
				inside = ""
			}
			return ast.GoToNext
		}
		if inside != "" && node.AsLeaf() != nil {
			drop = append(drop, node)
		}
		return ast.GoToNext
	})

	for _, n := range drop {
		ast.RemoveFromTree(n)
	}
}

// htmlTagName returns the lower-cased element name of a tag literal such as
// "<script>" or "</SCRIPT>".
func htmlTagName(literal []byte) (name string, closing bool) {
	s := strings.TrimPrefix(strings.TrimSpace(string(literal)), "<")
	if strings.HasPrefix(s, "/") {
		closing = true
		s = s[1:]
	}
	end := strings.IndexFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
	})
	if end >= 0 {
		s = s[:end]
	}
	return strings.ToLower(s), closing
}
