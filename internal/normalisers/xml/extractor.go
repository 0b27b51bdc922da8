// Package xml re-serialises XML documents as consistently indented text.
package xml

import (
	"context"
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
)

// indentSpaces is the indentation width of the output.
const indentSpaces = 2

// Extractor pretty-prints XML documents.
type Extractor struct{}

// New creates an XML extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract parses content and writes it back indented. The element tree is
// preserved and elements mixing text with child elements are written as they
// came; malformed or rootless input is domain.ErrParse.
func (e *Extractor) Extract(_ context.Context, content []byte) (string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(content); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrParse, err)
	}
	if doc.Root() == nil {
		return "", fmt.Errorf("%w: no root element", domain.ErrParse)
	}

	held := detachMixed(doc.Root(), nil)
	doc.Indent(indentSpaces)
	for _, h := range held {
		for _, tok := range h.children {
			h.element.AddChild(tok)
		}
	}

	out, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrParse, err)
	}

	return strings.TrimRight(out, "\n"), nil
}

// heldContent is the original content of a mixed-content element.
type heldContent struct {
	element  *etree.Element
	children []etree.Token
}

// detachMixed empties every outermost mixed-content element below el so that
// indentation leaves its text untouched.
func detachMixed(el *etree.Element, held []heldContent) []heldContent {
	if !isMixed(el) {
		for _, child := range el.ChildElements() {
			held = detachMixed(child, held)
		}
		return held
	}

	children := make([]etree.Token, 0, len(el.Child))
	for len(el.Child) > 0 {
		children = append(children, el.RemoveChildAt(0))
	}
	return append(held, heldContent{element: el, children: children})
}

func isMixed(el *etree.Element) bool {
	var text, elements bool
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			text = text || !t.IsWhitespace()
		case *etree.Element:
			elements = true
		}
	}
	return text && elements
}
