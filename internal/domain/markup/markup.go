// Package markup turns XML document parts into an explicit element tree so
// checks never deal with the shape of the raw decoder output.
package markup

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Element is one XML element. Names are local names; the namespace URI is
// kept in Space. Children is always a slice, possibly empty.
type Element struct {
	Space    string
	Name     string
	Attrs    map[string]string
	Text     string
	Children []*Element
}

// Parse decodes data into a tree and returns the document element.
func Parse(data []byte) (*Element, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var (
		root  *Element
		stack []*Element
		text  [][]byte
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{
				Space:    t.Name.Space,
				Name:     t.Name.Local,
				Attrs:    make(map[string]string, len(t.Attr)),
				Children: []*Element{},
			}
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
					continue
				}
				el.Attrs[a.Name.Local] = a.Value
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("decoding xml: multiple root elements")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
			text = append(text, nil)

		case xml.CharData:
			if len(text) > 0 {
				text[len(text)-1] = append(text[len(text)-1], t...)
			}

		case xml.EndElement:
			el := stack[len(stack)-1]
			el.Text = string(text[len(text)-1])
			stack = stack[:len(stack)-1]
			text = text[:len(text)-1]
		}
	}

	if root == nil {
		return nil, fmt.Errorf("decoding xml: no root element")
	}
	return root, nil
}

// Attr returns the attribute with the given local name.
func (e *Element) Attr(name string) string {
	if e == nil {
		return ""
	}
	return e.Attrs[name]
}

// Child returns the first direct child with the given local name, or nil.
func (e *Element) Child(name string) *Element {
	if e == nil {
		return nil
	}
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildAttr returns the named attribute of the first child called name.
// It is the common "<w:name w:val=.../>" lookup.
func (e *Element) ChildAttr(name, attr string) string {
	return e.Child(name).Attr(attr)
}

// Walk visits e and its descendants depth-first in document order. Returning
// false from fn skips the element's children.
func (e *Element) Walk(fn func(*Element) bool) {
	if e == nil {
		return
	}
	if !fn(e) {
		return
	}
	for _, c := range e.Children {
		c.Walk(fn)
	}
}

// FindAll returns every descendant (including e) with the given local name,
// in document order.
func (e *Element) FindAll(name string) []*Element {
	var out []*Element
	e.Walk(func(el *Element) bool {
		if el.Name == name {
			out = append(out, el)
		}
		return true
	})
	return out
}

// Find returns the first descendant (including e) with the given local name.
func (e *Element) Find(name string) *Element {
	var found *Element
	e.Walk(func(el *Element) bool {
		if found != nil {
			return false
		}
		if el.Name == name {
			found = el
			return false
		}
		return true
	})
	return found
}

// InnerText concatenates the character data of the leaf elements under e.
func (e *Element) InnerText() string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	e.Walk(func(el *Element) bool {
		if len(el.Children) == 0 {
			b.WriteString(el.Text)
		}
		return true
	})
	return b.String()
}
