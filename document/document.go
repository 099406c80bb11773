// Package document parses NDR XML into a generic element tree and provides
// the best-effort descendant search the extractor relies on. The tree makes
// no structural judgment: any well-formed XML parses, and absent sections
// simply fail the lookup.
package document

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// MalformedInputError reports input that could not be parsed as an XML
// document at all. Extraction does not proceed and no partial record exists.
type MalformedInputError struct {
	Err error
}

// Error implements the error interface.
func (e *MalformedInputError) Error() string {
	return "document: input is not well-formed XML: " + e.Err.Error()
}

// Unwrap returns the underlying parser error.
func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// Element is one node of the parsed tree.
type Element struct {
	XMLName  xml.Name   `xml:""`
	Attrs    []xml.Attr `xml:",any,attr"`
	CharData string     `xml:",chardata"`
	Children []Element  `xml:",any"`
}

// Name returns the element's local name.
func (e *Element) Name() string {
	return e.XMLName.Local
}

// Text returns the element's character data with surrounding whitespace
// trimmed.
func (e *Element) Text() string {
	return strings.TrimSpace(e.CharData)
}

// Child returns the first direct child with the given local name, or nil.
func (e *Element) Child(name string) *Element {
	for i := range e.Children {
		if e.Children[i].XMLName.Local == name {
			return &e.Children[i]
		}
	}
	return nil
}

// Childs returns all direct children with the given local name.
func (e *Element) Childs(name string) []*Element {
	var out []*Element
	for i := range e.Children {
		if e.Children[i].XMLName.Local == name {
			out = append(out, &e.Children[i])
		}
	}
	return out
}

// Find returns the first descendant with the given local name in document
// order, or nil. The receiver itself is never a match.
func (e *Element) Find(name string) *Element {
	for i := range e.Children {
		c := &e.Children[i]
		if c.XMLName.Local == name {
			return c
		}
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant with the given local name in document
// order.
func (e *Element) FindAll(name string) []*Element {
	var out []*Element
	for i := range e.Children {
		c := &e.Children[i]
		if c.XMLName.Local == name {
			out = append(out, c)
		}
		out = append(out, c.FindAll(name)...)
	}
	return out
}

// ChildText resolves a slash-separated path of direct children and returns
// the text of the final element. It returns nil when any path segment is
// absent; a present-but-empty element yields a pointer to "".
func (e *Element) ChildText(path string) *string {
	cur := e
	for _, seg := range strings.Split(path, "/") {
		cur = cur.Child(seg)
		if cur == nil {
			return nil
		}
	}
	text := cur.Text()
	return &text
}

// FindText returns the text of the first descendant with the given local
// name, or nil if none exists.
func (e *Element) FindText(name string) *string {
	found := e.Find(name)
	if found == nil {
		return nil
	}
	text := found.Text()
	return &text
}

// Document is a parsed NDR XML document.
type Document struct {
	Root Element
}

// Find returns the first descendant of the root with the given local name.
func (d *Document) Find(name string) *Element {
	return d.Root.Find(name)
}

// FindAll returns every descendant of the root with the given local name.
func (d *Document) FindAll(name string) []*Element {
	return d.Root.FindAll(name)
}

// Parse reads one XML document from r. Any decode failure, including empty
// input, is reported as a *MalformedInputError.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	var root Element
	if err := dec.Decode(&root); err != nil {
		return nil, &MalformedInputError{Err: err}
	}
	return &Document{Root: root}, nil
}

// ParseBytes parses an in-memory XML document.
func ParseBytes(data []byte) (*Document, error) {
	return Parse(bytes.NewReader(data))
}
