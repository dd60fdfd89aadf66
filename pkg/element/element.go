// Package element provides a minimal annotated owner type: an element with
// an id, a tag and an ordered set of attributes.
package element

import (
	"errors"
	"fmt"
	"strings"
)

var ErrAttributeNotFound = errors.New("attribute not found")

type Element struct {
	ID    string
	Tag   string
	attrs map[string]string
	order []string
}

func New(id, tag string) *Element {
	return &Element{
		ID:    id,
		Tag:   tag,
		attrs: make(map[string]string),
	}
}

// SetAttribute adds or replaces an attribute. Names are case-insensitive and
// stored lower-cased; a replaced attribute keeps its position.
func (e *Element) SetAttribute(name, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	name = strings.ToLower(name)
	if _, ok := e.attrs[name]; !ok {
		e.order = append(e.order, name)
	}
	e.attrs[name] = value
}

func (e *Element) RemoveAttribute(name string) {
	name = strings.ToLower(name)
	if _, ok := e.attrs[name]; !ok {
		return
	}
	delete(e.attrs, name)
	for i, v := range e.order {
		if v == name {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
}

func (e *Element) Attribute(name string) (string, bool) {
	v, ok := e.attrs[strings.ToLower(name)]
	return v, ok
}

func (e *Element) MustAttribute(name string) (string, error) {
	if v, ok := e.Attribute(name); ok {
		return v, nil
	}
	return "", fmt.Errorf("%w: %v on %v", ErrAttributeNotFound, name, e.ID)
}

// AttributeNames lists attribute names in declaration order.
func (e *Element) AttributeNames() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

func (e *Element) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "<%v id=%q", e.Tag, e.ID)
	for _, name := range e.order {
		fmt.Fprintf(&b, " %v=%q", name, e.attrs[name])
	}
	b.WriteString(">")
	return b.String()
}
