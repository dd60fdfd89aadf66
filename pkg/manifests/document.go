// Package manifests loads element documents: ordered lists of elements with
// their declared attributes, written as TOML, YAML or INI.
package manifests

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"primamateria.systems/reliquary/pkg/element"
)

var (
	ErrElementNotFound   = errors.New("element not found")
	ErrDuplicateElement  = errors.New("duplicate element id")
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrMissingElementID  = errors.New("element without id")
	ErrInvalidAttributes = errors.New("invalid attributes")
)

type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatINI  Format = "ini"
)

func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".ini":
		return FormatINI, nil
	default:
		return "", fmt.Errorf("%w: %v", ErrUnsupportedFormat, path)
	}
}

type Document struct {
	Path     string
	Elements []*element.Element
	index    map[string]*element.Element
}

func NewDocument(path string) *Document {
	return &Document{
		Path:  path,
		index: make(map[string]*element.Element),
	}
}

func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading document: %w", err)
	}
	doc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("error parsing %v: %w", path, err)
	}
	doc.Path = path
	return doc, nil
}

func Parse(data []byte, format Format) (*Document, error) {
	switch format {
	case FormatTOML:
		return parseTOML(data)
	case FormatYAML:
		return parseYAML(data)
	case FormatINI:
		return parseINI(data)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
}

func (d *Document) Add(e *element.Element) error {
	if e.ID == "" {
		return ErrMissingElementID
	}
	if d.index == nil {
		d.index = make(map[string]*element.Element)
	}
	if _, ok := d.index[e.ID]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateElement, e.ID)
	}
	d.index[e.ID] = e
	d.Elements = append(d.Elements, e)
	return nil
}

func (d *Document) Lookup(id string) (*element.Element, error) {
	e, ok := d.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrElementNotFound, id)
	}
	return e, nil
}

// IDs returns element ids in sorted order.
func (d *Document) IDs() []string {
	set := treeset.NewWithStringComparator()
	for id := range d.index {
		set.Add(id)
	}
	out := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		out = append(out, v.(string))
	}
	return out
}

func (d *Document) Len() int {
	return len(d.Elements)
}
