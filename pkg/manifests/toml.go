package manifests

import (
	"fmt"
	"maps"
	"slices"

	"github.com/BurntSushi/toml"
	"primamateria.systems/reliquary/pkg/element"
)

type tomlDocument struct {
	Elements []tomlElement `toml:"element"`
}

type tomlElement struct {
	ID         string         `toml:"id"`
	Tag        string         `toml:"tag"`
	Attributes map[string]any `toml:"attributes"`
}

func parseTOML(data []byte) (*Document, error) {
	var raw tomlDocument
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, err
	}
	order := tomlAttributeOrder(md, len(raw.Elements))
	doc := NewDocument("")
	for i, re := range raw.Elements {
		e := element.New(re.ID, re.Tag)
		names := order[i]
		if len(names) != len(re.Attributes) {
			// key order unavailable, fall back to sorted
			names = slices.Sorted(maps.Keys(re.Attributes))
		}
		for _, name := range names {
			v, ok := re.Attributes[name]
			if !ok {
				return nil, fmt.Errorf("%w: %v on %v", ErrInvalidAttributes, name, re.ID)
			}
			e.SetAttribute(name, attributeText(v))
		}
		if err := doc.Add(e); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// tomlAttributeOrder recovers declaration order of each element's
// attributes from the decoder metadata.
func tomlAttributeOrder(md toml.MetaData, n int) [][]string {
	order := make([][]string, n)
	idx := -1
	for _, k := range md.Keys() {
		if len(k) == 0 || k[0] != "element" {
			continue
		}
		switch {
		case len(k) == 1:
			idx++
		case len(k) == 3 && k[1] == "attributes" && idx >= 0 && idx < n:
			order[idx] = append(order[idx], k[2])
		}
	}
	return order
}
