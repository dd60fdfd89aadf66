package manifests

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
	"primamateria.systems/reliquary/pkg/element"
)

type yamlDocument struct {
	Elements []yamlElement `yaml:"elements"`
}

type yamlElement struct {
	ID         string    `yaml:"id"`
	Tag        string    `yaml:"tag"`
	Attributes yaml.Node `yaml:"attributes"`
}

func parseYAML(data []byte) (*Document, error) {
	var raw yamlDocument
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	doc := NewDocument("")
	for _, re := range raw.Elements {
		e := element.New(re.ID, re.Tag)
		if err := yamlAttributes(e, &re.Attributes); err != nil {
			return nil, err
		}
		if err := doc.Add(e); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func yamlAttributes(e *element.Element, n *yaml.Node) error {
	if n.Kind == 0 {
		return nil
	}
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: attributes of %v must be a mapping", ErrInvalidAttributes, e.ID)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		name, value := n.Content[i], n.Content[i+1]
		if value.Kind == yaml.ScalarNode {
			e.SetAttribute(name.Value, value.Value)
			continue
		}
		// nested structures are kept as JSON text so they decode as
		// structured values later
		var v any
		if err := value.Decode(&v); err != nil {
			return fmt.Errorf("%w: %v on %v: %w", ErrInvalidAttributes, name.Value, e.ID, err)
		}
		text, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("%w: %v on %v: %w", ErrInvalidAttributes, name.Value, e.ID, err)
		}
		e.SetAttribute(name.Value, string(text))
	}
	return nil
}
