package manifests

import (
	"gopkg.in/ini.v1"
	"primamateria.systems/reliquary/pkg/element"
)

// In INI documents every section is an element named after the section; the
// "tag" key sets the element tag and every other key is an attribute.
func parseINI(data []byte) (*Document, error) {
	f, err := ini.Load(data)
	if err != nil {
		return nil, err
	}
	doc := NewDocument("")
	for _, sec := range f.Sections() {
		if sec.Name() == ini.DefaultSection {
			continue
		}
		e := element.New(sec.Name(), "")
		for _, key := range sec.Keys() {
			if key.Name() == "tag" {
				e.Tag = key.Value()
				continue
			}
			e.SetAttribute(key.Name(), key.Value())
		}
		if err := doc.Add(e); err != nil {
			return nil, err
		}
	}
	return doc, nil
}
