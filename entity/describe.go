package entity

import "github.com/pebsconsulting/createphp/vocabulary"

// Description is a serialisable snapshot of a Type
type Description struct {
	RdfType      string                 `json:"typeof,omitempty" yaml:"typeof,omitempty"`
	Vocabularies []vocabulary.Namespace `json:"vocabularies,omitempty" yaml:"vocabularies,omitempty"`
	Config       map[string]string      `json:"config,omitempty" yaml:"config,omitempty"`
	Fields       []FieldDescription     `json:"fields" yaml:"fields"`
}

// FieldDescription is a serialisable snapshot of a Field
type FieldDescription struct {
	Identifier string            `json:"identifier" yaml:"identifier"`
	Kind       string            `json:"kind" yaml:"kind"`
	TagName    string            `json:"tag_name,omitempty" yaml:"tag_name,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Config     map[string]string `json:"config,omitempty" yaml:"config,omitempty"`
}

// Describe returns a snapshot of t with fields sorted by identifier
func (t *Type) Describe() Description {
	rdfType, _ := t.RdfType()
	d := Description{
		RdfType:      rdfType,
		Vocabularies: t.vocabularies.All(),
		Fields:       make([]FieldDescription, 0, len(t.fields)),
	}
	if len(t.config) > 0 {
		d.Config = t.Config()
	}

	for _, id := range t.Identifiers() {
		f := t.fields[id]
		fd := FieldDescription{
			Identifier: id,
			Kind:       f.Kind().String(),
			TagName:    f.TagName(),
			Attributes: f.Attributes(),
		}
		if cfg := f.Config(); len(cfg) > 0 {
			fd.Config = cfg
		}
		d.Fields = append(d.Fields, fd)
	}
	return d
}
