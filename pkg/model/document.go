package model

import (
	"github.com/goliatone/go-polaris/pkg/wire"
)

// Document is the schema-driven form of a model: one type for every schema,
// validated from the descriptor alone. It accepts and rejects exactly the
// payloads the generated type for the same schema does, given a resolver for
// nested references.
type Document struct {
	schema Schema
	fields *wire.Object
	extras *wire.Object
}

// Ensure Document satisfies the shared model contract.
var _ Model = Document{}

// NewDocument validates v against schema. Nested object fields are checked
// against the schema named by Field.Ref when a resolver is configured.
func NewDocument(schema Schema, v wire.Value, opts ...DecodeOption) (Document, error) {
	d := NewDecoder(schema, v, opts...)
	fields := d.decodeAll()
	extras, err := d.Finish()
	if err != nil {
		return Document{}, err
	}
	return Document{schema: schema.Clone(), fields: fields, extras: extras}, nil
}

// SchemaName returns the schema name.
func (doc Document) SchemaName() string {
	return doc.schema.Name
}

// Schema returns a copy of the descriptor.
func (doc Document) Schema() Schema {
	return doc.schema.Clone()
}

// Get returns the value of a field by wire name. Null fields report
// (null, true); absent fields report false.
func (doc Document) Get(wireName string) (wire.Value, bool) {
	return doc.fields.Get(wireName)
}

// AdditionalProperties returns the retained unknown keys.
func (doc Document) AdditionalProperties() *wire.Object {
	return doc.extras.Clone()
}

// ToWire returns the fields in schema order followed by retained keys.
func (doc Document) ToWire() wire.Value {
	out := doc.fields.Clone()
	if out == nil {
		out = wire.NewObject()
	}
	appendExtras(out, doc.extras)
	return wire.ObjectValue(out)
}

// Validate re-checks the document against its schema.
func (doc Document) Validate() error {
	_, err := NewDocument(doc.schema, doc.ToWire(), WithUnknownPolicy(UnknownRetain))
	return err
}

// Equal compares schema name, fields and retained keys.
func (doc Document) Equal(other Document) bool {
	return doc.schema.Name == other.schema.Name &&
		doc.fields.Equal(other.fields) &&
		doc.extras.Equal(other.extras)
}

// MarshalJSON encodes the document.
func (doc Document) MarshalJSON() ([]byte, error) {
	return doc.ToWire().MarshalJSON()
}
