// Package jsonld assembles schema.org structured data for public pages.
package jsonld

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

const schemaContext = "https://schema.org"

// Field is one key of a Schema.
type Field struct {
	Key   string
	Value any
}

// Schema is a JSON object that keeps its keys in insertion order so the
// rendered JSON-LD is stable between requests.
type Schema []Field

func newSchema(schemaType string) Schema {
	return Schema{
		{Key: "@context", Value: schemaContext},
		{Key: "@type", Value: schemaType},
	}
}

func newNode(schemaType string) Schema {
	return Schema{{Key: "@type", Value: schemaType}}
}

func (s Schema) with(key string, value any) Schema {
	return append(s, Field{Key: key, Value: value})
}

// withString skips empty values, mirroring how undefined keys drop out of JSON.
func (s Schema) withString(key, value string) Schema {
	if value == "" {
		return s
	}

	return s.with(key, value)
}

// Get returns the value stored under key.
func (s Schema) Get(key string) (any, bool) {
	for _, f := range s {
		if f.Key == key {
			return f.Value, true
		}
	}

	return nil, false
}

// Type returns the @type of the schema.
func (s Schema) Type() string {
	v, _ := s.Get("@type")
	t, _ := v.(string)

	return t
}

// MarshalJSON writes the fields in order.
func (s Schema) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, f := range s {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "marshal %s", f.Key)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// Nest wraps schemas in a single ItemList so a page needs only one script tag.
func Nest(schemas []Schema) Schema {
	items := make([]Schema, 0, len(schemas))
	for i, schema := range schemas {
		items = append(items, newNode("ListItem").
			with("position", i+1).
			with("item", schema))
	}

	return newSchema("ItemList").with("itemListElement", items)
}
