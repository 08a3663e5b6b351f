// Package openapi exports a dataset schema as an OpenAPI object schema, so
// record types declared in Go surface in API documents the same way forms
// ingested from OpenAPI do elsewhere. Button items carry no persisted value
// and are skipped.
package openapi

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-dataitem/pkg/dataset"
	"github.com/goliatone/go-dataitem/pkg/item"
)

// SchemaFor converts a dataset schema into an OpenAPI object schema. Property
// names derive from item labels; dynamic choice sources export without an
// enum since they cannot be resolved ahead of an instance.
func SchemaFor(ds *dataset.Schema) (*openapi3.Schema, error) {
	if ds == nil {
		return nil, fmt.Errorf("openapi: nil schema")
	}
	out := &openapi3.Schema{
		Type:       &openapi3.Types{"object"},
		Title:      ds.Name(),
		Properties: openapi3.Schemas{},
	}
	for _, it := range ds.Items() {
		prop, ok, err := propertyFor(it)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		name := propertyName(it.Label())
		if name == "" {
			return nil, fmt.Errorf("openapi: item %q yields an empty property name", it.Label())
		}
		if _, exists := out.Properties[name]; exists {
			return nil, fmt.Errorf("openapi: duplicate property %q", name)
		}
		out.Properties[name] = openapi3.NewSchemaRef("", prop)
	}
	return out, nil
}

func propertyFor(it item.Item) (*openapi3.Schema, bool, error) {
	prop := &openapi3.Schema{
		Title:       it.Label(),
		Description: describe(it),
	}

	switch typed := it.(type) {
	case *item.IntItem:
		prop.Type = &openapi3.Types{"integer"}
		applyNumericBounds(prop, it)
	case *item.FloatItem:
		prop.Type = &openapi3.Types{"number"}
		applyNumericBounds(prop, it)
	case *item.BoolItem:
		prop.Type = &openapi3.Types{"boolean"}
	case *item.DateTimeItem:
		prop.Type = &openapi3.Types{"string"}
		prop.Format = "date-time"
	case *item.DateItem:
		prop.Type = &openapi3.Types{"string"}
		prop.Format = "date"
	case *item.ColorItem:
		prop.Type = &openapi3.Types{"string"}
	case *item.MultipleChoiceItem:
		prop.Type = &openapi3.Types{"array"}
		entry := &openapi3.Schema{}
		if lst, ok := typed.Source().Static(); ok {
			entry.Enum = lst.Keys()
		}
		prop.Items = openapi3.NewSchemaRef("", entry)
	case *item.ImageChoiceItem:
		if lst, ok := typed.Source().Static(); ok {
			prop.Enum = lst.Keys()
		}
	case *item.ChoiceItem:
		if lst, ok := typed.Source().Static(); ok {
			prop.Enum = lst.Keys()
		}
	case *item.FilesOpenItem:
		prop.Type = &openapi3.Types{"array"}
		prop.Items = openapi3.NewSchemaRef("", &openapi3.Schema{Type: &openapi3.Types{"string"}})
	case *item.FloatArrayItem:
		prop.Type = &openapi3.Types{"array"}
		prop.Items = openapi3.NewSchemaRef("", &openapi3.Schema{Type: &openapi3.Types{"number"}})
	case *item.DictItem:
		// Dict payloads are edited through activation and never persisted
		// by the item, so there is no property to export.
		return nil, false, nil
	case *item.ButtonItem:
		return nil, false, nil
	case *item.TextItem, *item.FontFamilyItem, *item.StringItem,
		*item.FileSaveItem, *item.FileOpenItem, *item.DirectoryItem:
		prop.Type = &openapi3.Types{"string"}
	default:
		return nil, false, fmt.Errorf("openapi: no mapping for item %q (%T)", it.Label(), it)
	}

	if prop.Type == nil {
		prop.Type = &openapi3.Types{"string"}
	}
	return prop, true, nil
}

func applyNumericBounds(prop *openapi3.Schema, it item.Item) {
	if min, ok := asSchemaFloat(it.Prop(item.GroupData, item.PropMin)); ok {
		prop.Min = &min
	}
	if max, ok := asSchemaFloat(it.Prop(item.GroupData, item.PropMax)); ok {
		prop.Max = &max
	}
}

func asSchemaFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// describe prefers the declared help text and falls back to the composed
// constraint description.
func describe(it item.Item) string {
	if help := it.Help(); help != "" {
		return help
	}
	return it.AutoHelp(nil)
}

// propertyName lowers a display label into a snake_case property name.
func propertyName(label string) string {
	var b strings.Builder
	b.Grow(len(label))
	lastUnderscore := true
	for _, r := range strings.TrimSpace(label) {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			b.WriteRune(unicode.ToLower(r))
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteRune('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
