package parser

import (
	"gopkg.in/yaml.v3"

	pkgopenapi "github.com/goliatone/go-polaris/pkg/openapi"
)

// propertyOrder returns the declared property order of every component schema
// keyed by component name. allOf members contribute their properties first,
// in member order, followed by the schema's own properties. Documents that do
// not decode as YAML yield no ordering and callers fall back to lexical order.
func propertyOrder(raw []byte) map[string][]string {
	var root yaml.Node
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return nil
	}
	doc := &root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}
	schemas := mappingValue(mappingValue(doc, "components"), "schemas")
	if schemas == nil || schemas.Kind != yaml.MappingNode {
		return nil
	}

	index := make(map[string]*yaml.Node, len(schemas.Content)/2)
	for i := 0; i+1 < len(schemas.Content); i += 2 {
		index[schemas.Content[i].Value] = schemas.Content[i+1]
	}

	out := make(map[string][]string, len(index))
	for name, node := range index {
		out[name] = declaredOrder(node, index, map[string]bool{name: true})
	}
	return out
}

func declaredOrder(node *yaml.Node, index map[string]*yaml.Node, visiting map[string]bool) []string {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}

	if ref := mappingValue(node, "$ref"); ref != nil {
		name := pkgopenapi.RefName(ref.Value)
		target, ok := index[name]
		if !ok || visiting[name] {
			return nil
		}
		visiting[name] = true
		defer delete(visiting, name)
		return declaredOrder(target, index, visiting)
	}

	var out []string
	if allOf := mappingValue(node, "allOf"); allOf != nil && allOf.Kind == yaml.SequenceNode {
		for _, member := range allOf.Content {
			out = append(out, declaredOrder(member, index, visiting)...)
		}
	}
	if props := mappingValue(node, "properties"); props != nil && props.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(props.Content); i += 2 {
			out = append(out, props.Content[i].Value)
		}
	}
	return dedupe(out)
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := values[:0]
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
