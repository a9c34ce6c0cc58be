package wire

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a YAML document into a Value. Mapping keys must be
// scalars; their order is preserved.
func ParseYAML(data []byte) (Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Value{}, fmt.Errorf("wire: parse yaml: %w", err)
	}
	if root.Kind == 0 {
		return Value{}, errors.New("wire: parse yaml: empty document")
	}
	v, err := fromNode(&root)
	if err != nil {
		return Value{}, fmt.Errorf("wire: parse yaml: %w", err)
	}
	return v, nil
}

// MarshalYAML implements yaml.Marshaler, keeping object key order.
func (v Value) MarshalYAML() (any, error) {
	return v.toNode(), nil
}

// MarshalYAML implements yaml.Marshaler, keeping key order.
func (o *Object) MarshalYAML() (any, error) {
	return objectNode(o), nil
}

func (v Value) toNode() *yaml.Node {
	switch v.kind {
	case KindBool:
		value := "false"
		if v.b {
			value = "true"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: value}
	case KindNumber:
		tag := "!!float"
		if _, ok := v.AsInt(); ok && !strings.ContainsAny(string(v.num), ".eE") {
			tag = "!!int"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: string(v.num)}
	case KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.str}
	case KindArray:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.arr {
			node.Content = append(node.Content, item.toNode())
		}
		return node
	case KindObject:
		return objectNode(v.obj)
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

func objectNode(o *Object) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	o.Range(func(key string, item Value) bool {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			item.toNode(),
		)
		return true
	})
	return node
}

func fromNode(node *yaml.Node) (Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null(), nil
		}
		return fromNode(node.Content[0])
	case yaml.AliasNode:
		if node.Alias == nil {
			return Value{}, errors.New("dangling alias")
		}
		return fromNode(node.Alias)
	case yaml.MappingNode:
		obj := NewObject()
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valueNode := node.Content[i], node.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return Value{}, fmt.Errorf("line %d: mapping key must be a scalar", keyNode.Line)
			}
			item, err := fromNode(valueNode)
			if err != nil {
				return Value{}, err
			}
			obj.Set(keyNode.Value, item)
		}
		return Value{kind: KindObject, obj: obj}, nil
	case yaml.SequenceNode:
		items := make([]Value, 0, len(node.Content))
		for _, child := range node.Content {
			item, err := fromNode(child)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		return Value{kind: KindArray, arr: items}, nil
	case yaml.ScalarNode:
		return fromScalar(node)
	default:
		return Value{}, fmt.Errorf("line %d: unsupported yaml node", node.Line)
	}
}

func fromScalar(node *yaml.Node) (Value, error) {
	switch node.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return Value{}, err
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := node.Decode(&i); err != nil {
			return Value{}, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return Int(i), nil
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return Value{}, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return floatValue(f)
	default:
		return String(node.Value), nil
	}
}
