package document

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"phfile/schema"
)

// MarshalYAML renders the stored fields as a mapping in schema order.
func (d *Document) MarshalYAML() (any, error) {
	return fieldsNode(d.schema, d.values)
}

func fieldsNode(s *schema.Schema, values map[string]any) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for _, f := range s.Fields() {
		v, ok := values[f.Name]
		if !ok {
			continue
		}

		key := &yaml.Node{Kind: yaml.ScalarNode, Value: f.Name}

		val, err := valueNode(f, v)
		if err != nil {
			return nil, fmt.Errorf("encoding field %s: %w", f.Name, err)
		}

		node.Content = append(node.Content, key, val)
	}

	return node, nil
}

func valueNode(f schema.Field, v any) (*yaml.Node, error) {
	switch x := v.(type) {
	case []Record:
		seq := &yaml.Node{Kind: yaml.SequenceNode}

		for _, rec := range x {
			item, err := fieldsNode(f.Record, rec)
			if err != nil {
				return nil, err
			}

			seq.Content = append(seq.Content, item)
		}

		return seq, nil
	case []float64:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, s := range FormatList(x) {
			seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: s})
		}

		return seq, nil
	case float64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: FormatFloat(x)}, nil
	default:
		var n yaml.Node
		if err := n.Encode(v); err != nil {
			return nil, err
		}

		return &n, nil
	}
}

// ParseValues decodes a YAML mapping of field names to values, suitable as
// the keyed input of Set.
func ParseValues(data []byte) (map[string]any, error) {
	values := make(map[string]any)

	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse values YAML: %w", err)
	}

	return values, nil
}

// LoadValues reads a YAML values file.
func LoadValues(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read values file %s: %w", path, err)
	}

	return ParseValues(data)
}
