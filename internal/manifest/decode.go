package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// decodeJSON builds a Value tree from a JSON document using the token
// stream, so object keys keep their document order.
func decodeJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	root, err := decodeJSONValue(dec)
	if err != nil {
		return Value{}, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return Value{}, err
	}

	return root, nil
}

func decodeJSONValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, io.ErrUnexpectedEOF
		}
		return Value{}, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			b := NewMapBuilder()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("object key must be a string, got %v", keyTok)
				}
				child, err := decodeJSONValue(dec)
				if err != nil {
					return Value{}, err
				}
				b.Set(key, child)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return b.Build(), nil
		case '[':
			items := []Value{}
			for dec.More() {
				child, err := decodeJSONValue(dec)
				if err != nil {
					return Value{}, err
				}
				items = append(items, child)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return List(items...), nil
		}
		return Value{}, fmt.Errorf("unexpected delimiter %v", t)
	case string:
		return String(t), nil
	case json.Number:
		return Number(t.String()), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	}

	return Value{}, fmt.Errorf("unexpected token %v", tok)
}

// decodeYAML builds a Value tree from a YAML document via yaml.v3 nodes,
// which keep mapping order.
func decodeYAML(data []byte) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Value{}, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return Value{}, errors.New("empty document")
	}
	return convertYAMLNode(doc.Content[0])
}

func convertYAMLNode(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.MappingNode:
		b := NewMapBuilder()
		for i := 0; i+1 < len(n.Content); i += 2 {
			child, err := convertYAMLNode(n.Content[i+1])
			if err != nil {
				return Value{}, err
			}
			b.Set(n.Content[i].Value, child)
		}
		return b.Build(), nil
	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			child, err := convertYAMLNode(c)
			if err != nil {
				return Value{}, err
			}
			items = append(items, child)
		}
		return List(items...), nil
	case yaml.AliasNode:
		if n.Alias == nil {
			return Value{}, fmt.Errorf("line %d: unresolved alias", n.Line)
		}
		return convertYAMLNode(n.Alias)
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return Null(), nil
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err != nil {
				return Value{}, err
			}
			return Bool(b), nil
		case "!!int", "!!float":
			return Number(n.Value), nil
		}
		return String(n.Value), nil
	}
	return Value{}, fmt.Errorf("line %d: unsupported node kind %d", n.Line, n.Kind)
}
