// Package katex models the KaTeX parse-node tree: the output of a conversion.
//
// Every node serialises to a JSON object whose "type" field comes first and
// whose remaining fields follow the KaTeX parse-node schema. Optional fields
// are written as null rather than omitted, and "loc" is always null.
package katex

import (
	"encoding/json"
	"fmt"
)

// Node is one KaTeX parse node.
type Node interface {
	// NodeType returns the discriminant written to the "type" field.
	NodeType() NodeType
	// NodeMode returns the parsing mode of the node.
	NodeMode() Mode
}

// Meta holds the fields shared by every node.
type Meta struct {
	Mode Mode            `json:"mode"`
	Loc  *SourceLocation `json:"loc"`
}

// NodeMode returns the node's mode.
func (m Meta) NodeMode() Mode {
	return m.Mode
}

// MathMeta returns the metadata of a math-mode node.
func MathMeta() Meta {
	return Meta{Mode: ModeMath}
}

// TextMeta returns the metadata of a text-mode node.
func TextMeta() Meta {
	return Meta{Mode: ModeText}
}

// NodeArray is an ordered node sequence. It serialises as [] when empty.
type NodeArray []Node

// MarshalJSON implements json.Marshaler.
func (nodes NodeArray) MarshalJSON() ([]byte, error) {
	if nodes == nil {
		return []byte("[]"), nil
	}

	data, err := json.Marshal([]Node(nodes))
	if err != nil {
		return nil, fmt.Errorf("marshal node array: %w", err)
	}

	return data, nil
}

// MarshalJSON implements json.Marshaler. Nil grids serialise as empty arrays.
func (node *Array) MarshalJSON() ([]byte, error) {
	type plain Array

	if node == nil {
		return []byte("null"), nil
	}

	normalized := plain(*node)

	if normalized.Body == nil {
		normalized.Body = []NodeArray{}
	}

	if normalized.RowGaps == nil {
		normalized.RowGaps = []*Measurement{}
	}

	lines := make([][]bool, len(normalized.HLinesBeforeRow))
	for i, row := range normalized.HLinesBeforeRow {
		if row == nil {
			row = []bool{}
		}

		lines[i] = row
	}

	normalized.HLinesBeforeRow = lines

	return marshalTagged(TypeArray, &normalized)
}

// marshalTagged encodes value and splices the "type" discriminant in as the first key.
func marshalTagged(nodeType NodeType, value any) ([]byte, error) {
	body, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("marshal %s node: %w", nodeType, err)
	}

	if string(body) == "null" {
		return body, nil
	}

	tagged := fmt.Appendf(nil, `{"type":%q`, nodeType)

	if len(body) <= len("{}") {
		return append(tagged, '}'), nil
	}

	tagged = append(tagged, ',')

	return append(tagged, body[1:]...), nil
}

// String renders the node as compact JSON.
func String(node Node) string {
	data, err := json.Marshal(node)
	if err != nil {
		return fmt.Sprintf("<%s: %v>", node.NodeType(), err)
	}

	return string(data)
}
