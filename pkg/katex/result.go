package katex

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotSingleNode is returned when a sequence of other than one node is
// used where exactly one node is required.
var ErrNotSingleNode = errors.New("expected a single node")

// Result is the outcome of converting one element: a single node or an
// ordered sequence of nodes.
type Result struct {
	node  Node
	nodes []Node
}

// Single wraps one node.
func Single(node Node) Result {
	return Result{node: node}
}

// Sequence wraps an ordered node sequence.
func Sequence(nodes ...Node) Result {
	if nodes == nil {
		nodes = []Node{}
	}

	return Result{nodes: nodes}
}

// IsNode reports whether the result holds a single node.
func (r Result) IsNode() bool {
	return r.node != nil
}

// Len returns the number of nodes in the result.
func (r Result) Len() int {
	if r.IsNode() {
		return 1
	}

	return len(r.nodes)
}

// AsNode returns the single node, unwrapping a one-element sequence.
func (r Result) AsNode() (Node, error) {
	if r.IsNode() {
		return r.node, nil
	}

	if len(r.nodes) == 1 {
		return r.nodes[0], nil
	}

	return nil, fmt.Errorf("%w: got a sequence of %d", ErrNotSingleNode, len(r.nodes))
}

// AsSequence returns the nodes, wrapping a single node in a one-element sequence.
func (r Result) AsSequence() NodeArray {
	if r.IsNode() {
		return NodeArray{r.node}
	}

	return NodeArray(r.nodes)
}

// MarshalJSON writes a single node as an object and a sequence as an array.
func (r Result) MarshalJSON() ([]byte, error) {
	var (
		data []byte
		err  error
	)

	if r.IsNode() {
		data, err = json.Marshal(r.node)
	} else {
		data, err = json.Marshal(r.AsSequence())
	}

	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}

	return data, nil
}

// InsertSeparator interleaves items with separators produced by sep, giving
// len(items)-1 separators. sep is called once per gap.
func InsertSeparator(items []Node, sep func() Node) NodeArray {
	out := make(NodeArray, 0, max(2*len(items)-1, 0))

	for i, item := range items {
		if i > 0 {
			out = append(out, sep())
		}

		out = append(out, item)
	}

	return out
}
