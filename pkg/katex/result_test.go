package katex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/typkat/pkg/katex"
)

func TestResultAsNode(t *testing.T) {
	t.Parallel()

	x := katex.NewMathOrd("x")

	node, err := katex.Single(x).AsNode()
	require.NoError(t, err)
	assert.Same(t, x, node)

	node, err = katex.Sequence(x).AsNode()
	require.NoError(t, err)
	assert.Same(t, x, node)

	_, err = katex.Sequence().AsNode()
	require.ErrorIs(t, err, katex.ErrNotSingleNode)

	_, err = katex.Sequence(x, x).AsNode()
	require.ErrorIs(t, err, katex.ErrNotSingleNode)
}

func TestResultAsSequence(t *testing.T) {
	t.Parallel()

	x := katex.NewMathOrd("x")

	assert.Equal(t, katex.NodeArray{x}, katex.Single(x).AsSequence())
	assert.Equal(t, katex.NodeArray{x, x}, katex.Sequence(x, x).AsSequence())
	assert.Empty(t, katex.Sequence().AsSequence())
	assert.Equal(t, 2, katex.Sequence(x, x).Len())
	assert.Equal(t, 1, katex.Single(x).Len())
}

func TestResultSingleRoundTrip(t *testing.T) {
	t.Parallel()

	x := katex.NewMathOrd("x")

	node, err := katex.Sequence(katex.Single(x).AsSequence()...).AsNode()
	require.NoError(t, err)
	assert.Same(t, x, node)
}

func TestResultMarshal(t *testing.T) {
	t.Parallel()

	x := katex.NewMathOrd("x")
	object := `{"type":"mathord","mode":"math","loc":null,"text":"x"}`

	assert.Equal(t, object, marshal(t, katex.Single(x)))
	assert.Equal(t, "["+object+"]", marshal(t, katex.Sequence(x)))
	assert.Equal(t, "[]", marshal(t, katex.Sequence()))
}

func TestInsertSeparator(t *testing.T) {
	t.Parallel()

	a, b, c := katex.NewMathOrd("a"), katex.NewMathOrd("b"), katex.NewMathOrd("c")
	comma := func() katex.Node { return katex.NewAtom(katex.AtomPunct, ",") }

	out := katex.InsertSeparator([]katex.Node{a, b, c}, comma)
	require.Len(t, out, 5)
	assert.Same(t, a, out[0])
	assert.Same(t, b, out[2])
	assert.Same(t, c, out[4])
	assert.Equal(t, katex.TypeAtom, out[1].NodeType())

	assert.Len(t, katex.InsertSeparator([]katex.Node{a}, comma), 1)
	assert.Empty(t, katex.InsertSeparator(nil, comma))
}
