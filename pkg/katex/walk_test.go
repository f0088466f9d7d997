package katex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sumatoshi-tech/typkat/pkg/katex"
)

func TestChildrenSkipsNil(t *testing.T) {
	t.Parallel()

	base := katex.NewMathOrd("x")
	sup := katex.NewTextOrd(katex.ModeMath, "2")

	children := katex.Children(katex.NewSupSub(base, sup, nil))
	assert.Equal(t, katex.NodeArray{base, sup}, children)
}

func TestChildrenOfLeaf(t *testing.T) {
	t.Parallel()

	assert.Empty(t, katex.Children(katex.NewMathOrd("x")))
	assert.Empty(t, katex.Children(katex.NewKern(katex.Em(1))))
}

func TestWalkPreOrder(t *testing.T) {
	t.Parallel()

	frac := katex.NewGenFrac(
		katex.NewOrdGroup(katex.NewMathOrd("a")),
		katex.NewOrdGroup(katex.NewMathOrd("b")),
	)

	var types []katex.NodeType

	katex.Walk(frac, func(node katex.Node) bool {
		types = append(types, node.NodeType())

		return true
	})

	assert.Equal(t, []katex.NodeType{
		katex.TypeGenFrac,
		katex.TypeOrdGroup, katex.TypeMathOrd,
		katex.TypeOrdGroup, katex.TypeMathOrd,
	}, types)
	assert.Equal(t, 5, katex.Count(frac))
}

func TestWalkSkipsChildren(t *testing.T) {
	t.Parallel()

	group := katex.NewOrdGroup(katex.NewMathOrd("a"), katex.NewMathOrd("b"))
	visited := 0

	katex.Walk(group, func(katex.Node) bool {
		visited++

		return false
	})

	assert.Equal(t, 1, visited)
}

func TestWalkArrayCells(t *testing.T) {
	t.Parallel()

	ctor := katex.NewArrayConstructor()
	ctor.PushNode(katex.NewMathOrd("a"))
	ctor.NextRow()
	ctor.PushNode(katex.NewMathOrd("b"))

	assert.Equal(t, 3, katex.Count(ctor.Build()))
}
