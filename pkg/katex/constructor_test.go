package katex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/typkat/pkg/katex"
)

func TestArrayConstructorEmpty(t *testing.T) {
	t.Parallel()

	array := katex.NewArrayConstructor().Build()

	assert.Empty(t, array.Body)
	assert.Equal(t, [][]bool{{}}, array.HLinesBeforeRow)
	assert.Empty(t, array.RowGaps)
	assert.Nil(t, array.Cols)
	assert.InDelta(t, 1.0, array.Arraystretch, 0)
}

func TestArrayConstructorRows(t *testing.T) {
	t.Parallel()

	ctor := katex.NewArrayConstructor()
	ctor.PushNode(katex.NewMathOrd("a"))
	ctor.PushNode(katex.NewMathOrd("b"))
	ctor.NextRow()
	ctor.PushNode(katex.NewMathOrd("c"))

	assert.Equal(t, 2, ctor.CountRows())
	assert.Equal(t, 2, ctor.CountColumns())

	array := ctor.Build()
	require.Len(t, array.Body, 2)
	assert.Len(t, array.Body[0], 2)
	assert.Len(t, array.Body[1], 1)
	assert.Len(t, array.HLinesBeforeRow, 3)
	assert.Equal(t, []*katex.Measurement{nil}, array.RowGaps)
}

func TestArrayConstructorMapBody(t *testing.T) {
	t.Parallel()

	ctor := katex.NewArrayConstructor()
	ctor.PushNode(katex.NewMathOrd("a"))
	ctor.PushNode(katex.NewMathOrd("b"))
	ctor.MapBody(func(node katex.Node) katex.Node {
		return katex.NewStyling(katex.StyleText, node)
	})

	for _, cell := range ctor.Build().Body[0] {
		assert.Equal(t, katex.TypeStyling, cell.NodeType())
	}
}

func TestArrayConstructorLeftRightAlign(t *testing.T) {
	t.Parallel()

	ctor := katex.NewArrayConstructor()
	for _, text := range []string{"a", "b", "c", "d"} {
		ctor.PushNode(katex.NewMathOrd(text))
	}

	cols := ctor.ColsLeftRightAlign().Build().Cols
	require.Len(t, cols, 4)

	wantAlign := []string{"r", "l", "r", "l"}
	wantPregap := []float64{0, 0, 1, 0}

	for i, col := range cols {
		assert.Equal(t, wantAlign[i], col.Align)
		require.NotNil(t, col.Pregap)
		require.NotNil(t, col.Postgap)
		assert.InDelta(t, wantPregap[i], *col.Pregap, 0)
		assert.InDelta(t, 0.0, *col.Postgap, 0)
	}
}

func TestArrayConstructorCenterAlign(t *testing.T) {
	t.Parallel()

	ctor := katex.NewArrayConstructor()
	ctor.PushNode(katex.NewMathOrd("a"))
	ctor.NextRow()
	ctor.PushNode(katex.NewMathOrd("b"))
	ctor.PushNode(katex.NewMathOrd("c"))

	cols := ctor.ColsCenterAlign().Build().Cols
	require.Len(t, cols, 2)

	for _, col := range cols {
		assert.Equal(t, "c", col.Align)
		assert.Nil(t, col.Pregap)
		assert.Nil(t, col.Postgap)
	}
}

func TestArrayConstructorCasesAlign(t *testing.T) {
	t.Parallel()

	cols := katex.NewArrayConstructor().ColsCasesAlign().Build().Cols
	require.Len(t, cols, 2)
	assert.InDelta(t, 1.0, *cols[0].Postgap, 0)
	assert.InDelta(t, 0.0, *cols[1].Postgap, 0)
}

func TestArrayConstructorBuildCopies(t *testing.T) {
	t.Parallel()

	ctor := katex.NewArrayConstructor()
	ctor.PushNode(katex.NewMathOrd("a"))
	first := ctor.Build()

	ctor.PushNode(katex.NewMathOrd("b"))

	assert.Len(t, first.Body[0], 1)
	assert.Len(t, ctor.Build().Body[0], 2)
}
