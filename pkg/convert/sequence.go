package convert

import (
	"github.com/Sumatoshi-tech/typkat/pkg/content"
	"github.com/Sumatoshi-tech/typkat/pkg/katex"
)

func (conv *conversion) equation(styles Styles, elem *content.Equation) (katex.Result, error) {
	body, err := conv.nodes(styles, elem.Body)
	if err != nil {
		return katex.Result{}, err
	}

	return katex.Sequence(body...), nil
}

func (conv *conversion) text(styles Styles, elem *content.Text) (katex.Result, error) {
	chars := []rune(elem.Text)

	switch len(chars) {
	case 0:
		return katex.Sequence(), nil
	case 1:
		node, err := katex.Lookup(styles.Mode(), chars[0]).CreateNode()
		if err != nil {
			return katex.Result{}, err
		}

		return katex.Single(node), nil
	}

	body := make([]katex.Node, 0, len(chars))

	for _, char := range chars {
		node, err := katex.Lookup(katex.ModeText, char).CreateNode()
		if err != nil {
			return katex.Result{}, err
		}

		body = append(body, node)
	}

	return katex.Single(katex.NewText(body...)), nil
}

// alignment splits a sequence into rows at line breaks and into cells at
// align points.
type alignment struct {
	rows    [][]katex.NodeArray
	cell    katex.NodeArray
	aligned bool
}

func newAlignment() *alignment {
	return &alignment{rows: [][]katex.NodeArray{{}}, cell: katex.NodeArray{}}
}

func (a *alignment) closeCell() {
	last := len(a.rows) - 1
	a.rows[last] = append(a.rows[last], a.cell)
	a.cell = katex.NodeArray{}
}

func (a *alignment) lineBreak() {
	a.closeCell()
	a.rows = append(a.rows, []katex.NodeArray{})
}

func (a *alignment) alignPoint() {
	a.closeCell()
	a.aligned = true
}

func (a *alignment) push(nodes ...katex.Node) {
	a.cell = append(a.cell, nodes...)
}

// flat concatenates every cell. Row boundaries are lost.
func (a *alignment) flat() katex.NodeArray {
	out := katex.NodeArray{}

	for _, row := range a.rows {
		for _, cell := range row {
			out = append(out, cell...)
		}
	}

	return out
}

// array lays the cells out as an aligned environment.
func (a *alignment) array() *katex.Array {
	builder := katex.NewArrayConstructor()

	for _, row := range a.rows {
		builder.NextRow()

		for _, cell := range row {
			builder.PushNode(katex.NewStyling(katex.StyleDisplay, katex.NewOrdGroup(cell...)))
		}
	}

	array := builder.ColsLeftRightAlign().Build()
	array.AddJot = katex.Ptr(true)
	array.Leqno = katex.Ptr(false)
	array.ColSeparationType = katex.Ptr(katex.ColSepAlign)

	return array
}

// sequence converts the children in order. Without align points the result is
// the flat concatenation of the converted children. With at least one align
// point it is a single aligned array with one row per line.
func (conv *conversion) sequence(styles Styles, elem *content.Sequence) (katex.Result, error) {
	layout := newAlignment()

	for _, child := range elem.Children {
		switch {
		case content.IsLinebreak(child):
			layout.lineBreak()
		case content.IsAlignPoint(child):
			layout.alignPoint()
		default:
			nodes, err := conv.nodes(styles, child)
			if err != nil {
				return katex.Result{}, err
			}

			layout.push(nodes...)
		}
	}

	layout.closeCell()

	if !layout.aligned {
		return katex.Sequence(layout.flat()...), nil
	}

	return katex.Single(layout.array()), nil
}
