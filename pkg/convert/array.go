package convert

import (
	"fmt"

	"github.com/Sumatoshi-tech/typkat/pkg/content"
	"github.com/Sumatoshi-tech/typkat/pkg/katex"
)

const casesArraystretch = 1.2

// cell converts elem into a text-style array cell.
func (conv *conversion) cell(styles Styles, elem content.Elem) (katex.Node, error) {
	body, err := conv.nodes(styles, elem)
	if err != nil {
		return nil, err
	}

	return katex.NewStyling(katex.StyleText, katex.NewOrdGroup(body...)), nil
}

// knownDelim rejects delimiters that have no fence characters. Decoded
// documents are checked by the schema; trees built in Go are not.
func knownDelim(delim content.Delimiter) error {
	if !delim.Known() {
		return fmt.Errorf("%w: unknown delimiter %q", ErrInvariant, delim)
	}

	return nil
}

func fenced(delim content.Delimiter, array *katex.Array) (katex.Result, error) {
	err := knownDelim(delim)
	if err != nil {
		return katex.Result{}, err
	}

	return katex.Single(katex.NewLeftRight(delim.Open(), delim.Close(), array)), nil
}

func (conv *conversion) vec(styles Styles, elem *content.Vec) (katex.Result, error) {
	builder := katex.NewArrayConstructor()

	for _, child := range elem.Children {
		node, err := conv.cell(styles, child)
		if err != nil {
			return katex.Result{}, err
		}

		builder.NextRow()
		builder.PushNode(node)
	}

	array := builder.ColsCenterAlign().SetRowGaps([]*katex.Measurement{nil}).Build()
	array.HskipBeforeAndAfter = katex.Ptr(false)

	return fenced(styles.VecDelim(elem.Delim), array)
}

func (conv *conversion) mat(styles Styles, elem *content.Mat) (katex.Result, error) {
	if elem.Augment != nil {
		conv.unsupported(elem.Kind(), "augment")
	}

	builder := katex.NewArrayConstructor()

	for _, row := range elem.Rows {
		builder.NextRow()

		for _, child := range row {
			node, err := conv.cell(styles, child)
			if err != nil {
				return katex.Result{}, err
			}

			builder.PushNode(node)
		}
	}

	array := builder.ColsCenterAlign().Build()
	array.HskipBeforeAndAfter = katex.Ptr(false)

	return fenced(styles.MatDelim(elem.Delim), array)
}

// splitBranch splits a cases branch at its first align point into the value
// and the condition. Later align points are dropped.
func splitBranch(branch content.Elem) []content.Elem {
	seq, ok := branch.(*content.Sequence)
	if !ok {
		return []content.Elem{branch}
	}

	for i, child := range seq.Children {
		if !content.IsAlignPoint(child) {
			continue
		}

		rest := make([]content.Elem, 0, len(seq.Children)-i-1)
		for _, elem := range seq.Children[i+1:] {
			if !content.IsAlignPoint(elem) {
				rest = append(rest, elem)
			}
		}

		return []content.Elem{content.Seq(seq.Children[:i]...), content.Seq(rest...)}
	}

	return []content.Elem{branch}
}

func casesFences(delim content.Delimiter, reverse bool) (left, right string) {
	if reverse {
		if delim == content.DelimBrace {
			return ".", "\\}"
		}

		return ".", delim.Close()
	}

	if delim == content.DelimBrace {
		return "\\{", "."
	}

	return delim.Open(), "."
}

func (conv *conversion) cases(styles Styles, elem *content.Cases) (katex.Result, error) {
	delim := styles.CasesDelim(elem.Delim)

	err := knownDelim(delim)
	if err != nil {
		return katex.Result{}, err
	}

	builder := katex.NewArrayConstructor()

	for _, branch := range elem.Children {
		builder.NextRow()

		for _, part := range splitBranch(branch) {
			node, err := conv.cell(styles, part)
			if err != nil {
				return katex.Result{}, err
			}

			builder.PushNode(node)
		}
	}

	array := builder.ColsCasesAlign().Build()
	array.Arraystretch = casesArraystretch
	array.HskipBeforeAndAfter = katex.Ptr(false)

	left, right := casesFences(delim, elem.Reverse)

	return katex.Single(katex.NewLeftRight(left, right, array)), nil
}
