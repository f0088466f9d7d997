package convert

import (
	"fmt"

	"github.com/Sumatoshi-tech/typkat/pkg/content"
	"github.com/Sumatoshi-tech/typkat/pkg/katex"
)

// KaTeX function names emitted by the converters.
const (
	fontRoman      = "mathrm"
	fontCalligraph = "mathcal"
	fontBlackboard = "mathbb"
	labelCancel    = "\\cancel"
	labelOverbrace = "\\overbrace"
	labelUnderbr   = "\\underbrace"
)

func (conv *conversion) h(styles Styles, elem *content.H) (katex.Result, error) {
	if elem.Amount.Fr != 0 {
		return katex.Result{}, fmt.Errorf("%w: fractional spacing %gfr", ErrUnimplemented, elem.Amount.Fr)
	}

	if elem.Weak {
		conv.unsupported(elem.Kind(), "weak")
	}

	em := elem.Amount.Em + elem.Amount.Abs/styles.FontSize()

	return katex.Single(katex.NewKern(katex.Em(em))), nil
}

// delimiterText returns the character of a node usable as a stretchy delimiter.
func delimiterText(node katex.Node) (string, bool) {
	switch node := node.(type) {
	case *katex.Atom:
		return node.Text, true
	case *katex.MathOrd:
		return node.Text, true
	case *katex.TextOrd:
		return node.Text, true
	default:
		return "", false
	}
}

func (conv *conversion) lr(styles Styles, elem *content.LR) (katex.Result, error) {
	if elem.Size != "" {
		conv.unsupported(elem.Kind(), "size")
	}

	if content.IsNil(elem.Body) {
		return katex.Result{}, missing("body")
	}

	body, err := conv.nodes(styles, elem.Body)
	if err != nil {
		return katex.Result{}, err
	}

	if len(body) < 2 { //nolint:mnd // Opening and closing delimiter.
		return katex.Result{}, fmt.Errorf("%w: lr body has %d nodes, need both delimiters", ErrInvariant, len(body))
	}

	first, last := body[0], body[len(body)-1]

	left, ok := delimiterText(first)
	if !ok {
		return katex.Result{}, fmt.Errorf("%w: left delimiter is a %s node", ErrInvariant, first.NodeType())
	}

	right, ok := delimiterText(last)
	if !ok {
		return katex.Result{}, fmt.Errorf("%w: right delimiter is a %s node", ErrInvariant, last.NodeType())
	}

	return katex.Single(katex.NewLeftRight(left, right, body[1:len(body)-1]...)), nil
}

func (conv *conversion) attach(styles Styles, elem *content.Attach) (katex.Result, error) {
	corners := []struct {
		name string
		elem content.Elem
	}{
		{"tl", elem.TL}, {"tr", elem.TR}, {"bl", elem.BL}, {"br", elem.BR},
	}

	for _, corner := range corners {
		if !content.IsNil(corner.elem) {
			conv.unsupported(elem.Kind(), corner.name)
		}
	}

	base, err := conv.requiredNodeOrGroup(styles, elem.Base, "base")
	if err != nil {
		return katex.Result{}, err
	}

	sup, err := conv.nodeOrGroup(styles, elem.T)
	if err != nil {
		return katex.Result{}, err
	}

	sub, err := conv.nodeOrGroup(styles, elem.B)
	if err != nil {
		return katex.Result{}, err
	}

	return katex.Single(katex.NewSupSub(base, sup, sub)), nil
}

func variantFont(variant *content.Variant) (string, error) {
	if variant == nil {
		return fontRoman, nil
	}

	switch *variant {
	case content.VariantCal:
		return fontCalligraph, nil
	case content.VariantBb:
		return fontBlackboard, nil
	case content.VariantSerif, content.VariantSans, content.VariantFrak, content.VariantMono:
		return "", fmt.Errorf("%w: variant %s", ErrUnimplemented, *variant)
	default:
		return "", fmt.Errorf("%w: variant %q", ErrUnimplemented, *variant)
	}
}

func (conv *conversion) styled(styles Styles, elem *content.Styled) (katex.Result, error) {
	font, err := variantFont(elem.Variant)
	if err != nil {
		return katex.Result{}, err
	}

	if elem.Bold != nil {
		conv.unsupported(elem.Kind(), "bold")
	}

	if elem.Italic != nil {
		conv.unsupported(elem.Kind(), "italic")
	}

	if elem.Size != nil {
		conv.unsupported(elem.Kind(), "size")
	}

	if elem.Cramped != nil {
		conv.unsupported(elem.Kind(), "cramped")
	}

	body, err := conv.requiredNodeOrGroup(styles, elem.Body, "body")
	if err != nil {
		return katex.Result{}, err
	}

	return katex.Single(katex.NewFont(font, body)), nil
}

func (conv *conversion) frac(styles Styles, elem *content.Frac) (katex.Result, error) {
	numer, err := conv.requiredGroup(styles, elem.Num, "num")
	if err != nil {
		return katex.Result{}, err
	}

	denom, err := conv.requiredGroup(styles, elem.Denom, "denom")
	if err != nil {
		return katex.Result{}, err
	}

	return katex.Single(katex.NewGenFrac(numer, denom)), nil
}

func (conv *conversion) binom(styles Styles, elem *content.Binom) (katex.Result, error) {
	numer, err := conv.requiredGroup(styles, elem.Upper, "upper")
	if err != nil {
		return katex.Result{}, err
	}

	items := make([]katex.Node, 0, len(elem.Lower))

	for _, lower := range elem.Lower {
		item, groupErr := conv.requiredGroup(styles, lower, "lower item")
		if groupErr != nil {
			return katex.Result{}, groupErr
		}

		items = append(items, item)
	}

	comma := katex.Lookup(katex.ModeMath, ',')
	if _, err = comma.CreateNode(); err != nil {
		return katex.Result{}, err
	}

	denom := katex.InsertSeparator(items, func() katex.Node {
		node, _ := comma.CreateNode() //nolint:errcheck // Checked above.

		return node
	})

	frac := katex.NewGenFrac(numer, katex.NewOrdGroup(denom...))
	frac.HasBarLine = false
	frac.LeftDelim = katex.Ptr("(")
	frac.RightDelim = katex.Ptr(")")

	return katex.Single(frac), nil
}

func (conv *conversion) op(elem *content.Op) (katex.Result, error) {
	name := content.PlainText(elem.Text)
	if name == "" {
		return katex.Result{}, missing("operator name")
	}

	op := katex.NewOp()
	op.Limits = elem.Limits
	op.Name = katex.Ptr("\\" + name)

	return katex.Single(op), nil
}

// limits forces the limit placement of body. An operator body keeps its name
// and only has its placement replaced.
func (conv *conversion) limits(styles Styles, body content.Elem, forced bool) (katex.Result, error) {
	if content.IsNil(body) {
		return katex.Result{}, missing("body")
	}

	result, err := conv.visit(styles, body)
	if err != nil {
		return katex.Result{}, err
	}

	if node, nodeErr := result.AsNode(); nodeErr == nil {
		if op, ok := node.(*katex.Op); ok {
			placed := *op
			placed.Limits = forced

			return katex.Single(&placed), nil
		}
	}

	op := katex.NewOp()
	op.Limits = forced
	op.Body = result.AsSequence()

	return katex.Single(op), nil
}

func (conv *conversion) cancel(styles Styles, elem *content.Cancel) (katex.Result, error) {
	dropped := []struct {
		name string
		set  bool
	}{
		{"length", elem.Length != ""},
		{"angle", elem.Angle != ""},
		{"inverted", elem.Inverted},
		{"cross", elem.Cross},
		{"stroke", elem.Stroke != ""},
	}

	for _, attr := range dropped {
		if attr.set {
			conv.unsupported(elem.Kind(), attr.name)
		}
	}

	body, err := conv.requiredGroup(styles, elem.Body, "body")
	if err != nil {
		return katex.Result{}, err
	}

	return katex.Single(katex.NewEnclose(labelCancel, body)), nil
}

func (conv *conversion) brace(styles Styles, body, annotation content.Elem, over bool) (katex.Result, error) {
	base, err := conv.requiredGroup(styles, body, "body")
	if err != nil {
		return katex.Result{}, err
	}

	label := labelUnderbr
	if over {
		label = labelOverbrace
	}

	brace := katex.NewHorizBrace(label, over, base)
	if content.IsNil(annotation) {
		return katex.Single(brace), nil
	}

	note, err := conv.nodeOrGroup(styles, annotation)
	if err != nil {
		return katex.Result{}, err
	}

	if over {
		return katex.Single(katex.NewSupSub(brace, note, nil)), nil
	}

	return katex.Single(katex.NewSupSub(brace, nil, note)), nil
}

func (conv *conversion) overline(styles Styles, elem *content.Overline) (katex.Result, error) {
	body, err := conv.requiredGroup(styles, elem.Body, "body")
	if err != nil {
		return katex.Result{}, err
	}

	return katex.Single(katex.NewOverline(body)), nil
}

func (conv *conversion) underline(styles Styles, elem *content.Underline) (katex.Result, error) {
	body, err := conv.requiredGroup(styles, elem.Body, "body")
	if err != nil {
		return katex.Result{}, err
	}

	return katex.Single(katex.NewUnderline(body)), nil
}

func (conv *conversion) root(styles Styles, elem *content.Root) (katex.Result, error) {
	body, err := conv.requiredGroup(styles, elem.Radicand, "radicand")
	if err != nil {
		return katex.Result{}, err
	}

	index, err := conv.group(styles, elem.Index)
	if err != nil {
		return katex.Result{}, err
	}

	return katex.Single(katex.NewSqrt(body, index)), nil
}

func (conv *conversion) mid(elem *content.Mid) (katex.Result, error) {
	if content.IsNil(elem.Body) {
		return katex.Result{}, missing("body")
	}

	return katex.Single(katex.NewMiddle(content.PlainText(elem.Body))), nil
}
