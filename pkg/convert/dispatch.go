package convert

import (
	"fmt"

	"github.com/Sumatoshi-tech/typkat/pkg/content"
	"github.com/Sumatoshi-tech/typkat/pkg/katex"
)

// visit converts one element. Every error it returns is an *Error.
func (conv *conversion) visit(styles Styles, elem content.Elem) (katex.Result, error) {
	if content.IsNil(elem) {
		return katex.Result{}, &Error{Err: fmt.Errorf("%w: nil element", ErrInvariant), Kind: kindOf(elem)}
	}

	result, err := conv.dispatch(styles, elem)
	if err != nil {
		return katex.Result{}, newError(elem, err)
	}

	return result, nil
}

//nolint:gocyclo,cyclop // One case per element kind.
func (conv *conversion) dispatch(styles Styles, elem content.Elem) (katex.Result, error) {
	switch elem := elem.(type) {
	case *content.Equation:
		return conv.equation(styles, elem)
	case *content.Sequence:
		return conv.sequence(styles, elem)
	case *content.Text:
		return conv.text(styles, elem)
	case *content.Space, *content.Linebreak, *content.AlignPoint:
		return katex.Sequence(), nil
	case *content.H:
		return conv.h(styles, elem)
	case *content.LR:
		return conv.lr(styles, elem)
	case *content.Attach:
		return conv.attach(styles, elem)
	case *content.Styled:
		return conv.styled(styles, elem)
	case *content.Frac:
		return conv.frac(styles, elem)
	case *content.Binom:
		return conv.binom(styles, elem)
	case *content.Vec:
		return conv.vec(styles, elem)
	case *content.Mat:
		return conv.mat(styles, elem)
	case *content.Op:
		return conv.op(elem)
	case *content.Cases:
		return conv.cases(styles, elem)
	case *content.Cancel:
		return conv.cancel(styles, elem)
	case *content.Overbrace:
		return conv.brace(styles, elem.Body, elem.Annotation, true)
	case *content.Underbrace:
		return conv.brace(styles, elem.Body, elem.Annotation, false)
	case *content.Overbracket, *content.Underbracket, *content.Class,
		*content.Primes, *content.Accent:
		return katex.Result{}, fmt.Errorf("%w: %s", ErrUnimplemented, elem.Kind())
	case *content.Overline:
		return conv.overline(styles, elem)
	case *content.Underline:
		return conv.underline(styles, elem)
	case *content.Root:
		return conv.root(styles, elem)
	case *content.Mid:
		return conv.mid(elem)
	case *content.Limits:
		if elem.Inline != nil {
			conv.unsupported(elem.Kind(), "inline")
		}

		return conv.limits(styles, elem.Body, true)
	case *content.Scripts:
		return conv.limits(styles, elem.Body, false)
	default:
		return katex.Result{}, fmt.Errorf("%w: %T", ErrUnknownKind, elem)
	}
}

// nodes converts elem into a flat node list.
func (conv *conversion) nodes(styles Styles, elem content.Elem) (katex.NodeArray, error) {
	result, err := conv.visit(styles, elem)
	if err != nil {
		return nil, err
	}

	return result.AsSequence(), nil
}

// group converts elem and wraps the nodes in an OrdGroup. A nil elem yields nil.
func (conv *conversion) group(styles Styles, elem content.Elem) (katex.Node, error) {
	if content.IsNil(elem) {
		return nil, nil //nolint:nilnil // Absent optional elements convert to absent nodes.
	}

	body, err := conv.nodes(styles, elem)
	if err != nil {
		return nil, err
	}

	return katex.NewOrdGroup(body...), nil
}

// nodeOrGroup converts elem to a single node, wrapping it in an OrdGroup
// when it does not reduce to one. A nil elem yields nil.
func (conv *conversion) nodeOrGroup(styles Styles, elem content.Elem) (katex.Node, error) {
	if content.IsNil(elem) {
		return nil, nil //nolint:nilnil // Absent optional elements convert to absent nodes.
	}

	result, err := conv.visit(styles, elem)
	if err != nil {
		return nil, err
	}

	if node, nodeErr := result.AsNode(); nodeErr == nil {
		return node, nil
	}

	return katex.NewOrdGroup(result.AsSequence()...), nil
}

// missing reports an absent child the element cannot be converted without.
func missing(field string) error {
	return fmt.Errorf("%w: missing %s", ErrInvariant, field)
}

// requiredGroup is group for a child that must be present.
func (conv *conversion) requiredGroup(styles Styles, elem content.Elem, field string) (katex.Node, error) {
	if content.IsNil(elem) {
		return nil, missing(field)
	}

	return conv.group(styles, elem)
}

// requiredNodeOrGroup is nodeOrGroup for a child that must be present.
func (conv *conversion) requiredNodeOrGroup(styles Styles, elem content.Elem, field string) (katex.Node, error) {
	if content.IsNil(elem) {
		return nil, missing(field)
	}

	return conv.nodeOrGroup(styles, elem)
}
