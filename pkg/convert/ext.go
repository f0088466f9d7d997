package convert

import (
	"github.com/Sumatoshi-tech/typkat/pkg/katex"
)

// NotEquals returns the composite relation KaTeX builds for \neq: a
// zero-width \@not overlapping an equals sign, classed as a relation.
func NotEquals() katex.Node {
	not := katex.NewLap("rlap", katex.NewOrdGroup(katex.NewAtom(katex.AtomRel, "\\@not")))

	return katex.NewMClass("mrel",
		katex.NewMClass("rel", not),
		katex.NewAtom(katex.AtomRel, "="),
	)
}

// Define returns the nodes of the := relation.
func Define() (katex.Result, error) {
	colon, err := katex.Lookup(katex.ModeMath, ':').CreateNode()
	if err != nil {
		return katex.Result{}, err
	}

	equals, err := katex.Lookup(katex.ModeMath, '=').CreateNode()
	if err != nil {
		return katex.Result{}, err
	}

	return katex.Sequence(colon, equals), nil
}
