package katex

// Constructors for the nodes conversions emit. Each one fills the schema
// defaults so callers only set what differs.

// NewArray returns an empty math-mode array with unit stretch and a single
// empty h-line entry.
func NewArray() *Array {
	return &Array{
		Meta:            MathMeta(),
		Arraystretch:    1,
		Body:            []NodeArray{},
		RowGaps:         []*Measurement{},
		HLinesBeforeRow: [][]bool{{}},
	}
}

// NewOp returns a math-mode operator with limits enabled.
func NewOp() *Op {
	return &Op{Meta: MathMeta(), Limits: true}
}

// NewOrdGroup groups body into a single ordinary atom.
func NewOrdGroup(body ...Node) *OrdGroup {
	return &OrdGroup{Meta: MathMeta(), Body: nonNil(body)}
}

// NewStyling renders body in the given style.
func NewStyling(style StyleStr, body ...Node) *Styling {
	return &Styling{Meta: MathMeta(), Style: style, Body: nonNil(body)}
}

// NewSupSub attaches sup and sub to base. Any of them may be nil.
func NewSupSub(base, sup, sub Node) *SupSub {
	return &SupSub{Meta: MathMeta(), Base: base, Sup: sup, Sub: sub}
}

// NewText wraps body, which should be text-mode nodes, in a text node.
func NewText(body ...Node) *Text {
	return &Text{Meta: MathMeta(), Body: nonNil(body)}
}

// NewAtom returns a math-mode atom of the given family.
func NewAtom(family AtomGroup, text string) *Atom {
	return &Atom{Family: family, Meta: MathMeta(), Text: text}
}

// NewMathOrd returns a math-mode ordinary character.
func NewMathOrd(text string) *MathOrd {
	return &MathOrd{Meta: MathMeta(), Text: text}
}

// NewTextOrd returns an ordinary character in the given mode.
func NewTextOrd(mode Mode, text string) *TextOrd {
	return &TextOrd{Meta: Meta{Mode: mode}, Text: text}
}

// NewGenFrac returns a barred fraction of automatic size and no delimiters.
func NewGenFrac(numer, denom Node) *GenFrac {
	return &GenFrac{
		Meta:       MathMeta(),
		Numer:      numer,
		Denom:      denom,
		HasBarLine: true,
		Size:       GenFracAuto,
	}
}

// NewLeftRight wraps body in the given stretchy delimiters.
func NewLeftRight(left, right string, body ...Node) *LeftRight {
	return &LeftRight{Meta: MathMeta(), Body: nonNil(body), Left: left, Right: right}
}

// NewKern returns horizontal space of the given dimension.
func NewKern(dimension Measurement) *Kern {
	return &Kern{Meta: MathMeta(), Dimension: dimension}
}

// NewEnclose draws the labelled notation over body.
func NewEnclose(label string, body Node) *Enclose {
	return &Enclose{Meta: MathMeta(), Label: label, Body: body}
}

// NewFont renders body in the named font.
func NewFont(font string, body Node) *Font {
	return &Font{Meta: MathMeta(), Font: font, Body: body}
}

// NewHorizBrace places a labelled brace over (isOver) or under base.
func NewHorizBrace(label string, isOver bool, base Node) *HorizBrace {
	return &HorizBrace{Meta: MathMeta(), Label: label, IsOver: isOver, Base: base}
}

// NewOverline draws a line over body.
func NewOverline(body Node) *Overline {
	return &Overline{Meta: MathMeta(), Body: body}
}

// NewUnderline draws a line under body.
func NewUnderline(body Node) *Underline {
	return &Underline{Meta: MathMeta(), Body: body}
}

// NewSqrt returns a radical; index may be nil.
func NewSqrt(body, index Node) *Sqrt {
	return &Sqrt{Meta: MathMeta(), Body: body, Index: index}
}

// NewMiddle returns a stretchy middle delimiter.
func NewMiddle(delim string) *Middle {
	return &Middle{Meta: MathMeta(), Delim: delim}
}

// NewLap overlaps body to the given side ("llap", "rlap" or "clap").
func NewLap(alignment string, body Node) *Lap {
	return &Lap{Meta: MathMeta(), Alignment: alignment, Body: body}
}

// NewMClass gives body the spacing class mclass, e.g. "mrel".
func NewMClass(mclass string, body ...Node) *MClass {
	return &MClass{Meta: MathMeta(), MClass: mclass, Body: nonNil(body)}
}

func nonNil(body []Node) NodeArray {
	if body == nil {
		return NodeArray{}
	}

	return body
}
