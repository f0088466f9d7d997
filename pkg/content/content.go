// Package content models the typeset math content tree that conversions
// consume: equations, sequences, text runs and the math layout elements.
//
// Trees are built in Go or decoded from a YAML/JSON source document. They are
// never mutated by the converter.
package content

// Kind identifies an element's variant.
type Kind string

// Element kinds.
const (
	KindEquation     Kind = "equation"
	KindSequence     Kind = "sequence"
	KindText         Kind = "text"
	KindSpace        Kind = "space"
	KindLinebreak    Kind = "linebreak"
	KindAlignPoint   Kind = "align-point"
	KindH            Kind = "h"
	KindLR           Kind = "lr"
	KindAttach       Kind = "attach"
	KindStyled       Kind = "styled"
	KindFrac         Kind = "frac"
	KindBinom        Kind = "binom"
	KindVec          Kind = "vec"
	KindMat          Kind = "mat"
	KindOp           Kind = "op"
	KindCases        Kind = "cases"
	KindCancel       Kind = "cancel"
	KindOverbrace    Kind = "overbrace"
	KindUnderbrace   Kind = "underbrace"
	KindOverbracket  Kind = "overbracket"
	KindUnderbracket Kind = "underbracket"
	KindOverline     Kind = "overline"
	KindUnderline    Kind = "underline"
	KindRoot         Kind = "root"
	KindMid          Kind = "mid"
	KindClass        Kind = "class"
	KindLimits       Kind = "limits"
	KindScripts      Kind = "scripts"
	KindPrimes       Kind = "primes"
	KindAccent       Kind = "accent"
)

// Kinds lists every element kind.
func Kinds() []Kind {
	return []Kind{
		KindEquation, KindSequence, KindText, KindSpace, KindLinebreak, KindAlignPoint,
		KindH, KindLR, KindAttach, KindStyled, KindFrac, KindBinom, KindVec, KindMat,
		KindOp, KindCases, KindCancel, KindOverbrace, KindUnderbrace, KindOverbracket,
		KindUnderbracket, KindOverline, KindUnderline, KindRoot, KindMid, KindClass,
		KindLimits, KindScripts, KindPrimes, KindAccent,
	}
}

// Elem is one content element. The set of implementations is closed.
type Elem interface {
	Kind() Kind
	isElem()
}

// Equation is a math equation. Block equations are displayed on their own line.
type Equation struct {
	Body  Elem
	Block bool
}

// Sequence is an ordered run of sibling elements.
type Sequence struct {
	Children []Elem
}

// Text is a run of characters.
type Text struct {
	Text string
}

// Space is an inter-word space.
type Space struct{}

// Linebreak ends a row of an aligned block.
type Linebreak struct{}

// AlignPoint starts a new aligned column.
type AlignPoint struct{}

// H is horizontal spacing.
type H struct {
	Amount Spacing
	Weak   bool
}

// LR wraps its body, whose first and last elements are delimiters, in
// stretchy delimiters.
type LR struct {
	Body Elem
	// Size is the requested delimiter size, e.g. "150%". Empty means automatic.
	Size string
}

// Attach attaches scripts to a base. Every script is optional.
type Attach struct {
	Base Elem
	T    Elem
	B    Elem
	TL   Elem
	TR   Elem
	BL   Elem
	BR   Elem
}

// Styled overrides the math variant and style of its body. Nil fields are unset.
type Styled struct {
	Body    Elem
	Variant *Variant
	Bold    *bool
	Italic  *bool
	Size    *MathSize
	Cramped *bool
}

// Frac is a fraction.
type Frac struct {
	Num   Elem
	Denom Elem
}

// Binom is a binomial coefficient. Lower may hold several comma-separated items.
type Binom struct {
	Upper Elem
	Lower []Elem
}

// Vec is a column vector. A nil Delim falls back to the style default.
type Vec struct {
	Children []Elem
	Delim    *Delimiter
}

// Augment places separator lines inside a matrix.
type Augment struct {
	HLine []int
	VLine []int
}

// Mat is a matrix given row by row.
type Mat struct {
	Rows    [][]Elem
	Delim   *Delimiter
	Augment *Augment
}

// Op is a text operator such as lim or sin.
type Op struct {
	Text   Elem
	Limits bool
}

// Cases is a case distinction. Each child is one branch.
type Cases struct {
	Children []Elem
	Delim    *Delimiter
	Reverse  bool
}

// Cancel strikes through its body.
type Cancel struct {
	Body     Elem
	Length   string
	Angle    string
	Stroke   string
	Inverted bool
	Cross    bool
}

// Overbrace draws a brace over its body with an optional annotation.
type Overbrace struct {
	Body       Elem
	Annotation Elem
}

// Underbrace draws a brace under its body with an optional annotation.
type Underbrace struct {
	Body       Elem
	Annotation Elem
}

// Overbracket draws a bracket over its body with an optional annotation.
type Overbracket struct {
	Body       Elem
	Annotation Elem
}

// Underbracket draws a bracket under its body with an optional annotation.
type Underbracket struct {
	Body       Elem
	Annotation Elem
}

// Overline draws a line over its body.
type Overline struct {
	Body Elem
}

// Underline draws a line under its body.
type Underline struct {
	Body Elem
}

// Root is a radical with an optional index.
type Root struct {
	Index    Elem
	Radicand Elem
}

// Mid is a delimiter stretched to the height of the enclosing LR.
type Mid struct {
	Body Elem
}

// Class forces the spacing class of its body.
type Class struct {
	Class MathClass
	Body  Elem
}

// Limits forces scripts attached to its body to display as limits.
type Limits struct {
	Body Elem
	// Inline is nil when unset.
	Inline *bool
}

// Scripts forces scripts attached to its body to display as scripts.
type Scripts struct {
	Body Elem
}

// Primes is a run of prime marks.
type Primes struct {
	Count int
}

// Accent places an accent character over its base.
type Accent struct {
	Base   Elem
	Accent string
}

func (*Equation) Kind() Kind     { return KindEquation }
func (*Sequence) Kind() Kind     { return KindSequence }
func (*Text) Kind() Kind         { return KindText }
func (*Space) Kind() Kind        { return KindSpace }
func (*Linebreak) Kind() Kind    { return KindLinebreak }
func (*AlignPoint) Kind() Kind   { return KindAlignPoint }
func (*H) Kind() Kind            { return KindH }
func (*LR) Kind() Kind           { return KindLR }
func (*Attach) Kind() Kind       { return KindAttach }
func (*Styled) Kind() Kind       { return KindStyled }
func (*Frac) Kind() Kind         { return KindFrac }
func (*Binom) Kind() Kind        { return KindBinom }
func (*Vec) Kind() Kind          { return KindVec }
func (*Mat) Kind() Kind          { return KindMat }
func (*Op) Kind() Kind           { return KindOp }
func (*Cases) Kind() Kind        { return KindCases }
func (*Cancel) Kind() Kind       { return KindCancel }
func (*Overbrace) Kind() Kind    { return KindOverbrace }
func (*Underbrace) Kind() Kind   { return KindUnderbrace }
func (*Overbracket) Kind() Kind  { return KindOverbracket }
func (*Underbracket) Kind() Kind { return KindUnderbracket }
func (*Overline) Kind() Kind     { return KindOverline }
func (*Underline) Kind() Kind    { return KindUnderline }
func (*Root) Kind() Kind         { return KindRoot }
func (*Mid) Kind() Kind          { return KindMid }
func (*Class) Kind() Kind        { return KindClass }
func (*Limits) Kind() Kind       { return KindLimits }
func (*Scripts) Kind() Kind      { return KindScripts }
func (*Primes) Kind() Kind       { return KindPrimes }
func (*Accent) Kind() Kind       { return KindAccent }

func (*Equation) isElem()     {}
func (*Sequence) isElem()     {}
func (*Text) isElem()         {}
func (*Space) isElem()        {}
func (*Linebreak) isElem()    {}
func (*AlignPoint) isElem()   {}
func (*H) isElem()            {}
func (*LR) isElem()           {}
func (*Attach) isElem()       {}
func (*Styled) isElem()       {}
func (*Frac) isElem()         {}
func (*Binom) isElem()        {}
func (*Vec) isElem()          {}
func (*Mat) isElem()          {}
func (*Op) isElem()           {}
func (*Cases) isElem()        {}
func (*Cancel) isElem()       {}
func (*Overbrace) isElem()    {}
func (*Underbrace) isElem()   {}
func (*Overbracket) isElem()  {}
func (*Underbracket) isElem() {}
func (*Overline) isElem()     {}
func (*Underline) isElem()    {}
func (*Root) isElem()         {}
func (*Mid) isElem()          {}
func (*Class) isElem()        {}
func (*Limits) isElem()       {}
func (*Scripts) isElem()      {}
func (*Primes) isElem()       {}
func (*Accent) isElem()       {}

// Seq builds a sequence.
func Seq(children ...Elem) *Sequence {
	return &Sequence{Children: children}
}

// Str builds a text element.
func Str(text string) *Text {
	return &Text{Text: text}
}

// IsLinebreak reports whether elem is a line break.
func IsLinebreak(elem Elem) bool {
	_, ok := elem.(*Linebreak)

	return ok
}

// IsAlignPoint reports whether elem is an align point.
func IsAlignPoint(elem Elem) bool {
	_, ok := elem.(*AlignPoint)

	return ok
}
