package katex

// NodeType is the value of a node's "type" field.
type NodeType string

// Node types.
const (
	TypeArray           NodeType = "array"
	TypeCdLabel         NodeType = "cdlabel"
	TypeCdLabelParent   NodeType = "cdlabelparent"
	TypeColor           NodeType = "color"
	TypeColorToken      NodeType = "colortoken"
	TypeOp              NodeType = "op"
	TypeOrdGroup        NodeType = "ordgroup"
	TypeRaw             NodeType = "raw"
	TypeSize            NodeType = "size"
	TypeStyling         NodeType = "styling"
	TypeSupSub          NodeType = "supsub"
	TypeTag             NodeType = "tag"
	TypeText            NodeType = "text"
	TypeURL             NodeType = "url"
	TypeVerb            NodeType = "verb"
	TypeAtom            NodeType = "atom"
	TypeMathOrd         NodeType = "mathord"
	TypeSpacing         NodeType = "spacing"
	TypeTextOrd         NodeType = "textord"
	TypeAccentToken     NodeType = "accenttoken"
	TypeOpToken         NodeType = "optoken"
	TypeAccent          NodeType = "accent"
	TypeAccentUnder     NodeType = "accentunder"
	TypeCr              NodeType = "cr"
	TypeDelimSizing     NodeType = "delimsizing"
	TypeEnclose         NodeType = "enclose"
	TypeEnvironment     NodeType = "environment"
	TypeFont            NodeType = "font"
	TypeGenFrac         NodeType = "genfrac"
	TypeHBox            NodeType = "hbox"
	TypeHorizBrace      NodeType = "horizBrace"
	TypeHRef            NodeType = "href"
	TypeHTML            NodeType = "html"
	TypeHTMLMathML      NodeType = "htmlmathml"
	TypeIncludeGraphics NodeType = "includegraphics"
	TypeInfix           NodeType = "infix"
	TypeInternal        NodeType = "internal"
	TypeKern            NodeType = "kern"
	TypeLap             NodeType = "lap"
	TypeLeftRight       NodeType = "leftright"
	TypeLeftRightRight  NodeType = "leftrightright"
	TypeMathChoice      NodeType = "mathchoice"
	TypeMiddle          NodeType = "middle"
	TypeMClass          NodeType = "mclass"
	TypeOperatorName    NodeType = "operatorname"
	TypeOverline        NodeType = "overline"
	TypePhantom         NodeType = "phantom"
	TypeHPhantom        NodeType = "hphantom"
	TypeVPhantom        NodeType = "vphantom"
	TypePmb             NodeType = "pmb"
	TypeRaiseBox        NodeType = "raisebox"
	TypeRule            NodeType = "rule"
	TypeSizing          NodeType = "sizing"
	TypeSmash           NodeType = "smash"
	TypeSqrt            NodeType = "sqrt"
	TypeUnderline       NodeType = "underline"
	TypeVCenter         NodeType = "vcenter"
	TypeXArrow          NodeType = "xarrow"
)

// Array is a grid of cells: matrices, aligned environments and cases.
type Array struct {
	Meta
	ColSeparationType   *ColSeparationType `json:"colSeparationType"`
	HskipBeforeAndAfter *bool              `json:"hskipBeforeAndAfter"`
	AddJot              *bool              `json:"addJot"`
	Cols                []AlignSpec        `json:"cols"`
	Arraystretch        float64            `json:"arraystretch"`
	Body                []NodeArray        `json:"body"`
	RowGaps             []*Measurement     `json:"rowGaps"`
	HLinesBeforeRow     [][]bool           `json:"hLinesBeforeRow"`
	Tags                []TagType          `json:"tags"`
	Leqno               *bool              `json:"leqno"`
	IsCD                *bool              `json:"isCD"`
}

// CdLabel is a label on a commutative-diagram arrow.
type CdLabel struct {
	Meta
	Side  string `json:"side"`
	Label Node   `json:"label"`
}

// CdLabelParent wraps a commutative-diagram label.
type CdLabelParent struct {
	Meta
	Side  string `json:"side"`
	Label Node   `json:"label"`
}

// Color colors its body.
type Color struct {
	Meta
	Color string    `json:"color"`
	Body  NodeArray `json:"body"`
}

// ColorToken is a bare color argument.
type ColorToken struct {
	Meta
	Color string `json:"color"`
}

// Op is a large operator such as a sum or an integral.
type Op struct {
	Meta
	Limits             bool    `json:"limits"`
	AlwaysHandleSupSub *bool   `json:"alwaysHandleSupSub"`
	SuppressBaseShift  *bool   `json:"suppressBaseShift"`
	ParentIsSupSub     bool    `json:"parentIsSupSub"`
	Symbol             bool    `json:"symbol"`
	Name               *string `json:"name"`
	Body               []Node  `json:"body"`
}

// OrdGroup groups its body into a single ordinary atom.
type OrdGroup struct {
	Meta
	Body       NodeArray `json:"body"`
	Semisimple *bool     `json:"semisimple"`
}

// Raw is an uninterpreted string argument.
type Raw struct {
	Meta
	String string `json:"string"`
}

// Size is a size argument.
type Size struct {
	Meta
	Value   Measurement `json:"value"`
	IsBlank bool        `json:"isBlank"`
}

// Styling renders its body in a fixed math style.
type Styling struct {
	Meta
	Style StyleStr  `json:"style"`
	Body  NodeArray `json:"body"`
}

// SupSub attaches a superscript and a subscript to a base.
type SupSub struct {
	Meta
	Base Node `json:"base"`
	Sup  Node `json:"sup"`
	Sub  Node `json:"sub"`
}

// Tag attaches an equation tag to its body.
type Tag struct {
	Meta
	Body NodeArray `json:"body"`
	Tag  NodeArray `json:"tag"`
}

// Text renders its body in text mode.
type Text struct {
	Meta
	Body NodeArray `json:"body"`
	Font *string   `json:"font"`
}

// URL is a URL argument.
type URL struct {
	Meta
	URL string `json:"url"`
}

// Verb is verbatim text.
type Verb struct {
	Meta
	Body string `json:"body"`
	Star bool   `json:"star"`
}

// Atom is a single character with a spacing class.
type Atom struct {
	Family AtomGroup `json:"family"`
	Meta
	Text string `json:"text"`
}

// MathOrd is an ordinary math-italic character.
type MathOrd struct {
	Meta
	Text string `json:"text"`
}

// Spacing is a space character.
type Spacing struct {
	Meta
	Text string `json:"text"`
}

// TextOrd is an ordinary upright character.
type TextOrd struct {
	Meta
	Text string `json:"text"`
}

// AccentToken is an accent character.
type AccentToken struct {
	Meta
	Text string `json:"text"`
}

// OpToken is an operator character.
type OpToken struct {
	Meta
	Text string `json:"text"`
}

// Accent places an accent over its base.
type Accent struct {
	Meta
	Label      string `json:"label"`
	IsStretchy *bool  `json:"isStretchy"`
	IsShifty   *bool  `json:"isShifty"`
	Base       Node   `json:"base"`
}

// AccentUnder places an accent under its base.
type AccentUnder struct {
	Meta
	Label      string `json:"label"`
	IsStretchy *bool  `json:"isStretchy"`
	IsShifty   *bool  `json:"isShifty"`
	Base       Node   `json:"base"`
}

// Cr is an explicit line break.
type Cr struct {
	Meta
	NewLine bool         `json:"newLine"`
	Size    *Measurement `json:"size"`
}

// DelimSizing is a delimiter at a fixed size.
type DelimSizing struct {
	Meta
	Size   SizeType   `json:"size"`
	MClass MClassType `json:"mclass"`
	Delim  string     `json:"delim"`
}

// Enclose draws a notation around or across its body, e.g. \cancel.
type Enclose struct {
	Meta
	Label           string  `json:"label"`
	BackgroundColor *string `json:"backgroundColor"`
	BorderColor     *string `json:"borderColor"`
	Body            Node    `json:"body"`
}

// Environment is a named environment argument.
type Environment struct {
	Meta
	Name      string `json:"name"`
	NameGroup Node   `json:"nameGroup"`
}

// Font renders its body in a named font such as mathbb.
type Font struct {
	Meta
	Font string `json:"font"`
	Body Node   `json:"body"`
}

// GenFrac is a generalized fraction: fractions and binomials.
type GenFrac struct {
	Meta
	Continued  bool         `json:"continued"`
	Numer      Node         `json:"numer"`
	Denom      Node         `json:"denom"`
	HasBarLine bool         `json:"hasBarLine"`
	LeftDelim  *string      `json:"leftDelim"`
	RightDelim *string      `json:"rightDelim"`
	Size       GenFracSize  `json:"size"`
	BarSize    *Measurement `json:"barSize"`
}

// HBox is a horizontal box.
type HBox struct {
	Meta
	Body NodeArray `json:"body"`
}

// HorizBrace is a horizontal brace or bracket over or under its base.
type HorizBrace struct {
	Meta
	Label  string `json:"label"`
	IsOver bool   `json:"isOver"`
	Base   Node   `json:"base"`
}

// HRef links its body.
type HRef struct {
	Meta
	Href string    `json:"href"`
	Body NodeArray `json:"body"`
}

// HTML wraps its body in an element with attributes.
type HTML struct {
	Meta
	Attributes map[string]string `json:"attributes"`
	Body       NodeArray         `json:"body"`
}

// HTMLMathML carries separate renderings for HTML and MathML.
type HTMLMathML struct {
	Meta
	HTML   NodeArray `json:"html"`
	MathML NodeArray `json:"mathml"`
}

// IncludeGraphics embeds an image.
type IncludeGraphics struct {
	Meta
	Alt         string      `json:"alt"`
	Width       Measurement `json:"width"`
	Height      Measurement `json:"height"`
	TotalHeight Measurement `json:"totalHeight"`
	Src         string      `json:"src"`
}

// Infix is an infix command such as \over.
type Infix struct {
	Meta
	ReplaceWith string       `json:"replaceWith"`
	Size        *Measurement `json:"size"`
	Token       *Token       `json:"token"`
}

// Internal is a parser-internal placeholder.
type Internal struct {
	Meta
}

// Kern is horizontal space of a fixed dimension.
type Kern struct {
	Meta
	Dimension Measurement `json:"dimension"`
}

// Lap overlaps its body with the neighbouring content.
type Lap struct {
	Meta
	Alignment string `json:"alignment"`
	Body      Node   `json:"body"`
}

// LeftRight wraps its body in stretchy delimiters.
type LeftRight struct {
	Meta
	Body       NodeArray `json:"body"`
	Left       string    `json:"left"`
	Right      string    `json:"right"`
	RightColor *string   `json:"rightColor"`
}

// LeftRightRight is the closing half of a \left...\right pair.
type LeftRightRight struct {
	Meta
	Delim string  `json:"delim"`
	Color *string `json:"color"`
}

// MathChoice picks a body per math style.
type MathChoice struct {
	Meta
	Display      NodeArray `json:"display"`
	Text         NodeArray `json:"text"`
	Script       NodeArray `json:"script"`
	ScriptScript NodeArray `json:"scriptscript"`
}

// Middle is a stretchy delimiter inside a LeftRight.
type Middle struct {
	Meta
	Delim string `json:"delim"`
}

// MClass gives its body an explicit spacing class.
type MClass struct {
	Meta
	MClass         string    `json:"mclass"`
	Body           NodeArray `json:"body"`
	IsCharacterBox bool      `json:"isCharacterBox"`
}

// OperatorName is a named operator such as lim.
type OperatorName struct {
	Meta
	Body               NodeArray `json:"body"`
	AlwaysHandleSupSub bool      `json:"alwaysHandleSupSub"`
	Limits             bool      `json:"limits"`
	ParentIsSupSub     bool      `json:"parentIsSupSub"`
}

// Overline draws a line over its body.
type Overline struct {
	Meta
	Body Node `json:"body"`
}

// Phantom takes up the space of its body without drawing it.
type Phantom struct {
	Meta
	Body NodeArray `json:"body"`
}

// HPhantom takes up the width of its body.
type HPhantom struct {
	Meta
	Body Node `json:"body"`
}

// VPhantom takes up the height of its body.
type VPhantom struct {
	Meta
	Body Node `json:"body"`
}

// Pmb is poor man's bold.
type Pmb struct {
	Meta
	MClass string    `json:"mclass"`
	Body   NodeArray `json:"body"`
}

// RaiseBox shifts its body vertically.
type RaiseBox struct {
	Meta
	Dy   Measurement `json:"dy"`
	Body Node        `json:"body"`
}

// Rule is a filled rectangle.
type Rule struct {
	Meta
	Shift  *Measurement `json:"shift"`
	Width  Measurement  `json:"width"`
	Height Measurement  `json:"height"`
}

// Sizing renders its body at a size from 1 to 11.
type Sizing struct {
	Meta
	Size float64   `json:"size"`
	Body NodeArray `json:"body"`
}

// Smash hides the height or depth of its body.
type Smash struct {
	Meta
	Body        NodeArray `json:"body"`
	SmashHeight bool      `json:"smashHeight"`
	SmashDepth  bool      `json:"smashDepth"`
}

// Sqrt is a radical with an optional index.
type Sqrt struct {
	Meta
	Body  Node `json:"body"`
	Index Node `json:"index"`
}

// Underline draws a line under its body.
type Underline struct {
	Meta
	Body Node `json:"body"`
}

// VCenter centers its body on the math axis.
type VCenter struct {
	Meta
	Body Node `json:"body"`
}

// XArrow is an extensible arrow with labels.
type XArrow struct {
	Meta
	Label string `json:"label"`
	Body  Node   `json:"body"`
	Below Node   `json:"below"`
}

// NodeType implements Node.
func (*Array) NodeType() NodeType { return TypeArray }

// NodeType implements Node.
func (*CdLabel) NodeType() NodeType { return TypeCdLabel }

// MarshalJSON implements json.Marshaler.
func (node *CdLabel) MarshalJSON() ([]byte, error) {
	type plain CdLabel

	return marshalTagged(TypeCdLabel, (*plain)(node))
}

// NodeType implements Node.
func (*CdLabelParent) NodeType() NodeType { return TypeCdLabelParent }

// MarshalJSON implements json.Marshaler.
func (node *CdLabelParent) MarshalJSON() ([]byte, error) {
	type plain CdLabelParent

	return marshalTagged(TypeCdLabelParent, (*plain)(node))
}

// NodeType implements Node.
func (*Color) NodeType() NodeType { return TypeColor }

// MarshalJSON implements json.Marshaler.
func (node *Color) MarshalJSON() ([]byte, error) {
	type plain Color

	return marshalTagged(TypeColor, (*plain)(node))
}

// NodeType implements Node.
func (*ColorToken) NodeType() NodeType { return TypeColorToken }

// MarshalJSON implements json.Marshaler.
func (node *ColorToken) MarshalJSON() ([]byte, error) {
	type plain ColorToken

	return marshalTagged(TypeColorToken, (*plain)(node))
}

// NodeType implements Node.
func (*Op) NodeType() NodeType { return TypeOp }

// MarshalJSON implements json.Marshaler.
func (node *Op) MarshalJSON() ([]byte, error) {
	type plain Op

	return marshalTagged(TypeOp, (*plain)(node))
}

// NodeType implements Node.
func (*OrdGroup) NodeType() NodeType { return TypeOrdGroup }

// MarshalJSON implements json.Marshaler.
func (node *OrdGroup) MarshalJSON() ([]byte, error) {
	type plain OrdGroup

	return marshalTagged(TypeOrdGroup, (*plain)(node))
}

// NodeType implements Node.
func (*Raw) NodeType() NodeType { return TypeRaw }

// MarshalJSON implements json.Marshaler.
func (node *Raw) MarshalJSON() ([]byte, error) {
	type plain Raw

	return marshalTagged(TypeRaw, (*plain)(node))
}

// NodeType implements Node.
func (*Size) NodeType() NodeType { return TypeSize }

// MarshalJSON implements json.Marshaler.
func (node *Size) MarshalJSON() ([]byte, error) {
	type plain Size

	return marshalTagged(TypeSize, (*plain)(node))
}

// NodeType implements Node.
func (*Styling) NodeType() NodeType { return TypeStyling }

// MarshalJSON implements json.Marshaler.
func (node *Styling) MarshalJSON() ([]byte, error) {
	type plain Styling

	return marshalTagged(TypeStyling, (*plain)(node))
}

// NodeType implements Node.
func (*SupSub) NodeType() NodeType { return TypeSupSub }

// MarshalJSON implements json.Marshaler.
func (node *SupSub) MarshalJSON() ([]byte, error) {
	type plain SupSub

	return marshalTagged(TypeSupSub, (*plain)(node))
}

// NodeType implements Node.
func (*Tag) NodeType() NodeType { return TypeTag }

// MarshalJSON implements json.Marshaler.
func (node *Tag) MarshalJSON() ([]byte, error) {
	type plain Tag

	return marshalTagged(TypeTag, (*plain)(node))
}

// NodeType implements Node.
func (*Text) NodeType() NodeType { return TypeText }

// MarshalJSON implements json.Marshaler.
func (node *Text) MarshalJSON() ([]byte, error) {
	type plain Text

	return marshalTagged(TypeText, (*plain)(node))
}

// NodeType implements Node.
func (*URL) NodeType() NodeType { return TypeURL }

// MarshalJSON implements json.Marshaler.
func (node *URL) MarshalJSON() ([]byte, error) {
	type plain URL

	return marshalTagged(TypeURL, (*plain)(node))
}

// NodeType implements Node.
func (*Verb) NodeType() NodeType { return TypeVerb }

// MarshalJSON implements json.Marshaler.
func (node *Verb) MarshalJSON() ([]byte, error) {
	type plain Verb

	return marshalTagged(TypeVerb, (*plain)(node))
}

// NodeType implements Node.
func (*Atom) NodeType() NodeType { return TypeAtom }

// MarshalJSON implements json.Marshaler.
func (node *Atom) MarshalJSON() ([]byte, error) {
	type plain Atom

	return marshalTagged(TypeAtom, (*plain)(node))
}

// NodeType implements Node.
func (*MathOrd) NodeType() NodeType { return TypeMathOrd }

// MarshalJSON implements json.Marshaler.
func (node *MathOrd) MarshalJSON() ([]byte, error) {
	type plain MathOrd

	return marshalTagged(TypeMathOrd, (*plain)(node))
}

// NodeType implements Node.
func (*Spacing) NodeType() NodeType { return TypeSpacing }

// MarshalJSON implements json.Marshaler.
func (node *Spacing) MarshalJSON() ([]byte, error) {
	type plain Spacing

	return marshalTagged(TypeSpacing, (*plain)(node))
}

// NodeType implements Node.
func (*TextOrd) NodeType() NodeType { return TypeTextOrd }

// MarshalJSON implements json.Marshaler.
func (node *TextOrd) MarshalJSON() ([]byte, error) {
	type plain TextOrd

	return marshalTagged(TypeTextOrd, (*plain)(node))
}

// NodeType implements Node.
func (*AccentToken) NodeType() NodeType { return TypeAccentToken }

// MarshalJSON implements json.Marshaler.
func (node *AccentToken) MarshalJSON() ([]byte, error) {
	type plain AccentToken

	return marshalTagged(TypeAccentToken, (*plain)(node))
}

// NodeType implements Node.
func (*OpToken) NodeType() NodeType { return TypeOpToken }

// MarshalJSON implements json.Marshaler.
func (node *OpToken) MarshalJSON() ([]byte, error) {
	type plain OpToken

	return marshalTagged(TypeOpToken, (*plain)(node))
}

// NodeType implements Node.
func (*Accent) NodeType() NodeType { return TypeAccent }

// MarshalJSON implements json.Marshaler.
func (node *Accent) MarshalJSON() ([]byte, error) {
	type plain Accent

	return marshalTagged(TypeAccent, (*plain)(node))
}

// NodeType implements Node.
func (*AccentUnder) NodeType() NodeType { return TypeAccentUnder }

// MarshalJSON implements json.Marshaler.
func (node *AccentUnder) MarshalJSON() ([]byte, error) {
	type plain AccentUnder

	return marshalTagged(TypeAccentUnder, (*plain)(node))
}

// NodeType implements Node.
func (*Cr) NodeType() NodeType { return TypeCr }

// MarshalJSON implements json.Marshaler.
func (node *Cr) MarshalJSON() ([]byte, error) {
	type plain Cr

	return marshalTagged(TypeCr, (*plain)(node))
}

// NodeType implements Node.
func (*DelimSizing) NodeType() NodeType { return TypeDelimSizing }

// MarshalJSON implements json.Marshaler.
func (node *DelimSizing) MarshalJSON() ([]byte, error) {
	type plain DelimSizing

	return marshalTagged(TypeDelimSizing, (*plain)(node))
}

// NodeType implements Node.
func (*Enclose) NodeType() NodeType { return TypeEnclose }

// MarshalJSON implements json.Marshaler.
func (node *Enclose) MarshalJSON() ([]byte, error) {
	type plain Enclose

	return marshalTagged(TypeEnclose, (*plain)(node))
}

// NodeType implements Node.
func (*Environment) NodeType() NodeType { return TypeEnvironment }

// MarshalJSON implements json.Marshaler.
func (node *Environment) MarshalJSON() ([]byte, error) {
	type plain Environment

	return marshalTagged(TypeEnvironment, (*plain)(node))
}

// NodeType implements Node.
func (*Font) NodeType() NodeType { return TypeFont }

// MarshalJSON implements json.Marshaler.
func (node *Font) MarshalJSON() ([]byte, error) {
	type plain Font

	return marshalTagged(TypeFont, (*plain)(node))
}

// NodeType implements Node.
func (*GenFrac) NodeType() NodeType { return TypeGenFrac }

// MarshalJSON implements json.Marshaler.
func (node *GenFrac) MarshalJSON() ([]byte, error) {
	type plain GenFrac

	return marshalTagged(TypeGenFrac, (*plain)(node))
}

// NodeType implements Node.
func (*HBox) NodeType() NodeType { return TypeHBox }

// MarshalJSON implements json.Marshaler.
func (node *HBox) MarshalJSON() ([]byte, error) {
	type plain HBox

	return marshalTagged(TypeHBox, (*plain)(node))
}

// NodeType implements Node.
func (*HorizBrace) NodeType() NodeType { return TypeHorizBrace }

// MarshalJSON implements json.Marshaler.
func (node *HorizBrace) MarshalJSON() ([]byte, error) {
	type plain HorizBrace

	return marshalTagged(TypeHorizBrace, (*plain)(node))
}

// NodeType implements Node.
func (*HRef) NodeType() NodeType { return TypeHRef }

// MarshalJSON implements json.Marshaler.
func (node *HRef) MarshalJSON() ([]byte, error) {
	type plain HRef

	return marshalTagged(TypeHRef, (*plain)(node))
}

// NodeType implements Node.
func (*HTML) NodeType() NodeType { return TypeHTML }

// MarshalJSON implements json.Marshaler.
func (node *HTML) MarshalJSON() ([]byte, error) {
	type plain HTML

	return marshalTagged(TypeHTML, (*plain)(node))
}

// NodeType implements Node.
func (*HTMLMathML) NodeType() NodeType { return TypeHTMLMathML }

// MarshalJSON implements json.Marshaler.
func (node *HTMLMathML) MarshalJSON() ([]byte, error) {
	type plain HTMLMathML

	return marshalTagged(TypeHTMLMathML, (*plain)(node))
}

// NodeType implements Node.
func (*IncludeGraphics) NodeType() NodeType { return TypeIncludeGraphics }

// MarshalJSON implements json.Marshaler.
func (node *IncludeGraphics) MarshalJSON() ([]byte, error) {
	type plain IncludeGraphics

	return marshalTagged(TypeIncludeGraphics, (*plain)(node))
}

// NodeType implements Node.
func (*Infix) NodeType() NodeType { return TypeInfix }

// MarshalJSON implements json.Marshaler.
func (node *Infix) MarshalJSON() ([]byte, error) {
	type plain Infix

	return marshalTagged(TypeInfix, (*plain)(node))
}

// NodeType implements Node.
func (*Internal) NodeType() NodeType { return TypeInternal }

// MarshalJSON implements json.Marshaler.
func (node *Internal) MarshalJSON() ([]byte, error) {
	type plain Internal

	return marshalTagged(TypeInternal, (*plain)(node))
}

// NodeType implements Node.
func (*Kern) NodeType() NodeType { return TypeKern }

// MarshalJSON implements json.Marshaler.
func (node *Kern) MarshalJSON() ([]byte, error) {
	type plain Kern

	return marshalTagged(TypeKern, (*plain)(node))
}

// NodeType implements Node.
func (*Lap) NodeType() NodeType { return TypeLap }

// MarshalJSON implements json.Marshaler.
func (node *Lap) MarshalJSON() ([]byte, error) {
	type plain Lap

	return marshalTagged(TypeLap, (*plain)(node))
}

// NodeType implements Node.
func (*LeftRight) NodeType() NodeType { return TypeLeftRight }

// MarshalJSON implements json.Marshaler.
func (node *LeftRight) MarshalJSON() ([]byte, error) {
	type plain LeftRight

	return marshalTagged(TypeLeftRight, (*plain)(node))
}

// NodeType implements Node.
func (*LeftRightRight) NodeType() NodeType { return TypeLeftRightRight }

// MarshalJSON implements json.Marshaler.
func (node *LeftRightRight) MarshalJSON() ([]byte, error) {
	type plain LeftRightRight

	return marshalTagged(TypeLeftRightRight, (*plain)(node))
}

// NodeType implements Node.
func (*MathChoice) NodeType() NodeType { return TypeMathChoice }

// MarshalJSON implements json.Marshaler.
func (node *MathChoice) MarshalJSON() ([]byte, error) {
	type plain MathChoice

	return marshalTagged(TypeMathChoice, (*plain)(node))
}

// NodeType implements Node.
func (*Middle) NodeType() NodeType { return TypeMiddle }

// MarshalJSON implements json.Marshaler.
func (node *Middle) MarshalJSON() ([]byte, error) {
	type plain Middle

	return marshalTagged(TypeMiddle, (*plain)(node))
}

// NodeType implements Node.
func (*MClass) NodeType() NodeType { return TypeMClass }

// MarshalJSON implements json.Marshaler.
func (node *MClass) MarshalJSON() ([]byte, error) {
	type plain MClass

	return marshalTagged(TypeMClass, (*plain)(node))
}

// NodeType implements Node.
func (*OperatorName) NodeType() NodeType { return TypeOperatorName }

// MarshalJSON implements json.Marshaler.
func (node *OperatorName) MarshalJSON() ([]byte, error) {
	type plain OperatorName

	return marshalTagged(TypeOperatorName, (*plain)(node))
}

// NodeType implements Node.
func (*Overline) NodeType() NodeType { return TypeOverline }

// MarshalJSON implements json.Marshaler.
func (node *Overline) MarshalJSON() ([]byte, error) {
	type plain Overline

	return marshalTagged(TypeOverline, (*plain)(node))
}

// NodeType implements Node.
func (*Phantom) NodeType() NodeType { return TypePhantom }

// MarshalJSON implements json.Marshaler.
func (node *Phantom) MarshalJSON() ([]byte, error) {
	type plain Phantom

	return marshalTagged(TypePhantom, (*plain)(node))
}

// NodeType implements Node.
func (*HPhantom) NodeType() NodeType { return TypeHPhantom }

// MarshalJSON implements json.Marshaler.
func (node *HPhantom) MarshalJSON() ([]byte, error) {
	type plain HPhantom

	return marshalTagged(TypeHPhantom, (*plain)(node))
}

// NodeType implements Node.
func (*VPhantom) NodeType() NodeType { return TypeVPhantom }

// MarshalJSON implements json.Marshaler.
func (node *VPhantom) MarshalJSON() ([]byte, error) {
	type plain VPhantom

	return marshalTagged(TypeVPhantom, (*plain)(node))
}

// NodeType implements Node.
func (*Pmb) NodeType() NodeType { return TypePmb }

// MarshalJSON implements json.Marshaler.
func (node *Pmb) MarshalJSON() ([]byte, error) {
	type plain Pmb

	return marshalTagged(TypePmb, (*plain)(node))
}

// NodeType implements Node.
func (*RaiseBox) NodeType() NodeType { return TypeRaiseBox }

// MarshalJSON implements json.Marshaler.
func (node *RaiseBox) MarshalJSON() ([]byte, error) {
	type plain RaiseBox

	return marshalTagged(TypeRaiseBox, (*plain)(node))
}

// NodeType implements Node.
func (*Rule) NodeType() NodeType { return TypeRule }

// MarshalJSON implements json.Marshaler.
func (node *Rule) MarshalJSON() ([]byte, error) {
	type plain Rule

	return marshalTagged(TypeRule, (*plain)(node))
}

// NodeType implements Node.
func (*Sizing) NodeType() NodeType { return TypeSizing }

// MarshalJSON implements json.Marshaler.
func (node *Sizing) MarshalJSON() ([]byte, error) {
	type plain Sizing

	return marshalTagged(TypeSizing, (*plain)(node))
}

// NodeType implements Node.
func (*Smash) NodeType() NodeType { return TypeSmash }

// MarshalJSON implements json.Marshaler.
func (node *Smash) MarshalJSON() ([]byte, error) {
	type plain Smash

	return marshalTagged(TypeSmash, (*plain)(node))
}

// NodeType implements Node.
func (*Sqrt) NodeType() NodeType { return TypeSqrt }

// MarshalJSON implements json.Marshaler.
func (node *Sqrt) MarshalJSON() ([]byte, error) {
	type plain Sqrt

	return marshalTagged(TypeSqrt, (*plain)(node))
}

// NodeType implements Node.
func (*Underline) NodeType() NodeType { return TypeUnderline }

// MarshalJSON implements json.Marshaler.
func (node *Underline) MarshalJSON() ([]byte, error) {
	type plain Underline

	return marshalTagged(TypeUnderline, (*plain)(node))
}

// NodeType implements Node.
func (*VCenter) NodeType() NodeType { return TypeVCenter }

// MarshalJSON implements json.Marshaler.
func (node *VCenter) MarshalJSON() ([]byte, error) {
	type plain VCenter

	return marshalTagged(TypeVCenter, (*plain)(node))
}

// NodeType implements Node.
func (*XArrow) NodeType() NodeType { return TypeXArrow }

// MarshalJSON implements json.Marshaler.
func (node *XArrow) MarshalJSON() ([]byte, error) {
	type plain XArrow

	return marshalTagged(TypeXArrow, (*plain)(node))
}
