package katex

import (
	"encoding/json"
	"fmt"
)

// Mode is the parsing mode a node belongs to.
type Mode string

// Parsing modes.
const (
	ModeMath Mode = "math"
	ModeText Mode = "text"
)

// AtomGroup is the spacing class of an atom node.
type AtomGroup string

// Atom classes.
const (
	AtomBin   AtomGroup = "bin"
	AtomClose AtomGroup = "close"
	AtomInner AtomGroup = "inner"
	AtomOpen  AtomGroup = "open"
	AtomPunct AtomGroup = "punct"
	AtomRel   AtomGroup = "rel"
)

// ColSeparationType selects the inter-column spacing rules of an array.
type ColSeparationType string

// Column separation types.
const (
	ColSepAlign   ColSeparationType = "align"
	ColSepAlignAt ColSeparationType = "alignat"
	ColSepGather  ColSeparationType = "gather"
	ColSepSmall   ColSeparationType = "small"
	ColSepCD      ColSeparationType = "CD"
)

// StyleStr is a math style used by styling nodes.
type StyleStr string

// Math styles.
const (
	StyleText         StyleStr = "text"
	StyleDisplay      StyleStr = "display"
	StyleScript       StyleStr = "script"
	StyleScriptScript StyleStr = "scriptscript"
)

// GenFracSize is the size of a generalized fraction: "auto" or one of the math styles.
type GenFracSize string

// GenFracAuto lets the renderer choose the fraction size.
const GenFracAuto GenFracSize = "auto"

// GenFracStyle returns the fraction size forcing the given math style.
func GenFracStyle(style StyleStr) GenFracSize {
	return GenFracSize(style)
}

// SizeType is a delimiter size from 1 (\big) to 4 (\Bigg).
type SizeType int

// MClassType is the class of a sized delimiter.
type MClassType string

// Delimiter classes.
const (
	MClassOpen  MClassType = "mopen"
	MClassClose MClassType = "mclose"
	MClassRel   MClassType = "mrel"
	MClassOrd   MClassType = "mord"
)

// Alignment spec kinds.
const (
	alignSpecAlign     = "align"
	alignSpecSeparator = "separator"
)

// AlignSpec describes one column of an array: either an aligned column or a
// vertical separator.
type AlignSpec struct {
	Pregap    *float64
	Postgap   *float64
	Align     string
	Separator string
}

// AlignColumn returns a column spec with the given alignment ("l", "c" or "r").
func AlignColumn(align string, pregap, postgap *float64) AlignSpec {
	return AlignSpec{Align: align, Pregap: pregap, Postgap: postgap}
}

// SeparatorColumn returns a vertical separator spec ("|" or ":").
func SeparatorColumn(separator string) AlignSpec {
	return AlignSpec{Separator: separator}
}

// IsSeparator reports whether the spec is a separator.
func (spec AlignSpec) IsSeparator() bool {
	return spec.Separator != ""
}

// MarshalJSON writes the spec as a "type"-tagged object.
func (spec AlignSpec) MarshalJSON() ([]byte, error) {
	if spec.IsSeparator() {
		data, err := json.Marshal(struct {
			Type      string `json:"type"`
			Separator string `json:"separator"`
		}{alignSpecSeparator, spec.Separator})
		if err != nil {
			return nil, fmt.Errorf("marshal separator spec: %w", err)
		}

		return data, nil
	}

	data, err := json.Marshal(struct {
		Type    string   `json:"type"`
		Align   string   `json:"align"`
		Pregap  *float64 `json:"pregap"`
		Postgap *float64 `json:"postgap"`
	}{alignSpecAlign, spec.Align, spec.Pregap, spec.Postgap})
	if err != nil {
		return nil, fmt.Errorf("marshal align spec: %w", err)
	}

	return data, nil
}

// Measurement is a length with its unit, e.g. 0.5em.
type Measurement struct {
	Number float64 `json:"number"`
	Unit   string  `json:"unit"`
}

// Em returns a measurement in font-relative em units.
func Em(number float64) Measurement {
	return Measurement{Number: number, Unit: "em"}
}

// Token is a lexer token, as carried by infix nodes.
type Token struct {
	Loc          *SourceLocation `json:"loc"`
	Noexpand     *bool           `json:"noexpand"`
	TreatAsRelax *bool           `json:"treatAsRelax"`
	Text         string          `json:"text"`
}

// TagType is an equation tag: either a boolean flag or a node sequence.
type TagType struct {
	Flag  *bool
	Nodes NodeArray
}

// MarshalJSON writes the flag or the node sequence, whichever is set.
func (tag TagType) MarshalJSON() ([]byte, error) {
	var (
		data []byte
		err  error
	)

	if tag.Flag != nil {
		data, err = json.Marshal(*tag.Flag)
	} else {
		data, err = json.Marshal(tag.Nodes)
	}

	if err != nil {
		return nil, fmt.Errorf("marshal tag: %w", err)
	}

	return data, nil
}

// SourceLocation is a span in the original input. Conversions never reconstruct
// it, so it is always nil in produced trees.
type SourceLocation struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Ptr returns a pointer to a copy of value. It fills optional node fields.
func Ptr[T any](value T) *T {
	return &value
}
