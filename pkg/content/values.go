package content

import (
	"errors"
	"fmt"
)

// ErrUnknownValue is returned when parsing an enumerated value fails.
var ErrUnknownValue = errors.New("unknown value")

// Delimiter is a matching pair of fence characters.
type Delimiter string

// Delimiters.
const (
	DelimParen     Delimiter = "paren"
	DelimBracket   Delimiter = "bracket"
	DelimBrace     Delimiter = "brace"
	DelimBar       Delimiter = "bar"
	DelimDoubleBar Delimiter = "double-bar"
	DelimNone      Delimiter = "none"
)

//nolint:gochecknoglobals // Static delimiter table.
var delimiterChars = map[Delimiter][2]string{
	DelimParen:     {"(", ")"},
	DelimBracket:   {"[", "]"},
	DelimBrace:     {"{", "}"},
	DelimBar:       {"|", "|"},
	DelimDoubleBar: {"‖", "‖"},
	DelimNone:      {".", "."},
}

// Known reports whether d is one of the delimiters above.
func (d Delimiter) Known() bool {
	_, ok := delimiterChars[d]

	return ok
}

// Open returns the opening character. DelimNone yields ".", the empty fence.
func (d Delimiter) Open() string {
	return delimiterChars[d][0]
}

// Close returns the closing character. DelimNone yields ".", the empty fence.
func (d Delimiter) Close() string {
	return delimiterChars[d][1]
}

// ParseDelimiter parses a delimiter name.
func ParseDelimiter(name string) (Delimiter, error) {
	delim := Delimiter(name)
	if _, ok := delimiterChars[delim]; !ok {
		return "", fmt.Errorf("%w: delimiter %q", ErrUnknownValue, name)
	}

	return delim, nil
}

// Variant is a math alphabet.
type Variant string

// Math variants.
const (
	VariantSerif Variant = "serif"
	VariantSans  Variant = "sans"
	VariantCal   Variant = "cal"
	VariantFrak  Variant = "frak"
	VariantMono  Variant = "mono"
	VariantBb    Variant = "bb"
)

// ParseVariant parses a variant name.
func ParseVariant(name string) (Variant, error) {
	switch v := Variant(name); v {
	case VariantSerif, VariantSans, VariantCal, VariantFrak, VariantMono, VariantBb:
		return v, nil
	default:
		return "", fmt.Errorf("%w: variant %q", ErrUnknownValue, name)
	}
}

// MathSize is a math style size.
type MathSize string

// Math sizes.
const (
	SizeDisplay      MathSize = "display"
	SizeText         MathSize = "text"
	SizeScript       MathSize = "script"
	SizeScriptScript MathSize = "script-script"
)

// ParseMathSize parses a size name.
func ParseMathSize(name string) (MathSize, error) {
	switch s := MathSize(name); s {
	case SizeDisplay, SizeText, SizeScript, SizeScriptScript:
		return s, nil
	default:
		return "", fmt.Errorf("%w: size %q", ErrUnknownValue, name)
	}
}

// MathClass is a spacing class forced by a Class element.
type MathClass string

// Math classes.
const (
	ClassNormal      MathClass = "normal"
	ClassPunctuation MathClass = "punctuation"
	ClassOpening     MathClass = "opening"
	ClassClosing     MathClass = "closing"
	ClassFence       MathClass = "fence"
	ClassLarge       MathClass = "large"
	ClassRelation    MathClass = "relation"
	ClassUnary       MathClass = "unary"
	ClassBinary      MathClass = "binary"
	ClassVary        MathClass = "vary"
)

// ParseMathClass parses a class name.
func ParseMathClass(name string) (MathClass, error) {
	switch c := MathClass(name); c {
	case ClassNormal, ClassPunctuation, ClassOpening, ClassClosing, ClassFence,
		ClassLarge, ClassRelation, ClassUnary, ClassBinary, ClassVary:
		return c, nil
	default:
		return "", fmt.Errorf("%w: class %q", ErrUnknownValue, name)
	}
}

// Spacing is a length made of an absolute part in points, a font-relative
// part in em and a fractional part that shares leftover space.
type Spacing struct {
	Abs float64
	Em  float64
	Fr  float64
}

// IsZero reports whether every component is zero.
func (s Spacing) IsZero() bool {
	return s.Abs == 0 && s.Em == 0 && s.Fr == 0
}

// Ptr returns a pointer to a copy of value, for optional element fields.
func Ptr[T any](value T) *T {
	return &value
}
