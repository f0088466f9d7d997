package convert

import (
	"github.com/Sumatoshi-tech/typkat/pkg/content"
	"github.com/Sumatoshi-tech/typkat/pkg/katex"
)

// DefaultFontSize is the font size, in points, used to turn absolute lengths into em.
const DefaultFontSize = 11.0

// Styles resolves style-dependent attributes that an element leaves unset.
// It is a value: With methods return modified copies and never affect the
// receiver, so sibling conversions cannot observe each other's changes.
type Styles struct {
	vecDelim   content.Delimiter
	matDelim   content.Delimiter
	casesDelim content.Delimiter
	fontSize   float64
	mode       katex.Mode
}

// DefaultStyles returns the styles of a top-level math conversion.
func DefaultStyles() Styles {
	return Styles{
		vecDelim:   content.DelimParen,
		matDelim:   content.DelimParen,
		casesDelim: content.DelimBrace,
		fontSize:   DefaultFontSize,
		mode:       katex.ModeMath,
	}
}

// WithVecDelim sets the default vector delimiter.
func (s Styles) WithVecDelim(delim content.Delimiter) Styles {
	s.vecDelim = delim

	return s
}

// WithMatDelim sets the default matrix delimiter.
func (s Styles) WithMatDelim(delim content.Delimiter) Styles {
	s.matDelim = delim

	return s
}

// WithCasesDelim sets the default cases delimiter.
func (s Styles) WithCasesDelim(delim content.Delimiter) Styles {
	s.casesDelim = delim

	return s
}

// WithFontSize sets the font size in points. Non-positive sizes are ignored.
func (s Styles) WithFontSize(points float64) Styles {
	if points > 0 {
		s.fontSize = points
	}

	return s
}

// WithMode sets the parsing mode of produced nodes.
func (s Styles) WithMode(mode katex.Mode) Styles {
	s.mode = mode

	return s
}

// VecDelim resolves a vector delimiter.
func (s Styles) VecDelim(delim *content.Delimiter) content.Delimiter {
	return resolve(delim, s.vecDelim)
}

// MatDelim resolves a matrix delimiter.
func (s Styles) MatDelim(delim *content.Delimiter) content.Delimiter {
	return resolve(delim, s.matDelim)
}

// CasesDelim resolves a cases delimiter.
func (s Styles) CasesDelim(delim *content.Delimiter) content.Delimiter {
	return resolve(delim, s.casesDelim)
}

// FontSize returns the font size in points.
func (s Styles) FontSize() float64 {
	return s.fontSize
}

// Mode returns the current parsing mode.
func (s Styles) Mode() katex.Mode {
	return s.mode
}

func resolve[T any](value *T, fallback T) T {
	if value != nil {
		return *value
	}

	return fallback
}
