package katex

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrIncompleteSymbolTable is returned when a character resolves to a glyph
// group that cannot be turned into a node on its own.
var ErrIncompleteSymbolTable = errors.New("symbol table has no node for glyph group")

// mathTextOrds are resolved as upright ordinary characters in math mode ahead
// of the table.
const mathTextOrds = "0123456789/@.\""

// FontFamily is the KaTeX font family a symbol is drawn from.
type FontFamily int

// Fonts.
const (
	FontMain FontFamily = iota
	FontAms
)

// String returns the font name.
func (f FontFamily) String() string {
	if f == FontAms {
		return "ams"
	}

	return "main"
}

// Group is the glyph group of a symbol. The first six groups are atom classes.
type Group int

// Glyph groups.
const (
	GroupBin Group = iota
	GroupClose
	GroupInner
	GroupOpen
	GroupPunct
	GroupRel
	GroupAccentToken
	GroupMathOrd
	GroupOpToken
	GroupSpacing
	GroupTextOrd
)

//nolint:gochecknoglobals // Static name table.
var groupNames = [...]string{
	GroupBin:         "bin",
	GroupClose:       "close",
	GroupInner:       "inner",
	GroupOpen:        "open",
	GroupPunct:       "punct",
	GroupRel:         "rel",
	GroupAccentToken: "accent-token",
	GroupMathOrd:     "mathord",
	GroupOpToken:     "op-token",
	GroupSpacing:     "spacing",
	GroupTextOrd:     "textord",
}

// String returns the KaTeX name of the group.
func (g Group) String() string {
	if g < 0 || int(g) >= len(groupNames) {
		return fmt.Sprintf("group(%d)", int(g))
	}

	return groupNames[g]
}

// IsAtom reports whether the group is an atom class.
func (g Group) IsAtom() bool {
	return g >= GroupBin && g <= GroupRel
}

// AtomGroup returns the atom family of an atom group.
func (g Group) AtomGroup() AtomGroup {
	return AtomGroup(g.String())
}

type symbolKey struct {
	mode Mode
	char rune
}

type symbolEntry struct {
	font  FontFamily
	group Group
}

// Symbol describes how a single character is rendered.
type Symbol struct {
	Mode  Mode
	Font  FontFamily
	Group Group
	Char  rune
}

// Lookup resolves a character in the given mode. It never fails: characters
// without an entry become upright ordinary characters.
func Lookup(mode Mode, char rune) Symbol {
	if mode == ModeMath && strings.ContainsRune(mathTextOrds, char) {
		return Symbol{Mode: mode, Font: FontMain, Group: GroupTextOrd, Char: char}
	}

	if entry, ok := symbolTable[symbolKey{mode: mode, char: char}]; ok {
		return Symbol{Mode: mode, Font: entry.font, Group: entry.group, Char: char}
	}

	return Symbol{Mode: mode, Font: FontMain, Group: GroupTextOrd, Char: char}
}

// CreateNode builds the node drawing the symbol. Accent and spacing glyphs
// have no standalone node and yield ErrIncompleteSymbolTable.
func (s Symbol) CreateNode() (Node, error) {
	text := string(s.Char)
	meta := Meta{Mode: s.Mode}

	switch {
	case s.Group.IsAtom():
		return &Atom{Family: s.Group.AtomGroup(), Meta: meta, Text: text}, nil
	case s.Group == GroupMathOrd:
		return &MathOrd{Meta: meta, Text: text}, nil
	case s.Group == GroupTextOrd:
		return &TextOrd{Meta: meta, Text: text}, nil
	case s.Group == GroupOpToken:
		return &Op{
			Meta:   meta,
			Limits: true,
			Symbol: true,
			Name:   Ptr(text),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s %q (%U)", ErrIncompleteSymbolTable, s.Group, text, s.Char)
	}
}

// Symbols lists every table entry ordered by mode and then by character.
func Symbols() []Symbol {
	symbols := make([]Symbol, 0, len(symbolTable))

	for key, entry := range symbolTable {
		symbols = append(symbols, Symbol{Mode: key.mode, Font: entry.font, Group: entry.group, Char: key.char})
	}

	slices.SortFunc(symbols, func(a, b Symbol) int {
		if a.Mode != b.Mode {
			return strings.Compare(string(a.Mode), string(b.Mode))
		}

		return int(a.Char) - int(b.Char)
	})

	return symbols
}
