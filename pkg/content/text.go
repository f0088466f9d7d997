package content

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// IsNil reports whether elem is nil or a nil pointer stored in the interface.
func IsNil(elem Elem) bool {
	if elem == nil {
		return true
	}

	value := reflect.ValueOf(elem)

	return value.Kind() == reflect.Pointer && value.IsNil()
}

// PlainText renders the textual content of elem. Layout elements without a
// textual form contribute nothing.
func PlainText(elem Elem) string {
	var sb strings.Builder

	writePlain(&sb, elem)

	return sb.String()
}

func writePlain(sb *strings.Builder, elem Elem) {
	if IsNil(elem) {
		return
	}

	switch e := elem.(type) {
	case *Text:
		sb.WriteString(e.Text)
	case *Space:
		sb.WriteByte(' ')
	case *Sequence:
		for _, child := range e.Children {
			writePlain(sb, child)
		}
	case *Equation:
		writePlain(sb, e.Body)
	case *Styled:
		writePlain(sb, e.Body)
	case *LR:
		writePlain(sb, e.Body)
	case *Op:
		writePlain(sb, e.Text)
	case *Class:
		writePlain(sb, e.Body)
	case *Limits:
		writePlain(sb, e.Body)
	case *Scripts:
		writePlain(sb, e.Body)
	case *Mid:
		writePlain(sb, e.Body)
	case *Primes:
		sb.WriteString(strings.Repeat("′", e.Count))
	}
}

// Dump renders an indented debug representation of elem, one element per line.
func Dump(elem Elem) string {
	var sb strings.Builder

	dump(&sb, "", "", elem)

	return strings.TrimRight(sb.String(), "\n")
}

//nolint:gocyclo,cyclop,funlen // One case per element kind.
func dump(sb *strings.Builder, indent, label string, elem Elem) {
	if IsNil(elem) {
		return
	}

	sb.WriteString(indent)

	if label != "" {
		sb.WriteString(label)
		sb.WriteString(": ")
	}

	sb.WriteString(string(elem.Kind()))

	child := indent + "  "

	switch e := elem.(type) {
	case *Text:
		fmt.Fprintf(sb, " %q\n", e.Text)
	case *Equation:
		fmt.Fprintf(sb, " block=%t\n", e.Block)
		dump(sb, child, "body", e.Body)
	case *Sequence:
		sb.WriteByte('\n')
		dumpList(sb, child, "", e.Children)
	case *H:
		fmt.Fprintf(sb, " abs=%gpt em=%g fr=%g weak=%t\n", e.Amount.Abs, e.Amount.Em, e.Amount.Fr, e.Weak)
	case *LR:
		if e.Size != "" {
			fmt.Fprintf(sb, " size=%s", e.Size)
		}

		sb.WriteByte('\n')
		dump(sb, child, "body", e.Body)
	case *Attach:
		sb.WriteByte('\n')
		dump(sb, child, "base", e.Base)
		dump(sb, child, "t", e.T)
		dump(sb, child, "b", e.B)
		dump(sb, child, "tl", e.TL)
		dump(sb, child, "tr", e.TR)
		dump(sb, child, "bl", e.BL)
		dump(sb, child, "br", e.BR)
	case *Styled:
		if e.Variant != nil {
			fmt.Fprintf(sb, " variant=%s", *e.Variant)
		}

		writeFlag(sb, "bold", e.Bold)
		writeFlag(sb, "italic", e.Italic)
		writeFlag(sb, "cramped", e.Cramped)

		if e.Size != nil {
			fmt.Fprintf(sb, " size=%s", *e.Size)
		}

		sb.WriteByte('\n')
		dump(sb, child, "body", e.Body)
	case *Frac:
		sb.WriteByte('\n')
		dump(sb, child, "num", e.Num)
		dump(sb, child, "denom", e.Denom)
	case *Binom:
		sb.WriteByte('\n')
		dump(sb, child, "upper", e.Upper)
		dumpList(sb, child, "lower", e.Lower)
	case *Vec:
		writeDelim(sb, e.Delim)
		sb.WriteByte('\n')
		dumpList(sb, child, "", e.Children)
	case *Mat:
		writeDelim(sb, e.Delim)
		sb.WriteByte('\n')

		for i, row := range e.Rows {
			dumpList(sb, child, fmt.Sprintf("row %d", i), row)
		}
	case *Op:
		fmt.Fprintf(sb, " limits=%t\n", e.Limits)
		dump(sb, child, "text", e.Text)
	case *Cases:
		writeDelim(sb, e.Delim)
		fmt.Fprintf(sb, " reverse=%t\n", e.Reverse)
		dumpList(sb, child, "", e.Children)
	case *Cancel:
		sb.WriteByte('\n')
		dump(sb, child, "body", e.Body)
	case *Overbrace:
		sb.WriteByte('\n')
		dump(sb, child, "body", e.Body)
		dump(sb, child, "annotation", e.Annotation)
	case *Underbrace:
		sb.WriteByte('\n')
		dump(sb, child, "body", e.Body)
		dump(sb, child, "annotation", e.Annotation)
	case *Overbracket:
		sb.WriteByte('\n')
		dump(sb, child, "body", e.Body)
		dump(sb, child, "annotation", e.Annotation)
	case *Underbracket:
		sb.WriteByte('\n')
		dump(sb, child, "body", e.Body)
		dump(sb, child, "annotation", e.Annotation)
	case *Overline:
		sb.WriteByte('\n')
		dump(sb, child, "body", e.Body)
	case *Underline:
		sb.WriteByte('\n')
		dump(sb, child, "body", e.Body)
	case *Root:
		sb.WriteByte('\n')
		dump(sb, child, "index", e.Index)
		dump(sb, child, "radicand", e.Radicand)
	case *Mid:
		sb.WriteByte('\n')
		dump(sb, child, "body", e.Body)
	case *Class:
		fmt.Fprintf(sb, " class=%s\n", e.Class)
		dump(sb, child, "body", e.Body)
	case *Limits:
		writeFlag(sb, "inline", e.Inline)
		sb.WriteByte('\n')
		dump(sb, child, "body", e.Body)
	case *Scripts:
		sb.WriteByte('\n')
		dump(sb, child, "body", e.Body)
	case *Primes:
		fmt.Fprintf(sb, " count=%d\n", e.Count)
	case *Accent:
		fmt.Fprintf(sb, " accent=%q\n", e.Accent)
		dump(sb, child, "base", e.Base)
	default:
		sb.WriteByte('\n')
	}
}

func dumpList(sb *strings.Builder, indent, label string, elems []Elem) {
	for i, elem := range elems {
		name := strconv.Itoa(i)
		if label != "" {
			name = fmt.Sprintf("%s[%d]", label, i)
		}

		dump(sb, indent, name, elem)
	}
}

func writeFlag(sb *strings.Builder, name string, value *bool) {
	if value != nil {
		fmt.Fprintf(sb, " %s=%t", name, *value)
	}
}

func writeDelim(sb *strings.Builder, delim *Delimiter) {
	if delim != nil {
		fmt.Fprintf(sb, " delim=%s", *delim)
	}
}
