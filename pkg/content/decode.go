package content

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/typkat/pkg/schema"
)

// Decoding errors.
var (
	ErrEmptyDocument   = errors.New("empty source document")
	ErrInvalidDocument = errors.New("invalid source document")
)

// Decode parses a YAML or JSON source document into an element tree. The
// document is checked against the embedded content schema before any element
// is built.
func Decode(data []byte) (Elem, error) {
	var raw any

	err := yaml.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	if raw == nil {
		return nil, ErrEmptyDocument
	}

	report, err := schema.ValidateContent(raw)
	if err != nil {
		return nil, fmt.Errorf("validate source document: %w", err)
	}

	if !report.Valid() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, report.Err())
	}

	return build(raw, "")
}

// DecodeReader reads a whole source document from r and decodes it.
func DecodeReader(r io.Reader) (Elem, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read source document: %w", err)
	}

	return Decode(data)
}

type builder func(fields map[string]any, path string) (Elem, error)

//nolint:gochecknoglobals // Static dispatch table.
var builders map[Kind]builder

//nolint:gochecknoinits // The table refers to functions that call build, which reads the table.
func init() {
	builders = map[Kind]builder{
		KindEquation:     buildEquation,
		KindSequence:     buildSequence,
		KindText:         buildText,
		KindSpace:        func(map[string]any, string) (Elem, error) { return &Space{}, nil },
		KindLinebreak:    func(map[string]any, string) (Elem, error) { return &Linebreak{}, nil },
		KindAlignPoint:   func(map[string]any, string) (Elem, error) { return &AlignPoint{}, nil },
		KindH:            buildH,
		KindLR:           buildLR,
		KindAttach:       buildAttach,
		KindStyled:       buildStyled,
		KindFrac:         buildFrac,
		KindBinom:        buildBinom,
		KindVec:          buildVec,
		KindMat:          buildMat,
		KindOp:           buildOp,
		KindCases:        buildCases,
		KindCancel:       buildCancel,
		KindOverbrace:    buildAnnotated(KindOverbrace),
		KindUnderbrace:   buildAnnotated(KindUnderbrace),
		KindOverbracket:  buildAnnotated(KindOverbracket),
		KindUnderbracket: buildAnnotated(KindUnderbracket),
		KindOverline:     buildOverline,
		KindUnderline:    buildUnderline,
		KindRoot:         buildRoot,
		KindMid:          buildMid,
		KindClass:        buildClass,
		KindLimits:       buildLimits,
		KindScripts:      buildScripts,
		KindPrimes:       buildPrimes,
		KindAccent:       buildAccent,
	}
}

func build(value any, path string) (Elem, error) {
	switch v := value.(type) {
	case string:
		return &Text{Text: v}, nil
	case int:
		return &Text{Text: strconv.Itoa(v)}, nil
	case float64:
		return &Text{Text: strconv.FormatFloat(v, 'f', -1, 64)}, nil
	case []any:
		children, err := buildList(v, path)
		if err != nil {
			return nil, err
		}

		return &Sequence{Children: children}, nil
	case map[string]any:
		kind, _ := v["kind"].(string)

		buildKind, ok := builders[Kind(kind)]
		if !ok {
			return nil, fmt.Errorf("%w: %s: unknown kind %q", ErrInvalidDocument, pathOrRoot(path), kind)
		}

		return buildKind(v, path)
	default:
		return nil, fmt.Errorf("%w: %s: unexpected %T", ErrInvalidDocument, pathOrRoot(path), value)
	}
}

func buildList(items []any, path string) ([]Elem, error) {
	elems := make([]Elem, 0, len(items))

	for i, item := range items {
		elem, err := build(item, fmt.Sprintf("%s.%d", path, i))
		if err != nil {
			return nil, err
		}

		elems = append(elems, elem)
	}

	return elems, nil
}

// optional builds fields[key] when present.
func optional(fields map[string]any, key, path string) (Elem, error) {
	value, ok := fields[key]
	if !ok || value == nil {
		return nil, nil //nolint:nilnil // Absent optional element.
	}

	return build(value, path+"."+key)
}

func required(fields map[string]any, key, path string) (Elem, error) {
	elem, err := optional(fields, key, path)
	if err != nil {
		return nil, err
	}

	if elem == nil {
		return nil, fmt.Errorf("%w: %s.%s is required", ErrInvalidDocument, pathOrRoot(path), key)
	}

	return elem, nil
}

func list(fields map[string]any, key, path string) ([]Elem, error) {
	items, _ := fields[key].([]any)

	return buildList(items, path+"."+key)
}

func stringField(fields map[string]any, key string) string {
	value, _ := fields[key].(string)

	return value
}

func boolField(fields map[string]any, key string) bool {
	value, _ := fields[key].(bool)

	return value
}

func optionalBool(fields map[string]any, key string) *bool {
	value, ok := fields[key].(bool)
	if !ok {
		return nil
	}

	return &value
}

func number(value any) float64 {
	switch v := value.(type) {
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case float64:
		return v
	default:
		return 0
	}
}

func optionalDelim(fields map[string]any, key string) (*Delimiter, error) {
	name, ok := fields[key].(string)
	if !ok {
		return nil, nil //nolint:nilnil // Unset delimiter falls back to the style default.
	}

	delim, err := ParseDelimiter(name)
	if err != nil {
		return nil, err
	}

	return &delim, nil
}

func pathOrRoot(path string) string {
	if path == "" {
		return "(root)"
	}

	return "(root)" + path
}

func buildEquation(fields map[string]any, path string) (Elem, error) {
	body, err := required(fields, "body", path)
	if err != nil {
		return nil, err
	}

	return &Equation{Body: body, Block: boolField(fields, "block")}, nil
}

func buildSequence(fields map[string]any, path string) (Elem, error) {
	children, err := list(fields, "children", path)
	if err != nil {
		return nil, err
	}

	return &Sequence{Children: children}, nil
}

func buildText(fields map[string]any, _ string) (Elem, error) {
	return &Text{Text: stringField(fields, "text")}, nil
}

func buildH(fields map[string]any, _ string) (Elem, error) {
	amount, _ := fields["amount"].(map[string]any)

	return &H{
		Amount: Spacing{Abs: number(amount["abs"]), Em: number(amount["em"]), Fr: number(amount["fr"])},
		Weak:   boolField(fields, "weak"),
	}, nil
}

func buildLR(fields map[string]any, path string) (Elem, error) {
	body, err := required(fields, "body", path)
	if err != nil {
		return nil, err
	}

	return &LR{Body: body, Size: stringField(fields, "size")}, nil
}

func buildAttach(fields map[string]any, path string) (Elem, error) {
	attach := &Attach{}

	targets := []struct {
		key    string
		target *Elem
	}{
		{"base", &attach.Base}, {"t", &attach.T}, {"b", &attach.B},
		{"tl", &attach.TL}, {"tr", &attach.TR}, {"bl", &attach.BL}, {"br", &attach.BR},
	}

	for _, field := range targets {
		elem, err := optional(fields, field.key, path)
		if err != nil {
			return nil, err
		}

		*field.target = elem
	}

	if attach.Base == nil {
		return nil, fmt.Errorf("%w: %s.base is required", ErrInvalidDocument, pathOrRoot(path))
	}

	return attach, nil
}

func buildStyled(fields map[string]any, path string) (Elem, error) {
	body, err := required(fields, "body", path)
	if err != nil {
		return nil, err
	}

	styled := &Styled{
		Body:    body,
		Bold:    optionalBool(fields, "bold"),
		Italic:  optionalBool(fields, "italic"),
		Cramped: optionalBool(fields, "cramped"),
	}

	if name, ok := fields["variant"].(string); ok {
		variant, err := ParseVariant(name)
		if err != nil {
			return nil, err
		}

		styled.Variant = &variant
	}

	if name, ok := fields["size"].(string); ok {
		size, err := ParseMathSize(name)
		if err != nil {
			return nil, err
		}

		styled.Size = &size
	}

	return styled, nil
}

func buildFrac(fields map[string]any, path string) (Elem, error) {
	num, err := required(fields, "num", path)
	if err != nil {
		return nil, err
	}

	denom, err := required(fields, "denom", path)
	if err != nil {
		return nil, err
	}

	return &Frac{Num: num, Denom: denom}, nil
}

func buildBinom(fields map[string]any, path string) (Elem, error) {
	upper, err := required(fields, "upper", path)
	if err != nil {
		return nil, err
	}

	lower, err := list(fields, "lower", path)
	if err != nil {
		return nil, err
	}

	return &Binom{Upper: upper, Lower: lower}, nil
}

func buildVec(fields map[string]any, path string) (Elem, error) {
	children, err := list(fields, "children", path)
	if err != nil {
		return nil, err
	}

	delim, err := optionalDelim(fields, "delim")
	if err != nil {
		return nil, err
	}

	return &Vec{Children: children, Delim: delim}, nil
}

func buildMat(fields map[string]any, path string) (Elem, error) {
	rawRows, _ := fields["rows"].([]any)
	rows := make([][]Elem, 0, len(rawRows))

	for i, rawRow := range rawRows {
		cells, _ := rawRow.([]any)

		row, err := buildList(cells, fmt.Sprintf("%s.rows.%d", path, i))
		if err != nil {
			return nil, err
		}

		rows = append(rows, row)
	}

	delim, err := optionalDelim(fields, "delim")
	if err != nil {
		return nil, err
	}

	mat := &Mat{Rows: rows, Delim: delim}

	if augment, ok := fields["augment"].(map[string]any); ok {
		mat.Augment = &Augment{HLine: ints(augment["hline"]), VLine: ints(augment["vline"])}
	}

	return mat, nil
}

func ints(value any) []int {
	items, _ := value.([]any)
	out := make([]int, 0, len(items))

	for _, item := range items {
		out = append(out, int(number(item)))
	}

	return out
}

func buildOp(fields map[string]any, path string) (Elem, error) {
	text, err := required(fields, "text", path)
	if err != nil {
		return nil, err
	}

	return &Op{Text: text, Limits: boolField(fields, "limits")}, nil
}

func buildCases(fields map[string]any, path string) (Elem, error) {
	children, err := list(fields, "children", path)
	if err != nil {
		return nil, err
	}

	delim, err := optionalDelim(fields, "delim")
	if err != nil {
		return nil, err
	}

	return &Cases{Children: children, Delim: delim, Reverse: boolField(fields, "reverse")}, nil
}

func buildCancel(fields map[string]any, path string) (Elem, error) {
	body, err := required(fields, "body", path)
	if err != nil {
		return nil, err
	}

	return &Cancel{
		Body:     body,
		Length:   stringField(fields, "length"),
		Angle:    stringField(fields, "angle"),
		Stroke:   stringField(fields, "stroke"),
		Inverted: boolField(fields, "inverted"),
		Cross:    boolField(fields, "cross"),
	}, nil
}

func buildAnnotated(kind Kind) builder {
	return func(fields map[string]any, path string) (Elem, error) {
		body, err := required(fields, "body", path)
		if err != nil {
			return nil, err
		}

		annotation, err := optional(fields, "annotation", path)
		if err != nil {
			return nil, err
		}

		switch kind {
		case KindOverbrace:
			return &Overbrace{Body: body, Annotation: annotation}, nil
		case KindUnderbrace:
			return &Underbrace{Body: body, Annotation: annotation}, nil
		case KindOverbracket:
			return &Overbracket{Body: body, Annotation: annotation}, nil
		default:
			return &Underbracket{Body: body, Annotation: annotation}, nil
		}
	}
}

func buildOverline(fields map[string]any, path string) (Elem, error) {
	body, err := required(fields, "body", path)
	if err != nil {
		return nil, err
	}

	return &Overline{Body: body}, nil
}

func buildUnderline(fields map[string]any, path string) (Elem, error) {
	body, err := required(fields, "body", path)
	if err != nil {
		return nil, err
	}

	return &Underline{Body: body}, nil
}

func buildRoot(fields map[string]any, path string) (Elem, error) {
	index, err := optional(fields, "index", path)
	if err != nil {
		return nil, err
	}

	radicand, err := required(fields, "radicand", path)
	if err != nil {
		return nil, err
	}

	return &Root{Index: index, Radicand: radicand}, nil
}

func buildMid(fields map[string]any, path string) (Elem, error) {
	body, err := required(fields, "body", path)
	if err != nil {
		return nil, err
	}

	return &Mid{Body: body}, nil
}

func buildClass(fields map[string]any, path string) (Elem, error) {
	class, err := ParseMathClass(stringField(fields, "class"))
	if err != nil {
		return nil, err
	}

	body, err := required(fields, "body", path)
	if err != nil {
		return nil, err
	}

	return &Class{Class: class, Body: body}, nil
}

func buildLimits(fields map[string]any, path string) (Elem, error) {
	body, err := required(fields, "body", path)
	if err != nil {
		return nil, err
	}

	return &Limits{Body: body, Inline: optionalBool(fields, "inline")}, nil
}

func buildScripts(fields map[string]any, path string) (Elem, error) {
	body, err := required(fields, "body", path)
	if err != nil {
		return nil, err
	}

	return &Scripts{Body: body}, nil
}

func buildPrimes(fields map[string]any, _ string) (Elem, error) {
	return &Primes{Count: int(number(fields["count"]))}, nil
}

func buildAccent(fields map[string]any, path string) (Elem, error) {
	base, err := required(fields, "base", path)
	if err != nil {
		return nil, err
	}

	return &Accent{Base: base, Accent: stringField(fields, "accent")}, nil
}
