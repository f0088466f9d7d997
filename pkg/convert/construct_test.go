package convert_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/typkat/pkg/content"
	"github.com/Sumatoshi-tech/typkat/pkg/convert"
	"github.com/Sumatoshi-tech/typkat/pkg/katex"
)

func TestSequenceFlattensWithoutAlignPoints(t *testing.T) {
	t.Parallel()

	seq := content.Seq(
		content.Str("a"), content.Str("+"), &content.Linebreak{},
		content.Str("b"), &content.Space{}, content.Seq(content.Str("c"), content.Str("d")),
	)

	out := convertOK(t, seq)
	nodes := out.Result.AsSequence()

	assert.False(t, out.Result.IsNode())
	require.Len(t, nodes, 5)

	for _, node := range nodes {
		assert.NotEqual(t, katex.TypeArray, node.NodeType())
		assert.NotEqual(t, katex.TypeStyling, node.NodeType())
	}
}

func TestAlignedRowsFollowLineBreaks(t *testing.T) {
	t.Parallel()

	for breaks := range 4 {
		children := []content.Elem{content.Str("x"), &content.AlignPoint{}, content.Str("y")}
		for range breaks {
			children = append(children, &content.Linebreak{}, content.Str("z"))
		}

		array, ok := single(t, content.Seq(children...)).(*katex.Array)
		require.True(t, ok)
		assert.Len(t, array.Body, breaks+1)
		assert.Len(t, array.RowGaps, breaks)
	}
}

func TestAlignedColumnGaps(t *testing.T) {
	t.Parallel()

	seq := content.Seq(
		content.Str("a"), &content.AlignPoint{}, content.Str("b"), &content.AlignPoint{},
		content.Str("c"), &content.AlignPoint{}, content.Str("d"), &content.AlignPoint{},
		content.Str("e"),
	)

	array, ok := single(t, seq).(*katex.Array)
	require.True(t, ok)
	require.Len(t, array.Cols, 5)

	for i, col := range array.Cols {
		wantAlign, wantPregap := "l", 0.0
		if i%2 == 0 {
			wantAlign = "r"

			if i >= 2 {
				wantPregap = 1
			}
		}

		assert.Equal(t, wantAlign, col.Align, i)
		require.NotNil(t, col.Pregap)
		assert.InDelta(t, wantPregap, *col.Pregap, 0, i)
		require.NotNil(t, col.Postgap)
		assert.Zero(t, *col.Postgap, i)
	}
}

func TestTextRuns(t *testing.T) {
	t.Parallel()

	assert.Equal(t, katex.NewMathOrd("x"), single(t, content.Str("x")))
	assert.Equal(t, katex.NewAtom(katex.AtomOpen, "("), single(t, content.Str("(")))
	assert.Zero(t, convertOK(t, content.Str("")).Result.Len())

	text, ok := single(t, content.Str("if")).(*katex.Text)
	require.True(t, ok)
	assert.Equal(t, katex.NodeArray{
		katex.NewTextOrd(katex.ModeText, "i"),
		katex.NewTextOrd(katex.ModeText, "f"),
	}, text.Body)
}

func TestTextInTextMode(t *testing.T) {
	t.Parallel()

	styles := convert.DefaultStyles().WithMode(katex.ModeText)
	out := convertOK(t, content.Str("x"), convert.WithStyles(styles))

	node, err := out.Result.AsNode()
	require.NoError(t, err)
	assert.Equal(t, katex.NewTextOrd(katex.ModeText, "x"), node)
}

func TestHorizontalSpacing(t *testing.T) {
	t.Parallel()

	kern, ok := single(t, &content.H{Amount: content.Spacing{Abs: 11, Em: 0.5}}).(*katex.Kern)
	require.True(t, ok)
	assert.Equal(t, katex.Em(1.5), kern.Dimension)

	styles := convert.DefaultStyles().WithFontSize(10)
	out := convertOK(t, &content.H{Amount: content.Spacing{Abs: 5}, Weak: true}, convert.WithStyles(styles))
	require.Len(t, out.Warnings, 1)
	assert.Equal(t, "weak", out.Warnings[0].Attribute)

	node, err := out.Result.AsNode()
	require.NoError(t, err)
	assert.Equal(t, katex.NewKern(katex.Em(0.5)), node)

	_, err = convert.Convert(&content.H{Amount: content.Spacing{Fr: 1}})
	require.ErrorIs(t, err, convert.ErrUnimplemented)
}

func TestLeftRight(t *testing.T) {
	t.Parallel()

	lr := &content.LR{Body: content.Seq(content.Str("["), content.Str("x"), content.Str("+"), content.Str("|"))}

	node, ok := single(t, lr).(*katex.LeftRight)
	require.True(t, ok)
	assert.Equal(t, "[", node.Left)
	assert.Equal(t, "|", node.Right)
	assert.Len(t, node.Body, 2)

	out := convertOK(t, &content.LR{Body: content.Seq(content.Str("("), content.Str(")")), Size: "150%"})
	require.Len(t, out.Warnings, 1)
	assert.Equal(t, "size", out.Warnings[0].Attribute)
}

func TestLeftRightInvariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body content.Elem
	}{
		{"single node", content.Str("x")},
		{"empty", content.Seq()},
		{"fraction edge", content.Seq(
			&content.Frac{Num: content.Str("1"), Denom: content.Str("2")},
			content.Str("x"),
			content.Str(")"),
		)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := convert.Convert(&content.LR{Body: tt.body})
			require.ErrorIs(t, err, convert.ErrInvariant)

			var convErr *convert.Error
			require.ErrorAs(t, err, &convErr)
			assert.Equal(t, content.KindLR, convErr.Kind)
		})
	}
}

func TestAttachGroupsSequences(t *testing.T) {
	t.Parallel()

	attach := &content.Attach{
		Base: content.Seq(content.Str("a"), content.Str("b")),
		B:    content.Str("i"),
	}

	supsub, ok := single(t, attach).(*katex.SupSub)
	require.True(t, ok)
	assert.Equal(t, katex.NewOrdGroup(katex.NewMathOrd("a"), katex.NewMathOrd("b")), supsub.Base)
	assert.Nil(t, supsub.Sup)
	assert.Equal(t, katex.NewMathOrd("i"), supsub.Sub)
}

func TestStyledVariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		variant *content.Variant
		font    string
	}{
		{nil, "mathrm"},
		{content.Ptr(content.VariantCal), "mathcal"},
		{content.Ptr(content.VariantBb), "mathbb"},
	}

	for _, tt := range tests {
		font, ok := single(t, &content.Styled{Body: content.Str("R"), Variant: tt.variant}).(*katex.Font)
		require.True(t, ok)
		assert.Equal(t, tt.font, font.Font)
		assert.Equal(t, katex.NewMathOrd("R"), font.Body)
	}

	for _, variant := range []content.Variant{
		content.VariantSerif, content.VariantSans, content.VariantFrak, content.VariantMono,
	} {
		_, err := convert.Convert(&content.Styled{Body: content.Str("R"), Variant: &variant})
		require.ErrorIs(t, err, convert.ErrUnimplemented, variant)
	}
}

func TestStyledAttributesWarn(t *testing.T) {
	t.Parallel()

	styled := &content.Styled{
		Body:    content.Str("x"),
		Bold:    content.Ptr(true),
		Italic:  content.Ptr(false),
		Size:    content.Ptr(content.SizeScript),
		Cramped: content.Ptr(true),
	}

	out := convertOK(t, styled)

	attrs := make([]string, 0, len(out.Warnings))
	for _, w := range out.Warnings {
		assert.Equal(t, content.KindStyled, w.Kind)
		attrs = append(attrs, w.Attribute)
	}

	assert.Equal(t, []string{"bold", "italic", "size", "cramped"}, attrs)
}

func TestBinomSeparators(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 4; n++ {
		lower := make([]content.Elem, n)
		for i := range lower {
			lower[i] = content.Str("k")
		}

		frac, ok := single(t, &content.Binom{Upper: content.Str("n"), Lower: lower}).(*katex.GenFrac)
		require.True(t, ok)
		assert.False(t, frac.HasBarLine)
		assert.Equal(t, katex.Ptr("("), frac.LeftDelim)
		assert.Equal(t, katex.Ptr(")"), frac.RightDelim)
		assert.Equal(t, katex.GenFracAuto, frac.Size)

		denom, ok := frac.Denom.(*katex.OrdGroup)
		require.True(t, ok)
		require.Len(t, denom.Body, 2*n-1)

		for i, node := range denom.Body {
			if i%2 == 1 {
				assert.Equal(t, katex.NewAtom(katex.AtomPunct, ","), node)
			} else {
				assert.Equal(t, katex.NewOrdGroup(katex.NewMathOrd("k")), node)
			}
		}
	}
}

func TestMatrixDelimiters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		delim       content.Delimiter
		left, right string
	}{
		{content.DelimParen, "(", ")"},
		{content.DelimBracket, "[", "]"},
		{content.DelimBrace, "{", "}"},
		{content.DelimBar, "|", "|"},
		{content.DelimDoubleBar, "‖", "‖"},
		{content.DelimNone, ".", "."},
	}

	for _, tt := range tests {
		mat := &content.Mat{
			Rows:  [][]content.Elem{{content.Str("a"), content.Str("b")}, {content.Str("c")}},
			Delim: content.Ptr(tt.delim),
		}

		lr, ok := single(t, mat).(*katex.LeftRight)
		require.True(t, ok)
		assert.Equal(t, tt.left, lr.Left, tt.delim)
		assert.Equal(t, tt.right, lr.Right, tt.delim)

		array, ok := lr.Body[0].(*katex.Array)
		require.True(t, ok)
		assert.Len(t, array.Body, 2)
		assert.Len(t, array.Cols, 2)
		assert.Equal(t, []*katex.Measurement{nil}, array.RowGaps)
	}
}

func TestMatrixDefaultDelimiterFromStyles(t *testing.T) {
	t.Parallel()

	styles := convert.DefaultStyles().WithMatDelim(content.DelimBracket)
	out := convertOK(t,
		&content.Mat{Rows: [][]content.Elem{{content.Str("1")}}, Augment: &content.Augment{VLine: []int{1}}},
		convert.WithStyles(styles))

	node, err := out.Result.AsNode()
	require.NoError(t, err)

	lr, ok := node.(*katex.LeftRight)
	require.True(t, ok)
	assert.Equal(t, "[", lr.Left)

	require.Len(t, out.Warnings, 1)
	assert.Equal(t, "augment", out.Warnings[0].Attribute)
}

func TestCases(t *testing.T) {
	t.Parallel()

	cases := &content.Cases{Children: []content.Elem{
		content.Seq(content.Str("1"), &content.AlignPoint{}, content.Str("x")),
		content.Str("0"),
	}}

	lr, ok := single(t, cases).(*katex.LeftRight)
	require.True(t, ok)
	assert.Equal(t, "\\{", lr.Left)
	assert.Equal(t, ".", lr.Right)

	array, ok := lr.Body[0].(*katex.Array)
	require.True(t, ok)
	assert.InDelta(t, 1.2, array.Arraystretch, 1e-9)
	require.Len(t, array.Body, 2)
	assert.Len(t, array.Body[0], 2)
	assert.Len(t, array.Body[1], 1)
	assert.Equal(t, []katex.AlignSpec{
		katex.AlignColumn("l", katex.Ptr(0.0), katex.Ptr(1.0)),
		katex.AlignColumn("l", katex.Ptr(0.0), katex.Ptr(0.0)),
	}, array.Cols)
}

func TestCasesFences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		delim       *content.Delimiter
		reverse     bool
		left, right string
	}{
		{nil, false, "\\{", "."},
		{nil, true, ".", "\\}"},
		{content.Ptr(content.DelimParen), false, "(", "."},
		{content.Ptr(content.DelimBracket), true, ".", "]"},
	}

	for _, tt := range tests {
		lr, ok := single(t, &content.Cases{Children: []content.Elem{content.Str("x")}, Delim: tt.delim, Reverse: tt.reverse}).(*katex.LeftRight)
		require.True(t, ok)
		assert.Equal(t, tt.left, lr.Left)
		assert.Equal(t, tt.right, lr.Right)
	}
}

func TestCancelAndLines(t *testing.T) {
	t.Parallel()

	out := convertOK(t, &content.Cancel{Body: content.Str("x"), Angle: "45deg", Cross: true})
	require.Len(t, out.Warnings, 2)
	assert.Equal(t, "angle", out.Warnings[0].Attribute)
	assert.Equal(t, "cross", out.Warnings[1].Attribute)

	enclose, err := out.Result.AsNode()
	require.NoError(t, err)
	assert.Equal(t, katex.NewEnclose("\\cancel", katex.NewOrdGroup(katex.NewMathOrd("x"))), enclose)

	assert.Equal(t,
		katex.NewOverline(katex.NewOrdGroup(katex.NewMathOrd("x"))),
		single(t, &content.Overline{Body: content.Str("x")}))
	assert.Equal(t,
		katex.NewUnderline(katex.NewOrdGroup(katex.NewMathOrd("x"))),
		single(t, &content.Underline{Body: content.Str("x")}))
}

func TestBraces(t *testing.T) {
	t.Parallel()

	base := katex.NewOrdGroup(katex.NewMathOrd("x"))

	assert.Equal(t,
		katex.NewHorizBrace("\\overbrace", true, base),
		single(t, &content.Overbrace{Body: content.Str("x")}))

	want := katex.NewSupSub(katex.NewHorizBrace("\\underbrace", false, base), nil, katex.NewMathOrd("n"))
	got := single(t, &content.Underbrace{Body: content.Str("x"), Annotation: content.Str("n")})
	assert.Empty(t, cmp.Diff(want, got))

	over, ok := single(t, &content.Overbrace{Body: content.Str("x"), Annotation: content.Str("n")}).(*katex.SupSub)
	require.True(t, ok)
	assert.NotNil(t, over.Sup)
	assert.Nil(t, over.Sub)
}

func TestRootAndMid(t *testing.T) {
	t.Parallel()

	sqrt, ok := single(t, &content.Root{Radicand: content.Str("x")}).(*katex.Sqrt)
	require.True(t, ok)
	assert.Nil(t, sqrt.Index)
	assert.Equal(t, katex.NewOrdGroup(katex.NewMathOrd("x")), sqrt.Body)

	sqrt, ok = single(t, &content.Root{Index: content.Str("3"), Radicand: content.Str("x")}).(*katex.Sqrt)
	require.True(t, ok)
	assert.Equal(t, katex.NewOrdGroup(katex.NewTextOrd(katex.ModeMath, "3")), sqrt.Index)

	assert.Equal(t, katex.NewMiddle("|"), single(t, &content.Mid{Body: content.Str("|")}))
}

func TestOperators(t *testing.T) {
	t.Parallel()

	op, ok := single(t, &content.Op{Text: content.Str("lim"), Limits: true}).(*katex.Op)
	require.True(t, ok)
	assert.Equal(t, katex.Ptr("\\lim"), op.Name)
	assert.True(t, op.Limits)
	assert.False(t, op.Symbol)

	forced, ok := single(t, &content.Scripts{Body: &content.Op{Text: content.Str("lim"), Limits: true}}).(*katex.Op)
	require.True(t, ok)
	assert.False(t, forced.Limits)
	assert.Equal(t, katex.Ptr("\\lim"), forced.Name)

	out := convertOK(t, &content.Limits{Body: content.Str("x"), Inline: content.Ptr(false)})
	require.Len(t, out.Warnings, 1)
	assert.Equal(t, "inline", out.Warnings[0].Attribute)

	node, err := out.Result.AsNode()
	require.NoError(t, err)

	wrapped, ok := node.(*katex.Op)
	require.True(t, ok)
	assert.True(t, wrapped.Limits)
	assert.Nil(t, wrapped.Name)
	assert.Equal(t, []katex.Node{katex.NewMathOrd("x")}, wrapped.Body)
}

func TestFatalErrorStopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	root := content.Seq(
		&content.Primes{Count: 1},
		&content.H{Amount: content.Spacing{Fr: 2}},
	)

	_, err := convert.New().Convert(context.Background(), root)

	var convErr *convert.Error
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, content.KindPrimes, convErr.Kind)
}

func TestUnknownDelimiterIsInvariant(t *testing.T) {
	t.Parallel()

	zz := content.Ptr(content.Delimiter("zz"))
	x := content.Str("x")

	tests := []struct {
		elem   content.Elem
		styles convert.Styles
		name   string
	}{
		{name: "vector", elem: &content.Vec{Children: []content.Elem{x}, Delim: zz}, styles: convert.DefaultStyles()},
		{name: "matrix", elem: &content.Mat{Rows: [][]content.Elem{{x}}, Delim: zz}, styles: convert.DefaultStyles()},
		{name: "cases", elem: &content.Cases{Children: []content.Elem{x}, Delim: zz}, styles: convert.DefaultStyles()},
		{
			name:   "vector style default",
			elem:   &content.Vec{Children: []content.Elem{x}},
			styles: convert.DefaultStyles().WithVecDelim("zz"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := convert.New(convert.WithStyles(tt.styles)).Convert(context.Background(), tt.elem)
			require.ErrorIs(t, err, convert.ErrInvariant)
			assert.Contains(t, err.Error(), `unknown delimiter "zz"`)

			var convErr *convert.Error
			require.ErrorAs(t, err, &convErr)
			assert.Equal(t, tt.elem.Kind(), convErr.Kind)
		})
	}
}

func TestMissingRequiredChildIsInvariant(t *testing.T) {
	t.Parallel()

	x := content.Str("x")
	typedNil := (*content.Text)(nil)

	tests := []struct {
		elem content.Elem
		name string
	}{
		{name: "fraction numerator", elem: &content.Frac{Denom: x}},
		{name: "fraction typed nil numerator", elem: &content.Frac{Num: typedNil, Denom: x}},
		{name: "fraction denominator", elem: &content.Frac{Num: x}},
		{name: "binomial upper", elem: &content.Binom{Lower: []content.Elem{x}}},
		{name: "binomial lower item", elem: &content.Binom{Upper: x, Lower: []content.Elem{typedNil}}},
		{name: "root radicand", elem: &content.Root{Index: x}},
		{name: "operator name", elem: &content.Op{}},
		{name: "operator typed nil name", elem: &content.Op{Text: typedNil}},
		{name: "delimited body", elem: &content.LR{}},
		{name: "mid body", elem: &content.Mid{}},
		{name: "attach base", elem: &content.Attach{T: x}},
		{name: "styled body", elem: &content.Styled{}},
		{name: "cancel body", elem: &content.Cancel{}},
		{name: "overbrace body", elem: &content.Overbrace{Annotation: x}},
		{name: "overline body", elem: &content.Overline{Body: typedNil}},
		{name: "limits body", elem: &content.Limits{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var err error

			require.NotPanics(t, func() {
				_, err = convert.Convert(tt.elem)
			})
			require.ErrorIs(t, err, convert.ErrInvariant)

			var convErr *convert.Error
			require.ErrorAs(t, err, &convErr)
			assert.Equal(t, tt.elem.Kind(), convErr.Kind)
		})
	}
}

func TestTypedNilElement(t *testing.T) {
	t.Parallel()

	_, err := convert.Convert(content.Seq(content.Str("x"), (*content.Text)(nil)))
	require.ErrorIs(t, err, convert.ErrInvariant)

	var convErr *convert.Error
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, content.KindText, convErr.Kind)
}

func TestTypedNilOptionalChildIsAbsent(t *testing.T) {
	t.Parallel()

	supsub, ok := single(t, &content.Attach{Base: content.Str("x"), T: (*content.Text)(nil)}).(*katex.SupSub)
	require.True(t, ok)
	assert.Nil(t, supsub.Sup)

	sqrt, ok := single(t, &content.Root{Radicand: content.Str("x"), Index: (*content.Text)(nil)}).(*katex.Sqrt)
	require.True(t, ok)
	assert.Nil(t, sqrt.Index)

	_, ok = single(t, &content.Overbrace{Body: content.Str("x"), Annotation: (*content.Text)(nil)}).(*katex.HorizBrace)
	assert.True(t, ok)
}
