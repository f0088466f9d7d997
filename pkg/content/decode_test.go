package content_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/typkat/pkg/content"
	"github.com/Sumatoshi-tech/typkat/pkg/schema"
)

func TestDecodeShorthand(t *testing.T) {
	t.Parallel()

	elem, err := content.Decode([]byte(`[A, "=", 2]`))
	require.NoError(t, err)

	seq, ok := elem.(*content.Sequence)
	require.True(t, ok)
	require.Len(t, seq.Children, 3)
	assert.Equal(t, content.Str("A"), seq.Children[0])
	assert.Equal(t, content.Str("="), seq.Children[1])
	assert.Equal(t, content.Str("2"), seq.Children[2])
}

func TestDecodeEquation(t *testing.T) {
	t.Parallel()

	elem, err := content.Decode([]byte(`
kind: equation
block: true
body:
  - A
  - "="
  - pi
  - kind: attach
    base: r
    t: "2"
    tl: a
`))
	require.NoError(t, err)

	eq, ok := elem.(*content.Equation)
	require.True(t, ok)
	assert.True(t, eq.Block)

	seq, ok := eq.Body.(*content.Sequence)
	require.True(t, ok)
	require.Len(t, seq.Children, 4)

	attach, ok := seq.Children[3].(*content.Attach)
	require.True(t, ok)
	assert.Equal(t, content.Str("r"), attach.Base)
	assert.Equal(t, content.Str("2"), attach.T)
	assert.Equal(t, content.Str("a"), attach.TL)
	assert.Nil(t, attach.B)
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	elem, err := content.Decode([]byte(`{"kind":"frac","num":"1","denom":{"kind":"text","text":"2"}}`))
	require.NoError(t, err)

	frac, ok := elem.(*content.Frac)
	require.True(t, ok)
	assert.Equal(t, content.Str("1"), frac.Num)
	assert.Equal(t, content.Str("2"), frac.Denom)
}

func TestDecodeLayoutElements(t *testing.T) {
	t.Parallel()

	elem, err := content.Decode([]byte(`
- {kind: vec, delim: bracket, children: ["1", "2"]}
- {kind: mat, delim: none, rows: [[a, b], [c, d]], augment: {vline: [1]}}
- {kind: cases, reverse: true, children: [x]}
- {kind: h, amount: {abs: 11, em: 0.5}, weak: true}
- {kind: styled, variant: bb, bold: true, size: script, body: R}
- {kind: limits, inline: false, body: {kind: op, text: lim, limits: true}}
- {kind: overbrace, body: x}
- {kind: root, radicand: x}
- {kind: primes, count: 2}
- {kind: class, class: relation, body: "~"}
`))
	require.NoError(t, err)

	children := elem.(*content.Sequence).Children
	require.Len(t, children, 10)

	vec := children[0].(*content.Vec)
	require.NotNil(t, vec.Delim)
	assert.Equal(t, content.DelimBracket, *vec.Delim)
	assert.Len(t, vec.Children, 2)

	mat := children[1].(*content.Mat)
	assert.Len(t, mat.Rows, 2)
	assert.Equal(t, content.DelimNone, *mat.Delim)
	require.NotNil(t, mat.Augment)
	assert.Equal(t, []int{1}, mat.Augment.VLine)

	cases := children[2].(*content.Cases)
	assert.True(t, cases.Reverse)
	assert.Nil(t, cases.Delim)

	h := children[3].(*content.H)
	assert.InDelta(t, 11.0, h.Amount.Abs, 0)
	assert.InDelta(t, 0.5, h.Amount.Em, 0)
	assert.True(t, h.Weak)

	styled := children[4].(*content.Styled)
	assert.Equal(t, content.VariantBb, *styled.Variant)
	assert.True(t, *styled.Bold)
	assert.Equal(t, content.SizeScript, *styled.Size)
	assert.Nil(t, styled.Italic)

	limits := children[5].(*content.Limits)
	require.NotNil(t, limits.Inline)
	assert.False(t, *limits.Inline)
	assert.True(t, limits.Body.(*content.Op).Limits)

	assert.Nil(t, children[6].(*content.Overbrace).Annotation)
	assert.Nil(t, children[7].(*content.Root).Index)
	assert.Equal(t, 2, children[8].(*content.Primes).Count)
	assert.Equal(t, content.ClassRelation, children[9].(*content.Class).Class)
}

func TestDecodeRejectsInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{"unknown kind", `{kind: hologram}`},
		{"missing field", `{kind: frac, num: "1"}`},
		{"bad delimiter", `{kind: vec, delim: angle, children: []}`},
		{"unknown field", `{kind: space, width: 1}`},
		{"bad variant", `{kind: styled, variant: fancy, body: x}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := content.Decode([]byte(tt.doc))
			require.ErrorIs(t, err, content.ErrInvalidDocument)
			require.ErrorIs(t, err, schema.ErrInvalid)
		})
	}
}

func TestDecodeEmpty(t *testing.T) {
	t.Parallel()

	_, err := content.Decode([]byte(""))
	require.ErrorIs(t, err, content.ErrEmptyDocument)
}

func TestDecodeMalformed(t *testing.T) {
	t.Parallel()

	_, err := content.DecodeReader(strings.NewReader("kind: [unterminated"))
	require.ErrorIs(t, err, content.ErrInvalidDocument)
}
