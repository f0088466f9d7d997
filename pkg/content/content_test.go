package content_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/typkat/pkg/content"
)

func TestKindsAreUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[content.Kind]bool)
	for _, kind := range content.Kinds() {
		assert.False(t, seen[kind], kind)
		seen[kind] = true
	}

	assert.Len(t, seen, 30)
}

func TestDelimiterChars(t *testing.T) {
	t.Parallel()

	tests := []struct {
		delim       content.Delimiter
		open, close string
	}{
		{content.DelimParen, "(", ")"},
		{content.DelimBracket, "[", "]"},
		{content.DelimBrace, "{", "}"},
		{content.DelimBar, "|", "|"},
		{content.DelimDoubleBar, "‖", "‖"},
		{content.DelimNone, ".", "."},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.open, tt.delim.Open(), tt.delim)
		assert.Equal(t, tt.close, tt.delim.Close(), tt.delim)
	}
}

func TestParseValues(t *testing.T) {
	t.Parallel()

	delim, err := content.ParseDelimiter("double-bar")
	require.NoError(t, err)
	assert.Equal(t, content.DelimDoubleBar, delim)

	_, err = content.ParseDelimiter("angle")
	require.ErrorIs(t, err, content.ErrUnknownValue)

	variant, err := content.ParseVariant("bb")
	require.NoError(t, err)
	assert.Equal(t, content.VariantBb, variant)

	_, err = content.ParseVariant("script")
	require.ErrorIs(t, err, content.ErrUnknownValue)

	size, err := content.ParseMathSize("script-script")
	require.NoError(t, err)
	assert.Equal(t, content.SizeScriptScript, size)

	_, err = content.ParseMathClass("atomic")
	require.ErrorIs(t, err, content.ErrUnknownValue)
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	elem := content.Seq(
		content.Str("lim"),
		&content.Space{},
		&content.Styled{Body: content.Str("x")},
		&content.Frac{Num: content.Str("1"), Denom: content.Str("2")},
	)

	assert.Equal(t, "lim x", content.PlainText(elem))
	assert.Equal(t, "‖", content.PlainText(&content.Mid{Body: content.Str("‖")}))
	assert.Equal(t, "′′", content.PlainText(&content.Primes{Count: 2}))
}

func TestDump(t *testing.T) {
	t.Parallel()

	elem := &content.Attach{
		Base: content.Str("x"),
		T:    content.Str("2"),
		TL:   content.Str("a"),
	}

	want := strings.Join([]string{
		"attach",
		`  base: text "x"`,
		`  t: text "2"`,
		`  tl: text "a"`,
	}, "\n")

	assert.Equal(t, want, content.Dump(elem))
}

func TestDumpNested(t *testing.T) {
	t.Parallel()

	elem := &content.Equation{Body: content.Seq(content.Str("a"), &content.AlignPoint{})}
	dump := content.Dump(elem)

	assert.Contains(t, dump, "equation block=false")
	assert.Contains(t, dump, "    0: text \"a\"")
	assert.Contains(t, dump, "    1: align-point")
}

func TestMarkers(t *testing.T) {
	t.Parallel()

	assert.True(t, content.IsLinebreak(&content.Linebreak{}))
	assert.False(t, content.IsLinebreak(&content.AlignPoint{}))
	assert.True(t, content.IsAlignPoint(&content.AlignPoint{}))
	assert.False(t, content.IsAlignPoint(content.Str("&")))
}

func TestSpacingIsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, content.Spacing{}.IsZero())
	assert.False(t, content.Spacing{Em: 1}.IsZero())
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	assert.True(t, content.IsNil(nil))
	assert.True(t, content.IsNil((*content.Text)(nil)))
	assert.False(t, content.IsNil(content.Str("")))
	assert.False(t, content.IsNil(&content.Space{}))
}

func TestTypedNilChildren(t *testing.T) {
	t.Parallel()

	frac := &content.Frac{Num: (*content.Text)(nil), Denom: content.Str("2")}

	assert.NotPanics(t, func() {
		assert.Equal(t, "frac\n  denom: text \"2\"", content.Dump(frac))
		assert.Equal(t, "2", content.PlainText(content.Seq((*content.Text)(nil), content.Str("2"))))
	})
}

func TestDelimiterKnown(t *testing.T) {
	t.Parallel()

	assert.True(t, content.DelimDoubleBar.Known())
	assert.True(t, content.DelimNone.Known())
	assert.False(t, content.Delimiter("zz").Known())
	assert.False(t, content.Delimiter("").Known())
}
