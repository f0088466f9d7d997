package schema_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/typkat/pkg/schema"
)

func decodeYAML(t *testing.T, src string) any {
	t.Helper()

	var doc any
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))

	return doc
}

func decodeJSON(t *testing.T, src string) any {
	t.Helper()

	var doc any
	require.NoError(t, json.Unmarshal([]byte(src), &doc))

	return doc
}

func TestEmbeddedSchemasAreJSON(t *testing.T) {
	t.Parallel()

	for _, name := range []string{schema.Content, schema.KaTeX} {
		data, err := schema.Load(name)
		require.NoError(t, err)
		assert.True(t, json.Valid(data), name)
	}

	_, err := schema.Load("mathml")
	require.ErrorIs(t, err, schema.ErrUnknownSchema)
}

func TestValidateContentValid(t *testing.T) {
	t.Parallel()

	doc := decodeYAML(t, `
kind: equation
body:
  - A
  - "="
  - kind: attach
    base: r
    t: "2"
  - kind: frac
    num: "1"
    denom: "2"
  - kind: vec
    delim: bracket
    children: ["1", "2"]
  - kind: h
    amount: {em: 1}
`)

	report, err := schema.ValidateContent(doc)
	require.NoError(t, err)
	assert.True(t, report.Valid(), report.Issues)
	require.NoError(t, report.Err())
	assert.Equal(t, 100, report.Compliance)
}

func TestValidateContentMissingField(t *testing.T) {
	t.Parallel()

	doc := decodeYAML(t, `
kind: frac
num: "1"
`)

	report, err := schema.ValidateContent(doc)
	require.NoError(t, err)
	assert.False(t, report.Valid())
	require.ErrorIs(t, report.Err(), schema.ErrInvalid)
	assert.NotEmpty(t, schema.Recommendations(report))
}

func TestValidateContentUnknownKind(t *testing.T) {
	t.Parallel()

	report, err := schema.ValidateContent(decodeYAML(t, `kind: hologram`))
	require.NoError(t, err)
	assert.False(t, report.Valid())
}

func TestValidateContentBadDelimiter(t *testing.T) {
	t.Parallel()

	report, err := schema.ValidateContent(decodeYAML(t, `{kind: vec, delim: angle, children: ["1"]}`))
	require.NoError(t, err)
	assert.False(t, report.Valid())
}

func TestValidateContentUnknownField(t *testing.T) {
	t.Parallel()

	report, err := schema.ValidateContent(decodeYAML(t, `{kind: text, text: x, colour: red}`))
	require.NoError(t, err)
	assert.False(t, report.Valid())
}

func TestValidateKaTeXValid(t *testing.T) {
	t.Parallel()

	doc := decodeJSON(t, `[
		{"type":"mathord","mode":"math","loc":null,"text":"A"},
		{"type":"atom","family":"rel","mode":"math","loc":null,"text":"="},
		{"type":"supsub","mode":"math","loc":null,
		 "base":{"type":"mathord","mode":"math","loc":null,"text":"r"},
		 "sup":{"type":"textord","mode":"math","loc":null,"text":"2"},
		 "sub":null}
	]`)

	report, err := schema.ValidateKaTeX(doc)
	require.NoError(t, err)
	assert.True(t, report.Valid(), report.Issues)
	assert.Equal(t, 5, report.Nodes)
}

func TestValidateKaTeXInvalid(t *testing.T) {
	t.Parallel()

	doc := decodeJSON(t, `{"type":"atom","mode":"math","loc":null,"text":"="}`)

	report, err := schema.ValidateKaTeX(doc)
	require.NoError(t, err)
	assert.False(t, report.Valid())
	assert.Less(t, report.Compliance, 100)
}

func TestValidateKaTeXUnknownType(t *testing.T) {
	t.Parallel()

	doc := decodeJSON(t, `{"type":"hologram","mode":"math","loc":null}`)

	report, err := schema.ValidateKaTeX(doc)
	require.NoError(t, err)
	require.False(t, report.Valid())

	var actuals []string
	for _, issue := range report.Issues {
		actuals = append(actuals, issue.Actual)
	}

	assert.Contains(t, actuals, "hologram")
}

func TestCountNodes(t *testing.T) {
	t.Parallel()

	doc := decodeYAML(t, `
kind: sequence
children: [a, {kind: text, text: b}]
`)
	assert.Equal(t, 3, schema.CountNodes(doc))
}
