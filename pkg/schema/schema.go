// Package schema validates source documents and KaTeX trees against the
// embedded JSON schemas and reports how compliant an invalid document is.
package schema

import (
	"embed"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// FS holds the embedded JSON schemas.
//
//go:embed schemas/*.json
var FS embed.FS

// Schema names.
const (
	Content = "content"
	KaTeX   = "katex"
)

// complianceMax is the maximum compliance percentage.
const complianceMax = 100

// ErrInvalid is returned by Report.Err for documents that do not match their schema.
var ErrInvalid = errors.New("document does not match schema")

// ErrUnknownSchema is returned for schema names other than Content and KaTeX.
var ErrUnknownSchema = errors.New("unknown schema")

// Issue is one schema violation.
type Issue struct {
	Field       string
	Description string
	Actual      string
}

// String renders the issue the way the CLI prints it.
func (i Issue) String() string {
	if i.Actual != "" {
		return fmt.Sprintf("%s: %s (got %q)", i.Field, i.Description, i.Actual)
	}

	return fmt.Sprintf("%s: %s", i.Field, i.Description)
}

// Report is the outcome of validating one document.
type Report struct {
	Schema     string
	Issues     []Issue
	Compliance int
	Nodes      int
}

// Valid reports whether the document matched the schema.
func (r *Report) Valid() bool {
	return len(r.Issues) == 0
}

// Err returns nil for a valid document and an ErrInvalid-wrapping error naming
// the first issue otherwise.
func (r *Report) Err() error {
	if r.Valid() {
		return nil
	}

	return fmt.Errorf("%w: %s (%d issues, %d%% compliant)", ErrInvalid, r.Issues[0], len(r.Issues), r.Compliance)
}

// Load returns the raw bytes of the named schema.
func Load(name string) ([]byte, error) {
	switch name {
	case Content, KaTeX:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSchema, name)
	}

	data, err := FS.ReadFile("schemas/" + name + ".schema.json")
	if err != nil {
		return nil, fmt.Errorf("read embedded schema %s: %w", name, err)
	}

	return data, nil
}

// Validate checks doc, a decoded JSON or YAML value, against the named schema.
// The error is non-nil only when validation itself could not run.
func Validate(name string, doc any) (*Report, error) {
	schemaBytes, err := Load(name)
	if err != nil {
		return nil, err
	}

	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schemaBytes), gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("validate against %s schema: %w", name, err)
	}

	report := &Report{Schema: name, Nodes: CountNodes(doc), Compliance: complianceMax}
	if result.Valid() {
		return report, nil
	}

	for _, resultErr := range result.Errors() {
		report.Issues = append(report.Issues, Issue{
			Field:       resultErr.Field(),
			Description: resultErr.Description(),
			Actual:      actualValue(doc, resultErr.Field()),
		})
	}

	report.Compliance = compliance(report.Nodes, len(report.Issues))

	return report, nil
}

// ValidateContent checks a source document.
func ValidateContent(doc any) (*Report, error) {
	return Validate(Content, doc)
}

// ValidateKaTeX checks a KaTeX parse tree.
func ValidateKaTeX(doc any) (*Report, error) {
	return Validate(KaTeX, doc)
}

func compliance(totalNodes, issues int) int {
	if totalNodes == 0 {
		return 0
	}

	percent := int(float64(totalNodes-issues) / float64(totalNodes) * complianceMax)

	return min(max(percent, 0), complianceMax)
}

// CountNodes counts the objects in a decoded document. Strings inside arrays
// count too, since source documents use them as shorthand text elements.
func CountNodes(data any) int {
	switch typed := data.(type) {
	case map[string]any:
		count := 1
		for _, value := range typed {
			count += countChildren(value)
		}

		return count
	case []any:
		count := 0
		for _, item := range typed {
			count += CountNodes(item)
		}

		return count
	case string:
		return 1
	default:
		return 0
	}
}

func countChildren(value any) int {
	switch value.(type) {
	case map[string]any, []any:
		return CountNodes(value)
	default:
		return 0
	}
}

// actualValue resolves a gojsonschema field path such as "(root).children.0.kind".
func actualValue(data any, fieldPath string) string {
	current := data

	for part := range strings.SplitSeq(strings.TrimPrefix(fieldPath, "(root)"), ".") {
		if part == "" {
			continue
		}

		switch typed := current.(type) {
		case map[string]any:
			value, found := typed[part]
			if !found {
				return ""
			}

			current = value
		case []any:
			idx, err := strconv.Atoi(part)
			if err != nil || idx < 0 || idx >= len(typed) {
				return ""
			}

			current = typed[idx]
		default:
			return ""
		}
	}

	return formatValue(current)
}

func formatValue(value any) string {
	switch typed := value.(type) {
	case string:
		return typed
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case int:
		return strconv.Itoa(typed)
	case bool:
		return strconv.FormatBool(typed)
	case nil, map[string]any, []any:
		return ""
	default:
		return fmt.Sprintf("%v", typed)
	}
}

// Recommendations maps the issues of a report to short, deduplicated hints.
func Recommendations(report *Report) []string {
	var hints []string

	seen := make(map[string]bool)

	for _, issue := range report.Issues {
		hint := classify(report.Schema, issue)
		if hint == "" || seen[hint] {
			continue
		}

		seen[hint] = true

		hints = append(hints, hint)
	}

	return hints
}

func classify(schemaName string, issue Issue) string {
	description := issue.Description

	switch {
	case strings.Contains(issue.Field, "kind") && strings.Contains(description, "must be one of"):
		return "Use a supported element kind such as 'sequence', 'text', 'frac' or 'attach'"
	case strings.Contains(issue.Field, "type") && strings.Contains(description, "must be one of"):
		return "Use KaTeX parse-node types such as 'ordgroup', 'supsub', 'genfrac' or 'array'"
	case strings.Contains(description, "is required"):
		if schemaName == Content {
			return "Every element object needs a 'kind' and the fields its kind requires"
		}

		return "Every KaTeX node needs 'type' and 'mode' and the fields its type requires"
	case strings.Contains(description, "Does not match pattern") || strings.Contains(description, "must be one of"):
		return "Check enumerated values: delimiters, variants, sizes, modes and atom families"
	case strings.Contains(description, "Additional property") || strings.Contains(description, "property name"):
		return "Remove fields that the element kind does not define"
	}

	return ""
}
