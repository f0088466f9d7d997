package convert

import (
	"fmt"
	"log/slog"

	"github.com/Sumatoshi-tech/typkat/pkg/content"
)

// Warning reports an attribute that was dropped because KaTeX cannot
// represent it. The rest of the element still converts.
type Warning struct {
	Kind      content.Kind `json:"kind"`
	Attribute string       `json:"attribute"`
	Message   string       `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Kind, w.Message)
}

// warn records and logs a dropped attribute.
func (conv *conversion) warn(kind content.Kind, attribute, message string) {
	w := Warning{Kind: kind, Attribute: attribute, Message: message}
	conv.warnings = append(conv.warnings, w)

	conv.logger.LogAttrs(conv.ctx, slog.LevelWarn, message,
		slog.String("kind", string(kind)),
		slog.String("attribute", attribute),
	)
}

// unsupported warns that attribute of kind is ignored.
func (conv *conversion) unsupported(kind content.Kind, attribute string) {
	conv.warn(kind, attribute, fmt.Sprintf("%s %s is not supported, ignoring", kind, attribute))
}
