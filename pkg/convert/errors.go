package convert

import (
	"errors"
	"fmt"

	"github.com/Sumatoshi-tech/typkat/pkg/content"
)

// Sentinel errors for fatal conversion failures.
var (
	// ErrUnknownKind is returned when no converter is registered for an element.
	ErrUnknownKind = errors.New("no converter for element kind")
	// ErrUnimplemented is returned for elements and attribute values that have no KaTeX mapping yet.
	ErrUnimplemented = errors.New("conversion not implemented")
	// ErrInvariant is returned when an element does not have the shape its converter requires.
	ErrInvariant = errors.New("conversion invariant violated")
)

// Error is a fatal conversion failure. It names the element that could not be
// converted and carries its debug dump.
type Error struct {
	Err  error
	Kind content.Kind
	Dump string
}

func (e *Error) Error() string {
	if e.Dump == "" {
		return fmt.Sprintf("convert %s: %v", e.Kind, e.Err)
	}

	return fmt.Sprintf("convert %s: %v\n%s", e.Kind, e.Err, e.Dump)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// newError wraps err for elem unless err already is a conversion error, so the
// innermost failing element is the one reported.
func newError(elem content.Elem, err error) error {
	var convErr *Error
	if errors.As(err, &convErr) {
		return err
	}

	return &Error{Err: err, Kind: kindOf(elem), Dump: content.Dump(elem)}
}

func kindOf(elem content.Elem) content.Kind {
	if elem == nil {
		return "<nil>"
	}

	return elem.Kind()
}
