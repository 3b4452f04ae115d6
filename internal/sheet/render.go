package sheet

import (
	"fmt"
	"io"
	"strings"
)

// RenderedValue is one named CSS value produced from a sheet.
type RenderedValue struct {
	Name   string // Custom-property name without the -- prefix
	Value  string // Rendered CSS value text
	Source string // Sheet file the definition came from
}

// Render builds every value in the sheet, in sorted name order.
func (s *Sheet) Render() ([]RenderedValue, error) {
	out := make([]RenderedValue, 0, len(s.Values))
	for _, name := range s.Names() {
		v, err := s.Values[name].Build()
		if err != nil {
			return nil, fmt.Errorf("value %q in %s: %w", name, s.Source, err)
		}
		out = append(out, RenderedValue{Name: name, Value: v, Source: s.Source})
	}
	return out, nil
}

// WriteDocument renders all sheets as CSS custom-property rules and
// writes them to w, implementing the same deterministic ordering as
// Render. Sheets without their own selector fall back to the given
// default; consecutive sheets sharing a selector still emit separate
// rules, one per source file.
func WriteDocument(w io.Writer, sheets []*Sheet, defaultSelector string) error {
	for i, s := range sheets {
		sel := s.Selector
		if sel == "" {
			sel = defaultSelector
		}

		values, err := s.Render()
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, "%s {\n", sel); err != nil {
			return err
		}
		for _, v := range values {
			if _, err := fmt.Fprintf(w, "  --%s: %s;\n", v.Name, v.Value); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, "}\n"); err != nil {
			return err
		}

		if i < len(sheets)-1 {
			if _, err := fmt.Fprint(w, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// Document renders all sheets to a single CSS string.
func Document(sheets []*Sheet, defaultSelector string) (string, error) {
	var sb strings.Builder
	if err := WriteDocument(&sb, sheets, defaultSelector); err != nil {
		return "", err
	}
	return sb.String(), nil
}
