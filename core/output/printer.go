package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// Printer writes snippet results in the configured format.
type Printer struct {
	format string
}

// NewPrinter creates a printer for the given configuration.
func NewPrinter(cfg Config) (*Printer, error) {
	if !cfg.IsValidFormat() {
		return nil, fmt.Errorf("unsupported output format %q", cfg.Format)
	}
	return &Printer{format: cfg.Format}, nil
}

// Print writes a single labelled result.
// Text output is "label: value", JSON output is {"label": value}.
func (p *Printer) Print(w io.Writer, label string, v any) error {
	if p.format == FormatJSON {
		data, err := json.Marshal(map[string]any{label: v})
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", label, err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	_, err := fmt.Fprintf(w, "%s: %v\n", label, v)
	return err
}
