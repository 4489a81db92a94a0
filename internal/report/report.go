package report

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// Printer consumes query result rows and renders them to a writer.
// Row is shaped to match the store's row callback, so a Printer method
// value can be passed straight to Store.Query.
type Printer interface {
	// Row renders one result row
	Row(columns []string, values []string) error

	// Flush completes the output; required for formats that buffer
	Flush() error
}

// NewPrinter returns a Printer for the named format ("text" or "json").
func NewPrinter(format string, w io.Writer) (Printer, error) {
	switch format {
	case "text":
		return NewText(w), nil
	case "json":
		return NewJSON(w), nil
	default:
		return nil, fmt.Errorf("unknown output format: %q", format)
	}
}

// TextPrinter renders each row as one "column = value" line per column
// with a blank line after the row, matching what the downstream reader
// prints for the same queries.
type TextPrinter struct {
	w io.Writer
}

// NewText creates a TextPrinter writing to w.
func NewText(w io.Writer) *TextPrinter {
	return &TextPrinter{w: w}
}

func (p *TextPrinter) Row(columns []string, values []string) error {
	for i, col := range columns {
		if _, err := fmt.Fprintf(p.w, "%s = %s\n", col, values[i]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(p.w)
	return err
}

func (p *TextPrinter) Flush() error {
	return nil
}

// JSONPrinter buffers rows and emits them as a single JSON array of
// column/value objects on Flush.
type JSONPrinter struct {
	w    io.Writer
	rows []jsonRow
}

type jsonRow struct {
	Columns []string `json:"columns"`
	Values  []string `json:"values"`
}

// NewJSON creates a JSONPrinter writing to w.
func NewJSON(w io.Writer) *JSONPrinter {
	return &JSONPrinter{w: w}
}

func (p *JSONPrinter) Row(columns []string, values []string) error {
	// The store reuses its value slice between rows, so copy.
	row := jsonRow{
		Columns: append([]string(nil), columns...),
		Values:  append([]string(nil), values...),
	}
	p.rows = append(p.rows, row)
	return nil
}

func (p *JSONPrinter) Flush() error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p.rows); err != nil {
		return fmt.Errorf("failed to encode rows: %w", err)
	}
	return nil
}
