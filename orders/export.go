package orders

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/andareed/siftly-grid/grid"
)

// ExportCSV writes list to path with one column per order property.
func ExportCSV(path string, list []*OrderInfo) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open export file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, list); err != nil {
		return err
	}
	return f.Close()
}

// WriteCSV writes the header and one row per order. Values use the grid's
// display formatting, so ReadCSV reads them back.
func WriteCSV(w io.Writer, list []*OrderInfo) error {
	cw := csv.NewWriter(w)
	cols := Columns(nil)

	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = c.Name
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for n, o := range list {
		out := make([]string, len(cols))
		for i, c := range cols {
			out[i] = grid.FormatValue(o.Value(c.Name))
		}
		if err := cw.Write(out); err != nil {
			return fmt.Errorf("write row %d: %w", n, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
