// Package export writes plan rows as CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/alexanderramin/prodsched/internal/service"
)

type record interface {
	Record() []string
}

func writeCSV[R record](w io.Writer, header []string, rows []R) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for i, r := range rows {
		if err := cw.Write(r.Record()); err != nil {
			return fmt.Errorf("writing csv row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

// WriteOrdersCSV writes one line per order item in priority order.
func WriteOrdersCSV(w io.Writer, rows []service.OrderRow) error {
	return writeCSV(w, service.OrderHeader, rows)
}

func WritePartsCSV(w io.Writer, rows []service.PartRow) error {
	return writeCSV(w, service.PartHeader, rows)
}
