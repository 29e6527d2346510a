package output

import (
	"fmt"
	"io"

	"github.com/sgl-umons/rabbit/internal/model"
)

// CSVFormatter emits the compact textual form of each result, one per
// line: "contributor,user_type,confidence". Features are never included.
type CSVFormatter struct {
	// Header controls whether a column header line is written first.
	Header bool
}

// Format writes results as CSV lines.
func (f *CSVFormatter) Format(results []model.ContributorResult, w io.Writer) error {
	if f.Header {
		if _, err := fmt.Fprintln(w, "contributor,user_type,confidence"); err != nil {
			return err
		}
	}
	for _, r := range results {
		if _, err := fmt.Fprintln(w, r.String()); err != nil {
			return err
		}
	}
	return nil
}
