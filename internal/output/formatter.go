// Package output renders classification results in the supported
// output formats.
package output

import (
	"fmt"
	"io"

	"github.com/sgl-umons/rabbit/internal/model"
)

// Format represents the output format
type Format string

const (
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

// Formatter defines the interface for output formatters
type Formatter interface {
	Format(results []model.ContributorResult, w io.Writer) error
}

// NewFormatter creates a formatter for the specified format.
func NewFormatter(format Format) (Formatter, error) {
	switch format {
	case FormatCSV, "":
		return &CSVFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{Pretty: true}, nil
	case FormatTable:
		return &TableFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (expected csv, json, or table)", format)
	}
}
