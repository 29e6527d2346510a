package output

import (
	"encoding/json"
	"io"

	"github.com/sgl-umons/rabbit/internal/model"
)

// JSONFormatter formats output as JSON, including feature values.
type JSONFormatter struct {
	Pretty bool
}

// Format outputs results as a JSON array.
func (f *JSONFormatter) Format(results []model.ContributorResult, w io.Writer) error {
	encoder := json.NewEncoder(w)
	if f.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(results)
}
