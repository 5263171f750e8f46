package output

import (
	"encoding/json"
	"io"

	"github.com/repofolio/repofolio/internal/model"
)

// JSONFormatter formats the full analysis record as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format outputs the analysis as JSON
func (f *JSONFormatter) Format(analysis *model.Analysis, w io.Writer) error {
	encoder := json.NewEncoder(w)
	if f.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(analysis)
}
