package report

import (
	"io"

	"github.com/goccy/go-json"
	"go.trai.ch/mlpot/internal/core/domain"
	"go.trai.ch/mlpot/internal/core/ports"
)

var _ ports.Reporter = (*JSON)(nil)

// JSON writes the results as an indented JSON array.
type JSON struct {
	w io.Writer
}

// NewJSON creates a JSON reporter.
func NewJSON(w io.Writer) *JSON {
	return &JSON{w: w}
}

type record struct {
	Source string `json:"source"`
	Frame  int    `json:"frame"`
	Atoms  int    `json:"atoms"`
	Cached bool   `json:"cached"`
	domain.Results
}

// Report encodes every result, including an empty list as [].
func (j *JSON) Report(results []ports.FrameResult) error {
	records := make([]record, len(results))
	for i, res := range results {
		records[i] = record{
			Source:  res.Source,
			Frame:   res.Frame,
			Atoms:   res.Atoms,
			Cached:  res.Cached,
			Results: res.Results,
		}
	}

	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
