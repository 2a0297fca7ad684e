package report

import (
	"io"

	"github.com/go-json-experiment/json"

	"github.com/web-infra-dev/rslint-core/internal/diagnostic"
)

// jsonLabel and jsonDiagnostic are the wire shapes for the JSON reporter —
// kept distinct from diagnostic.Label/Diagnostic so the internal struct
// layout can change without breaking the CI-facing schema.
type jsonLabel struct {
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

type jsonDiagnostic struct {
	RuleID   string      `json:"ruleId"`
	Severity string      `json:"severity"`
	Message  string      `json:"message"`
	Labels   []jsonLabel `json:"labels"`
	Help     string      `json:"help,omitempty"`
}

type jsonFileReport struct {
	FilePath    string           `json:"filePath"`
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
}

// JSON renders diagnostics as a machine-readable array, one object per
// file, for CI consumption.
type JSON struct {
	Out io.Writer
}

func NewJSON(out io.Writer) *JSON { return &JSON{Out: out} }

// Write renders every file's diagnostics as one JSON array.
func (j *JSON) Write(reports map[string][]diagnostic.Diagnostic) error {
	files := make([]jsonFileReport, 0, len(reports))
	for path, diagnostics := range reports {
		entries := make([]jsonDiagnostic, 0, len(diagnostics))
		for _, d := range diagnostics {
			labels := make([]jsonLabel, 0, len(d.Labels))
			for _, l := range d.Labels {
				labels = append(labels, jsonLabel{Start: l.Span.Start, End: l.Span.End})
			}
			entries = append(entries, jsonDiagnostic{
				RuleID:   d.RuleName,
				Severity: d.Severity.String(),
				Message:  d.Message,
				Labels:   labels,
				Help:     d.Help,
			})
		}
		files = append(files, jsonFileReport{FilePath: path, Diagnostics: entries})
	}
	encoded, err := json.Marshal(files)
	if err != nil {
		return err
	}
	_, err = j.Out.Write(encoded)
	return err
}
