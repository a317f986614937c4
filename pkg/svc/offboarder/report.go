package offboarder

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/devantler-tech/offboard/pkg/client/argocd"
	"github.com/jedib0t/go-pretty/v6/table"
	"sigs.k8s.io/yaml"
)

// ErrUnknownFormat is returned for an unsupported report format.
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects how a report is rendered.
type Format string

const (
	// FormatTable renders a human-readable table.
	FormatTable Format = "table"
	// FormatYAML renders the report as YAML.
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats.
func Formats() []string {
	return []string{string(FormatTable), string(FormatYAML)}
}

// Report is the ordered record of a run.
type Report struct {
	Application string       `json:"application"`
	Namespace   string       `json:"namespace"`
	DryRun      bool         `json:"dryRun,omitempty"`
	Steps       []StepResult `json:"steps"`
}

func (r *Report) add(result StepResult) {
	r.Steps = append(r.Steps, result)
}

// Failed returns the results with OutcomeFailed.
func (r *Report) Failed() []StepResult {
	var failed []StepResult

	for _, step := range r.Steps {
		if !step.Outcome.Succeeded() {
			failed = append(failed, step)
		}
	}

	return failed
}

// Count returns how many results have the given outcome.
func (r *Report) Count(outcome argocd.Outcome) int {
	count := 0

	for _, step := range r.Steps {
		if step.Outcome == outcome {
			count++
		}
	}

	return count
}

// Render writes the report to w in the given format.
func (r *Report) Render(w io.Writer, format Format) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case FormatYAML:
		data, err = yaml.Marshal(r)
	case FormatTable, "":
		data = r.table()
	default:
		return fmt.Errorf("%w: %q (valid options: table, yaml)", ErrUnknownFormat, format)
	}

	if err != nil {
		return fmt.Errorf("encode report as %s: %w", format, err)
	}

	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

func (r *Report) table() []byte {
	var buf bytes.Buffer

	writer := table.NewWriter()
	writer.SetOutputMirror(&buf)
	writer.AppendHeader(table.Row{"#", "Step", "Target", "Outcome", "Detail"})

	for _, step := range r.Steps {
		writer.AppendRow(table.Row{
			strconv.Itoa(step.Phase), string(step.Step), step.Target, string(step.Outcome), step.Detail,
		})
	}

	writer.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true},
	})

	style := table.StyleLight
	style.Options.DrawBorder = false
	writer.SetStyle(style)
	writer.Render()

	return buf.Bytes()
}
