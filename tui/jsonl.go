package tui

import (
	"encoding/json"
	"io"
)

// JSONLPresenter renders output as newline-delimited JSON.
type JSONLPresenter struct {
	w       io.Writer
	encoder *json.Encoder
}

// NewJSONLPresenter creates a new JSONL presenter.
func NewJSONLPresenter(opts PresenterOptions) *JSONLPresenter {
	encoder := json.NewEncoder(opts.Writer)
	// No indentation for JSONL
	return &JSONLPresenter{
		w:       opts.Writer,
		encoder: encoder,
	}
}

// RenderStatus renders the tool status as JSONL.
func (p *JSONLPresenter) RenderStatus(status *StatusView) error {
	return p.encoder.Encode(status)
}

// RenderChecks renders a list of check records as JSONL (one per line).
func (p *JSONLPresenter) RenderChecks(checks []*CheckView) error {
	for _, c := range checks {
		if err := p.encoder.Encode(c); err != nil {
			return err
		}
	}
	return nil
}

// RenderCheckDetail renders full details of a single check as JSONL.
func (p *JSONLPresenter) RenderCheckDetail(check *CheckDetailView) error {
	return p.encoder.Encode(check)
}

// RenderOutputCheck renders an output validation result as JSONL.
func (p *JSONLPresenter) RenderOutputCheck(check *OutputCheckView) error {
	return p.encoder.Encode(check)
}

// RenderStats renders aggregated check statistics as JSONL.
func (p *JSONLPresenter) RenderStats(stats *StatsView) error {
	return p.encoder.Encode(stats)
}

// RenderConfig renders the configuration as JSONL.
func (p *JSONLPresenter) RenderConfig(config *ConfigView) error {
	return p.encoder.Encode(config)
}

// RenderDiff renders a diff view as JSONL.
func (p *JSONLPresenter) RenderDiff(diff *DiffView) error {
	return p.encoder.Encode(diff)
}

// RenderError renders an error message as JSONL.
func (p *JSONLPresenter) RenderError(err error) error {
	output := struct {
		Error string `json:"error"`
	}{
		Error: err.Error(),
	}
	return p.encoder.Encode(output)
}

// RenderMessage renders a simple message as JSONL.
func (p *JSONLPresenter) RenderMessage(message string) error {
	output := struct {
		Message string `json:"message"`
	}{
		Message: message,
	}
	return p.encoder.Encode(output)
}

// Ensure JSONLPresenter implements Presenter
var _ Presenter = (*JSONLPresenter)(nil)
