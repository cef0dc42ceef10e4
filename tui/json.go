package tui

import (
	"encoding/json"
	"io"
)

// JSONPresenter renders output as JSON.
type JSONPresenter struct {
	w       io.Writer
	encoder *json.Encoder
}

// NewJSONPresenter creates a new JSON presenter.
func NewJSONPresenter(opts PresenterOptions) *JSONPresenter {
	encoder := json.NewEncoder(opts.Writer)
	encoder.SetIndent("", "  ")
	return &JSONPresenter{
		w:       opts.Writer,
		encoder: encoder,
	}
}

// RenderStatus renders the tool status as JSON.
func (p *JSONPresenter) RenderStatus(status *StatusView) error {
	return p.encoder.Encode(status)
}

// RenderChecks renders a list of check records as JSON.
func (p *JSONPresenter) RenderChecks(checks []*CheckView) error {
	return p.encoder.Encode(checks)
}

// RenderCheckDetail renders full details of a single check as JSON.
func (p *JSONPresenter) RenderCheckDetail(check *CheckDetailView) error {
	return p.encoder.Encode(check)
}

// RenderOutputCheck renders an output validation result as JSON.
func (p *JSONPresenter) RenderOutputCheck(check *OutputCheckView) error {
	return p.encoder.Encode(check)
}

// RenderStats renders aggregated check statistics as JSON.
func (p *JSONPresenter) RenderStats(stats *StatsView) error {
	return p.encoder.Encode(stats)
}

// RenderConfig renders the configuration as JSON.
func (p *JSONPresenter) RenderConfig(config *ConfigView) error {
	return p.encoder.Encode(config)
}

// RenderDiff renders a diff view as JSON.
func (p *JSONPresenter) RenderDiff(diff *DiffView) error {
	return p.encoder.Encode(diff)
}

// RenderError renders an error message as JSON.
func (p *JSONPresenter) RenderError(err error) error {
	output := struct {
		Error string `json:"error"`
	}{
		Error: err.Error(),
	}
	return p.encoder.Encode(output)
}

// RenderMessage renders a simple message as JSON.
func (p *JSONPresenter) RenderMessage(message string) error {
	output := struct {
		Message string `json:"message"`
	}{
		Message: message,
	}
	return p.encoder.Encode(output)
}

// Ensure JSONPresenter implements Presenter
var _ Presenter = (*JSONPresenter)(nil)
