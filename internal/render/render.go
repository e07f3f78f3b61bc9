// Package render formats parse results as text, JSON or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/findpay/foundation/core/error"
	"github.com/msto63/findpay/internal/command"
	"github.com/msto63/findpay/internal/findpayment"
)

// Format selects the output encoding
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name, case-insensitively
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", mdwerror.Newf("unknown output format: %s", s).
			WithCode(mdwerror.CodeInvalidInput).
			WithDetail("format", s)
	}
}

// Result is the rendered outcome of one parse
type Result struct {
	Line    int    `json:"line,omitempty" yaml:"line,omitempty"`
	Input   string `json:"input" yaml:"input"`
	OK      bool   `json:"ok" yaml:"ok"`
	Command string `json:"command,omitempty" yaml:"command,omitempty"`
	Index   int    `json:"index,omitempty" yaml:"index,omitempty"`
	Filter  string `json:"filter,omitempty" yaml:"filter,omitempty"`
	Value   string `json:"value,omitempty" yaml:"value,omitempty"`
	Code    string `json:"code,omitempty" yaml:"code,omitempty"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`

	// RequestID ties a rejected line to its log entries
	RequestID string `json:"request_id,omitempty" yaml:"request_id,omitempty"`
}

// Summary counts the results of a batch
type Summary struct {
	Total  int `json:"total" yaml:"total"`
	Passed int `json:"passed" yaml:"passed"`
	Failed int `json:"failed" yaml:"failed"`
}

// Add records one result
func (s *Summary) Add(r Result) {
	s.Total++
	if r.OK {
		s.Passed++
	} else {
		s.Failed++
	}
}

// FromRequest builds a result from a findpayment parse
func FromRequest(input string, req findpayment.Request, err error) Result {
	if err != nil {
		return failure(input, err)
	}
	return Result{
		Input:  input,
		OK:     true,
		Index:  req.Index().OneBased(),
		Filter: req.Filter().Kind().String(),
		Value:  req.Filter().Value(),
	}
}

// FromInvocation builds a result from a dispatched command line
func FromInvocation(input string, inv command.Invocation, err error) Result {
	if err != nil {
		return failure(input, err)
	}
	r := FromRequest(input, inv.Request, nil)
	r.Command = inv.Command
	return r
}

func failure(input string, err error) Result {
	r := Result{
		Input:   input,
		Code:    mdwerror.GetCode(err).String(),
		Message: err.Error(),
	}
	if mdwErr, ok := mdwerror.As(err); ok {
		r.RequestID = mdwErr.RequestID()
	}
	return r
}

// Writer encodes results to an output stream
type Writer struct {
	out    io.Writer
	format Format
	yaml   *yaml.Encoder
}

// NewWriter creates a writer for the given format
func NewWriter(out io.Writer, format Format) *Writer {
	w := &Writer{out: out, format: format}
	if format == FormatYAML {
		w.yaml = yaml.NewEncoder(out)
		w.yaml.SetIndent(2)
	}
	return w
}

// Write encodes one result. JSON results are one object per line; YAML
// results are separate documents.
func (w *Writer) Write(r Result) error {
	switch w.format {
	case FormatJSON:
		return json.NewEncoder(w.out).Encode(r)
	case FormatYAML:
		return w.yaml.Encode(r)
	default:
		_, err := io.WriteString(w.out, Text(r))
		return err
	}
}

// WriteSummary encodes the batch summary
func (w *Writer) WriteSummary(s Summary) error {
	wrapped := struct {
		Summary Summary `json:"summary" yaml:"summary"`
	}{s}

	switch w.format {
	case FormatJSON:
		return json.NewEncoder(w.out).Encode(wrapped)
	case FormatYAML:
		return w.yaml.Encode(wrapped)
	default:
		_, err := fmt.Fprintf(w.out, "%d checked, %d ok, %d failed\n", s.Total, s.Passed, s.Failed)
		return err
	}
}

// Close flushes buffered output
func (w *Writer) Close() error {
	if w.yaml != nil {
		return w.yaml.Close()
	}
	return nil
}

// Text renders a result as the human-readable line used by the text format.
// Continuation lines of multi-line messages are indented.
func Text(r Result) string {
	input := r.Input
	if r.Line > 0 {
		input = fmt.Sprintf("%d: %s", r.Line, r.Input)
	}
	if r.OK {
		return fmt.Sprintf("OK   %s -> index=%d %s=%s\n", input, r.Index, r.Filter, r.Value)
	}
	msg := strings.ReplaceAll(strings.TrimRight(r.Message, "\n "), "\n", "\n     ")
	return fmt.Sprintf("ERR  %s -> %s: %s\n", input, r.Code, msg)
}
