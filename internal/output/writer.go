package output

import (
	"io"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/processing"
)

// ReportWriter is the interface for writing position reports to output.
// Different implementations handle different output formats.
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(r *processing.Report) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer for the configured output format.
func NewWriter(w io.Writer, out *config.OutputConfig) ReportWriter {
	if out != nil && out.Format == config.JSON {
		return NewJSONWriter(w, out)
	}
	return NewTextWriter(w, out)
}

// TextWriter writes reports as plain text.
type TextWriter struct {
	w   io.Writer
	out *config.OutputConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, out *config.OutputConfig) *TextWriter {
	return &TextWriter{w: w, out: out}
}

// WriteReport writes a report immediately.
func (tw *TextWriter) WriteReport(r *processing.Report) error {
	OutputReport(tw.w, r, tw.out)
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	out     *config.OutputConfig
	reports []*processing.Report
	single  bool // If true, write each report immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches reports and writes them as an array on Close().
func NewJSONWriter(w io.Writer, out *config.OutputConfig) *JSONWriter {
	return &JSONWriter{
		w:       w,
		out:     out,
		reports: make([]*processing.Report, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each report immediately.
func NewJSONWriterSingle(w io.Writer, out *config.OutputConfig) *JSONWriter {
	return &JSONWriter{
		w:      w,
		out:    out,
		single: true,
	}
}

// WriteReport buffers a report for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteReport(r *processing.Report) error {
	if jw.single {
		return OutputReportJSON(jw.w, r, jw.out)
	}
	jw.reports = append(jw.reports, r)
	return nil
}

// Flush writes all buffered reports as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.reports) == 0 {
		return nil
	}
	err := OutputReportsJSON(jw.w, jw.reports, jw.out)
	jw.reports = jw.reports[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
