package response

import (
	"fmt"
	"io"

	"github.com/nhdewitt/http-from-tcp/internal/headers"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type writerState int

const (
	StateWritingStatusLine writerState = iota
	StateWritingHeaders
	StateWritingBody
	StateDone
)

type Writer struct {
	writer io.Writer
	state  writerState
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{
		writer: w,
		state:  StateWritingStatusLine,
	}
}

func (w *Writer) WriteStatusLine(statusCode StatusCode) error {
	if w.state != StateWritingStatusLine {
		return fmt.Errorf("writer state out-of-order")
	}

	reason, err := statusCode.reason()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w.writer, "HTTP/1.1 %d %s\r\n", statusCode, reason); err != nil {
		return fmt.Errorf("error writing status line: %w", err)
	}

	w.state = StateWritingHeaders
	return nil
}

// WriteHeaders writes each field in order with its name title-cased, then the
// blank line that ends the header block.
func (w *Writer) WriteHeaders(h headers.Fields) error {
	if w.state != StateWritingHeaders {
		return fmt.Errorf("writer state out-of-order")
	}

	// A Caser is stateful and must not be shared across connections.
	caser := cases.Title(language.English)
	for _, f := range h {
		if _, err := io.WriteString(w.writer, caser.String(f.Name)+": "+f.Value+"\r\n"); err != nil {
			return fmt.Errorf("error writing headers: %w", err)
		}
	}
	if _, err := io.WriteString(w.writer, "\r\n"); err != nil {
		return fmt.Errorf("error writing headers: %w", err)
	}

	w.state = StateWritingBody
	return nil
}

func (w *Writer) WriteBody(p []byte) (int, error) {
	if w.state != StateWritingBody {
		return 0, fmt.Errorf("writer state out-of-order")
	}

	w.state = StateDone
	return w.writer.Write(p)
}

// WriteResponse drives the writer through every state for resp.
func (w *Writer) WriteResponse(resp Response) error {
	if err := w.WriteStatusLine(resp.Status()); err != nil {
		return err
	}
	if err := w.WriteHeaders(resp.Headers()); err != nil {
		return err
	}
	body, ok := resp.Body()
	if !ok || resp.Status() != StatusOK {
		w.state = StateDone
		return nil
	}
	if _, err := w.WriteBody(body); err != nil {
		return fmt.Errorf("error writing body: %w", err)
	}
	return nil
}
