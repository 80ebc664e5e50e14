package debug

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// Sink is the interface for debug output destinations.
type Sink interface {
	Write(event Event) error
	Flush() error
	Close() error
}

// JSONSink writes events in JSON Lines format.
type JSONSink struct {
	w       *bufio.Writer
	encoder *json.Encoder
}

// NewJSONSink creates a new JSON Lines sink writing to w.
func NewJSONSink(w io.Writer) *JSONSink {
	bw := bufio.NewWriter(w)
	return &JSONSink{
		w:       bw,
		encoder: json.NewEncoder(bw),
	}
}

// Write encodes and writes an event as a JSON line.
func (s *JSONSink) Write(event Event) error {
	return s.encoder.Encode(event)
}

// Flush writes any buffered data to the underlying writer.
func (s *JSONSink) Flush() error {
	return s.w.Flush()
}

// Close flushes the buffer.
func (s *JSONSink) Close() error {
	return s.Flush()
}

// PrettySink writes events in human-readable format.
type PrettySink struct {
	w *bufio.Writer
}

// NewPrettySink creates a new pretty-format sink writing to w.
func NewPrettySink(w io.Writer) *PrettySink {
	return &PrettySink{
		w: bufio.NewWriter(w),
	}
}

// Write formats and writes an event in human-readable format.
func (s *PrettySink) Write(event Event) error {
	fmt.Fprintf(s.w, "[%s] [%s/%s] session=%s\n", event.Timestamp, event.Phase, event.Event, event.SessionID)

	switch d := event.Data.(type) {
	case EncodeStartData:
		fmt.Fprintf(s.w, "  pages: %d, init_bytes: %d\n", d.Pages, d.InitBytes)
	case PageEncodedData:
		s.writePageEncoded(d)
	case EncodeEndData:
		fmt.Fprintf(s.w, "  pages: %d, bytes_written: %d, elapsed_ms: %d\n", d.Pages, d.BytesWritten, d.ElapsedMs)
	case TransitionData:
		fmt.Fprintf(s.w, "  page: %d, row: %d, col: %d\n", d.Page, d.Row, d.Col)
		fmt.Fprintf(s.w, "  style: %s → %s [%s]\n", d.From, d.To, d.Codes)
	case NodeRenderData:
		s.writeNodeRender(d)
	case ClipCollapsedData:
		fmt.Fprintf(s.w, "  kind: %s, depth: %d, children: %d\n", d.Kind, d.Depth, d.Children)
	case CompositionRejectData:
		fmt.Fprintf(s.w, "  reason: %s\n", d.Reason)
		fmt.Fprintf(s.w, "  parent: %dx%d, child: %dx%d at (%d,%d)\n",
			d.Parent[0], d.Parent[1], d.Child[2], d.Child[3], d.Child[0], d.Child[1])
	case TransmitData:
		fmt.Fprintf(s.w, "  bytes: %d, attempts: %d\n", d.Bytes, d.Attempts)
	case StatusData:
		fmt.Fprintf(s.w, "  raw: 0x%02X, status: %s\n", d.Raw, d.Status)
	case ErrorData:
		fmt.Fprintf(s.w, "  %s: %s\n", d.Type, d.Message)
		s.writeMap(d.Context)
	case map[string]interface{}:
		s.writeMap(d)
	case map[string]int64:
		s.writeMapInt64(d)
	default:
		fmt.Fprintf(s.w, "  data: %+v\n", d)
	}

	return nil
}

func (s *PrettySink) writePageEncoded(d PageEncodedData) {
	fmt.Fprintf(s.w, "  index: %d, bytes: %d, toggles: %d\n", d.Index, d.Bytes, d.Toggles)
	fmt.Fprintf(s.w, "  styled_cells: %d, non_empty_rows: %d\n", d.StyledCells, d.NonEmptyRows)
}

func (s *PrettySink) writeNodeRender(d NodeRenderData) {
	fmt.Fprintf(s.w, "  kind: %s, depth: %d\n", d.Kind, d.Depth)
	fmt.Fprintf(s.w, "  rect: %dx%d at (%d,%d)\n", d.Width, d.Height, d.X, d.Y)
	fmt.Fprintf(s.w, "  clip: %dx%d at (%d,%d)\n", d.Clip[2], d.Clip[3], d.Clip[0], d.Clip[1])
}

// writeMap prints entries in key order so pretty traces diff cleanly.
func (s *PrettySink) writeMap(d map[string]interface{}) {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(s.w, "  %s: %v\n", k, d[k])
	}
}

func (s *PrettySink) writeMapInt64(d map[string]int64) {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(s.w, "  %s: %d\n", k, d[k])
	}
}

// Flush writes any buffered data to the underlying writer.
func (s *PrettySink) Flush() error {
	return s.w.Flush()
}

// Close flushes the buffer.
func (s *PrettySink) Close() error {
	return s.Flush()
}
