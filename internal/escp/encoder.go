package escp

import (
	"io"
	"time"

	"github.com/ryanlewis/dotgrid/internal/debug"
	"github.com/ryanlewis/dotgrid/internal/grid"
)

// Options configures an encode call.
type Options struct {
	// Debug receives encode events. Nil disables tracing.
	Debug *debug.Session
}

// pageStats summarises one encoded page for tracing.
type pageStats struct {
	toggles      int
	styledCells  int
	nonEmptyRows int
}

// AppendPage appends the body of one page (51 rows, each terminated by
// CR LF, then FF) to dst and returns the extended buffer.
// The initialization sequence is not included.
func AppendPage(dst []byte, page *grid.Store) []byte {
	dst, _ = appendPage(dst, page, 0, nil)
	return dst
}

// AppendDocument appends the complete stream for pages to dst: the
// initialization sequence followed by every page body in order.
// An empty page list yields the initialization sequence only.
func AppendDocument(dst []byte, pages []*grid.Store, opts *Options) []byte {
	var dbg *debug.Session
	if opts != nil {
		dbg = opts.Debug
	}

	var start time.Time
	if dbg != nil {
		start = time.Now()
		dbg.Emit("encode", "Start", debug.EncodeStartData{
			Pages:     len(pages),
			InitBytes: len(Reset) + len(Condensed),
		})
	}

	before := len(dst)
	dst = append(dst, Reset...)
	dst = append(dst, Condensed...)
	for i, page := range pages {
		pageStart := len(dst)
		var stats pageStats
		dst, stats = appendPage(dst, page, i, dbg)
		emitPage(dbg, i, len(dst)-pageStart, stats)
	}

	if dbg != nil {
		dbg.Emit("encode", "End", debug.EncodeEndData{
			Pages:        len(pages),
			BytesWritten: int64(len(dst) - before),
			ElapsedMs:    time.Since(start).Milliseconds(),
		})
	}
	return dst
}

// Encode writes the complete stream for pages to w, one page at a time,
// and returns the number of bytes written.
//
// Encode keeps no state between calls; the same pages may be encoded from
// several goroutines at once.
func Encode(w io.Writer, pages []*grid.Store, opts *Options) (int64, error) {
	var dbg *debug.Session
	if opts != nil {
		dbg = opts.Debug
	}

	var start time.Time
	if dbg != nil {
		start = time.Now()
		dbg.Emit("encode", "Start", debug.EncodeStartData{
			Pages:     len(pages),
			InitBytes: len(Reset) + len(Condensed),
		})
	}

	var written int64
	prologue := Init()
	n, err := w.Write(prologue)
	written += int64(n)
	if err != nil {
		return written, err
	}
	if n != len(prologue) {
		return written, io.ErrShortWrite
	}

	buf := acquirePageBuffer()
	defer releasePageBuffer(buf)

	for i, page := range pages {
		var stats pageStats
		*buf, stats = appendPage((*buf)[:0], page, i, dbg)
		emitPage(dbg, i, len(*buf), stats)

		n, err := w.Write(*buf)
		written += int64(n)
		if err != nil {
			return written, err
		}
		if n != len(*buf) {
			return written, io.ErrShortWrite
		}
	}

	if dbg != nil {
		dbg.Emit("encode", "End", debug.EncodeEndData{
			Pages:        len(pages),
			BytesWritten: written,
			ElapsedMs:    time.Since(start).Milliseconds(),
		})
	}
	return written, nil
}

// appendPage encodes one page. index is used only for tracing.
func appendPage(dst []byte, page *grid.Store, index int, dbg *debug.Session) ([]byte, pageStats) {
	var stats pageStats
	if page == nil {
		page = blank
	}

	var st State
	for y := 0; y < grid.Height; y++ {
		row := page.Row(y)
		occupied := false
		for x := range row {
			c := row[x]
			if !c.IsEmpty() {
				occupied = true
			}
			if c.Style != grid.StyleNone {
				stats.styledCells++
			}

			if dbg != nil && c.Style != st.Style() {
				from := st.Style()
				mark := len(dst)
				dst = st.TransitionTo(dst, c.Style)
				dbg.Emit("encode", "Transition", debug.TransitionData{
					Page:  index,
					Row:   y,
					Col:   x,
					From:  from.String(),
					To:    c.Style.String(),
					Codes: debug.FormatCodes(dst[mark:]),
				})
			} else {
				dst = st.TransitionTo(dst, c.Style)
			}

			dst = append(dst, printable(c.Char))
		}
		// Every row ends with all attributes off.
		dst = st.Reset(dst)
		dst = append(dst, LineEnd...)
		if occupied {
			stats.nonEmptyRows++
		}
	}
	dst = append(dst, PageEnd...)

	stats.toggles = st.Toggles()
	return dst, stats
}

// blank stands in for a nil page.
var blank = grid.New()

// printable maps any byte outside the printable range to the placeholder.
// Cells built through grid.NewCell never need it; it keeps zero-valued
// cells from leaking control bytes into the stream.
func printable(b byte) byte {
	if b < grid.FirstPrintable || b > grid.LastPrintable {
		return grid.Placeholder
	}
	return b
}

func emitPage(dbg *debug.Session, index, n int, stats pageStats) {
	if dbg == nil {
		return
	}
	dbg.Emit("encode", "PageEncoded", debug.PageEncodedData{
		Index:        index,
		Bytes:        n,
		Toggles:      stats.toggles,
		StyledCells:  stats.styledCells,
		NonEmptyRows: stats.nonEmptyRows,
	})
}
