// Package printer sends encoded dotgrid documents to a dot-matrix printer
// and queries its status.
//
// A Printer wraps any io.ReadWriter: a device file opened with Open, a
// serial port, or an in-memory fake in tests. All operations are
// serialised, so one Printer may be shared between goroutines.
package printer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"
	"syscall"
	"time"

	"github.com/ryanlewis/dotgrid/internal/debug"
	"github.com/ryanlewis/dotgrid/internal/escp"
)

// pollInterval is the pause between reads that return neither data nor error.
const pollInterval = 10 * time.Millisecond

// Option configures a Printer.
type Option func(*options)

type options struct {
	debug *debug.Session
}

// WithDebug traces transmissions and status queries to session.
func WithDebug(session *debug.Session) Option {
	return func(o *options) {
		o.debug = session
	}
}

// Printer is a connection to one device.
type Printer struct {
	mu     sync.Mutex
	rw     io.ReadWriter
	debug  *debug.Session
	closed bool

	// pending holds a status read that outlived its timeout.
	pending chan readResult
}

type readResult struct {
	b   byte
	err error
}

// New returns a Printer that writes to and reads status from rw.
func New(rw io.ReadWriter, opts ...Option) *Printer {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Printer{rw: rw, debug: o.debug}
}

// Open opens the device at path for reading and writing.
//
// A missing path yields ErrDeviceNotFound; a permission failure yields
// ErrPermission with a hint on how to grant access.
func Open(path string, opts ...Option) (*Printer, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("printer: open %s: %w", path, ErrDeviceNotFound)
		case errors.Is(err, fs.ErrPermission):
			return nil, fmt.Errorf("printer: open %s: %w: %s", path, ErrPermission, permissionHint)
		default:
			return nil, fmt.Errorf("printer: open %s: %w", path, err)
		}
	}
	return New(f, opts...), nil
}

// Send writes all of data to the device.
//
// Partial writes are continued and interrupted writes are retried. A write
// that accepts nothing fails with ErrWriteZero. The context is checked
// before every write; a write already in progress is not interrupted.
func (p *Printer) Send(ctx context.Context, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}
	return p.send(ctx, data)
}

func (p *Printer) send(ctx context.Context, data []byte) error {
	total := len(data)
	attempts := 0
	for len(data) > 0 {
		if err := ctx.Err(); err != nil {
			return p.fail("send", err, total-len(data))
		}
		attempts++
		n, err := p.rw.Write(data)
		if n < 0 || n > len(data) {
			n = 0
		}
		data = data[n:]
		switch {
		case err == nil && n == 0:
			return p.fail("send", ErrWriteZero, total-len(data))
		case errors.Is(err, syscall.EINTR):
			continue
		case err != nil:
			return p.fail("send", err, total-len(data))
		}
	}
	if f, ok := p.rw.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return p.fail("flush", err, total)
		}
	}

	p.debug.Emit("transmit", "Send", debug.TransmitData{Bytes: total, Attempts: attempts})
	return nil
}

// Reset sends ESC @, returning the printer to its power-on settings.
func (p *Printer) Reset(ctx context.Context) error {
	return p.Send(ctx, escp.Reset)
}

// QueryStatus sends DLE EOT 1 and waits up to timeout for the one-byte
// answer.
//
// When the device supports read deadlines the read is bounded by them.
// Otherwise the read runs in the background; if it outlives the timeout its
// byte is discarded by the next query.
func (p *Printer) QueryStatus(ctx context.Context, timeout time.Duration) (Status, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return 0, ErrClosed
	}

	p.discardStale()
	if err := p.send(ctx, escp.StatusQuery); err != nil {
		return 0, err
	}

	raw, err := p.readByte(ctx, timeout)
	if err != nil {
		if errors.Is(err, ErrTimeout) {
			err = fmt.Errorf("no status after %v: %w", timeout, ErrTimeout)
		}
		return 0, p.fail("status", err, 0)
	}

	status := DecodeStatus(raw)
	p.debug.Emit("transmit", "Status", debug.StatusData{Raw: int(raw), Status: status.String()})
	return status, nil
}

// Close closes the device if it is an io.Closer. Further operations fail
// with ErrClosed.
func (p *Printer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	if c, ok := p.rw.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

type readDeadliner interface {
	SetReadDeadline(t time.Time) error
}

func (p *Printer) readByte(ctx context.Context, timeout time.Duration) (byte, error) {
	if rd, ok := p.rw.(readDeadliner); ok && p.pending == nil {
		deadline := time.Now().Add(timeout)
		ctxDeadline, bounded := ctx.Deadline()
		bounded = bounded && ctxDeadline.Before(deadline)
		if bounded {
			deadline = ctxDeadline
		}
		if err := rd.SetReadDeadline(deadline); err == nil {
			//nolint:errcheck // clearing the deadline is best effort
			defer rd.SetReadDeadline(time.Time{})
			b, err := readOne(p.rw, deadline)
			if errors.Is(err, os.ErrDeadlineExceeded) {
				if bounded {
					return 0, context.DeadlineExceeded
				}
				return 0, ErrTimeout
			}
			return b, err
		}
	}

	if p.pending == nil {
		ch := make(chan readResult, 1)
		p.pending = ch
		go func(r io.Reader) {
			b, err := readOne(r, time.Time{})
			ch <- readResult{b: b, err: err}
		}(p.rw)
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case res := <-p.pending:
		p.pending = nil
		return res.b, res.err
	case <-timer.C:
		return 0, ErrTimeout
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// discardStale drops the answer of an earlier query that timed out.
func (p *Printer) discardStale() {
	if p.pending == nil {
		return
	}
	select {
	case <-p.pending:
		p.pending = nil
	default:
	}
}

// readOne reads a single byte. Reads that return nothing are polled until
// deadline; a zero deadline polls forever.
func readOne(r io.Reader, deadline time.Time) (byte, error) {
	var buf [1]byte
	for {
		n, err := r.Read(buf[:])
		if n == 1 {
			return buf[0], nil
		}
		switch {
		case errors.Is(err, io.EOF):
			return 0, ErrDisconnected
		case errors.Is(err, syscall.EINTR):
			continue
		case err != nil:
			return 0, err
		}
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			return 0, os.ErrDeadlineExceeded
		}
		time.Sleep(pollInterval)
	}
}

// fail traces err and wraps it for the caller.
func (p *Printer) fail(op string, err error, written int) error {
	p.debug.Emit("transmit", "Error", debug.ErrorData{
		Type:    op,
		Message: err.Error(),
		Context: map[string]interface{}{"written": written},
	})
	return fmt.Errorf("printer: %s: %w", op, err)
}
