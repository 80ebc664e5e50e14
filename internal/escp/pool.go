package escp

import (
	"sync"

	"github.com/ryanlewis/dotgrid/internal/grid"
)

const (
	// typicalPageBytes is a plain page: 51 rows of 160 characters, CR LF, FF.
	typicalPageBytes = grid.Height*(grid.Width+2) + 1

	// maxRetainPageBuffer drops unusually large buffers instead of pooling
	// them, so one heavily styled document does not pin memory.
	maxRetainPageBuffer = 4 * typicalPageBytes
)

// pageBufferPool holds scratch buffers for encoding one page at a time.
//
// Encoding is safe for concurrent use over the same frozen pages, so each
// call takes its own buffer rather than sharing encoder state.
var pageBufferPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, 0, typicalPageBytes)
		return &buf
	},
}

// acquirePageBuffer returns an empty scratch buffer.
func acquirePageBuffer() *[]byte {
	buf := pageBufferPool.Get().(*[]byte)
	*buf = (*buf)[:0]
	return buf
}

// releasePageBuffer returns buf to the pool unless it has grown too large.
func releasePageBuffer(buf *[]byte) {
	if buf == nil || cap(*buf) > maxRetainPageBuffer {
		return
	}
	pageBufferPool.Put(buf)
}
