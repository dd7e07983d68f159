package parser

import (
	"bytes"
	"sync"
)

const (
	// readBufferSize is the initial capacity of pooled read buffers, enough
	// for typical layout documents.
	readBufferSize = 4 * 1024
	// maxRetainBuffer is the largest buffer returned to the pool; larger
	// ones are left to the garbage collector.
	maxRetainBuffer = 256 * 1024
)

// readBufferPool manages buffers used to read documents before decoding.
var readBufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, readBufferSize))
	},
}

// acquireReadBuffer gets an empty buffer from the pool.
func acquireReadBuffer() *bytes.Buffer {
	buf, ok := readBufferPool.Get().(*bytes.Buffer)
	if !ok {
		return bytes.NewBuffer(make([]byte, 0, readBufferSize))
	}
	buf.Reset()
	return buf
}

// releaseReadBuffer returns buf to the pool unless it grew too large.
func releaseReadBuffer(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > maxRetainBuffer {
		return
	}
	buf.Reset()
	readBufferPool.Put(buf)
}
