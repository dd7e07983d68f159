package wrap

import "sync"

// Buffers larger than this are dropped instead of pooled so that one huge
// paragraph does not pin memory for the lifetime of the process.
const maxRetainBuffer = 8192

var bufferPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, 0, 256)
		return &buf
	},
}

// acquireBuffer returns an empty byte slice with at least size capacity.
func acquireBuffer(size int) []byte {
	bufPtr := bufferPool.Get().(*[]byte)
	buf := (*bufPtr)[:0]
	if cap(buf) < size {
		buf = make([]byte, 0, size)
	}
	return buf
}

// releaseBuffer returns buf to the pool.
func releaseBuffer(buf []byte) {
	if buf == nil || cap(buf) > maxRetainBuffer {
		return
	}
	buf = buf[:0]
	bufferPool.Put(&buf)
}
