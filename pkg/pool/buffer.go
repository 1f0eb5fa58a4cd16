package pool

import (
	"bytes"
	"sync"
)

// BufferPool recycles the scratch buffers used to frame snapshots.
type BufferPool struct {
	size int       // Initial capacity of each buffer.
	pool sync.Pool // Thread-safe pool of buffers.
}

// Creates a new buffer pool whose buffers start with size bytes of capacity.
func NewBufferPool(size int) *BufferPool {
	if size <= 0 {
		size = 512
	}

	bp := &BufferPool{size: size}
	bp.pool.New = func() any {
		return bytes.NewBuffer(make([]byte, 0, size))
	}
	return bp
}

// Retrieves an empty buffer from the pool.
func (bp *BufferPool) Get() *bytes.Buffer {
	buf := bp.pool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// Returns a buffer to the pool. Callers must not keep references to its
// bytes afterwards.
func (bp *BufferPool) Put(buf *bytes.Buffer) {
	// Buffers that grew past 4x the base size would pin large snapshots in memory.
	if buf == nil || buf.Cap() > bp.size*4 {
		return
	}

	buf.Reset()
	bp.pool.Put(buf)
}
