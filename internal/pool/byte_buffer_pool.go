package pool

import "sync"

const (
	// HashBufferDefaultSize is the initial capacity of buffers from the hash pool.
	HashBufferDefaultSize = 1024 * 4 // 4KiB
	// HashBufferMaxThreshold is the largest capacity the hash pool retains.
	HashBufferMaxThreshold = 1024 * 64 // 64KiB
)

// ByteBuffer is a reusable byte slice.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but keeps its capacity.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Full reports whether fewer than n bytes fit without growing.
func (bb *ByteBuffer) Full(n int) bool {
	return bb.Cap()-bb.Len() < n
}

// ByteBufferPool is a sync.Pool of ByteBuffers.
//
// Buffers that grew beyond maxThreshold are dropped on Put instead of being retained.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose new buffers have capacity defaultSize.
// A maxThreshold of zero retains buffers of any size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && bb.Cap() > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var hashDefaultPool = NewByteBufferPool(HashBufferDefaultSize, HashBufferMaxThreshold)

// GetHashBuffer retrieves a ByteBuffer from the default hash pool.
func GetHashBuffer() *ByteBuffer {
	return hashDefaultPool.Get()
}

// PutHashBuffer returns a ByteBuffer to the default hash pool.
func PutHashBuffer(bb *ByteBuffer) {
	hashDefaultPool.Put(bb)
}
