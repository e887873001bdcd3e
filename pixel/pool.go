package pixel

import "sync"

// Pool is a thread-safe pool of scratch buffers grouped by size and format.
//
// Buffers handed out by Get are zeroed. Put returns a buffer for reuse;
// each bucket keeps at most maxPerBucket buffers.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Buffer
	maxSize int
}

type poolKey struct {
	width  int
	height int
	format Format
}

// NewPool creates a pool retaining at most maxPerBucket buffers per
// size/format combination. Zero means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*Buffer),
		maxSize: maxPerBucket,
	}
}

// Get returns a zeroed buffer of the requested shape, reusing one from
// the pool when possible.
func (p *Pool) Get(width, height int, format Format) (*Buffer, error) {
	key := poolKey{width: width, height: height, format: format}

	p.mu.Lock()
	bucket := p.buckets[key]
	if n := len(bucket); n > 0 {
		buf := bucket[n-1]
		p.buckets[key] = bucket[:n-1]
		p.mu.Unlock()
		buf.Clear()
		return buf, nil
	}
	p.mu.Unlock()

	return NewBuffer(width, height, format)
}

// Put returns buf to the pool. Nil buffers and buffers beyond the bucket
// limit are dropped.
func (p *Pool) Put(buf *Buffer) {
	if buf == nil {
		return
	}
	key := poolKey{width: buf.width, height: buf.height, format: buf.format}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.maxSize > 0 && len(p.buckets[key]) >= p.maxSize {
		return
	}
	p.buckets[key] = append(p.buckets[key], buf)
}

// Len returns the total number of pooled buffers.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, b := range p.buckets {
		n += len(b)
	}
	return n
}

var defaultPool = NewPool(8)

// Scratch returns a zeroed buffer from the package-level pool.
func Scratch(width, height int, format Format) (*Buffer, error) {
	return defaultPool.Get(width, height, format)
}

// Release returns a Scratch buffer to the package-level pool.
func Release(buf *Buffer) {
	defaultPool.Put(buf)
}
