package render

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// DigestSink forwards directives to another sink while hashing them
// The digest covers every directive since the last Clear, so identical state yields identical digests
type DigestSink struct {
	next   Sink
	hash   *xxhash.Digest
	last   uint64
	numBuf []byte
}

// NewDigestSink wraps next
func NewDigestSink(next Sink) *DigestSink {
	return &DigestSink{
		next:   next,
		hash:   xxhash.New(),
		numBuf: make([]byte, 0, 24),
	}
}

func (d *DigestSink) Clear() {
	d.hash.Reset()
	d.hash.WriteString("C")
	d.next.Clear()
}

func (d *DigestSink) Print(x, y int, text string) {
	d.writePoint('P', x, y)
	d.hash.WriteString(text)
	d.next.Print(x, y, text)
}

func (d *DigestSink) ShowCursor(x, y int) {
	d.writePoint('K', x, y)
	d.next.ShowCursor(x, y)
}

// Flush seals the frame digest and flushes the wrapped sink
func (d *DigestSink) Flush() error {
	d.last = d.hash.Sum64()
	return d.next.Flush()
}

// Last returns the digest of the last flushed frame
func (d *DigestSink) Last() uint64 {
	return d.last
}

func (d *DigestSink) writePoint(op byte, x, y int) {
	b := append(d.numBuf[:0], op)
	b = strconv.AppendInt(b, int64(x), 10)
	b = append(b, ',')
	b = strconv.AppendInt(b, int64(y), 10)
	b = append(b, ':')
	d.hash.Write(b)
	d.numBuf = b
}
