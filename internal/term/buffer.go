package term

import "fmt"

// DefaultBufferLimit bounds the session output buffer between flushes.
const DefaultBufferLimit = 1 << 20

// outputBuffer is the append-only byte buffer drivers write into.
// Exceeding the limit records a sticky resource-exhaustion error and
// drops the write rather than silently growing without bound; the
// error surfaces on the next Flush.
type outputBuffer struct {
	data  []byte
	limit int
	err   error
}

func (b *outputBuffer) Write(p []byte) {
	if b.err != nil {
		return
	}
	if b.limit > 0 && len(b.data)+len(p) > b.limit {
		b.err = fmt.Errorf("%w (limit %d)", ErrOutputOverflow, b.limit)
		return
	}
	b.data = append(b.data, p...)
}

func (b *outputBuffer) WriteString(s string) {
	if b.err != nil {
		return
	}
	if b.limit > 0 && len(b.data)+len(s) > b.limit {
		b.err = fmt.Errorf("%w (limit %d)", ErrOutputOverflow, b.limit)
		return
	}
	b.data = append(b.data, s...)
}

func (b *outputBuffer) len() int { return len(b.data) }

// takeErr returns and clears the sticky error, so one overflow does
// not poison the session after the caller has been told.
func (b *outputBuffer) takeErr() error {
	err := b.err
	b.err = nil
	return err
}

func (b *outputBuffer) bytes() []byte { return b.data }

func (b *outputBuffer) reset() { b.data = b.data[:0] }
