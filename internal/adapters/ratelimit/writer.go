// Package ratelimit throttles byte streams with a token bucket.
package ratelimit

import (
	"context"
	"io"

	"golang.org/x/time/rate"
)

// maxBurst caps a single write chunk so slow limits still make steady progress.
const maxBurst = 64 * 1024

// Writer is an io.Writer that blocks to keep throughput under a byte rate.
type Writer struct {
	ctx     context.Context
	w       io.Writer
	limiter *rate.Limiter
	burst   int
}

// NewWriter wraps w so that at most bytesPerSecond bytes are written per second.
// A non-positive rate returns w unchanged.
func NewWriter(ctx context.Context, w io.Writer, bytesPerSecond int) io.Writer {
	if bytesPerSecond <= 0 {
		return w
	}

	burst := min(bytesPerSecond, maxBurst)

	return &Writer{
		ctx:     ctx,
		w:       w,
		limiter: rate.NewLimiter(rate.Limit(bytesPerSecond), burst),
		burst:   burst,
	}
}

// Write writes p in chunks no larger than the limiter's burst.
func (rw *Writer) Write(p []byte) (int, error) {
	written := 0
	for len(p) > 0 {
		chunk := p
		if len(chunk) > rw.burst {
			chunk = chunk[:rw.burst]
		}

		if err := rw.limiter.WaitN(rw.ctx, len(chunk)); err != nil {
			return written, err
		}

		n, err := rw.w.Write(chunk)
		written += n
		if err != nil {
			return written, err
		}
		p = p[n:]
	}
	return written, nil
}
