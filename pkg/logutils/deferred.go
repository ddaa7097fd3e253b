package logutils

import (
	"bytes"
	"io"
	"sync"

	"github.com/rs/zerolog"
)

// DeferredWriter holds log output in memory until Flush is called. Safe for
// concurrent use.
type DeferredWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (d *DeferredWriter) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buf.Write(p)
}

// Flush writes the held output to w and empties the buffer.
func (d *DeferredWriter) Flush(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.buf.Len() == 0 {
		return nil
	}

	_, err := d.buf.WriteTo(w)
	return err
}

// Defer returns a copy of logger that writes into a DeferredWriter. Level
// and hooks carry over.
func Defer(logger zerolog.Logger) (zerolog.Logger, *DeferredWriter) {
	d := &DeferredWriter{}
	return logger.Output(d), d
}
