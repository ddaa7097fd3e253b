package logutils

import (
	"bytes"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeferredWriter_HoldsUntilFlush(t *testing.T) {
	d := &DeferredWriter{}

	n, err := d.Write([]byte("hello "))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	_, _ = d.Write([]byte("world"))

	var out bytes.Buffer
	require.NoError(t, d.Flush(&out))
	assert.Equal(t, "hello world", out.String())

	out.Reset()
	require.NoError(t, d.Flush(&out))
	assert.Empty(t, out.String(), "flush empties the buffer")
}

func TestDeferredWriter_ConcurrentWrites(t *testing.T) {
	d := &DeferredWriter{}

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = d.Write([]byte("x"))
		}()
	}
	wg.Wait()

	var out bytes.Buffer
	require.NoError(t, d.Flush(&out))
	assert.Len(t, out.String(), 50)
}

func TestDefer_KeepsLevel(t *testing.T) {
	var sink bytes.Buffer
	base := zerolog.New(&sink).Level(zerolog.WarnLevel)

	logger, d := Defer(base)
	logger.Info().Msg("dropped")
	logger.Warn().Msg("held")

	assert.Empty(t, sink.String())

	var out bytes.Buffer
	require.NoError(t, d.Flush(&out))
	assert.Contains(t, out.String(), "held")
	assert.NotContains(t, out.String(), "dropped")
}
