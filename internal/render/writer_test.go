package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSink_Write(t *testing.T) {
	t.Run("preserves write order", func(t *testing.T) {
		var out bytes.Buffer
		sink := NewSink(&out)

		for _, chunk := range []string{"3.", "141592653", "589793238"} {
			n, err := sink.WriteString(chunk)
			require.NoError(t, err)
			assert.Equal(t, len(chunk), n)
		}

		require.NoError(t, sink.Close())
		assert.Equal(t, "3.141592653589793238", out.String())
	})

	t.Run("handles many small writes", func(t *testing.T) {
		var out bytes.Buffer
		sink := NewSink(&out)

		var want strings.Builder
		for n := 0; n < 1000; n++ {
			_, err := sink.WriteString("123456789")
			require.NoError(t, err)
			want.WriteString("123456789")
		}

		require.NoError(t, sink.Close())
		assert.Equal(t, want.String(), out.String())
	})

	t.Run("rejects writes after close", func(t *testing.T) {
		sink := NewSink(&bytes.Buffer{})
		require.NoError(t, sink.Close())

		_, err := sink.Write([]byte("late"))
		assert.ErrorIs(t, err, ErrSinkClosed)
	})
}

func TestSink_Flush(t *testing.T) {
	t.Run("makes queued writes visible", func(t *testing.T) {
		var out bytes.Buffer
		sink := NewSink(&out)
		defer sink.Close()

		_, err := sink.WriteString("141592653")
		require.NoError(t, err)

		require.NoError(t, sink.Flush())
		assert.Equal(t, "141592653", out.String())
	})

	t.Run("errors after close", func(t *testing.T) {
		sink := NewSink(&bytes.Buffer{})
		require.NoError(t, sink.Close())

		assert.ErrorIs(t, sink.Flush(), ErrSinkClosed)
	})
}

func TestSink_Close(t *testing.T) {
	t.Run("is idempotent", func(t *testing.T) {
		sink := NewSink(&bytes.Buffer{})

		require.NoError(t, sink.Close())
		assert.NoError(t, sink.Close())
	})
}
