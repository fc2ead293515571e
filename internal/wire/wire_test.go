package wire

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadLine(t *testing.T) {
	t.Run("crlf terminated", func(t *testing.T) {
		r := NewReader(strings.NewReader("GET / HTTP/1.1\r\nHost: a\r\n"), 64)

		line, err := r.ReadLine()
		require.NoError(t, err)
		require.Equal(t, "GET / HTTP/1.1", line)

		line, err = r.ReadLine()
		require.NoError(t, err)
		require.Equal(t, "Host: a", line)
	})

	t.Run("bare lf terminated", func(t *testing.T) {
		r := NewReader(strings.NewReader("first\nsecond\n"), 64)

		line, err := r.ReadLine()
		require.NoError(t, err)
		require.Equal(t, "first", line)

		line, err = r.ReadLine()
		require.NoError(t, err)
		require.Equal(t, "second", line)
	})

	t.Run("eof with no data", func(t *testing.T) {
		r := NewReader(strings.NewReader(""), 64)

		_, err := r.ReadLine()
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("final unterminated line", func(t *testing.T) {
		r := NewReader(strings.NewReader("tail"), 64)

		line, err := r.ReadLine()
		require.NoError(t, err)
		require.Equal(t, "tail", line)

		_, err = r.ReadLine()
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("empty line", func(t *testing.T) {
		r := NewReader(strings.NewReader("\r\nrest"), 64)

		line, err := r.ReadLine()
		require.NoError(t, err)
		require.Empty(t, line)
	})
}

func TestReadFull(t *testing.T) {
	t.Run("exact count across the line boundary", func(t *testing.T) {
		r := NewReader(strings.NewReader("head\r\nbody-bytes"), 64)

		_, err := r.ReadLine()
		require.NoError(t, err)

		buff := make([]byte, 10)
		require.NoError(t, r.ReadFull(buff))
		require.Equal(t, "body-bytes", string(buff))
	})

	t.Run("premature close", func(t *testing.T) {
		r := NewReader(strings.NewReader("abc"), 64)

		buff := make([]byte, 10)
		require.ErrorIs(t, r.ReadFull(buff), io.ErrUnexpectedEOF)
	})
}

func TestWriter(t *testing.T) {
	underlying := new(bytes.Buffer)
	w := NewWriter(underlying, 64)

	n, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)
	// nothing reaches the destination until flushed
	require.Zero(t, underlying.Len())

	require.NoError(t, w.Flush())
	require.Equal(t, "hello", underlying.String())
}
