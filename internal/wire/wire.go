// Package wire provides buffered line- and byte-exact primitives over a
// connection. It carries no HTTP semantics, only I/O.
package wire

import (
	"bufio"
	"io"
	"strings"
)

// Reader wraps a connection into a buffered reader with the two access
// patterns the parser needs: terminated lines and exact byte counts.
type Reader struct {
	src *bufio.Reader
}

func NewReader(src io.Reader, buffsize int) *Reader {
	return &Reader{
		src: bufio.NewReaderSize(src, buffsize),
	}
}

// ReadLine reads a single line, accepting both "\r\n" and a bare "\n" as the
// terminator. The terminator is stripped from the returned value. io.EOF is
// returned only when the stream ended before a single byte was read; a final
// unterminated line is returned as-is with a nil error, and the following
// call reports io.EOF.
func (r *Reader) ReadLine() (string, error) {
	line, err := r.src.ReadString('\n')
	if err != nil && (err != io.EOF || len(line) == 0) {
		return "", err
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return line, nil
}

// ReadFull fills b entirely, recovering short reads via continued reads. A
// stream ending mid-way results in io.ErrUnexpectedEOF.
func (r *Reader) ReadFull(b []byte) error {
	_, err := io.ReadFull(r.src, b)
	return err
}

// Writer is a buffered writer over a connection. Everything written stays
// local until Flush pushes it onto the wire.
type Writer struct {
	dst *bufio.Writer
}

func NewWriter(dst io.Writer, buffsize int) *Writer {
	return &Writer{
		dst: bufio.NewWriterSize(dst, buffsize),
	}
}

func (w *Writer) Write(b []byte) (n int, err error) {
	return w.dst.Write(b)
}

func (w *Writer) Flush() error {
	return w.dst.Flush()
}
