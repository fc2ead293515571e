// Package dummy provides net.Conn doubles for driving the connection loop in
// tests without sockets.
package dummy

import (
	"io"
	"net"
	"time"
)

// Conn replays the scripted input on reads and accumulates everything
// written. Reads past the script report io.EOF, which is exactly what a
// cleanly closed socket does.
type Conn struct {
	input   []byte
	pos     int
	Written []byte
	nop     bool
}

// NewConn returns a connection that serves the passed bytes.
func NewConn(input []byte) *Conn {
	return &Conn{input: input}
}

// Nop makes the connection discard writes.
func (c *Conn) Nop() *Conn {
	c.nop = true
	return c
}

func (c *Conn) Read(b []byte) (n int, err error) {
	if c.pos >= len(c.input) {
		return 0, io.EOF
	}

	n = copy(b, c.input[c.pos:])
	c.pos += n

	return n, nil
}

func (c *Conn) Write(b []byte) (n int, err error) {
	if !c.nop {
		c.Written = append(c.Written, b...)
	}

	return len(b), nil
}

func (c *Conn) Close() error {
	return nil
}

func (c *Conn) LocalAddr() net.Addr {
	return nil
}

func (c *Conn) RemoteAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 1337}
}

func (c *Conn) SetDeadline(t time.Time) error {
	return nil
}

func (c *Conn) SetReadDeadline(t time.Time) error {
	return nil
}

func (c *Conn) SetWriteDeadline(t time.Time) error {
	return nil
}
