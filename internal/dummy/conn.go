package dummy

import (
	"io"
	"net"
	"time"
)

var _ net.Conn = new(Conn)

// Conn is a mock connection. Every Read returns at most one of the chunks it was
// initialised with, in order; once they're exhausted, the configured error (io.EOF by
// default) is returned. All the written data is tracked.
type Conn struct {
	chunks  [][]byte
	reads   int
	err     error
	written []byte
	writes  int
	closed  bool
}

func NewConn(chunks ...[]byte) *Conn {
	return &Conn{
		chunks: chunks,
		err:    io.EOF,
	}
}

// NewConnString is the same as NewConn, but takes strings.
func NewConnString(chunks ...string) *Conn {
	bytes := make([][]byte, len(chunks))
	for i, chunk := range chunks {
		bytes[i] = []byte(chunk)
	}

	return NewConn(bytes...)
}

// WithError replaces the error returned after all the chunks were read.
func (c *Conn) WithError(err error) *Conn {
	c.err = err
	return c
}

func (c *Conn) Read(b []byte) (n int, err error) {
	if len(c.chunks) == 0 {
		return 0, c.err
	}

	c.reads++
	n = copy(b, c.chunks[0])
	if n < len(c.chunks[0]) {
		c.chunks[0] = c.chunks[0][n:]
	} else {
		c.chunks = c.chunks[1:]
	}

	return n, nil
}

func (c *Conn) Write(b []byte) (n int, err error) {
	if c.closed {
		return 0, net.ErrClosed
	}

	c.writes++
	c.written = append(c.written, b...)
	return len(b), nil
}

// Reads returns how many reads returned data.
func (c *Conn) Reads() int {
	return c.reads
}

// Writes returns how many times Write was called.
func (c *Conn) Writes() int {
	return c.writes
}

// Written returns all the data written so far.
func (c *Conn) Written() string {
	return string(c.written)
}

// Pending returns the number of bytes that were never read.
func (c *Conn) Pending() (n int) {
	for _, chunk := range c.chunks {
		n += len(chunk)
	}

	return n
}

func (c *Conn) Close() error {
	c.closed = true
	return nil
}

func (c *Conn) Closed() bool {
	return c.closed
}

func (c *Conn) LocalAddr() net.Addr {
	return nil
}

func (c *Conn) RemoteAddr() net.Addr {
	return nil
}

func (c *Conn) SetDeadline(time.Time) error {
	return nil
}

func (c *Conn) SetReadDeadline(time.Time) error {
	return nil
}

func (c *Conn) SetWriteDeadline(time.Time) error {
	return nil
}
