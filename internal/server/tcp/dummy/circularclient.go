package dummy

import (
	"io"
	"net"

	"github.com/indigo-web/utils/unreader"
)

// CircularClient replays the pieces it was initialised with, wrapping around
// at the end. Used in tests and benchmarks in place of a live connection.
type CircularClient struct {
	unreader        *unreader.Unreader
	data            [][]byte
	pointer         int
	closed, oneTime bool
}

func NewCircularClient(data ...[]byte) *CircularClient {
	return &CircularClient{
		unreader: new(unreader.Unreader),
		data:     data,
		pointer:  -1,
	}
}

func (c *CircularClient) Read() ([]byte, error) {
	if c.closed {
		return nil, io.EOF
	}

	return c.unreader.PendingOr(func() ([]byte, error) {
		c.pointer++

		if c.pointer == len(c.data) {
			if c.oneTime {
				c.closed = true
				return nil, io.EOF
			}

			c.pointer = 0
		}

		return c.data[c.pointer], nil
	})
}

func (c *CircularClient) ReadFull(buff []byte) error {
	for len(buff) > 0 {
		data, err := c.Read()
		if err != nil {
			return err
		}

		n := copy(buff, data)
		buff = buff[n:]

		if n < len(data) {
			c.Unread(data[n:])
		}
	}

	return nil
}

func (c *CircularClient) Unread(takeback []byte) {
	c.unreader.Unread(takeback)
}

func (*CircularClient) Write([]byte) error {
	return nil
}

func (*CircularClient) Remote() net.Addr {
	return nil
}

func (c *CircularClient) Close() error {
	c.closed = true
	return nil
}

// OneTime makes the client report io.EOF once all pieces are served instead
// of wrapping around.
func (c *CircularClient) OneTime() *CircularClient {
	c.oneTime = true
	return c
}
