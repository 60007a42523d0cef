package dummy

import (
	"net"
	"time"
)

// NopConn is a no-op net.Conn. Reads yield nothing, writes are swallowed
// whole. It stands in wherever a test needs a connection but no traffic.
type NopConn struct{}

func NewNopConn() NopConn {
	return NopConn{}
}

func (NopConn) Read([]byte) (int, error) {
	return 0, nil
}

func (NopConn) Write(b []byte) (int, error) {
	return len(b), nil
}

func (NopConn) Close() error                     { return nil }
func (NopConn) LocalAddr() net.Addr              { return nil }
func (NopConn) RemoteAddr() net.Addr             { return nil }
func (NopConn) SetDeadline(time.Time) error      { return nil }
func (NopConn) SetReadDeadline(time.Time) error  { return nil }
func (NopConn) SetWriteDeadline(time.Time) error { return nil }
