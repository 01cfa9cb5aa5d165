package transport

import (
	"net"

	"github.com/indigo-web/miniweb/config"
)

// Transport accepts connections and hands each of them over to the callback.
type Transport interface {
	Bind(addr string) error
	Listen(cfg config.NET, cb func(conn net.Conn)) error
	Addr() net.Addr
	Stop()
	Close()
	Wait()
}
