package miniweb

import (
	"errors"
	"log"
	"net"
	"time"

	"github.com/indigo-web/miniweb/config"
	"github.com/indigo-web/miniweb/http"
	"github.com/indigo-web/miniweb/http/status"
	"github.com/indigo-web/miniweb/internal/protocol/http1"
	"github.com/indigo-web/miniweb/router"
	"github.com/indigo-web/miniweb/router/inbuilt"
	"github.com/indigo-web/miniweb/transport"
)

type Logger interface {
	Printf(fmt string, v ...any)
}

// App accepts connections and serves exactly one exchange on each of them, closing the
// connection afterwards. Connections are served concurrently; the router is shared by all
// of them and is never modified after the start.
type App struct {
	addr      string
	cfg       *config.Config
	logger    Logger
	hooks     hooks
	transport transport.Transport
}

// New returns a new App instance.
func New(addr string) *App {
	return &App{
		addr:      addr,
		cfg:       config.Default(),
		logger:    log.Default(),
		transport: transport.NewTCP(),
	}
}

// Tune replaces default config.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = cfg
	return a
}

// Logger replaces the logger failed exchanges are reported to. Defaults to log.Default().
func (a *App) Logger(logger Logger) *App {
	a.logger = logger
	return a
}

// NotifyOnStart calls the callback at the moment the listener is bound, so it's guaranteed
// that connections can be made.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback after the server is down and all the connections are served.
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Addr returns the bound address. Must be called only after the start.
func (a *App) Addr() net.Addr {
	return a.transport.Addr()
}

// Serve starts the web-application and blocks until it's stopped. If nil is passed instead
// of a router, empty inbuilt will be used.
func (a *App) Serve(r router.Router) error {
	if r == nil {
		r = inbuilt.New()
	}

	if err := r.OnStart(); err != nil {
		return err
	}

	if err := a.transport.Bind(a.addr); err != nil {
		return err
	}

	callIfNotNil(a.hooks.OnStart)
	err := a.transport.Listen(a.cfg.NET, a.newConnCallback(r))
	a.transport.Close()
	a.transport.Wait()
	callIfNotNil(a.hooks.OnStop)

	return err
}

// Stop stops accepting new connections. Already accepted ones are served till the end.
//
// NOTE: the call isn't blocking. Serve returns as soon as the accept loop notices the stop
// and all the connections are served.
func (a *App) Stop() {
	a.transport.Stop()
}

func (a *App) newConnCallback(r router.Router) func(net.Conn) {
	return func(conn net.Conn) {
		if timeout := a.cfg.NET.ReadTimeout; timeout > 0 {
			if err := conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
				a.logger.Printf("miniweb: %s: %s", conn.RemoteAddr(), err)
				return
			}
		}

		err := http1.Serve(a.cfg, conn, r)
		if err == nil {
			return
		}

		a.logger.Printf("miniweb: %s: exchange failed: %s", conn.RemoteAddr(), err)

		var httpErr status.HTTPError
		if a.cfg.Errors.Respond && errors.As(err, &httpErr) {
			// the exchange is already failed, so nobody cares whether the write succeeds
			_ = http1.WriteResponse(a.cfg, conn, http.Error(generic(httpErr)))
		}
	}
}

// generic replaces the code of the error by 400 Bad Request or 500 Internal Server Error
// if the code has no reason phrase of its own. The message is kept.
func generic(err status.HTTPError) status.HTTPError {
	if _, known := status.Text(err.Code); known {
		return err
	}

	if err.Code >= 400 && err.Code < 500 {
		err.Code = status.BadRequest
	} else {
		err.Code = status.InternalServerError
	}

	return err
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
