package lumen

import (
	"net"

	"github.com/lumen-web/lumen/config"
	"github.com/lumen-web/lumen/http"
	"github.com/lumen-web/lumen/http/status"
	"github.com/lumen-web/lumen/internal/parser/http1"
	serverhttp "github.com/lumen-web/lumen/internal/server/http"
	"github.com/lumen-web/lumen/internal/server/tcp"
	"github.com/lumen-web/lumen/kv"
	"github.com/lumen-web/lumen/transport"
)

// Handler consumes a fully read request. It is invoked exactly once per
// request, for malformed requests too; req.Valid tells the cases apart.
type Handler = serverhttp.Handler

// App ties the acceptor, the per-connection request reader and the user
// handler together.
type App struct {
	addr  string
	cfg   *config.Config
	hooks hooks
	errCh chan error
}

// New returns an App that will listen on addr once Serve is called.
func New(addr string) *App {
	return &App{
		addr:  addr,
		cfg:   config.Default(),
		errCh: make(chan error),
	}
}

// Tune replaces the default config.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = cfg
	return a
}

// NotifyOnStart calls the callback once the listener is up. It isn't strongly
// guaranteed that connections are accepted immediately at that point.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback after the listener is down and all the
// clients have disconnected.
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Serve binds the listener and blocks, dispatching every accepted connection
// to its own goroutine. A nil handler drops requests on the floor.
func (a *App) Serve(handler Handler) error {
	if handler == nil {
		handler = func(*http.Request, transport.Client) {}
	}

	sock, err := net.Listen("tcp", a.addr)
	if err != nil {
		return err
	}

	server := tcp.NewServer(sock, a.newConnCallback(handler))

	return a.run(server)
}

func (a *App) run(server *tcp.Server) error {
	go func() {
		a.errCh <- server.Start()
	}()

	callIfNotNil(a.hooks.OnStart)

	err := <-a.errCh
	switch err {
	case status.ErrGracefulShutdown:
		// stop accepting new clients, serve the old ones till the end
		_ = server.GracefulShutdown()
		<-a.errCh
	case status.ErrShutdown:
		_ = server.Stop()
		<-a.errCh
	}

	callIfNotNil(a.hooks.OnStop)

	return err
}

// GracefulStop stops accepting new connections, but keeps serving the old
// ones.
//
// NOTE: the call isn't blocking, the server keeps working for a while after
// the method returns.
func (a *App) GracefulStop() {
	a.errCh <- status.ErrGracefulShutdown
}

// Stop stops the whole application immediately.
//
// NOTE: the call isn't blocking, the server keeps working for a while after
// the method returns.
func (a *App) Stop() {
	a.errCh <- status.ErrShutdown
}

func (a *App) newConnCallback(handler Handler) func(net.Conn) {
	reader := serverhttp.NewReader(a.cfg, handler)

	return func(conn net.Conn) {
		client := tcp.NewClient(
			conn, a.cfg.NET.ReadTimeout, make([]byte, a.cfg.NET.ReadBufferSize),
		)
		request := http.NewRequest(
			kv.NewPrealloc(a.cfg.Headers.NumberPrealloc),
			kv.NewPrealloc(a.cfg.Form.EntriesPrealloc),
			conn.RemoteAddr(),
		)
		reader.Run(client, request, http1.New(request, a.cfg))
	}
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
