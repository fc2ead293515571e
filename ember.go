// Package ember is a minimal HTTP/1.1 server core: it parses requests
// straight off the socket, routes them across a small fixed set of handlers
// and serializes replies back, supporting keep-alive connections and
// streamed file transfer.
package ember

import (
	"log"
	"net"
	"sync/atomic"

	"github.com/ember-web/ember/config"
	"github.com/ember-web/ember/http/status"
	httpserver "github.com/ember-web/ember/internal/server/http"
	"github.com/ember-web/ember/internal/server/tcp"
	"github.com/ember-web/ember/internal/transport/http1"
	"github.com/ember-web/ember/internal/wire"
	"github.com/ember-web/ember/router"
)

// App glues the listener, the per-connection machinery and the lifecycle
// hooks together.
type App struct {
	addr         string
	cfg          *config.Config
	hooks        hooks
	errCh        chan error
	failSilently atomic.Bool
}

type hooks struct {
	OnStart, OnStop func()
}

// New returns a new App instance bound (at Serve time) to the given address.
func New(addr string) *App {
	return &App{
		addr:  addr,
		cfg:   config.Default(),
		errCh: make(chan error, 1),
	}
}

// Tune replaces default settings. Zero-valued fields are backfilled with
// defaults.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = config.Fill(cfg)
	return a
}

// NotifyOnStart calls the callback at the moment the listener is up. It
// isn't strongly guaranteed that connections are accepted immediately.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback when the server is down. At that moment no
// new connections are accepted anymore.
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Serve binds the listener and serves files from dir under /files/ until
// Stop or GracefulStop is called, or the listener dies. The dir is captured
// once here and stays immutable for the process lifetime.
func (a *App) Serve(dir string) error {
	sock, err := net.Listen("tcp", a.addr)
	if err != nil {
		return err
	}

	a.cfg.FS.Dir = dir
	server := tcp.NewServer(sock, a.newConnCallback())

	go func() {
		err := server.Start()

		if a.failSilently.Swap(true) {
			return
		}

		a.errCh <- err
	}()

	callIfNotNil(a.hooks.OnStart)
	err = <-a.errCh
	a.failSilently.Store(true)

	if err == status.ErrGracefulShutdown {
		// stop listening to new clients and process all the old ones till the end
		_ = server.GracefulShutdown()
	}

	_ = server.Stop()
	callIfNotNil(a.hooks.OnStop)

	return err
}

// GracefulStop stops accepting new connections, but keeps serving the old
// ones.
//
// NOTE: the call isn't blocking; the server keeps working for a short while
// after the method returns.
func (a *App) GracefulStop() {
	a.errCh <- status.ErrGracefulShutdown
}

// Stop stops the whole application immediately.
//
// NOTE: the call isn't blocking; the server keeps working for a short while
// after the method returns.
func (a *App) Stop() {
	a.errCh <- status.ErrShutdown
}

func (a *App) newConnCallback() tcp.OnConn {
	cfg := a.cfg

	return func(conn net.Conn) {
		reader := wire.NewReader(conn, cfg.NET.ReadBufferSize)
		writer := wire.NewWriter(conn, cfg.NET.WriteBufferSize)
		parser := http1.NewParser(reader, conn.RemoteAddr(), cfg.HTTP.HeadersPrealloc)
		serializer := http1.NewSerializer(
			make([]byte, 0, cfg.HTTP.ResponseBuffSize), cfg.HTTP.FileBuffSize,
		)
		r := router.New(cfg.FS.Dir, serializer, writer, nil)

		if err := httpserver.NewServer(r, parser, serializer, writer).Run(); err != nil {
			log.Printf("%v: closing the connection: %s", conn.RemoteAddr(), err)
		}
	}
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
