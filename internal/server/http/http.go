// Package http drives a single connection: parse, dispatch, serialize,
// repeat, until a close condition.
package http

import (
	"errors"
	"io"

	"github.com/ember-web/ember/http"
	"github.com/ember-web/ember/internal/transport/http1"
	"github.com/ember-web/ember/internal/wire"
	"github.com/ember-web/ember/router"
)

type Server struct {
	router     *router.Router
	parser     *http1.Parser
	serializer *http1.Serializer
	writer     *wire.Writer
}

func NewServer(r *router.Router, parser *http1.Parser, serializer *http1.Serializer, writer *wire.Writer) *Server {
	return &Server{
		router:     r,
		parser:     parser,
		serializer: serializer,
		writer:     writer,
	}
}

// Run serves requests strictly sequentially over one connection until a close
// condition: a clean disconnect, a Connection: close request, a parse failure
// or an I/O failure. A clean close yields nil; everything else surfaces to
// the owning goroutine for logging. No error is ever answered over HTTP and
// none is retried.
func (s *Server) Run() error {
	var (
		req     *http.Request
		verdict router.Verdict
		closing bool
	)

	current := awaitingRequest

	for current != closed {
		switch current {
		case awaitingRequest:
			var err error
			req, err = s.parser.Parse()
			switch {
			case err == nil:
				// decided before dispatch: the handler must not influence
				// whether this is the final request on the connection
				closing = req.ConnectionClose()
				current = dispatching
			case errors.Is(err, io.EOF):
				// the peer simply went away between requests
				current = closed
			default:
				return err
			}
		case dispatching:
			var err error
			verdict, err = s.router.OnRequest(req)
			if err != nil {
				return err
			}

			if verdict.Streamed {
				current = streamed
			} else {
				current = writeResponse
			}
		case writeResponse, streamed:
			if current == writeResponse {
				if err := s.serializer.Write(verdict.Response, s.writer); err != nil {
					return err
				}
			}

			if err := s.writer.Flush(); err != nil {
				return err
			}

			if closing {
				current = closed
			} else {
				current = awaitingRequest
			}
		}
	}

	return nil
}
