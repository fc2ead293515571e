package http1

import (
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"

	"github.com/ember-web/ember/http"
	"github.com/ember-web/ember/http/status"
	"github.com/ember-web/ember/internal/wire"
	"github.com/ember-web/ember/kv"
)

// Parser reads structured requests off a single connection's byte stream. A
// fresh Request is produced per message; nothing is carried across parse
// cycles.
type Parser struct {
	src             *wire.Reader
	remote          net.Addr
	headersPrealloc int
}

func NewParser(src *wire.Reader, remote net.Addr, headersPrealloc int) *Parser {
	return &Parser{
		src:             src,
		remote:          remote,
		headersPrealloc: headersPrealloc,
	}
}

// Parse consumes exactly one request from the stream, leaving it positioned
// at the next one. io.EOF is returned iff the peer closed the connection
// before sending a single byte of the request line; any other error is fatal
// for the connection and is never silently recovered.
func (p *Parser) Parse() (*http.Request, error) {
	line, err := p.src.ReadLine()
	if err != nil {
		// includes the clean-disconnect case: io.EOF with no data read
		return nil, err
	}

	tokens := strings.Fields(line)
	if len(tokens) != 3 {
		return nil, fmt.Errorf("%w: %q", status.ErrBadRequestLine, line)
	}

	method, path, proto := tokens[0], tokens[1], tokens[2]

	headers, err := p.parseHeaders()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBody(headers)
	if err != nil {
		return nil, err
	}

	return http.NewRequest(method, path, proto, headers, body, p.remote), nil
}

func (p *Parser) parseHeaders() (*kv.Storage, error) {
	headers := kv.NewPrealloc(p.headersPrealloc)

	for {
		line, err := p.src.ReadLine()
		switch {
		case err == io.EOF:
			// a stream ending amid the header section counts as an unusual,
			// yet normal end of headers
			return headers, nil
		case err != nil:
			return nil, err
		case len(line) == 0:
			return headers, nil
		}

		key, value, found := strings.Cut(line, ":")
		if !found {
			return nil, fmt.Errorf("%w: %q", status.ErrMalformedHeader, line)
		}

		headers.Add(strings.TrimSpace(key), strings.TrimSpace(value))
	}
}

func (p *Parser) parseBody(headers *kv.Storage) ([]byte, error) {
	value, found := headers.Get("Content-Length")
	if !found {
		return nil, nil
	}

	length, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || length < 0 {
		return nil, fmt.Errorf("%w: %q", status.ErrBadContentLength, value)
	}

	if length == 0 {
		// a declared zero-length body stays "absent", not "empty". No consumer
		// can observe the difference today; keep it that way.
		return nil, nil
	}

	body := make([]byte, length)
	if err := p.src.ReadFull(body); err != nil {
		return nil, fmt.Errorf("%w: %v", status.ErrBodyTruncated, err)
	}

	return body, nil
}
