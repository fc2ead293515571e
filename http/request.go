package http

import (
	"net"

	"github.com/ember-web/ember/kv"
	"github.com/indigo-web/utils/strcomp"
)

type (
	Headers = *kv.Storage
	Header  = kv.Pair
)

// Request represents a single parsed HTTP request. It is constructed fresh by
// the parser for every message read off the connection and is not mutated
// afterwards.
type Request struct {
	// Method is the request method token, case-sensitive as received.
	Method string
	// Path is the raw request-target. No URL-decoding is performed.
	Path string
	// Proto is the protocol version token, e.g. "HTTP/1.1".
	Proto string
	// Headers holds non-normalized header pairs in arrival order, duplicates
	// included. Lookup is case-insensitive and yields the first match.
	Headers Headers
	// Body is the message body, present only when a nonzero Content-Length was
	// declared. A declared length of zero leaves it nil, mirroring "no body
	// declared" rather than "empty body present".
	Body []byte
	// Remote holds the peer address. Informational only; there might be
	// proxies in the middle.
	Remote net.Addr
}

func NewRequest(method, path, proto string, headers Headers, body []byte, remote net.Addr) *Request {
	return &Request{
		Method:  method,
		Path:    path,
		Proto:   proto,
		Headers: headers,
		Body:    body,
		Remote:  remote,
	}
}

// Header looks a header up by name, case-insensitively. When duplicates
// exist, the first value wins.
func (r *Request) Header(key string) (value string, found bool) {
	return r.Headers.Get(key)
}

// ConnectionClose reports whether the client asked to tear the connection
// down after this request. Both the header name and the "close" token are
// matched case-insensitively.
func (r *Request) ConnectionClose() bool {
	return strcomp.EqualFold(r.Headers.Value("Connection"), "close")
}
