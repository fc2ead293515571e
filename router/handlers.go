package router

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ember-web/ember/http"
	"github.com/ember-web/ember/http/status"
	"github.com/ember-web/ember/internal/safepath"
	"github.com/ember-web/ember/internal/transport/http1"
)

// Verdict tells the connection loop what is left to do for a request. The
// two cases are explicit, so the loop's write obligation is encoded in the
// type instead of being inferred from control flow.
type Verdict struct {
	// Response is set in the ordinary case and must still be serialized.
	Response *http.Response
	// Streamed reports that the handler already emitted the whole reply onto
	// the wire; the loop must not write anything further for this request.
	Streamed bool
}

func respond(resp *http.Response) Verdict {
	return Verdict{Response: resp}
}

func streamed() Verdict {
	return Verdict{Streamed: true}
}

type Logger interface {
	Printf(fmt string, v ...any)
}

// Router owns the per-connection handler set. It is cheap to construct, so
// every connection gets its own, capturing the connection's serializer and
// writer for the streaming route.
type Router struct {
	dir        string
	serializer *http1.Serializer
	writer     io.Writer
	log        Logger
}

// New returns a Router serving files out of dir. Passing a nil logger falls
// back to log.Default().
func New(dir string, serializer *http1.Serializer, writer io.Writer, logger Logger) *Router {
	if logger == nil {
		logger = log.Default()
	}

	return &Router{
		dir:        dir,
		serializer: serializer,
		writer:     writer,
		log:        logger,
	}
}

// OnRequest dispatches the request to exactly one handler. A non-nil error
// is connection-fatal I/O: once streaming has begun or the filesystem
// misbehaved, a clean HTTP-level error reply is no longer possible.
func (r *Router) OnRequest(req *http.Request) (Verdict, error) {
	r.log.Printf("%s %s from %v", req.Method, req.Path, req.Remote)

	route := Classify(req.Method, req.Path)
	switch route.Kind {
	case Root:
		return respond(http.OK("")), nil
	case Echo:
		// the suffix is echoed byte-for-byte, no decoding, empty included
		return respond(http.OK(route.Arg)), nil
	case UserAgent:
		return r.userAgent(req), nil
	case FileGet:
		return r.fileGet(route.Arg)
	case FilePost:
		return r.filePost(route.Arg, req.Body)
	default:
		return respond(http.NotFound()), nil
	}
}

func (r *Router) userAgent(req *http.Request) Verdict {
	ua, found := req.Header("User-Agent")
	if !found {
		return respond(http.NotFound())
	}

	return respond(http.OK(ua))
}

// fileGet streams the file straight onto the wire, so the response never
// materializes in memory. It therefore returns the streamed verdict instead
// of a Response object.
func (r *Router) fileGet(name string) (Verdict, error) {
	if !safepath.IsSafeSegment(name) {
		return respond(http.NotFound()), nil
	}

	fd, err := os.Open(filepath.Join(r.dir, name))
	if err != nil {
		return respond(http.NotFound()), nil
	}
	defer fd.Close()

	stat, err := fd.Stat()
	if err != nil || !stat.Mode().IsRegular() {
		return respond(http.NotFound()), nil
	}

	resp := http.NewResponse().
		Header("Content-Type", "application/octet-stream").
		Header("Content-Length", strconv.FormatInt(stat.Size(), 10))

	return streamed(), r.serializer.Stream(resp, fd, r.writer)
}

func (r *Router) filePost(name string, body []byte) (Verdict, error) {
	if !safepath.IsSafeSegment(name) {
		return respond(http.NotFound()), nil
	}

	// an absent body writes an empty file; concurrent posts to one name race
	// at the filesystem level, last writer wins
	if err := os.WriteFile(filepath.Join(r.dir, name), body, 0o644); err != nil {
		return Verdict{}, err
	}

	return respond(http.NewResponse().Code(status.Created)), nil
}
