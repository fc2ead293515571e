package http1

import (
	"io"
	"log"
	"strconv"

	"github.com/ember-web/ember/http"
	"github.com/ember-web/ember/http/status"
	"github.com/indigo-web/utils/strcomp"
)

const (
	protoHTTP11   = "HTTP/1.1"
	contentLength = "Content-Length: "
)

// minimalFileBuffSize defines the minimal size of the file buffer. In case
// it's less, it'll be clamped to this value and a warning will be printed.
const minimalFileBuffSize = 16

// Serializer renders responses into exact wire bytes. The render buffer is
// reused across responses of a single connection; fileBuff isn't allocated
// until a file is actually streamed, to save memory on connections that
// never touch the file routes.
type Serializer struct {
	buff         []byte
	fileBuff     []byte
	fileBuffSize int
}

func NewSerializer(buff []byte, fileBuffSize int) *Serializer {
	if fileBuffSize < minimalFileBuffSize {
		log.Printf("misconfiguration: file buffer size is set to %d, "+
			"however minimal possible value is %d. Setting it hard to %d\n",
			fileBuffSize, minimalFileBuffSize, minimalFileBuffSize,
		)

		fileBuffSize = minimalFileBuffSize
	}

	return &Serializer{
		buff:         buff[:0],
		fileBuffSize: fileBuffSize,
	}
}

// Write renders the whole response, body included, and pushes it to the
// writer in one piece.
func (s *Serializer) Write(resp *http.Response, w io.Writer) error {
	defer s.clear()

	fields := resp.Reveal()
	s.renderHead(fields)

	if !fields.StatusOnly {
		s.buff = append(s.buff, fields.Body...)
	}

	_, err := w.Write(s.buff)

	return err
}

// WriteHeaders renders the status line, the headers and the terminating blank
// line only. The output is byte-identical to the prefix of Write's output for
// the same response, which is what makes a streamed body indistinguishable
// from a buffered one on the wire.
func (s *Serializer) WriteHeaders(resp *http.Response, w io.Writer) error {
	defer s.clear()

	s.renderHead(resp.Reveal())
	_, err := w.Write(s.buff)

	return err
}

// Stream writes the response head and then copies src onto the wire through a
// bounded buffer, so memory use stays O(buffer size) regardless of how large
// the source is.
func (s *Serializer) Stream(resp *http.Response, src io.Reader, w io.Writer) error {
	if err := s.WriteHeaders(resp, w); err != nil {
		return err
	}

	if s.fileBuff == nil {
		s.fileBuff = make([]byte, s.fileBuffSize)
	}

	for {
		n, err := src.Read(s.fileBuff)
		if n > 0 {
			if _, werr := w.Write(s.fileBuff[:n]); werr != nil {
				return werr
			}
		}

		switch err {
		case nil:
		case io.EOF:
			return nil
		default:
			return err
		}
	}
}

// renderHead renders everything up to and including the blank line separating
// the head from the body.
func (s *Serializer) renderHead(fields *http.Fields) {
	s.renderStatusLine(fields)

	if fields.StatusOnly {
		// the terse form: no headers, no body, regardless of what's set
		s.crlf()
		return
	}

	hasContentLength := false
	for _, header := range fields.Headers {
		if strcomp.EqualFold(header.Key, "Content-Length") {
			hasContentLength = true
		}

		s.renderHeader(header)
	}

	// an explicitly set Content-Length is never duplicated nor overridden
	if !hasContentLength {
		s.renderContentLength(len(fields.Body))
	}

	s.crlf()
}

func (s *Serializer) renderStatusLine(fields *http.Fields) {
	s.buff = append(s.buff, protoHTTP11...)
	s.sp()
	s.buff = strconv.AppendInt(s.buff, int64(fields.Code), 10)
	s.sp()

	text := fields.Status
	if len(text) == 0 {
		text = status.Text(fields.Code)
	}

	s.buff = append(s.buff, text...)
	s.crlf()
}

func (s *Serializer) renderHeader(header http.Header) {
	s.buff = append(s.buff, header.Key...)
	s.buff = append(s.buff, ':', ' ')
	s.buff = append(s.buff, header.Value...)
	s.crlf()
}

func (s *Serializer) renderContentLength(value int) {
	s.buff = append(s.buff, contentLength...)
	s.buff = strconv.AppendInt(s.buff, int64(value), 10)
	s.crlf()
}

func (s *Serializer) sp() {
	s.buff = append(s.buff, ' ')
}

func (s *Serializer) crlf() {
	s.buff = append(s.buff, '\r', '\n')
}

func (s *Serializer) clear() {
	s.buff = s.buff[:0]
}
