package http

import (
	"github.com/ember-web/ember/http/status"
	"github.com/ember-web/ember/kv"
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

// why 7? Inherited gut feeling: a handful of headers is what a response of
// this server realistically carries.
const preallocRespHeaders = 7

// Fields is the raw content of a response, as consumed by the serializer.
type Fields struct {
	Code   status.Code
	Status status.Status
	// Headers keep the caller-controlled insertion order; duplicates are allowed.
	Headers []Header
	Body    []byte
	// StatusOnly makes the serializer emit solely the status line followed by
	// the blank line, ignoring any headers and body set on the response.
	StatusOnly bool
}

// Response is a builder over Fields. It is constructed by a handler, consumed
// exactly once by the serializer and then discarded.
type Response struct {
	fields Fields
}

// NewResponse returns a new Response with the status code set to 200 OK and
// pre-allocated space for headers.
func NewResponse() *Response {
	return &Response{
		fields: Fields{
			Code:    status.OK,
			Headers: make([]Header, 0, preallocRespHeaders),
		},
	}
}

// OK is a shortcut for a 200 text response.
func OK(body string) *Response {
	return NewResponse().
		Header("Content-Type", "text/plain").
		String(body)
}

// NotFound is a shortcut for a plain 404 text response.
func NotFound() *Response {
	return NewResponse().
		Code(status.NotFound).
		Header("Content-Type", "text/plain").
		String("Not Found")
}

// Code sets a response code. The corresponding status text is resolved at
// serialization time unless overridden via Status.
func (r *Response) Code(code status.Code) *Response {
	r.fields.Code = code
	return r
}

// Status sets a custom status text. Clients generally ignore it, so there is
// rarely a reason to call this explicitly.
func (r *Response) Status(s status.Status) *Response {
	r.fields.Status = s
	return r
}

// Header appends header values under a key, keeping the insertion order.
func (r *Response) Header(key string, values ...string) *Response {
	for i := range values {
		r.fields.Headers = append(r.fields.Headers, kv.Pair{
			Key:   key,
			Value: values[i],
		})
	}

	return r
}

// String sets the response's body to the passed string.
func (r *Response) String(body string) *Response {
	return r.Bytes(uf.S2B(body))
}

// Bytes sets the response's body to the passed slice WITHOUT COPYING.
// Changing the slice later will affect the response by itself.
func (r *Response) Bytes(body []byte) *Response {
	r.fields.Body = body
	return r
}

// Write implements io.Writer. It always returns n=len(b) and err=nil.
func (r *Response) Write(b []byte) (n int, err error) {
	r.fields.Body = append(r.fields.Body, b...)
	return len(b), nil
}

// TryJSON marshals a model into the response body and sets the content type
// accordingly.
func (r *Response) TryJSON(model any) (*Response, error) {
	r.fields.Body = r.fields.Body[:0]
	stream := json.ConfigDefault.BorrowStream(r)
	stream.WriteVal(model)
	err := stream.Flush()
	json.ConfigDefault.ReturnStream(stream)

	return r.Header("Content-Type", "application/json"), err
}

// JSON does the same as TryJSON does, except a failure degrades into a plain
// 500 with no body.
func (r *Response) JSON(model any) *Response {
	resp, err := r.TryJSON(model)
	if err != nil {
		return r.Code(status.InternalServerError).StatusOnly()
	}

	return resp
}

// StatusOnly switches the response into the terse form: the status line
// immediately followed by the blank line, no headers and no body.
func (r *Response) StatusOnly() *Response {
	r.fields.StatusOnly = true
	return r
}

// Reveal exposes the raw response fields for the serializer.
func (r *Response) Reveal() *Fields {
	return &r.fields
}
