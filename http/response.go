package http

import (
	"errors"

	"github.com/indigo-web/miniweb/http/mime"
	"github.com/indigo-web/miniweb/http/status"
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

// DefaultContentType is the content type of responses created by NewResponse.
const DefaultContentType = mime.Plain + "; charset=utf-8"

// Fields are the actual contents of a Response.
type Fields struct {
	Code        status.Code
	ContentType mime.MIME
	Body        []byte
}

// Response is an immutable response value. Every builder method returns a modified copy,
// leaving the original intact, so a prepared response can safely be shared between
// handlers. The body slice is never copied nor modified.
type Response struct {
	fields Fields
}

// NewResponse returns a response with code 200 OK, text/plain content type and empty body.
func NewResponse() Response {
	return Response{
		fields: Fields{
			Code:        status.OK,
			ContentType: DefaultContentType,
		},
	}
}

// Code sets the status code.
func (r Response) Code(code status.Code) Response {
	r.fields.Code = code
	return r
}

// ContentType sets the Content-Type header value.
func (r Response) ContentType(value mime.MIME) Response {
	r.fields.ContentType = value
	return r
}

// String sets the response's body to the passed string
func (r Response) String(body string) Response {
	return r.Bytes(uf.S2B(body))
}

// Bytes sets the response's body to passed slice WITHOUT COPYING. The slice must not be
// changed afterwards.
func (r Response) Bytes(body []byte) Response {
	r.fields.Body = body
	return r
}

// TryJSON serializes the model into the body and sets the application/json content type.
func (r Response) TryJSON(model any) (Response, error) {
	body, err := json.ConfigDefault.Marshal(model)
	if err != nil {
		return r, err
	}

	return r.ContentType(mime.JSON).Bytes(body), nil
}

// JSON does the same as TryJSON does, except returned error is being implicitly wrapped
// by Error
func (r Response) JSON(model any) Response {
	resp, err := r.TryJSON(model)
	if err != nil {
		return r.Error(err)
	}

	return resp
}

// Error returns a response describing the error. If an instance of status.HTTPError is
// passed, its code and message are used. Otherwise, it's 500 Internal Server Error. A nil
// error changes nothing.
func (r Response) Error(err error) Response {
	if err == nil {
		return r
	}

	var httpErr status.HTTPError
	if !errors.As(err, &httpErr) {
		httpErr = status.ErrInternalServerError.(status.HTTPError)
	}

	return r.
		Code(httpErr.Code).
		ContentType(DefaultContentType).
		String(httpErr.Message + "\n")
}

// Reveal returns the fields of the response.
func (r Response) Reveal() Fields {
	return r.fields
}

// Error is a shorthand for NewResponse().Error(err).
func Error(err error) Response {
	return NewResponse().Error(err)
}
