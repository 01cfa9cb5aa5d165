package http

import (
	"github.com/indigo-web/miniweb/kv"
)

type (
	Headers = *kv.Storage
	// Params maps the names of dynamic path segments to the literal segments they matched.
	Params map[string]string
)

// Request is the head of an HTTP request: everything except the body. It's created by the
// parser once per exchange and must be treated as read-only afterwards.
//
// All the strings are raw bytes of the request, byte per character. Nothing is decoded,
// validated or normalized.
type Request struct {
	// Method is the request method token exactly as sent. Methods are case-sensitive.
	Method string
	// Target is the raw request-target, i.e. path and query together.
	Target string
	// Path is the part of the Target before the first '?'. It never contains '?'.
	Path string
	// Query is everything after the first '?' of the Target, including any further '?'.
	// Empty if HasQuery is false.
	Query string
	// HasQuery tells whether the Target contained a '?' at all. It differentiates an
	// absent query from an empty one ("/path" vs "/path?").
	HasQuery bool
	// Protocol is the third token of the request line, e.g. HTTP/1.1.
	Protocol string
	// Headers hold header pairs in the order of arrival. Lookups are case-insensitive and
	// the first occurrence of a repeated header wins.
	Headers Headers
}

// ContentType returns the value of the Content-Type header, if any.
func (r *Request) ContentType() string {
	return r.Headers.Value("Content-Type")
}
