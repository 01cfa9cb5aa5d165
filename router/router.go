package router

import (
	"github.com/indigo-web/miniweb/http"
)

// Handler produces a response to a request. It's the unit routes are registered with.
//
// Handlers must not keep the request or the body after returning. Recoverable conditions,
// e.g. a malformed payload, must be reported by returning an error response instead of
// panicking: a panic aborts the whole exchange.
type Handler interface {
	Handle(request *http.Request, body []byte, params http.Params) http.Response
}

// HandlerFunc is an adapter allowing ordinary functions to be used as handlers.
type HandlerFunc func(request *http.Request, body []byte, params http.Params) http.Response

func (h HandlerFunc) Handle(request *http.Request, body []byte, params http.Params) http.Response {
	return h(request, body, params)
}

// Router selects a handler for the request and returns its response. It must be safe to call
// OnRequest concurrently after OnStart returned.
type Router interface {
	// OnStart is called once before serving begins. The router must not change afterwards.
	OnStart() error
	// OnRequest returns the response for the request. The router must always return a
	// response, even if no route matched.
	OnRequest(request *http.Request, body []byte) http.Response
}
