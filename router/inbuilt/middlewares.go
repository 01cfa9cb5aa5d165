package inbuilt

import (
	"github.com/indigo-web/miniweb/http"
	"github.com/indigo-web/miniweb/router"
)

// Middleware works like a chain of nested calls, next may be even directly
// handler. A middleware may return its own response without calling next at all.
type Middleware func(next router.Handler, request *http.Request, body []byte, params http.Params) http.Response

// Use adds router-wide middlewares. They are applied to every route, including the
// not found handler, when the router starts. Middlewares passed earlier wrap the later ones.
func (r *Router) Use(middlewares ...Middleware) *Router {
	r.ensureNotFrozen()
	r.middlewares = append(r.middlewares, middlewares...)
	return r
}

// compose wraps the handler into the middlewares, so the first one is the outermost.
func compose(handler router.Handler, middlewares []Middleware) router.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = wrap(handler, middlewares[i])
	}

	return handler
}

func wrap(next router.Handler, mw Middleware) router.Handler {
	return router.HandlerFunc(func(request *http.Request, body []byte, params http.Params) http.Response {
		return mw(next, request, body, params)
	})
}
