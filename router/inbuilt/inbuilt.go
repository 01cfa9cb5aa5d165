package inbuilt

import (
	"github.com/indigo-web/miniweb/http"
	"github.com/indigo-web/miniweb/http/status"
	"github.com/indigo-web/miniweb/router"
	"github.com/indigo-web/miniweb/router/inbuilt/internal/pattern"
)

var _ router.Router = new(Router)

type route struct {
	method   string
	template pattern.Template
	handler  router.Handler
}

// Router is a built-in implementation of router.Router interface. Routes are kept in the
// order of registration and are tried one by one, so in case several routes match the
// request, the earliest registered one wins.
//
// The router is configured before the server starts. OnStart freezes it, so any further
// registration panics.
type Router struct {
	routes      []route
	middlewares []Middleware
	notFound    router.Handler
	frozen      bool
}

// New constructs a new instance of inbuilt router
func New() *Router {
	return &Router{
		notFound: router.HandlerFunc(NotFound),
	}
}

// Route registers a handler for the method and the path pattern. The pattern consists of
// slash-separated segments, where segments starting with a colon (e.g. /items/:id) match
// any value and bind it to the name after the colon.
func (r *Router) Route(method, path string, handler router.Handler, middlewares ...Middleware) *Router {
	r.ensureNotFrozen()

	r.routes = append(r.routes, route{
		method:   method,
		template: pattern.MustParse(path),
		handler:  compose(handler, middlewares),
	})

	return r
}

// NotFound replaces the handler called when no route matches the request.
func (r *Router) NotFound(handler router.Handler) *Router {
	r.ensureNotFrozen()
	r.notFound = handler
	return r
}

// OnStart applies router-wide middlewares and freezes the router.
func (r *Router) OnStart() error {
	if r.frozen {
		return nil
	}

	for i := range r.routes {
		r.routes[i].handler = compose(r.routes[i].handler, r.middlewares)
	}

	r.notFound = compose(r.notFound, r.middlewares)
	r.frozen = true

	return nil
}

// OnRequest routes the request to the first route whose method equals to the request's
// and whose pattern matches the path. If there is none, the not found handler is called.
func (r *Router) OnRequest(request *http.Request, body []byte) http.Response {
	for _, rt := range r.routes {
		if rt.method != request.Method {
			continue
		}

		if params, ok := rt.template.Match(request.Path); ok {
			return rt.handler.Handle(request, body, params)
		}
	}

	return r.notFound.Handle(request, body, http.Params{})
}

func (r *Router) ensureNotFrozen() {
	if r.frozen {
		panic("inbuilt: router cannot be modified after it was started")
	}
}

// NotFound is the default handler for requests matching no route.
func NotFound(*http.Request, []byte, http.Params) http.Response {
	return http.NewResponse().
		Code(status.NotFound).
		String("Not Found\n")
}
