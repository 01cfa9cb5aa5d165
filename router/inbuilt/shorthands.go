package inbuilt

import (
	"github.com/indigo-web/miniweb/http/method"
	"github.com/indigo-web/miniweb/router"
)

/*
This file is responsible for methods predicates - shortcuts for Route method
with already set method taken from name of the method
*/

// Get is a shortcut for Route(method.GET, ...) accepting a plain function.
func (r *Router) Get(path string, handler router.HandlerFunc, middlewares ...Middleware) *Router {
	return r.Route(method.GET, path, handler, middlewares...)
}

// Head is a shortcut for Route(method.HEAD, ...) accepting a plain function.
func (r *Router) Head(path string, handler router.HandlerFunc, middlewares ...Middleware) *Router {
	return r.Route(method.HEAD, path, handler, middlewares...)
}

// Post is a shortcut for Route(method.POST, ...) accepting a plain function.
func (r *Router) Post(path string, handler router.HandlerFunc, middlewares ...Middleware) *Router {
	return r.Route(method.POST, path, handler, middlewares...)
}

// Put is a shortcut for Route(method.PUT, ...) accepting a plain function.
func (r *Router) Put(path string, handler router.HandlerFunc, middlewares ...Middleware) *Router {
	return r.Route(method.PUT, path, handler, middlewares...)
}

// Patch is a shortcut for Route(method.PATCH, ...) accepting a plain function.
func (r *Router) Patch(path string, handler router.HandlerFunc, middlewares ...Middleware) *Router {
	return r.Route(method.PATCH, path, handler, middlewares...)
}

// Delete is a shortcut for Route(method.DELETE, ...) accepting a plain function.
func (r *Router) Delete(path string, handler router.HandlerFunc, middlewares ...Middleware) *Router {
	return r.Route(method.DELETE, path, handler, middlewares...)
}

// Options is a shortcut for Route(method.OPTIONS, ...) accepting a plain function.
func (r *Router) Options(path string, handler router.HandlerFunc, middlewares ...Middleware) *Router {
	return r.Route(method.OPTIONS, path, handler, middlewares...)
}
