package middleware

import (
	"github.com/indigo-web/miniweb/http"
	"github.com/indigo-web/miniweb/http/status"
	"github.com/indigo-web/miniweb/router"
)

// Recover catches panics of the handler and returns 500 Internal Server Error instead.
// Without it, a panicking handler aborts the exchange and no response is written at all.
func Recover(next router.Handler, request *http.Request, body []byte, params http.Params) (resp http.Response) {
	defer func() {
		if r := recover(); r != nil {
			resp = http.Error(status.ErrInternalServerError)
		}
	}()

	return next.Handle(request, body, params)
}
