package middleware

import (
	"log"

	"github.com/indigo-web/miniweb/http"
	"github.com/indigo-web/miniweb/router"
	"github.com/indigo-web/miniweb/router/inbuilt"
)

type Logger interface {
	Printf(fmt string, v ...any)
}

// LogRequests logs every request with its response code. If no loggers are passed,
// log.Default() is used.
func LogRequests(loggers ...Logger) inbuilt.Middleware {
	if len(loggers) == 0 {
		loggers = append(loggers, log.Default())
	}

	return func(next router.Handler, request *http.Request, body []byte, params http.Params) http.Response {
		response := next.Handle(request, body, params)

		for _, logger := range loggers {
			logger.Printf(
				">> %s %s -> %d (%d bytes)",
				http.Escape(request.Method), http.Escape(request.Target),
				response.Reveal().Code, len(body),
			)
		}

		return response
	}
}
