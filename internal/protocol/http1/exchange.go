package http1

import (
	"fmt"
	"io"

	"github.com/indigo-web/miniweb/config"
	"github.com/indigo-web/miniweb/http"
	"github.com/indigo-web/miniweb/http/status"
	"github.com/indigo-web/miniweb/router"
)

// Serve processes exactly one exchange over the connection: it reads the request head and
// its body, routes the request and writes the response by a single write. The connection
// is neither closed nor read after the body.
//
// Any error is fatal to the exchange and nothing is written in this case. The error is either
// one of status.ErrHeaderTooLarge, status.ErrMalformedRequest, status.ErrBodyTooLarge,
// status.ErrUnexpectedEOF and status.ErrHandlerPanic (possibly wrapped), or an I/O error.
func Serve(cfg *config.Config, conn io.ReadWriter, r router.Router) error {
	raw, err := readHead(conn, make([]byte, cfg.NET.ReadBufferSize), cfg.Headers.MaxSize)
	if err != nil {
		return err
	}

	request, offset, err := parseHead(raw)
	if err != nil {
		return err
	}

	body, err := collectBody(conn, raw, offset, contentLength(request.Headers), cfg.Body.MaxSize)
	if err != nil {
		return err
	}

	response, err := dispatch(r, request, body)
	if err != nil {
		return err
	}

	return WriteResponse(cfg, conn, response)
}

// WriteResponse renders the response and writes it by a single write. It's used by Serve
// and may be used directly by the hosting process, e.g. to report a failed exchange.
func WriteResponse(cfg *config.Config, w io.Writer, response http.Response) error {
	return newSerializer(cfg, nil).Write(w, response)
}

func dispatch(r router.Router, request *http.Request, body []byte) (response http.Response, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%w: %v", status.ErrHandlerPanic, v)
		}
	}()

	return r.OnRequest(request, body), nil
}
