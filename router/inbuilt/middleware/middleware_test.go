package middleware

import (
	"fmt"
	"testing"

	"github.com/indigo-web/miniweb/http"
	"github.com/indigo-web/miniweb/http/method"
	"github.com/indigo-web/miniweb/http/status"
	"github.com/indigo-web/miniweb/kv"
	"github.com/indigo-web/miniweb/router/inbuilt"
	"github.com/stretchr/testify/require"
)

type journal struct {
	lines []string
}

func (j *journal) Printf(format string, v ...any) {
	j.lines = append(j.lines, fmt.Sprintf(format, v...))
}

func getRequest(m, target string) *http.Request {
	return &http.Request{
		Method:  m,
		Target:  target,
		Path:    target,
		Headers: kv.New(),
	}
}

func TestLogRequests(t *testing.T) {
	logger := new(journal)
	r := inbuilt.New().
		Use(LogRequests(logger)).
		Post("/echo", func(_ *http.Request, body []byte, _ http.Params) http.Response {
			return http.NewResponse().Bytes(body)
		})
	require.NoError(t, r.OnStart())

	r.OnRequest(getRequest(method.POST, "/echo"), []byte("hello"))
	r.OnRequest(getRequest(method.GET, "/bad\r\npath"), nil)

	require.Equal(t, []string{
		">> POST /echo -> 200 (5 bytes)",
		`>> GET /bad\r\npath -> 404 (0 bytes)`,
	}, logger.lines)
}

func TestRecover(t *testing.T) {
	r := inbuilt.New().
		Use(Recover).
		Get("/panic", func(*http.Request, []byte, http.Params) http.Response {
			panic("oops")
		}).
		Get("/fine", func(*http.Request, []byte, http.Params) http.Response {
			return http.NewResponse().String("fine")
		})
	require.NoError(t, r.OnStart())

	resp := r.OnRequest(getRequest(method.GET, "/panic"), nil)
	require.Equal(t, status.InternalServerError, resp.Reveal().Code)

	resp = r.OnRequest(getRequest(method.GET, "/fine"), nil)
	require.Equal(t, status.OK, resp.Reveal().Code)
	require.Equal(t, "fine", string(resp.Reveal().Body))
}
