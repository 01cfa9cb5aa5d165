package demo

import (
	"bufio"
	"bytes"
	"io"
	stdhttp "net/http"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/miniweb/config"
	"github.com/indigo-web/miniweb/internal/dummy"
	"github.com/indigo-web/miniweb/internal/protocol/http1"
	"github.com/indigo-web/miniweb/router"
	"github.com/stretchr/testify/require"
)

type result struct {
	Code        int
	ContentType string
	Body        string
}

func exchange(t *testing.T, r router.Router, chunks ...string) result {
	conn := dummy.NewConnString(chunks...)
	require.NoError(t, http1.Serve(config.Default(), conn, r))

	resp, err := stdhttp.ReadResponse(bufio.NewReader(bytes.NewBufferString(conn.Written())), nil)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	return result{
		Code:        resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        string(body),
	}
}

func TestDemo(t *testing.T) {
	r := Routes()
	require.NoError(t, r.OnStart())

	t.Run("health", func(t *testing.T) {
		res := exchange(t, r, "GET /health HTTP/1.1\r\nHost: localhost\r\n\r\n")
		require.Equal(t, 200, res.Code)
		require.Equal(t, "ok\n", res.Body)
	})

	t.Run("echo json", func(t *testing.T) {
		payload := `{"value":"x"}`
		res := exchange(t, r,
			"POST /echo HTTP/1.1\r\n"+
				"Content-Type: application/json\r\n"+
				"Content-Length: 13\r\n"+
				"\r\n"+
				payload,
		)
		require.Equal(t, 200, res.Code)
		require.Equal(t, "echo.value=x", res.Body)
	})

	t.Run("echo json split", func(t *testing.T) {
		res := exchange(t, r,
			"POST /echo HTTP/1.1\r\ncontent-type: application/json; charset=utf-8\r\ncontent-length: 17\r\n\r\n",
			`{"value":`, `"hello"}`,
		)
		require.Equal(t, "echo.value=hello", res.Body)
	})

	t.Run("echo bytes", func(t *testing.T) {
		payload := uniuri.NewLen(10)
		res := exchange(t, r,
			"POST /echo HTTP/1.1\r\nContent-Length: 10\r\n\r\n"+payload,
		)
		require.Equal(t, 200, res.Code)
		require.Equal(t, "echo.bytes=10\n", res.Body)
	})

	t.Run("echo bytes of another type", func(t *testing.T) {
		res := exchange(t, r,
			"POST /echo HTTP/1.1\r\nContent-Type: text/plain\r\nContent-Length: 13\r\n\r\n"+`{"value":"x"}`,
		)
		require.Equal(t, "echo.bytes=13\n", res.Body)
	})

	t.Run("echo bad json", func(t *testing.T) {
		res := exchange(t, r,
			"POST /echo HTTP/1.1\r\nContent-Type: application/json\r\nContent-Length: 5\r\n\r\nhello",
		)
		require.Equal(t, 400, res.Code)
		require.Equal(t, "bad json\n", res.Body)
	})

	t.Run("item", func(t *testing.T) {
		res := exchange(t, r, "GET /items/42?verbose=1 HTTP/1.1\r\n\r\n")
		require.Equal(t, 200, res.Code)
		require.Equal(t, "item=42\n", res.Body)
	})

	t.Run("item with extra segment", func(t *testing.T) {
		res := exchange(t, r, "GET /items/42/extra HTTP/1.1\r\n\r\n")
		require.Equal(t, 404, res.Code)
	})

	t.Run("summary", func(t *testing.T) {
		res := exchange(t, r, "POST / HTTP/1.1\r\nContent-Length: 4\r\n\r\ntest")
		require.Equal(t, "method=POST, body=4 bytes\n", res.Body)
		require.Equal(t, "text/plain; charset=utf-8", res.ContentType)
	})

	t.Run("not found", func(t *testing.T) {
		res := exchange(t, r, "GET /nonexisting HTTP/1.1\r\n\r\n")
		require.Equal(t, 404, res.Code)
		require.Equal(t, "Not Found\n", res.Body)
	})

	t.Run("wrong method", func(t *testing.T) {
		res := exchange(t, r, "DELETE /health HTTP/1.1\r\n\r\n")
		require.Equal(t, 404, res.Code)
	})
}
