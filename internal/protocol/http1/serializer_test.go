package http1

import (
	"bufio"
	"bytes"
	"io"
	stdhttp "net/http"
	"strconv"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/miniweb/config"
	"github.com/indigo-web/miniweb/http"
	"github.com/indigo-web/miniweb/http/mime"
	"github.com/indigo-web/miniweb/http/status"
	"github.com/indigo-web/miniweb/internal/dummy"
	"github.com/stretchr/testify/require"
)

func serialize(t *testing.T, cfg *config.Config, response http.Response) *dummy.Conn {
	conn := dummy.NewConn()
	require.NoError(t, WriteResponse(cfg, conn, response))
	require.Equal(t, 1, conn.Writes())

	return conn
}

func TestSerializer(t *testing.T) {
	cfg := config.Default()

	t.Run("exact wire format", func(t *testing.T) {
		conn := serialize(t, cfg, http.NewResponse().String("ok\n"))
		require.Equal(t,
			"HTTP/1.1 200 OK\r\n"+
				"Content-Type: text/plain; charset=utf-8\r\n"+
				"Content-Length: 3\r\n"+
				"\r\n"+
				"ok\n",
			conn.Written(),
		)
	})

	t.Run("reason phrases", func(t *testing.T) {
		for code, reason := range map[status.Code]string{
			status.OK:                  "OK",
			status.Created:             "Created",
			status.BadRequest:          "Bad Request",
			status.NotFound:            "Not Found",
			status.InternalServerError: "Internal Server Error",
		} {
			conn := serialize(t, cfg, http.NewResponse().Code(code))
			wantLine := "HTTP/1.1 " + strconv.Itoa(int(code)) + " " + reason + "\r\n"
			require.Equal(t, wantLine, conn.Written()[:len(wantLine)])
		}
	})

	t.Run("unknown code falls back", func(t *testing.T) {
		conn := serialize(t, cfg, http.NewResponse().Code(418))
		require.Contains(t, conn.Written(), "HTTP/1.1 418 OK\r\n")

		custom := config.Default()
		custom.Response.UnknownStatusText = "Unknown"
		conn = serialize(t, custom, http.NewResponse().Code(405))
		require.Contains(t, conn.Written(), "HTTP/1.1 405 Unknown\r\n")
	})

	t.Run("connection close", func(t *testing.T) {
		custom := config.Default()
		custom.Response.CloseConnection = true
		conn := serialize(t, custom, http.NewResponse())
		require.Equal(t,
			"HTTP/1.1 200 OK\r\n"+
				"Content-Type: text/plain; charset=utf-8\r\n"+
				"Content-Length: 0\r\n"+
				"Connection: close\r\n"+
				"\r\n",
			conn.Written(),
		)
	})

	t.Run("content length round trip", func(t *testing.T) {
		for _, size := range []int{0, 1, 10, 1000, 100_000} {
			body := []byte(uniuri.NewLen(size))
			response := http.NewResponse().ContentType(mime.OctetStream).Bytes(body)
			conn := serialize(t, cfg, response)

			resp, err := stdhttp.ReadResponse(bufio.NewReader(bytes.NewBufferString(conn.Written())), nil)
			require.NoError(t, err)
			require.Equal(t, strconv.Itoa(len(body)), resp.Header.Get("Content-Length"))
			require.Equal(t, mime.OctetStream, resp.Header.Get("Content-Type"))
			require.Equal(t, int64(len(body)), resp.ContentLength)

			got, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			require.Equal(t, body, got)
		}
	})

	t.Run("raw bytes", func(t *testing.T) {
		body := []byte{0x00, 0xff, 0xe9, '\r', '\n'}
		conn := serialize(t, cfg, http.NewResponse().ContentType("text/caf\xe9").Bytes(body))
		require.Contains(t, conn.Written(), "Content-Type: text/caf\xe9\r\n")
		require.Contains(t, conn.Written(), "Content-Length: 5\r\n")
		require.Equal(t, string(body), conn.Written()[len(conn.Written())-5:])
	})
}
