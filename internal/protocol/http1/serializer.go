package http1

import (
	"io"
	"strconv"

	"github.com/indigo-web/miniweb/config"
	"github.com/indigo-web/miniweb/http"
	"github.com/indigo-web/miniweb/http/status"
)

const (
	protocol = "HTTP/1.1 "
	crlf     = "\r\n"
)

// serializer renders responses into a single buffer, so every response is transmitted
// by exactly one write.
type serializer struct {
	cfg  *config.Config
	buff []byte
}

func newSerializer(cfg *config.Config, buff []byte) *serializer {
	return &serializer{
		cfg:  cfg,
		buff: buff,
	}
}

// Write renders the response and writes it into w.
func (s *serializer) Write(w io.Writer, response http.Response) error {
	s.render(response)
	_, err := w.Write(s.buff)
	s.buff = s.buff[:0]

	return err
}

func (s *serializer) render(response http.Response) {
	fields := response.Reveal()
	s.growToContain(len(fields.Body) + 128)

	s.buff = append(s.buff, protocol...)
	s.appendStatus(fields.Code)
	s.appendHeader("Content-Type: ", fields.ContentType)
	s.buff = append(s.buff, "Content-Length: "...)
	s.buff = strconv.AppendInt(s.buff, int64(len(fields.Body)), 10)
	s.crlf()

	if s.cfg.Response.CloseConnection {
		s.appendHeader("Connection: ", "close")
	}

	s.crlf()
	s.buff = append(s.buff, fields.Body...)
}

func (s *serializer) appendStatus(code status.Code) {
	s.buff = strconv.AppendUint(s.buff, uint64(code), 10)
	s.buff = append(s.buff, ' ')
	s.buff = append(s.buff, string(status.TextOr(code, status.Status(s.cfg.Response.UnknownStatusText)))...)
	s.crlf()
}

func (s *serializer) appendHeader(key, value string) {
	s.buff = append(s.buff, key...)
	s.buff = append(s.buff, value...)
	s.crlf()
}

func (s *serializer) crlf() {
	s.buff = append(s.buff, crlf...)
}

func (s *serializer) growToContain(n int) {
	if free := cap(s.buff) - len(s.buff); free < n {
		grown := make([]byte, len(s.buff), len(s.buff)+n)
		copy(grown, s.buff)
		s.buff = grown
	}
}
