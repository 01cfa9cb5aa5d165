package http1

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/indigo-web/miniweb/http/status"
)

var crlfcrlf = []byte("\r\n\r\n")

// readHead reads the stream chunk by chunk until the accumulated data contains CRLF-CRLF,
// and returns all of it. The data may thereby hold some body bytes in the tail, if the peer
// sent them in the same burst. Nothing is read after the boundary was found.
//
// The boundary must appear within maxSize bytes, otherwise status.ErrHeaderTooLarge is
// returned. If the stream ends before, it's status.ErrMalformedRequest.
func readHead(r io.Reader, chunk []byte, maxSize int) ([]byte, error) {
	var buff []byte

	for {
		n, err := r.Read(chunk)
		if n > 0 {
			// the boundary might be split between the previous chunk and this one
			from := max(len(buff)-len(crlfcrlf)+1, 0)
			buff = append(buff, chunk[:n]...)

			if bytes.Index(buff[from:], crlfcrlf) != -1 {
				return buff, nil
			}

			if len(buff) > maxSize {
				return nil, status.ErrHeaderTooLarge
			}
		}

		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			return nil, status.ErrMalformedRequest
		default:
			return nil, fmt.Errorf("read request head: %w", err)
		}
	}
}
