package http1

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/indigo-web/miniweb/http"
	"github.com/indigo-web/miniweb/http/status"
)

// contentLength returns the value of the first Content-Length header. Absent, malformed
// and negative values result in zero, i.e. no body.
func contentLength(headers http.Headers) int {
	value, found := headers.Get("Content-Length")
	if !found {
		return 0
	}

	length, err := strconv.Atoi(value)
	if err != nil || length < 0 {
		return 0
	}

	return length
}

// collectBody returns exactly length bytes of body. The bytes of raw past the offset were
// already received together with the head, so they are consumed first and only the rest is
// read from the stream. Excessive bytes in raw are discarded.
func collectBody(r io.Reader, raw []byte, offset, length, maxSize int) ([]byte, error) {
	if length <= 0 {
		return nil, nil
	}

	if length > maxSize {
		return nil, status.ErrBodyTooLarge
	}

	received := raw[offset:]
	if len(received) >= length {
		return received[:length:length], nil
	}

	body := make([]byte, length)
	n := copy(body, received)

	if _, err := io.ReadFull(r, body[n:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, status.ErrUnexpectedEOF
		}

		return nil, fmt.Errorf("read request body: %w", err)
	}

	return body, nil
}
