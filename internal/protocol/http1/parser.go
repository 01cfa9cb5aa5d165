package http1

import (
	"bytes"
	"strings"

	"github.com/indigo-web/miniweb/http"
	"github.com/indigo-web/miniweb/http/status"
	"github.com/indigo-web/miniweb/internal/strutil"
	"github.com/indigo-web/miniweb/kv"
	"github.com/indigo-web/utils/uf"
)

// parseHead parses the request line and the header fields out of the raw data, which must
// contain the whole head terminated by CRLF-CRLF. It returns the offset of the first body
// byte alongside.
//
// Every byte is taken as a single character and nothing is decoded. The returned request
// refers to the raw data directly, so it must not be modified afterwards.
func parseHead(raw []byte) (*http.Request, int, error) {
	end := bytes.Index(raw, crlfcrlf)
	if end == -1 {
		return nil, 0, status.ErrMalformedRequest
	}

	head := uf.B2S(raw[:end])
	requestLine, fields, _ := strings.Cut(head, "\r\n")

	tokens := strings.Split(requestLine, " ")
	if len(tokens) < 3 {
		return nil, 0, status.ErrMalformedRequest
	}

	request := &http.Request{
		Method:   tokens[0],
		Target:   tokens[1],
		Protocol: tokens[2],
		Headers:  kv.NewPrealloc(strings.Count(fields, "\r\n") + 1),
	}
	request.Path, request.Query, request.HasQuery = strings.Cut(request.Target, "?")

	for len(fields) > 0 {
		var line string
		line, fields, _ = strings.Cut(fields, "\r\n")

		// lines without a colon or with an empty name are dropped silently
		colon := strings.IndexByte(line, ':')
		if colon <= 0 {
			continue
		}

		request.Headers.Add(strutil.StripWS(line[:colon]), strutil.StripWS(line[colon+1:]))
	}

	return request, end + len(crlfcrlf), nil
}
