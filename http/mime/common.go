package mime

import (
	"strings"

	"github.com/indigo-web/utils/strcomp"
)

type MIME = string

const (
	OctetStream MIME = "application/octet-stream"
	Plain       MIME = "text/plain"
	HTML        MIME = "text/html"
	JSON        MIME = "application/json"
)

// Is reports whether the Content-Type header value denotes the MIME. Parameters
// (e.g. charset) are ignored and the comparison is case-insensitive. Unlike in
// content negotiation, an empty value doesn't match anything.
func Is(mime MIME, contentType string) bool {
	if sep := strings.IndexByte(contentType, ';'); sep != -1 {
		contentType = contentType[:sep]
	}

	return strcomp.EqualFold(mime, strings.TrimSpace(contentType))
}
