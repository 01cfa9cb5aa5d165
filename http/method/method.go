package method

// Methods are plain strings and compared case-sensitively, exactly as they appear in the
// request line. The constants below are just the commonly used ones; any token is allowed.
const (
	GET     = "GET"
	HEAD    = "HEAD"
	POST    = "POST"
	PUT     = "PUT"
	DELETE  = "DELETE"
	CONNECT = "CONNECT"
	OPTIONS = "OPTIONS"
	TRACE   = "TRACE"
	PATCH   = "PATCH"
)
