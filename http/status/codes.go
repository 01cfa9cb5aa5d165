package status

import "strconv"

type (
	Code   uint16
	Status string
)

// HTTP status codes as registered with IANA. Only those actually produced by the
// server or by the inbuilt handlers are listed.
const (
	OK                          Code = 200 // RFC 9110, 15.3.1
	Created                     Code = 201 // RFC 9110, 15.3.2
	BadRequest                  Code = 400 // RFC 9110, 15.5.1
	NotFound                    Code = 404 // RFC 9110, 15.5.5
	RequestEntityTooLarge       Code = 413 // RFC 9110, 15.5.14
	RequestHeaderFieldsTooLarge Code = 431 // RFC 6585, 5
	InternalServerError         Code = 500 // RFC 9110, 15.6.1
)

// Text returns the reason phrase of the code and whether it's registered at all.
//
// Only a fixed set of codes has a reason phrase. Everything else must be resolved by
// the caller, see config.Response.UnknownStatusText.
func Text(code Code) (Status, bool) {
	switch code {
	case OK:
		return "OK", true
	case Created:
		return "Created", true
	case BadRequest:
		return "Bad Request", true
	case NotFound:
		return "Not Found", true
	case InternalServerError:
		return "Internal Server Error", true
	default:
		return "", false
	}
}

// TextOr returns the reason phrase of the code, or the fallback if there is none.
func TextOr(code Code, fallback Status) Status {
	if text, ok := Text(code); ok {
		return text
	}

	return fallback
}

func (c Code) String() string {
	return strconv.Itoa(int(c))
}
