package http

import "github.com/indigo-web/utils/uf"

// Escape makes a raw request string safe for printing: every byte outside of the printable
// ASCII range is replaced by a backslash escape. Returns the string unchanged if there's
// nothing to escape.
func Escape(str string) string {
	var (
		buff   []byte
		offset int
	)

	for i := 0; i < len(str); i++ {
		if isASCIIPrintable(str[i]) {
			continue
		}

		if buff == nil {
			buff = make([]byte, 0, len(str)+len(str)/2)
		}

		buff = append(buff, str[offset:i]...)
		buff = appendEscaped(buff, str[i])
		offset = i + 1
	}

	if buff == nil {
		return str
	}

	return uf.B2S(append(buff, str[offset:]...))
}

func isASCIIPrintable(c byte) bool {
	return c >= 0x20 && c <= 0x7e
}

const hexdigits = "0123456789abcdef"

func appendEscaped(buff []byte, c byte) []byte {
	switch c {
	case '\t':
		return append(buff, '\\', 't')
	case '\r':
		return append(buff, '\\', 'r')
	case '\n':
		return append(buff, '\\', 'n')
	default:
		return append(buff, '\\', 'x', hexdigits[c>>4], hexdigits[c&0xf])
	}
}
