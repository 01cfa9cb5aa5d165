package strutil

func LStripWS(str string) string {
	for i := 0; i < len(str); i++ {
		if !isWS(str[i]) {
			return str[i:]
		}
	}

	return ""
}

func RStripWS(str string) string {
	for i := len(str); i > 0; i-- {
		if !isWS(str[i-1]) {
			return str[:i]
		}
	}

	return ""
}

// StripWS strips whitespaces from both sides.
func StripWS(str string) string {
	return RStripWS(LStripWS(str))
}

// isWS reports Latin-1 whitespace: ASCII control whitespace, the information
// separators 0x1C-0x1F, space and no-break space.
func isWS(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\v', '\f', 0x1c, 0x1d, 0x1e, 0x1f, 0xa0:
		return true
	default:
		return false
	}
}
