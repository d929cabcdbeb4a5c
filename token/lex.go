package token

// structural punctuation
const (
	LCurl     = '{'
	RCurl     = '}'
	LSquare   = '['
	RSquare   = ']'
	Colon     = ':'
	Comma     = ','
	QuoteChar = '"'
	Backslash = '\\'
	Minus     = '-'
	Plus      = '+'
	Dot       = '.'
)

func IsWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}

func IsDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func IsNonZeroDigit(c byte) bool {
	return '1' <= c && c <= '9'
}

func IsExponent(c byte) bool {
	return c == 'e' || c == 'E'
}

// HexValue returns the value of a hexadecimal digit.
func HexValue(c byte) (uint16, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint16(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint16(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return uint16(c-'A') + 10, true
	default:
		return 0, false
	}
}

// IsStringByte reports whether c may appear unescaped inside a string.
func IsStringByte(c byte) bool {
	return c >= 0x20 && c != QuoteChar && c != Backslash
}

// Unescape maps the character following a backslash to the byte it
// denotes. 'u' is not handled here since it introduces four hex digits.
func Unescape(c byte) (byte, bool) {
	switch c {
	case '"':
		return '"', true
	case '\\':
		return '\\', true
	case '/':
		return '/', true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	default:
		return 0, false
	}
}
