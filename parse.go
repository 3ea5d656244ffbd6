package bigint

import (
	"strconv"
	"strings"
)

// Parse parses a signed integer. A 0x or 0X prefix after the sign selects
// hexadecimal, otherwise the digits are decimal. Underscores between digits
// are ignored.
func Parse(s string) (Int, error) {
	neg, body := splitSign(s)
	if hasHexPrefix(body) {
		return parseHex(s, body[2:], neg)
	}

	return parseDec(s, body, neg)
}

// ParseHex parses signed hexadecimal as produced by Hex. The 0x prefix is
// optional.
func ParseHex(s string) (Int, error) {
	neg, body := splitSign(s)
	if hasHexPrefix(body) {
		body = body[2:]
	}

	return parseHex(s, body, neg)
}

// ParseDec parses signed decimal as produced by Dec.
func ParseDec(s string) (Int, error) {
	neg, body := splitSign(s)

	return parseDec(s, body, neg)
}

func splitSign(s string) (neg bool, body string) {
	switch {
	case strings.HasPrefix(s, "-"):
		return true, s[1:]
	case strings.HasPrefix(s, "+"):
		return false, s[1:]
	}

	return false, s
}

func hasHexPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// digits strips underscore separators. Separators may only appear between
// digits.
func digits(input, body string) (string, error) {
	if body == "" {
		return "", ParseError.New("no digits: %q", input)
	}

	if !strings.Contains(body, "_") {
		return body, nil
	}

	if strings.HasPrefix(body, "_") || strings.HasSuffix(body, "_") || strings.Contains(body, "__") {
		return "", ParseError.New("misplaced separator: %q", input)
	}

	return strings.ReplaceAll(body, "_", ""), nil
}

func parseHex(input, body string, neg bool) (Int, error) {
	body, err := digits(input, body)
	if err != nil {
		return Int{}, err
	}

	// Each word is the next 16 digits counting from the right.
	m := make([]uint64, 0, (len(body)+15)/16)
	for end := len(body); end > 0; end -= 16 {
		start := end - 16
		if start < 0 {
			start = 0
		}

		w, err := strconv.ParseUint(body[start:end], 16, 64)
		if err != nil {
			return Int{}, ParseError.New("invalid hexadecimal: %q", input)
		}

		m = append(m, w)
	}

	return normalize(m, neg), nil
}

func parseDec(input, body string, neg bool) (Int, error) {
	body, err := digits(input, body)
	if err != nil {
		return Int{}, err
	}

	// The first chunk is short so that the rest are exactly 19 digits.
	m := []uint64{0}
	for start := 0; start < len(body); {
		end := start + (len(body)-start-1)%decChunkDigits + 1

		w, err := strconv.ParseUint(body[start:end], 10, 64)
		if err != nil {
			return Int{}, ParseError.New("invalid decimal: %q", input)
		}

		m = mulAddWord(m, pow10(end-start), w)
		start = end
	}

	return normalize(m, neg), nil
}

func pow10(n int) uint64 {
	p := uint64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}

	return p
}
