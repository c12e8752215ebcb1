package command

import (
	"strconv"
	"strings"
)

const cSpace = " \t\n\v\f\r"

// scanDecimal reads a leading signed decimal integer the way scanf("%d")
// does: leading whitespace is skipped and trailing text is ignored.
func scanDecimal(s string) (int32, bool) {
	s = strings.TrimLeft(s, cSpace)
	sign, digits := splitSign(s)
	digits = leadingRun(digits, isDecDigit)
	if digits == "" {
		return 0, false
	}

	v, err := strconv.ParseInt(sign+digits, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(v), true
}

// scanHex reads a leading hexadecimal integer the way scanf("%x") does. An
// optional 0x prefix is accepted and a minus sign wraps around.
func scanHex(s string) (uint32, bool) {
	s = strings.TrimLeft(s, cSpace)
	sign, rest := splitSign(s)
	if len(rest) > 2 && rest[0] == '0' && (rest[1] == 'x' || rest[1] == 'X') && isHexDigit(rest[2]) {
		rest = rest[2:]
	}
	digits := leadingRun(rest, isHexDigit)
	if digits == "" {
		return 0, false
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, false
	}
	if sign == "-" {
		return uint32(-int64(v)), true
	}
	return uint32(v), true
}

func splitSign(s string) (string, string) {
	if s != "" && (s[0] == '-' || s[0] == '+') {
		return s[:1], s[1:]
	}
	return "", s
}

func leadingRun(s string, accept func(byte) bool) string {
	i := 0
	for i < len(s) && accept(s[i]) {
		i++
	}
	return s[:i]
}

func isDecDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDecDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// fields splits on runs of single spaces only, like strtok(s, " ").
func fields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ' ' })
}
