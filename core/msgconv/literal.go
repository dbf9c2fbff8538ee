package msgconv

import (
	"strconv"
	"strings"

	"github.com/N1CEJAN/RossyDiac/core/model"
)

// parseIntLiteral implements spec.md §4.A's integer literal rule, shared
// by byte/int*/uint*/char fields: prefix 0x/0X, 0o/0O, 0b/0B select a
// base; otherwise the literal is decimal, and an explicit leading sign
// selects SignedDec over UnsignedDec.
func parseIntLiteral(text string) (model.IntLiteral, error) {
	if text == "" {
		return model.IntLiteral{}, errf("empty integer literal")
	}
	neg := false
	hasSign := false
	i := 0
	if text[0] == '+' || text[0] == '-' {
		hasSign = true
		neg = text[0] == '-'
		i = 1
	}
	rest := text[i:]
	switch {
	case hasPrefix(rest, "0x") || hasPrefix(rest, "0X"):
		if hasSign {
			return model.IntLiteral{}, errf("hexadecimal literal %q may not carry a sign", text)
		}
		mag, err := strconv.ParseUint(rest[2:], 16, 64)
		if err != nil {
			return model.IntLiteral{}, errf("invalid hexadecimal literal %q: %v", text, err)
		}
		return model.IntLiteral{Form: model.IntHex, Magnitude: mag}, nil
	case hasPrefix(rest, "0o") || hasPrefix(rest, "0O"):
		if hasSign {
			return model.IntLiteral{}, errf("octal literal %q may not carry a sign", text)
		}
		mag, err := strconv.ParseUint(rest[2:], 8, 64)
		if err != nil {
			return model.IntLiteral{}, errf("invalid octal literal %q: %v", text, err)
		}
		return model.IntLiteral{Form: model.IntOct, Magnitude: mag}, nil
	case hasPrefix(rest, "0b") || hasPrefix(rest, "0B"):
		if hasSign {
			return model.IntLiteral{}, errf("binary literal %q may not carry a sign", text)
		}
		mag, err := strconv.ParseUint(rest[2:], 2, 64)
		if err != nil {
			return model.IntLiteral{}, errf("invalid binary literal %q: %v", text, err)
		}
		return model.IntLiteral{Form: model.IntBin, Magnitude: mag}, nil
	default:
		mag, err := strconv.ParseUint(rest, 10, 64)
		if err != nil {
			return model.IntLiteral{}, errf("invalid decimal literal %q: %v", text, err)
		}
		form := model.IntUnsignedDec
		if hasSign {
			form = model.IntSignedDec
		}
		return model.IntLiteral{Form: form, Negative: neg, Magnitude: mag}, nil
	}
}

func hasPrefix(s, p string) bool { return strings.HasPrefix(s, p) }

// parseQuotedString implements spec.md §4.A's string literal rule: single-
// or double-quoted with backslash escapes, the inner quote of the same
// kind must be escaped.
func parseQuotedString(text string) (quote byte, content string, err error) {
	if len(text) < 2 {
		return 0, "", errf("malformed string literal %q", text)
	}
	q := text[0]
	if q != '\'' && q != '"' {
		return 0, "", errf("string literal %q must start with a quote", text)
	}
	if text[len(text)-1] != q {
		return 0, "", errf("unterminated string literal %q", text)
	}
	inner := text[1 : len(text)-1]
	var sb strings.Builder
	for i := 0; i < len(inner); i++ {
		b := inner[i]
		if b == '\\' {
			if i+1 >= len(inner) {
				return 0, "", errf("dangling escape in string literal %q", text)
			}
			next := inner[i+1]
			switch next {
			case '\\', q:
				sb.WriteByte(next)
			default:
				sb.WriteByte('\\')
				sb.WriteByte(next)
			}
			i++
			continue
		}
		if b == q {
			return 0, "", errf("unescaped quote in string literal %q", text)
		}
		sb.WriteByte(b)
	}
	return q, sb.String(), nil
}

// escapeStringContent is the writer-side inverse of parseQuotedString: it
// escapes the quote character and backslashes already present in text so
// the result can be safely wrapped in the given quote character.
func escapeStringContent(text string, quote byte) string {
	var sb strings.Builder
	for i := 0; i < len(text); i++ {
		b := text[i]
		if b == '\\' || b == quote {
			sb.WriteByte('\\')
		}
		sb.WriteByte(b)
	}
	return sb.String()
}
