package pdfengine

import (
	"bytes"
	"encoding/hex"
	"strings"
	"unicode"
)

// glyphPlaceholder stands in for each glyph of a hex string whose font
// encoding is unknown. It keeps text-layer detection working on exports
// that use composite fonts.
const glyphPlaceholder = '·'

// ExtractText returns the text shown by Tj, TJ, ' and " operators in a
// content stream. Font encodings are not applied.
func ExtractText(content []byte) string {
	var (
		sb      strings.Builder
		operand [][]byte
		newLine bool
	)
	for i := 0; i < len(content); {
		c := content[i]
		switch {
		case c == '(':
			s, n := scanLiteral(content[i:])
			operand = [][]byte{s}
			i += n
		case c == '<' && i+1 < len(content) && content[i+1] == '<':
			operand = nil
			i += 2
		case c == '<':
			s, n := scanHex(content[i:])
			operand = [][]byte{s}
			i += n
		case c == '[':
			parts, n := scanArray(content[i:])
			operand = parts
			i += n
		case c == '%':
			if n := bytes.IndexAny(content[i:], "\r\n"); n >= 0 {
				i += n
			} else {
				i = len(content)
			}
		case isSpace(c):
			i++
		default:
			j := i + 1
			for j < len(content) && !isSpace(content[j]) && !isDelimiter(content[j]) {
				j++
			}
			op := string(content[i:j])
			i = j

			switch op {
			case "Tj", "TJ", "'", `"`:
				if operand == nil {
					break
				}
				if (newLine || op == "'" || op == `"`) && sb.Len() > 0 {
					sb.WriteByte(' ')
				}
				for _, s := range operand {
					sb.WriteString(decodeOperand(s))
				}
				newLine = false
			case "Td", "TD", "T*", "ET":
				newLine = true
			case "ID":
				i += skipInlineImage(content[i:])
			}
			operand = nil
		}
	}
	return cleanText(sb.String())
}

// scanLiteral returns the literal string starting at b[0] == '(' including
// its delimiters, and the number of bytes consumed. Balanced parentheses may
// appear unescaped.
func scanLiteral(b []byte) ([]byte, int) {
	depth := 0
	for i := 0; i < len(b); i++ {
		switch b[i] {
		case '\\':
			i++
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return b[:i+1], i + 1
			}
		}
	}
	return append(b[:len(b):len(b)], ')'), len(b)
}

func scanHex(b []byte) ([]byte, int) {
	end := bytes.IndexByte(b, '>')
	if end < 0 {
		return append(b[:len(b):len(b)], '>'), len(b)
	}
	return b[:end+1], end + 1
}

// scanArray collects the string operands of a TJ array. Numbers are kerning
// adjustments and are skipped.
func scanArray(b []byte) ([][]byte, int) {
	parts := [][]byte{}
	for i := 1; i < len(b); {
		switch b[i] {
		case ']':
			return parts, i + 1
		case '(':
			s, n := scanLiteral(b[i:])
			parts = append(parts, s)
			i += n
		case '<':
			s, n := scanHex(b[i:])
			parts = append(parts, s)
			i += n
		default:
			i++
		}
	}
	return parts, len(b)
}

// skipInlineImage returns the length of inline image data up to and
// including its EI operator.
func skipInlineImage(b []byte) int {
	for i := 0; i+2 <= len(b); i++ {
		if b[i] == 'E' && b[i+1] == 'I' && (i == 0 || isSpace(b[i-1])) &&
			(i+2 == len(b) || isSpace(b[i+2])) {
			return i + 2
		}
	}
	return len(b)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\f', 0:
		return true
	}
	return false
}

func isDelimiter(c byte) bool {
	return strings.IndexByte("()<>[]{}/%", c) >= 0
}

func decodeOperand(s []byte) string {
	if s[0] == '<' {
		return decodeHexString(s[1 : len(s)-1])
	}
	return decodeLiteral(s[1 : len(s)-1])
}

func decodeHexString(raw []byte) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, string(raw))
	if len(digits)%2 == 1 {
		digits += "0"
	}
	b, err := hex.DecodeString(digits)
	if err != nil || len(b) == 0 {
		return ""
	}
	printable := true
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			printable = false
			break
		}
	}
	if printable {
		return string(b)
	}
	return strings.Repeat(string(glyphPlaceholder), (len(b)+1)/2)
}

// decodeLiteral handles the escape sequences of a literal string.
func decodeLiteral(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			sb.WriteByte(raw[i])
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'b', 'f':
		case '\r', '\n':
			// line continuation
		default:
			if raw[i] >= '0' && raw[i] <= '7' {
				val := int(raw[i] - '0')
				for n := 0; n < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; n++ {
					i++
					val = val*8 + int(raw[i]-'0')
				}
				sb.WriteByte(byte(val))
			} else {
				sb.WriteByte(raw[i])
			}
		}
	}
	return sb.String()
}

// cleanText collapses whitespace and drops non-printable runes.
func cleanText(text string) string {
	var sb strings.Builder
	prevSpace := false
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			if !prevSpace && sb.Len() > 0 {
				sb.WriteByte(' ')
				prevSpace = true
			}
		case unicode.IsPrint(r):
			sb.WriteRune(r)
			prevSpace = false
		}
	}
	return strings.TrimSpace(sb.String())
}
