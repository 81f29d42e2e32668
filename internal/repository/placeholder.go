package repository

import (
	"strconv"
	"strings"
)

// Rebind rewrites "?" placeholders into PostgreSQL's positional form
// ($1, $2, ...) in left-to-right order. Question marks inside quoted
// literals or identifiers, E'...' escape strings, dollar-quoted bodies and
// comments are copied through untouched.
func Rebind(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	for i := 0; i < len(query); {
		c := query[i]
		switch {
		case (c == 'E' || c == 'e') && i+1 < len(query) && query[i+1] == '\'' &&
			(i == 0 || !isIdentByte(query[i-1])):
			end := skipEscapeString(query, i+1)
			b.WriteString(query[i:end])
			i = end
		case c == '\'' || c == '"' || c == '`':
			end := skipQuoted(query, i)
			b.WriteString(query[i:end])
			i = end
		case c == '-' && strings.HasPrefix(query[i:], "--"):
			end := strings.IndexByte(query[i:], '\n')
			if end < 0 {
				end = len(query)
			} else {
				end += i
			}
			b.WriteString(query[i:end])
			i = end
		case c == '/' && strings.HasPrefix(query[i:], "/*"):
			end := strings.Index(query[i+2:], "*/")
			if end < 0 {
				end = len(query)
			} else {
				end += i + 4
			}
			b.WriteString(query[i:end])
			i = end
		case c == '$':
			end := skipDollarQuoted(query, i)
			b.WriteString(query[i:end])
			i = end
		case c == '?':
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			i++
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// skipQuoted returns the index just past the literal opening at start.
// A doubled quote character is an escaped quote. Unterminated literals run
// to the end of the query.
func skipQuoted(query string, start int) int {
	q := query[start]
	for j := start + 1; j < len(query); j++ {
		if query[j] != q {
			continue
		}
		if j+1 < len(query) && query[j+1] == q {
			j++
			continue
		}
		return j + 1
	}
	return len(query)
}

// skipEscapeString is skipQuoted for a PostgreSQL E'...' literal, where a
// backslash escapes the following byte.
func skipEscapeString(query string, start int) int {
	for j := start + 1; j < len(query); j++ {
		switch query[j] {
		case '\\':
			j++
		case '\'':
			if j+1 < len(query) && query[j+1] == '\'' {
				j++
				continue
			}
			return j + 1
		}
	}
	return len(query)
}

// skipDollarQuoted returns the index just past a $tag$...$tag$ body
// starting at start, or start+1 when the dollar sign does not open one
// (for example an existing $1 placeholder).
func skipDollarQuoted(query string, start int) int {
	j := start + 1
	for j < len(query) && isTagByte(query[j], j == start+1) {
		j++
	}
	if j >= len(query) || query[j] != '$' {
		return start + 1
	}
	tag := query[start : j+1]
	end := strings.Index(query[j+1:], tag)
	if end < 0 {
		return len(query)
	}
	return j + 1 + end + len(tag)
}

func isTagByte(c byte, first bool) bool {
	switch {
	case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return !first
	}
	return false
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
