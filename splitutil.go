package objimport

import "bytes"

// splitByChar splits s on every run of one or more consecutive delim
// bytes; empty fields are elided. Returned slices point into s.
func splitByChar(s []byte, delim byte) [][]byte {
	var out [][]byte
	for len(s) > 0 {
		pos := bytes.IndexByte(s, delim)
		wordLen := len(s)
		if pos >= 0 {
			wordLen = pos
		}
		if wordLen > 0 {
			out = append(out, s[:wordLen])
		}
		if pos < 0 {
			return out
		}
		s = s[wordLen:]
		nonDelim := 0
		for nonDelim < len(s) && s[nonDelim] == delim {
			nonDelim++
		}
		s = s[nonDelim:]
	}
	return out
}

// splitLineKeyRest splits a directive line at the first space: key is
// the token before the space, rest is what follows with leading spaces
// and a trailing carriage-return plus trailing spaces trimmed. If there
// is no space, key is the first byte and rest is empty.
func splitLineKeyRest(line []byte) (key, rest []byte) {
	if len(line) == 0 {
		return nil, nil
	}

	pos := bytes.IndexByte(line, ' ')
	if pos < 0 {
		return line[:1], nil
	}
	key = line[:pos]

	rest = line[pos+1:]
	if len(rest) == 0 {
		return key, rest
	}

	rest = bytes.TrimLeft(rest, " ")
	if i := bytes.IndexByte(rest, '\r'); i >= 0 {
		rest = rest[:i]
	}
	rest = bytes.TrimRight(rest, " ")

	return key, rest
}
