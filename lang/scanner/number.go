package scanner

import (
	"strconv"

	"github.com/corvidlang/corvid/lang/token"
)

// scanNumber scans a base-10 integer literal and decodes it to a float64, as
// the language has no integer type of its own.
func (s *Scanner) scanNumber(val *token.Value) token.Token {
	start := s.offset - 1
	for isDigit(s.ch) {
		s.next()
	}
	text := string(s.src[start : s.offset-1])

	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		s.error(val.Pos, "invalid number literal "+text)
	}
	val.Num = n
	return token.NUMBER
}
