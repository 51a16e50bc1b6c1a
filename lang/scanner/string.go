package scanner

import "github.com/corvidlang/corvid/lang/token"

// scanString scans a string literal delimited by double quotes. There is no
// escape sequence handling: the content runs until the next '"' or the end
// of the file, whichever comes first.
func (s *Scanner) scanString(val *token.Value, start token.Pos) token.Token {
	s.next() // consume opening quote
	startOffset := s.offset - 1
	for s.ch != '"' && s.ch != eof {
		s.next()
	}
	text := string(s.src[startOffset : s.offset-1])
	if s.ch == eof {
		s.error(start, "unterminated string literal")
	} else {
		s.next() // consume closing quote
	}
	val.Str = text
	return token.STRING
}
