package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/velocity-lang/velocity/diag"
	"github.com/velocity-lang/velocity/token"
)

// Scan tokenizes src, naming file in every span. The returned stream always
// ends with an EOF token. On a lexical error the tokens scanned so far are
// discarded and a *diag.Error locates the offending character.
func Scan(file, src string) ([]token.Token, error) {
	s := &scanner{file: file, src: src, line: 1}
	for {
		c, ok := s.next()
		if !ok {
			break
		}
		var err error
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			// next already advanced line/column bookkeeping.
		case isWordStart(c):
			s.scanWord(c)
		case isDigit(c):
			s.scanNumber(c)
		case c == '"':
			err = s.scanString()
		case c == '\'':
			err = s.scanCharacter()
		default:
			err = s.scanOperator(c)
		}
		if err != nil {
			return nil, err
		}
	}
	s.emit(token.EOF, "<eof>", s.col+1, s.col+1)
	return s.toks, nil
}

// scanner is a single-pass cursor over src. col is the 1-based column of the
// most recently consumed rune, 0 at the start of a line.
type scanner struct {
	file string
	src  string
	pos  int
	line int
	col  int
	toks []token.Token
}

// next consumes one rune. A consumed newline resets the column and bumps the
// line, so the caller never tracks line breaks itself.
func (s *scanner) next() (rune, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	c, size := utf8.DecodeRuneInString(s.src[s.pos:])
	s.pos += size
	if c == '\n' {
		s.line++
		s.col = 0
	} else {
		s.col++
	}
	return c, true
}

// peek returns the next rune without consuming it.
func (s *scanner) peek() (rune, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	c, _ := utf8.DecodeRuneInString(s.src[s.pos:])
	return c, true
}

// peek2 returns the rune after the next one, the second half of the
// two-character lookahead used for float literals.
func (s *scanner) peek2() (rune, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	_, size := utf8.DecodeRuneInString(s.src[s.pos:])
	if s.pos+size >= len(s.src) {
		return 0, false
	}
	c, _ := utf8.DecodeRuneInString(s.src[s.pos+size:])
	return c, true
}

// match consumes the next rune only when it equals want.
func (s *scanner) match(want rune) bool {
	if c, ok := s.peek(); ok && c == want {
		s.next()
		return true
	}
	return false
}

func (s *scanner) emit(kind token.Kind, text string, start, end int) {
	s.toks = append(s.toks, token.Token{
		Kind: kind,
		Text: text,
		Span: token.Span{File: s.file, Line: s.line, Start: start, End: end},
	})
}

func (s *scanner) spanFrom(start int) token.Span {
	return token.Span{File: s.file, Line: s.line, Start: start, End: s.col}
}

func isWordStart(c rune) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isWordPart(c rune) bool { return isWordStart(c) || isDigit(c) }

func isDigit(c rune) bool { return '0' <= c && c <= '9' }

// scanWord reads an identifier or keyword starting with first.
func (s *scanner) scanWord(first rune) {
	start := s.col
	var b strings.Builder
	b.WriteRune(first)
	for {
		c, ok := s.peek()
		if !ok || !isWordPart(c) {
			break
		}
		b.WriteRune(c)
		s.next()
	}
	word := b.String()
	s.emit(token.Lookup(word), word, start, s.col)
}

// scanNumber reads an integer, continuing past a dot into a floating point
// literal only when a digit follows the dot.
func (s *scanner) scanNumber(first rune) {
	start := s.col
	var b strings.Builder
	b.WriteRune(first)
	s.scanDigits(&b)

	kind := token.Integer
	if c, ok := s.peek(); ok && c == '.' {
		if d, ok := s.peek2(); ok && isDigit(d) {
			kind = token.FloatingPoint
			b.WriteRune('.')
			s.next()
			s.scanDigits(&b)
		}
	}
	s.emit(kind, b.String(), start, s.col)
}

func (s *scanner) scanDigits(b *strings.Builder) {
	for {
		c, ok := s.peek()
		if !ok || !isDigit(c) {
			return
		}
		b.WriteRune(c)
		s.next()
	}
}

// scanString reads a double-quoted literal; the opening quote is consumed.
// The emitted Text is the decoded payload without quotes.
func (s *scanner) scanString() error {
	start := s.col
	var b strings.Builder
	for {
		c, ok := s.peek()
		if !ok || c == '\n' {
			return diag.Errorf(s.spanFrom(start), "unterminated string literal")
		}
		s.next()
		switch c {
		case '"':
			s.emit(token.String, b.String(), start, s.col)
			return nil
		case '\\':
			r, err := s.unescape(start)
			if err != nil {
				return err
			}
			b.WriteRune(r)
		default:
			b.WriteRune(c)
		}
	}
}

// scanCharacter reads a single-quoted literal holding exactly one character.
func (s *scanner) scanCharacter() error {
	start := s.col
	var b strings.Builder
	for {
		c, ok := s.peek()
		if !ok || c == '\n' {
			return diag.Errorf(s.spanFrom(start), "unterminated character literal")
		}
		s.next()
		switch c {
		case '\'':
			text := b.String()
			if utf8.RuneCountInString(text) != 1 {
				return diag.Errorf(s.spanFrom(start),
					"character literal must contain exactly one character")
			}
			s.emit(token.Character, text, start, s.col)
			return nil
		case '\\':
			r, err := s.unescape(start)
			if err != nil {
				return err
			}
			b.WriteRune(r)
		default:
			b.WriteRune(c)
		}
	}
}

// unescape decodes the character after a consumed backslash.
func (s *scanner) unescape(start int) (rune, error) {
	c, ok := s.next()
	if !ok {
		return 0, diag.Errorf(s.spanFrom(start), "unterminated escape sequence")
	}
	switch c {
	case 'n':
		return '\n', nil
	case 't':
		return '\t', nil
	case 'r':
		return '\r', nil
	case '0':
		return 0, nil
	case '\\', '\'', '"':
		return c, nil
	}
	return 0, diag.Errorf(s.spanFrom(s.col), "unknown escape sequence: '\\%c'", c)
}

// scanOperator reads operators, punctuation, and comments, longest match
// first. first has already been consumed.
func (s *scanner) scanOperator(first rune) error {
	start := s.col
	one := func(kind token.Kind, text string) { s.emit(kind, text, start, start) }
	two := func(kind token.Kind, text string) { s.emit(kind, text, start, s.col) }

	switch first {
	case '+':
		if s.match('=') {
			two(token.PlusEquals, "+=")
		} else {
			one(token.Plus, "+")
		}
	case '-':
		switch {
		case s.match('='):
			two(token.MinusEquals, "-=")
		case s.match('>'):
			two(token.Arrow, "->")
		default:
			one(token.Minus, "-")
		}
	case '*':
		if s.match('=') {
			two(token.AsteriskEquals, "*=")
		} else {
			one(token.Asterisk, "*")
		}
	case '/':
		switch {
		case s.match('='):
			two(token.SlashEquals, "/=")
		case s.match('/'):
			s.skipLineComment()
		case s.match('*'):
			return s.skipBlockComment(start)
		default:
			one(token.Slash, "/")
		}
	case '%':
		if s.match('=') {
			two(token.PercentEquals, "%=")
		} else {
			one(token.Percent, "%")
		}
	case '=':
		if s.match('=') {
			two(token.EqualsEquals, "==")
		} else {
			one(token.Equals, "=")
		}
	case '!':
		if s.match('=') {
			two(token.BangEquals, "!=")
		} else {
			one(token.Bang, "!")
		}
	case '<':
		if s.match('=') {
			two(token.LessThanEquals, "<=")
		} else {
			one(token.LessThan, "<")
		}
	case '>':
		if s.match('=') {
			two(token.GreaterThanEquals, ">=")
		} else {
			one(token.GreaterThan, ">")
		}
	case '(':
		one(token.OpenParen, "(")
	case ')':
		one(token.CloseParen, ")")
	case '{':
		one(token.OpenBrace, "{")
	case '}':
		one(token.CloseBrace, "}")
	case '[':
		one(token.OpenBracket, "[")
	case ']':
		one(token.CloseBracket, "]")
	case ',':
		one(token.Comma, ",")
	case '.':
		one(token.Dot, ".")
	case ':':
		one(token.Colon, ":")
	case ';':
		one(token.Semicolon, ";")
	case '&':
		one(token.Ampersand, "&")
	case '|':
		one(token.Pipe, "|")
	default:
		return diag.Errorf(s.spanFrom(start), "unexpected character: %q", first)
	}
	return nil
}

// skipLineComment discards through the end of the line.
func (s *scanner) skipLineComment() {
	for {
		c, ok := s.next()
		if !ok || c == '\n' {
			return
		}
	}
}

// skipBlockComment discards a /* */ comment, honoring nesting. start is the
// column of the opening slash, reported when the comment never closes.
func (s *scanner) skipBlockComment(start int) error {
	openLine := s.line
	depth := 1
	for depth > 0 {
		c, ok := s.next()
		if !ok {
			return diag.Errorf(
				token.Span{File: s.file, Line: openLine, Start: start, End: start + 1},
				"unterminated block comment")
		}
		switch c {
		case '/':
			if s.match('*') {
				depth++
			}
		case '*':
			if s.match('/') {
				depth--
			}
		}
	}
	return nil
}
