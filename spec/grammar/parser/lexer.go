package parser

import (
	"log/slog"
	"unicode"
)

const (
	epsilonChar = 'ϵ'

	kwNone = "None"
	kwUse  = "use"
)

type LexerOption func(l *Lexer)

// LexerLogger makes the lexer report every outcome it produces at the debug level.
func LexerLogger(logger *slog.Logger) LexerOption {
	return func(l *Lexer) {
		l.logger = logger
	}
}

// Lexer scans a character buffer one token at a time. The buffer is borrowed and must not be
// modified while the lexer or any token it produced is in use.
type Lexer struct {
	src []rune

	// cur is the scan position, and last is the start of the span not yet accepted as a token.
	cur  int
	last int
	end  int

	// line and offset are the position of src[last].
	line   int
	offset int

	out    Outcome[Token]
	logger *slog.Logger
}

func NewLexer(src []rune, opts ...LexerOption) *Lexer {
	l := &Lexer{
		src:    src,
		end:    len(src),
		line:   1,
		offset: 0,
		out:    fail[Token](ErrDefault, newPosition(1, 0)),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Current returns the outcome the last call to Next produced without scanning again.
// Before the first call to Next, it is ErrDefault.
func (l *Lexer) Current() Outcome[Token] {
	return l.out
}

// Next scans the next token. Whitespace and comments are skipped. Once the input is exhausted,
// every call returns ErrEOI.
func (l *Lexer) Next() Outcome[Token] {
	l.out = l.lex()
	if l.logger != nil {
		if tok, ok := l.out.Value(); ok {
			l.logger.Debug("token", slog.String("kind", string(tok.Kind())), slog.String("text", tok.Text()),
				slog.Int("line", tok.data.line), slog.Int("offset", tok.data.offset))
		} else {
			err := l.out.Failure()
			l.logger.Debug("lexical error", slog.String("cause", err.Cause.Description()),
				slog.Int("line", err.Pos.Line), slog.Int("offset", err.Pos.Offset))
		}
	}
	return l.out
}

func (l *Lexer) lex() Outcome[Token] {
	for {
		c, ok := l.peekChar()
		if !ok {
			return l.fail(ErrEOI)
		}

		switch c {
		case '|':
			l.advance()
			return l.emit(TokenKindOr)
		case '{':
			l.advance()
			return l.emit(TokenKindOpenBrace)
		case '}':
			l.advance()
			return l.emit(TokenKindCloseBrace)
		case '"':
			return l.lexLiteral()
		case epsilonChar:
			l.advance()
			return l.emit(TokenKindEpsilon)
		case '-':
			l.advance()
			c, ok := l.peekChar()
			if !ok {
				return l.fail(ErrExpectedMoreInput)
			}
			if c != '>' {
				return l.fail(ErrExpectedArrowTip)
			}
			l.advance()
			return l.emit(TokenKindArrow)
		case ';':
			l.advance()
			return l.emit(TokenKindEndl)
		case ':':
			l.advance()
			c, ok := l.peekChar()
			if !ok {
				return l.fail(ErrExpectedMoreInput)
			}
			if c != ':' {
				return l.fail(ErrExpectedColon)
			}
			l.advance()
			return l.emit(TokenKindPathSeparator)
		case '#':
			l.skipComment()
			continue
		case '?':
			l.advance()
			return l.emit(TokenKindQMark)
		}

		switch {
		case isIDHead(c):
			return l.lexIdentifier()
		case unicode.IsSpace(c):
			l.skipWhiteSpaces()
			continue
		}

		l.advance()
		return l.fail(ErrUnrecognizedInput)
	}
}

func (l *Lexer) lexLiteral() Outcome[Token] {
	// Skip the opening quote.
	l.advance()
	for {
		c, ok := l.peekChar()
		if !ok {
			return l.fail(ErrExpectedEscapeSequence)
		}
		l.advance()
		switch c {
		case '"':
			return l.emit(TokenKindLiteral)
		case '\\':
			c, ok := l.peekChar()
			if !ok {
				return l.fail(ErrExpectedEscapeSequence)
			}
			l.advance()
			if c != '"' && c != '\\' {
				return l.fail(ErrExpectedEscapeSequence)
			}
		}
	}
}

func (l *Lexer) lexIdentifier() Outcome[Token] {
	for {
		c, ok := l.peekChar()
		if !ok || !isIDHead(c) {
			break
		}
		l.advance()
	}
	if l.cur == l.last {
		return l.fail(ErrExpectedIdentifier)
	}
	for {
		c, ok := l.peekChar()
		if !ok || !isIDTail(c) {
			break
		}
		l.advance()
	}

	switch string(l.currentMatch()) {
	case kwNone:
		return l.emit(TokenKindEpsilon)
	case kwUse:
		return l.emit(TokenKindUse)
	default:
		return l.emit(TokenKindName)
	}
}

func (l *Lexer) skipComment() {
	// Skip '#'.
	l.skip()
	for {
		c, ok := l.peekChar()
		if !ok {
			return
		}
		l.skip()
		if c == '\n' {
			l.line++
			l.offset = 0
			return
		}
	}
}

func (l *Lexer) skipWhiteSpaces() {
	for {
		c, ok := l.peekChar()
		if !ok || !unicode.IsSpace(c) {
			return
		}
		l.skip()
		if c == '\n' {
			l.line++
			l.offset = 0
		}
	}
}

func (l *Lexer) peekChar() (rune, bool) {
	if l.cur >= l.end {
		return 0, false
	}
	return l.src[l.cur], true
}

// advance adds the current character to the pending token span.
func (l *Lexer) advance() {
	l.cur++
}

// skip consumes the current character without adding it to any token.
func (l *Lexer) skip() {
	l.cur++
	l.last++
	l.offset++
}

func (l *Lexer) currentMatch() []rune {
	return l.src[l.last:l.cur]
}

// acceptToken closes the pending span and returns it along with the position where it started.
func (l *Lexer) acceptToken() TokenData {
	span := l.currentMatch()
	data := newTokenData(span, l.line, l.offset)
	l.last = l.cur

	newlines := 0
	for _, c := range span {
		if c == '\n' {
			newlines++
		}
	}
	if newlines > 0 {
		l.line += newlines
		l.offset = 0
	} else {
		l.offset += len(span)
	}

	return data
}

func (l *Lexer) emit(kind TokenKind) Outcome[Token] {
	return succeed(newToken(kind, l.acceptToken()).clean())
}

// fail discards the pending span so that the next call to Next starts a fresh token.
func (l *Lexer) fail(cause FrontendError) Outcome[Token] {
	data := l.acceptToken()
	return fail[Token](cause, data.Pos())
}

func isIDHead(c rune) bool {
	return isAlphabetic(c) || c == '_'
}

func isIDTail(c rune) bool {
	return isAlphabetic(c) || unicode.IsNumber(c) || c == '_'
}

func isAlphabetic(c rune) bool {
	return unicode.IsLetter(c) || unicode.In(c, unicode.Nl, unicode.Other_Alphabetic)
}
