package parser

import "fmt"

type TokenKind string

const (
	TokenKindName          = TokenKind("Name")
	TokenKindArrow         = TokenKind("Arrow")
	TokenKindOr            = TokenKind("Or")
	TokenKindEndl          = TokenKind("Endline")
	TokenKindEpsilon       = TokenKind("Epsilon")
	TokenKindLiteral       = TokenKind("Literal")
	TokenKindUse           = TokenKind("Use")
	TokenKindPathSeparator = TokenKind("Path Separator")
	TokenKindOpenBrace     = TokenKind("Open Brace")
	TokenKindCloseBrace    = TokenKind("Close Brace")
	TokenKindQMark         = TokenKind("Question Mark")
)

// Position is a location in a source. Line is 1-based, and Offset is a 0-based character count
// within the line.
type Position struct {
	Line   int
	Offset int
}

func newPosition(line, offset int) Position {
	return Position{
		Line:   line,
		Offset: offset,
	}
}

func (p Position) String() string {
	return fmt.Sprintf("%v:%v", p.Line, p.Offset)
}

// TokenData is a view into the source buffer. The text is never copied, so the buffer stays
// reachable as long as the token is.
type TokenData struct {
	text   []rune
	line   int
	offset int
}

func newTokenData(text []rune, line, offset int) TokenData {
	return TokenData{
		text:   text,
		line:   line,
		offset: offset,
	}
}

func (d TokenData) Text() string {
	return string(d.text)
}

// Runes returns the underlying view. Callers must not modify it.
func (d TokenData) Runes() []rune {
	return d.text
}

func (d TokenData) Line() int {
	return d.line
}

func (d TokenData) Offset() int {
	return d.offset
}

func (d TokenData) Pos() Position {
	return newPosition(d.line, d.offset)
}

func (d TokenData) String() string {
	return fmt.Sprintf("value: '%v', line: %v, offset: %v", d.Text(), d.line, d.offset)
}

type Token struct {
	kind TokenKind
	data TokenData
}

func newToken(kind TokenKind, data TokenData) Token {
	return Token{
		kind: kind,
		data: data,
	}
}

func (t Token) Kind() TokenKind {
	return t.kind
}

func (t Token) Data() TokenData {
	return t.data
}

func (t Token) Text() string {
	return t.data.Text()
}

func (t Token) Pos() Position {
	return t.data.Pos()
}

func (t Token) String() string {
	return fmt.Sprintf("%v: %v", t.kind, t.data)
}

// clean removes the surrounding quotes from a literal. The position still points at the opening quote.
func (t Token) clean() Token {
	if t.kind != TokenKindLiteral || len(t.data.text) < 2 {
		return t
	}
	return newToken(t.kind, newTokenData(t.data.text[1:len(t.data.text)-1], t.data.line, t.data.offset))
}
