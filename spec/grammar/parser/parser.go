package parser

import (
	"errors"
	"log/slog"
)

type ParserOption func(p *Parser)

// Logger makes the parser log the rules it enters at the debug level. The lexer logs through
// the same logger with the component=lexer attribute.
func Logger(logger *slog.Logger) ParserOption {
	return func(p *Parser) {
		p.logger = logger
	}
}

// CollectProbeErrors makes the parser keep the tokens it drops when it probes whether the top-level
// declaration sequence continues. The tree is the same regardless of this option. Use
// Parser.ProbeErrors to get them.
func CollectProbeErrors() ParserOption {
	return func(p *Parser) {
		p.collectProbeErrs = true
	}
}

func Parse(src []rune, opts ...ParserOption) (*Grammar, error) {
	return NewParser(src, opts...).Parse()
}

// Parser is a recursive-descent parser with one token of lookahead. A Parser can parse its
// source only once and is not safe for concurrent use.
type Parser struct {
	lex *Lexer

	// cache holds a token pushed back by a rule that read it but didn't consume it.
	cache *Outcome[Token]

	collectProbeErrs bool
	probeErrs        []*Error

	logger *slog.Logger
}

func NewParser(src []rune, opts ...ParserOption) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}

	var lexOpts []LexerOption
	if p.logger != nil {
		lexOpts = append(lexOpts, LexerLogger(p.logger.With(slog.String("component", "lexer"))))
	}
	p.lex = NewLexer(src, lexOpts...)

	return p
}

// Parse returns an error only when the first token cannot start a grammar. Any other error is
// stored in the field of the tree where it was detected.
func (p *Parser) Parse() (*Grammar, error) {
	out := p.parseGrammar(p.next())
	g, ok := out.Value()
	if !ok {
		return nil, out.Err()
	}
	return g, nil
}

// ProbeErrors returns the tokens dropped at the end of the declaration sequence as errors. It
// is always empty unless the parser was created with CollectProbeErrors.
func (p *Parser) ProbeErrors() []*Error {
	return p.probeErrs
}

func (p *Parser) next() Outcome[Token] {
	if p.cache != nil {
		tok := *p.cache
		p.cache = nil
		return tok
	}
	return p.lex.Next()
}

// cacheLast pushes back the token the lexer produced last so that the next call to next
// returns it again.
func (p *Parser) cacheLast() {
	out := p.lex.Current()
	p.cache = &out
}

func (p *Parser) enter(rule string) {
	if p.logger == nil {
		return
	}
	p.logger.Debug("enter", slog.String("rule", rule))
}

// expect returns the token when it is of the kind. Otherwise, it returns the error the lexer
// produced or the cause located at the unexpected token. The token is consumed either way.
func expect(current Outcome[Token], kind TokenKind, cause FrontendError) Outcome[Token] {
	tok, ok := current.Value()
	if !ok {
		return current
	}
	if tok.Kind() != kind {
		return fail[Token](cause, tok.Pos())
	}
	return current
}

// Grammar -> Prod Grammar? | Path Grammar? ;
func (p *Parser) parseGrammar(current Outcome[Token]) Outcome[*Grammar] {
	p.enter("Grammar")

	tok, ok := current.Value()
	if !ok {
		return failWith[*Grammar](current.Failure())
	}
	switch tok.Kind() {
	case TokenKindName:
		prod := p.parseProduction(current)
		return succeed(&Grammar{
			Kind: DeclKindProd,
			Prod: prod,
			Next: p.parseRGrammar(p.next()),
		})
	case TokenKindUse:
		path := p.parsePath(current)
		return succeed(&Grammar{
			Kind: DeclKindPath,
			Path: path,
			Next: p.parseRGrammar(p.next()),
		})
	}
	return fail[*Grammar](ErrExpectedProdStartOrUse, tok.Pos())
}

func (p *Parser) parseRGrammar(current Outcome[Token]) *Outcome[*Grammar] {
	tok, ok := current.Value()
	if ok && (tok.Kind() == TokenKindName || tok.Kind() == TokenKindUse) {
		p.cacheLast()
		g := p.parseGrammar(p.next())
		return &g
	}

	// Nothing reads the token after the last declaration, so it is dropped here.
	p.cacheLast()
	if p.collectProbeErrs {
		switch {
		case ok:
			p.probeErrs = append(p.probeErrs, newError(ErrExpectedProdStartOrUse, tok.Pos()))
		case !errors.Is(current.Err(), ErrEOI):
			p.probeErrs = append(p.probeErrs, current.Failure())
		}
	}
	return nil
}

// Prod -> NAME Nullable "->" Union ";" ;
func (p *Parser) parseProduction(current Outcome[Token]) Outcome[*Prod] {
	p.enter("Prod")

	name := expect(current, TokenKindName, ErrExpectedName)
	nullable := p.parseNullable(p.next())
	arrow := expect(p.next(), TokenKindArrow, ErrExpectedArrow)
	union := p.parseUnion(p.next())
	endl := expect(p.next(), TokenKindEndl, ErrExpectedEndl)

	return succeed(&Prod{
		Name:     name,
		Nullable: nullable,
		Arrow:    arrow,
		Union:    union,
		Endl:     endl,
	})
}

// Nullable -> "?"? ;
func (p *Parser) parseNullable(current Outcome[Token]) *Nullable {
	tok, ok := current.Value()
	if !ok || tok.Kind() != TokenKindQMark {
		p.cacheLast()
		return nil
	}
	return &Nullable{
		QMark: tok,
	}
}

// Union -> Body OBody ;
func (p *Parser) parseUnion(current Outcome[Token]) Outcome[*Union] {
	p.enter("Union")

	body := p.parseBody(current)
	alt := p.parseOBody(p.next())

	return succeed(&Union{
		Body: body,
		Alt:  alt,
	})
}

// OBody -> ("|" Union)? ;
func (p *Parser) parseOBody(current Outcome[Token]) *Outcome[*OBody] {
	tok, ok := current.Value()
	if !ok || tok.Kind() != TokenKindOr {
		p.cacheLast()
		return nil
	}

	union := p.parseUnion(p.next())
	obody := succeed(&OBody{
		Or:    tok,
		Union: union,
	})
	return &obody
}

// Body -> Part Nullable Body? ;
func (p *Parser) parseBody(current Outcome[Token]) Outcome[*Body] {
	p.enter("Body")

	part := p.parsePart(current)
	nullable := p.parseNullable(p.next())
	next := p.parseRBody(p.next())

	return succeed(&Body{
		Part:     part,
		Nullable: nullable,
		Next:     next,
	})
}

func (p *Parser) parseRBody(current Outcome[Token]) *Outcome[*Body] {
	tok, ok := current.Value()
	if !ok {
		p.cacheLast()
		return nil
	}
	switch tok.Kind() {
	case TokenKindLiteral, TokenKindName, TokenKindEpsilon, TokenKindOpenBrace:
		p.cacheLast()
		body := p.parseBody(p.next())
		return &body
	}
	p.cacheLast()
	return nil
}

// Part -> LITERAL | "{" NAME "}" | NAME | EPSILON ;
func (p *Parser) parsePart(current Outcome[Token]) Outcome[*Part] {
	tok, ok := current.Value()
	if !ok {
		return failWith[*Part](current.Failure())
	}
	switch tok.Kind() {
	case TokenKindLiteral:
		return succeed(&Part{
			Kind:   PartKindLiteral,
			Symbol: current,
		})
	case TokenKindName:
		return succeed(&Part{
			Kind:   PartKindName,
			Symbol: current,
		})
	case TokenKindEpsilon:
		return succeed(&Part{
			Kind:   PartKindEpsilon,
			Symbol: current,
		})
	case TokenKindOpenBrace:
		name := expect(p.next(), TokenKindName, ErrExpectedName)
		cbrace := expect(p.next(), TokenKindCloseBrace, ErrExpectedCloseCurlyBrace)
		return succeed(&Part{
			Kind:   PartKindLexicalRule,
			Open:   current,
			Symbol: name,
			Close:  cbrace,
		})
	}
	return fail[*Part](ErrExpectedPart, tok.Pos())
}

// Path -> "use" NAME PathItemList ";" ;
func (p *Parser) parsePath(current Outcome[Token]) Outcome[*Path] {
	p.enter("Path")

	use := expect(current, TokenKindUse, ErrExpectedUse)
	name := expect(p.next(), TokenKindName, ErrExpectedName)
	// When the list is absent, the token that failed to start it has already been pushed back
	// and is the candidate for the ';'.
	items := p.parsePathItemList(p.next())
	endl := expect(p.next(), TokenKindEndl, ErrExpectedEndl)

	return succeed(&Path{
		Use:   use,
		Name:  name,
		Items: items,
		Endl:  endl,
	})
}

// PathItemList -> ("::" NAME PathItemList)? ;
func (p *Parser) parsePathItemList(current Outcome[Token]) *Outcome[*PathItemList] {
	tok, ok := current.Value()
	if !ok || tok.Kind() != TokenKindPathSeparator {
		p.cacheLast()
		return nil
	}

	name := expect(p.next(), TokenKindName, ErrExpectedName)
	next := p.parsePathItemList(p.next())

	list := succeed(&PathItemList{
		Sep:  tok,
		Name: name,
		Next: next,
	})
	return &list
}
