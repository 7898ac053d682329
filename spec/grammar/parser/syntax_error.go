package parser

import "fmt"

// FrontendError is a reason a token or a grammar rule failed.
type FrontendError int

const (
	// general errors
	ErrEOI FrontendError = iota
	ErrDefault

	// lexical errors
	ErrExpectedArrowTip
	ErrExpectedMoreInput
	ErrExpectedEscapeSequence
	ErrExpectedIdentifier
	ErrUnrecognizedInput
	ErrExpectedColon

	// syntax errors
	ErrExpectedProdStartOrUse
	ErrExpectedName
	ErrExpectedArrow
	ErrExpectedEndl
	ErrExpectedUse
	ErrExpectedCloseCurlyBrace
	ErrExpectedPart
)

var descriptions = map[FrontendError]string{
	ErrEOI:                     "end of input",
	ErrDefault:                 "default",
	ErrExpectedArrowTip:        "expected '>'",
	ErrExpectedMoreInput:       "expected more input",
	ErrExpectedEscapeSequence:  "expected escape sequence",
	ErrExpectedIdentifier:      "expected identifer",
	ErrUnrecognizedInput:       "unrecognized input",
	ErrExpectedColon:           "expected ':'",
	ErrExpectedProdStartOrUse:  "expected production name or 'use'",
	ErrExpectedName:            "expected Name",
	ErrExpectedArrow:           "expected ->",
	ErrExpectedEndl:            "expected endline",
	ErrExpectedUse:             "expected 'use'",
	ErrExpectedCloseCurlyBrace: "expected '}'",
	ErrExpectedPart:            "expected one of: LITERAL, LEXICAL RULE NAME, NAME, EPSILON",
}

// Description returns the fixed description of the error.
func (e FrontendError) Description() string {
	d, ok := descriptions[e]
	if !ok {
		return fmt.Sprintf("unknown error (%d)", int(e))
	}
	return d
}

// Error renders every error, syntactic ones included, with the "Lexical Error" prefix.
// Tools that match on the rendered text depend on this prefix.
func (e FrontendError) Error() string {
	return "Lexical Error: " + e.Description()
}

type ErrorCategory string

const (
	ErrorCategoryGeneral   = ErrorCategory("general")
	ErrorCategoryLexical   = ErrorCategory("lexical")
	ErrorCategorySyntactic = ErrorCategory("syntactic")
)

func (e FrontendError) Category() ErrorCategory {
	switch {
	case e <= ErrDefault:
		return ErrorCategoryGeneral
	case e <= ErrExpectedColon:
		return ErrorCategoryLexical
	default:
		return ErrorCategorySyntactic
	}
}

// Error is a FrontendError detected at a position in the source.
type Error struct {
	Cause FrontendError
	Pos   Position
}

func newError(cause FrontendError, pos Position) *Error {
	return &Error{
		Cause: cause,
		Pos:   pos,
	}
}

func (e *Error) Error() string {
	return e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}
