package error

import (
	"fmt"
	"strings"
)

// SpecError is an error located in a grammar source.
type SpecError struct {
	Cause      error
	SourceName string

	// Source is the whole source the error was found in. When it is set, Error() quotes the line
	// the error was found in.
	Source []rune

	// Line is 1-based and Offset is 0-based. A zero Line means the position is unknown.
	Line   int
	Offset int
}

func (e *SpecError) Error() string {
	var b strings.Builder
	if e.SourceName != "" {
		fmt.Fprintf(&b, "%v: ", e.SourceName)
	}
	if e.Line != 0 {
		fmt.Fprintf(&b, "%v:%v: ", e.Line, e.Offset)
	}
	fmt.Fprintf(&b, "error: %v", e.Cause)

	line, ok := readLine(e.Source, e.Line)
	if ok {
		fmt.Fprintf(&b, "\n    %v", line)
		if e.Offset <= len([]rune(line)) {
			fmt.Fprintf(&b, "\n    %v^", strings.Repeat(" ", e.Offset))
		}
	}

	return b.String()
}

func (e *SpecError) Unwrap() error {
	return e.Cause
}

func readLine(src []rune, line int) (string, bool) {
	if len(src) == 0 || line <= 0 {
		return "", false
	}

	i := 1
	start := 0
	for pos, c := range src {
		if c != '\n' {
			continue
		}
		if i == line {
			return strings.TrimSuffix(string(src[start:pos]), "\r"), true
		}
		i++
		start = pos + 1
	}
	if i == line && start < len(src) {
		return string(src[start:]), true
	}

	return "", false
}
