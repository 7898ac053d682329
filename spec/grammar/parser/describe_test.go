package parser

import (
	"strings"
	"testing"

	spec "github.com/nihei9/gideon/spec/grammar"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		tree    string
	}{
		{
			caption: "a tree without errors",
			src:     "use a::b;\nA? -> {X} | \"q\" ;",
			tree: `Grammar
├─ Path
│  ├─ Use: value: 'use', line: 1, offset: 0
│  ├─ Name: value: 'a', line: 1, offset: 4
│  ├─ PathItemList
│  │  ├─ Path Separator: value: '::', line: 1, offset: 5
│  │  └─ Name: value: 'b', line: 1, offset: 7
│  └─ Endline: value: ';', line: 1, offset: 8
└─ Grammar
   └─ Prod
      ├─ Name: value: 'A', line: 2, offset: 0
      ├─ Nullable
      │  └─ Question Mark: value: '?', line: 2, offset: 1
      ├─ Arrow: value: '->', line: 2, offset: 3
      ├─ Union
      │  ├─ Body
      │  │  └─ LexicalRuleName
      │  │     ├─ Open Brace: value: '{', line: 2, offset: 6
      │  │     ├─ Name: value: 'X', line: 2, offset: 7
      │  │     └─ Close Brace: value: '}', line: 2, offset: 8
      │  └─ OBody
      │     ├─ Or: value: '|', line: 2, offset: 10
      │     └─ Union
      │        └─ Body
      │           └─ Part
      │              └─ Literal: value: 'q', line: 2, offset: 12
      └─ Endline: value: ';', line: 2, offset: 16
`,
		},
		{
			caption: "errors are described in the place they were detected",
			src:     `A -> ;`,
			tree: `Grammar
└─ Prod
   ├─ Name: value: 'A', line: 1, offset: 0
   ├─ Arrow: value: '->', line: 1, offset: 2
   ├─ Union
   │  └─ Body
   │     └─ <error> Lexical Error: expected one of: LITERAL, LEXICAL RULE NAME, NAME, EPSILON, line: 1, offset: 5
   └─ <error> Lexical Error: end of input, line: 1, offset: 6
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			g := mustParse(t, tt.src)
			var b strings.Builder
			spec.PrintTree(&b, Describe(g))
			if b.String() != tt.tree {
				t.Fatalf("unexpected tree; want:\n%v\ngot:\n%v", tt.tree, b.String())
			}
		})
	}
}

func TestDescribe_LiteralValue(t *testing.T) {
	g := mustParse(t, `A -> "a\"b\\c" ;`)
	n := Describe(g)

	// Grammar > Prod > Union > Body > Part > Literal
	lit := n.Children[0].Children[2].Children[0].Children[0].Children[0]
	if lit.Type != spec.NodeTypeTerminal || lit.KindName != string(TokenKindLiteral) {
		t.Fatalf("unexpected node: %+v", lit)
	}
	if lit.Text != `a\"b\\c` {
		t.Fatalf("the text must keep escape sequences; got: %v", lit.Text)
	}
	if lit.Value != `a"b\c` {
		t.Fatalf("the value must interpret escape sequences; got: %v", lit.Value)
	}
}

func TestDescribe_Nil(t *testing.T) {
	if Describe(nil) != nil {
		t.Fatalf("a nil tree must be described as nil")
	}
}
