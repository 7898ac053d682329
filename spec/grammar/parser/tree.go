package parser

// In the following node types, a pointer to an Outcome is nil when the repetition or option it
// represents ends. A nil pointer is not an error.

type DeclKind string

const (
	DeclKindProd = DeclKind("production")
	DeclKindPath = DeclKind("path")
)

// Grammar is a declaration followed by the rest of the grammar.
//
//	Grammar -> Prod Grammar? | Path Grammar? ;
type Grammar struct {
	Kind DeclKind

	// Prod is meaningful only when Kind is DeclKindProd.
	Prod Outcome[*Prod]

	// Path is meaningful only when Kind is DeclKindPath.
	Path Outcome[*Path]

	Next *Outcome[*Grammar]
}

// Prod is a production.
//
//	Prod -> NAME "?"? "->" Union ";" ;
type Prod struct {
	Name     Outcome[Token]
	Nullable *Nullable
	Arrow    Outcome[Token]
	Union    Outcome[*Union]
	Endl     Outcome[Token]
}

// Union is a body followed by the remaining alternatives.
//
//	Union -> Body ("|" Union)? ;
type Union struct {
	Body Outcome[*Body]
	Alt  *Outcome[*OBody]
}

// OBody is an alternation arm.
type OBody struct {
	Or    Token
	Union Outcome[*Union]
}

// Body is a sequence of parts.
//
//	Body -> Part "?"? Body? ;
type Body struct {
	Part     Outcome[*Part]
	Nullable *Nullable
	Next     *Outcome[*Body]
}

type PartKind string

const (
	PartKindLiteral     = PartKind("literal")
	PartKindLexicalRule = PartKind("lexical rule name")
	PartKindName        = PartKind("name")
	PartKindEpsilon     = PartKind("epsilon")
)

// Part is an atomic grammar symbol.
//
//	Part -> LITERAL | "{" NAME "}" | NAME | EPSILON ;
type Part struct {
	Kind PartKind

	// Open and Close are meaningful only when Kind is PartKindLexicalRule.
	Open   Outcome[Token]
	Symbol Outcome[Token]
	Close  Outcome[Token]
}

// Nullable marks the preceding symbol as optional.
type Nullable struct {
	QMark Token
}

// Path is an import path.
//
//	Path -> "use" NAME PathItemList? ";" ;
type Path struct {
	Use   Outcome[Token]
	Name  Outcome[Token]
	Items *Outcome[*PathItemList]
	Endl  Outcome[Token]
}

// PathItemList is a segment of a path and the remaining segments.
//
//	PathItemList -> "::" NAME PathItemList? ;
type PathItemList struct {
	Sep  Token
	Name Outcome[Token]
	Next *Outcome[*PathItemList]
}
