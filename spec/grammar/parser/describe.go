package parser

import (
	spec "github.com/nihei9/gideon/spec/grammar"
)

// Describe converts a tree into its generic description. Every token becomes a terminal node,
// every error becomes an error node, and every absent option or ended repetition is omitted.
func Describe(g *Grammar) *spec.Node {
	if g == nil {
		return nil
	}
	return describeGrammar(g)
}

func describeOutcome[T any](out Outcome[T], describe func(T) *spec.Node) *spec.Node {
	v, ok := out.Value()
	if !ok {
		err := out.Failure()
		return spec.NewError(err.Error(), err.Pos.Line, err.Pos.Offset)
	}
	return describe(v)
}

func describeRecursive[T any](out *Outcome[T], describe func(T) *spec.Node) *spec.Node {
	if out == nil {
		return nil
	}
	return describeOutcome(*out, describe)
}

func describeToken(tok Token) *spec.Node {
	n := spec.NewTerminal(string(tok.Kind()), tok.Text(), tok.data.line, tok.data.offset)
	if tok.Kind() == TokenKindLiteral {
		n.Value = spec.UnescapeLiteral(tok.Text())
	}
	return n
}

func describeTokenOutcome(out Outcome[Token]) *spec.Node {
	return describeOutcome(out, describeToken)
}

func describeNullable(n *Nullable) *spec.Node {
	if n == nil {
		return nil
	}
	return spec.NewNonTerminal("Nullable", describeToken(n.QMark))
}

func describeGrammar(g *Grammar) *spec.Node {
	n := spec.NewNonTerminal("Grammar")
	switch g.Kind {
	case DeclKindProd:
		n.Append(describeOutcome(g.Prod, describeProd))
	case DeclKindPath:
		n.Append(describePath(g.Path))
	}
	return n.Append(describeRecursive(g.Next, describeGrammar))
}

func describeProd(prod *Prod) *spec.Node {
	return spec.NewNonTerminal("Prod").Append(
		describeTokenOutcome(prod.Name),
		describeNullable(prod.Nullable),
		describeTokenOutcome(prod.Arrow),
		describeOutcome(prod.Union, describeUnion),
		describeTokenOutcome(prod.Endl),
	)
}

func describeUnion(u *Union) *spec.Node {
	return spec.NewNonTerminal("Union").Append(
		describeOutcome(u.Body, describeBody),
		describeRecursive(u.Alt, describeOBody),
	)
}

func describeOBody(o *OBody) *spec.Node {
	return spec.NewNonTerminal("OBody").Append(
		describeToken(o.Or),
		describeOutcome(o.Union, describeUnion),
	)
}

func describeBody(b *Body) *spec.Node {
	return spec.NewNonTerminal("Body").Append(
		describeOutcome(b.Part, describePart),
		describeNullable(b.Nullable),
		describeRecursive(b.Next, describeBody),
	)
}

func describePart(part *Part) *spec.Node {
	n := spec.NewNonTerminal("Part")
	if part.Kind == PartKindLexicalRule {
		n.KindName = "LexicalRuleName"
		return n.Append(
			describeTokenOutcome(part.Open),
			describeTokenOutcome(part.Symbol),
			describeTokenOutcome(part.Close),
		)
	}
	return n.Append(describeTokenOutcome(part.Symbol))
}

func describePath(out Outcome[*Path]) *spec.Node {
	return describeOutcome(out, func(path *Path) *spec.Node {
		return spec.NewNonTerminal("Path").Append(
			describeTokenOutcome(path.Use),
			describeTokenOutcome(path.Name),
			describeRecursive(path.Items, describePathItemList),
			describeTokenOutcome(path.Endl),
		)
	})
}

func describePathItemList(list *PathItemList) *spec.Node {
	return spec.NewNonTerminal("PathItemList").Append(
		describeToken(list.Sep),
		describeTokenOutcome(list.Name),
		describeRecursive(list.Next, describePathItemList),
	)
}
