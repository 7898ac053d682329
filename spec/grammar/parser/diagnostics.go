package parser

// Errors returns the errors stored in a tree in source order.
func Errors(g *Grammar) []*Error {
	c := &errorCollector{}
	c.grammar(g)
	return c.errs
}

type errorCollector struct {
	errs []*Error
}

func (c *errorCollector) add(err *Error) {
	if err == nil {
		return
	}
	c.errs = append(c.errs, err)
}

func (c *errorCollector) token(out Outcome[Token]) {
	c.add(out.Failure())
}

func (c *errorCollector) grammar(g *Grammar) {
	for g != nil {
		switch g.Kind {
		case DeclKindProd:
			prod, ok := g.Prod.Value()
			if !ok {
				c.add(g.Prod.Failure())
				break
			}
			c.prod(prod)
		case DeclKindPath:
			path, ok := g.Path.Value()
			if !ok {
				c.add(g.Path.Failure())
				break
			}
			c.path(path)
		}

		if g.Next == nil {
			return
		}
		next, ok := g.Next.Value()
		if !ok {
			c.add(g.Next.Failure())
			return
		}
		g = next
	}
}

func (c *errorCollector) prod(prod *Prod) {
	c.token(prod.Name)
	c.token(prod.Arrow)
	c.union(prod.Union)
	c.token(prod.Endl)
}

func (c *errorCollector) union(out Outcome[*Union]) {
	for {
		u, ok := out.Value()
		if !ok {
			c.add(out.Failure())
			return
		}
		c.body(u.Body)
		if u.Alt == nil {
			return
		}
		alt, ok := u.Alt.Value()
		if !ok {
			c.add(u.Alt.Failure())
			return
		}
		out = alt.Union
	}
}

func (c *errorCollector) body(out Outcome[*Body]) {
	for {
		b, ok := out.Value()
		if !ok {
			c.add(out.Failure())
			return
		}
		c.part(b.Part)
		if b.Next == nil {
			return
		}
		out = *b.Next
	}
}

func (c *errorCollector) part(out Outcome[*Part]) {
	part, ok := out.Value()
	if !ok {
		c.add(out.Failure())
		return
	}
	if part.Kind == PartKindLexicalRule {
		c.token(part.Open)
		c.token(part.Symbol)
		c.token(part.Close)
		return
	}
	c.token(part.Symbol)
}

func (c *errorCollector) path(path *Path) {
	c.token(path.Use)
	c.token(path.Name)
	items := path.Items
	for items != nil {
		list, ok := items.Value()
		if !ok {
			c.add(items.Failure())
			break
		}
		c.token(list.Name)
		items = list.Next
	}
	c.token(path.Endl)
}
