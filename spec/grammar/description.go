package grammar

import (
	"encoding/json"
	"fmt"
)

type NodeType string

const (
	NodeTypeError       = NodeType("error")
	NodeTypeTerminal    = NodeType("terminal")
	NodeTypeNonTerminal = NodeType("non-terminal")
)

// Node describes a node of a concrete syntax tree in a form independent of the parser's types.
// A terminal has the text and the position of its token. An error node has the message and the
// position of the error. A non-terminal has children.
type Node struct {
	Type     NodeType
	KindName string
	Text     string

	// Value is the text with escape sequences interpreted. Only literals have it.
	Value string

	Message  string
	Line     int
	Offset   int
	Children []*Node
}

func NewNonTerminal(kindName string, children ...*Node) *Node {
	return &Node{
		Type:     NodeTypeNonTerminal,
		KindName: kindName,
		Children: children,
	}
}

func NewTerminal(kindName, text string, line, offset int) *Node {
	return &Node{
		Type:     NodeTypeTerminal,
		KindName: kindName,
		Text:     text,
		Line:     line,
		Offset:   offset,
	}
}

func NewError(message string, line, offset int) *Node {
	return &Node{
		Type:     NodeTypeError,
		KindName: "error",
		Message:  message,
		Line:     line,
		Offset:   offset,
	}
}

// Append adds non-nil children.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c == nil {
			continue
		}
		n.Children = append(n.Children, c)
	}
	return n
}

func (n *Node) MarshalJSON() ([]byte, error) {
	v, err := n.shape()
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

func (n *Node) MarshalYAML() (interface{}, error) {
	return n.shape()
}

func (n *Node) shape() (interface{}, error) {
	switch n.Type {
	case NodeTypeError:
		return struct {
			Type    NodeType `json:"type" yaml:"type"`
			Message string   `json:"message" yaml:"message"`
			Line    int      `json:"line" yaml:"line"`
			Offset  int      `json:"offset" yaml:"offset"`
		}{
			Type:    n.Type,
			Message: n.Message,
			Line:    n.Line,
			Offset:  n.Offset,
		}, nil
	case NodeTypeTerminal:
		return struct {
			Type     NodeType `json:"type" yaml:"type"`
			KindName string   `json:"kind_name" yaml:"kind_name"`
			Text     string   `json:"text" yaml:"text"`
			Value    string   `json:"value,omitempty" yaml:"value,omitempty"`
			Line     int      `json:"line" yaml:"line"`
			Offset   int      `json:"offset" yaml:"offset"`
		}{
			Type:     n.Type,
			KindName: n.KindName,
			Text:     n.Text,
			Value:    n.Value,
			Line:     n.Line,
			Offset:   n.Offset,
		}, nil
	case NodeTypeNonTerminal:
		return struct {
			Type     NodeType `json:"type" yaml:"type"`
			KindName string   `json:"kind_name" yaml:"kind_name"`
			Children []*Node  `json:"children" yaml:"children"`
		}{
			Type:     n.Type,
			KindName: n.KindName,
			Children: n.Children,
		}, nil
	default:
		return nil, fmt.Errorf("invalid node type: %v", n.Type)
	}
}
