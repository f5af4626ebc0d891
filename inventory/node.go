package inventory

import (
	"encoding/xml"
)

// Node is a generic XML element. Element and attribute names keep their
// literal prefix ("xsi:type"), so a node re-encodes the way it was read.
//
// An element holding both text and child elements keeps its text segments
// as unnamed children in document order; Text is then its whole inner text.
type Node struct {
	Name     string
	Attrs    []xml.Attr
	Text     string
	Children []*Node
}

// Child returns the first direct child named name, or nil
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildText returns the text of the first child named name.
// ok is false when no such child exists.
func (n *Node) ChildText(name string) (text string, ok bool) {
	c := n.Child(name)
	if c == nil {
		return "", false
	}
	return c.Text, true
}

func (n *Node) isText() bool {
	return n.Name == ""
}

// mixed reports whether n interleaves text segments with child elements
func (n *Node) mixed() bool {
	for _, c := range n.Children {
		if c.isText() {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of n
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{Name: n.Name, Text: n.Text}
	if n.Attrs != nil {
		out.Attrs = make([]xml.Attr, len(n.Attrs))
		copy(out.Attrs, n.Attrs)
	}
	if n.Children != nil {
		out.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = c.Clone()
		}
	}
	return out
}

// qualified joins a raw token name back into its literal form
func qualified(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}
