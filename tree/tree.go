// Package tree implements an integer-labeled tree whose nodes have
// any number of ordered children.
package tree

import (
	"fmt"
	"strconv"
	"strings"
)

// A Tree is either a *Leaf or a *Node.
// Operations never modify their input; they build new trees.
type Tree interface {
	treeNode()
	String() string
}

type Leaf struct {
	Value int
}

// A Node carries a label and an ordered, possibly empty, list of children.
// A Node with no children is still a Node and not a Leaf.
type Node struct {
	Value    int
	Children []Tree
}

func (*Leaf) treeNode() {}
func (*Node) treeNode() {}

func L(v int) *Leaf { return &Leaf{v} }

func N(v int, children ...Tree) *Node {
	return &Node{Value: v, Children: children}
}

// String renders a leaf as its label and a node as "(label child...)".
func (t *Leaf) String() string { return strconv.Itoa(t.Value) }

func (t *Node) String() string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(strconv.Itoa(t.Value))
	for _, c := range t.Children {
		b.WriteString(" ")
		b.WriteString(c.String())
	}
	b.WriteString(")")
	return b.String()
}

// Has reports whether v labels t or any of its descendants.
func Has(t Tree, v int) bool {
	switch t := t.(type) {
	case *Leaf:
		return t.Value == v
	case *Node:
		if t.Value == v {
			return true
		}
		for _, c := range t.Children {
			if Has(c, v) {
				return true
			}
		}
		return false
	default:
		panic(fmt.Sprintf("unhandled case: %T", t))
	}
}

// Map returns a tree of the same shape as t with f applied to every label.
func Map(t Tree, f func(int) int) Tree {
	switch t := t.(type) {
	case *Leaf:
		return &Leaf{f(t.Value)}
	case *Node:
		var children = make([]Tree, len(t.Children))
		for i := range t.Children {
			children[i] = Map(t.Children[i], f)
		}
		return &Node{
			Value:    f(t.Value),
			Children: children,
		}
	default:
		panic(fmt.Sprintf("unhandled case: %T", t))
	}
}

// CountLeaves returns the number of leaves in t.
// Nodes are not counted, even when they have no children.
func CountLeaves(t Tree) int {
	switch t := t.(type) {
	case *Leaf:
		return 1
	case *Node:
		n := 0
		for _, c := range t.Children {
			n += CountLeaves(c)
		}
		return n
	default:
		panic(fmt.Sprintf("unhandled case: %T", t))
	}
}

// Equal reports whether a and b have the same shape and labels.
// A nil child list and an empty one are equal.
func Equal(a, b Tree) bool {
	switch x := a.(type) {
	case *Leaf:
		y, ok := b.(*Leaf)
		return ok && x.Value == y.Value
	case *Node:
		y, ok := b.(*Node)
		if !ok || x.Value != y.Value || len(x.Children) != len(y.Children) {
			return false
		}
		for i := range x.Children {
			if !Equal(x.Children[i], y.Children[i]) {
				return false
			}
		}
		return true
	default:
		panic(fmt.Sprintf("unhandled case: %T", a))
	}
}

// SameShape reports whether a and b differ at most in their labels.
func SameShape(a, b Tree) bool {
	switch x := a.(type) {
	case *Leaf:
		_, ok := b.(*Leaf)
		return ok
	case *Node:
		y, ok := b.(*Node)
		if !ok || len(x.Children) != len(y.Children) {
			return false
		}
		for i := range x.Children {
			if !SameShape(x.Children[i], y.Children[i]) {
				return false
			}
		}
		return true
	default:
		panic(fmt.Sprintf("unhandled case: %T", a))
	}
}
