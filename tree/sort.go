package tree

import (
	"fmt"
	"slices"
)

// sort.go reassigns labels so that a pre-order walk reads them in order.
//
// Sort works in two passes:
//
//	1. flatten the labels in pre-order and sort them
//	2. walk the original shape in pre-order again, handing out
//	   the sorted labels one at a time
//
// Labels move freely between subtrees; this is not a per-subtree sort.

// Preorder returns the labels of t, each node before its children
// and children from left to right.
func Preorder(t Tree) []int {
	return preorder(nil, t)
}

func preorder(vals []int, t Tree) []int {
	switch t := t.(type) {
	case *Leaf:
		return append(vals, t.Value)
	case *Node:
		vals = append(vals, t.Value)
		for _, c := range t.Children {
			vals = preorder(vals, c)
		}
		return vals
	default:
		panic(fmt.Sprintf("unhandled case: %T", t))
	}
}

// Sort returns a tree with the same shape as t whose pre-order
// labels are the labels of t in ascending order.
func Sort(t Tree) Tree {
	vals := Preorder(t)
	slices.Sort(vals)
	c := &cursor{vals: vals}
	return c.rebuild(t)
}

// A cursor hands out sorted labels during the rebuild.
// It is shared by every level of the recursion.
type cursor struct {
	vals []int
	pos  int
}

func (c *cursor) next() int {
	v := c.vals[c.pos]
	c.pos++
	return v
}

func (c *cursor) rebuild(t Tree) Tree {
	switch t := t.(type) {
	case *Leaf:
		return &Leaf{c.next()}
	case *Node:
		// the node takes its label before any child does
		n := &Node{Value: c.next()}
		n.Children = make([]Tree, len(t.Children))
		for i := range t.Children {
			n.Children[i] = c.rebuild(t.Children[i])
		}
		return n
	default:
		panic(fmt.Sprintf("unhandled case: %T", t))
	}
}
