package tree

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// A tree is written in YAML as either a bare integer (a leaf)
// or a mapping with a label and optional children:
//
//	node: 7
//	children:
//	  - 2
//	  - node: 3
//	    children: [1]

var errEmpty = errors.New("empty document")

// Decode reads a tree from a YAML document.
func Decode(data []byte) (Tree, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errEmpty
	}
	return FromYAML(doc.Content[0])
}

// FromYAML converts a decoded YAML node into a tree.
func FromYAML(n *yaml.Node) (Tree, error) {
	d := decoder{active: make(map[*yaml.Node]bool)}
	return d.node(n)
}

// A decoder remembers the nodes on the current path
// so that a cyclic alias is an error rather than endless recursion.
type decoder struct {
	active map[*yaml.Node]bool
}

func (d *decoder) node(n *yaml.Node) (Tree, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, errEmpty
		}
		return d.node(n.Content[0])
	case yaml.AliasNode:
		if n.Alias == nil || d.active[n.Alias] {
			return nil, fmt.Errorf("line %d: alias refers to itself", n.Line)
		}
		return d.node(n.Alias)
	case yaml.ScalarNode:
		v, err := decodeLabel(n)
		if err != nil {
			return nil, err
		}
		return &Leaf{v}, nil
	case yaml.MappingNode:
		d.active[n] = true
		defer delete(d.active, n)
		return d.mapping(n)
	default:
		return nil, fmt.Errorf("line %d: a tree must be an integer or a mapping", n.Line)
	}
}

func (d *decoder) mapping(n *yaml.Node) (Tree, error) {
	var label, children *yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		switch k.Value {
		case "node":
			if label != nil {
				return nil, fmt.Errorf("line %d: duplicate key %q", k.Line, k.Value)
			}
			label = v
		case "children":
			if children != nil {
				return nil, fmt.Errorf("line %d: duplicate key %q", k.Line, k.Value)
			}
			children = v
		default:
			return nil, fmt.Errorf("line %d: unknown key %q", k.Line, k.Value)
		}
	}
	if label == nil {
		return nil, fmt.Errorf("line %d: node has no label", n.Line)
	}
	v, err := decodeLabel(label)
	if err != nil {
		return nil, err
	}
	node := &Node{Value: v}
	if children == nil {
		return node, nil
	}
	if children.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: children must be a sequence", children.Line)
	}
	node.Children = make([]Tree, len(children.Content))
	for i, c := range children.Content {
		if node.Children[i], err = d.node(c); err != nil {
			return nil, err
		}
	}
	return node, nil
}

func decodeLabel(n *yaml.Node) (int, error) {
	if n.Kind != yaml.ScalarNode || n.ShortTag() != "!!int" {
		return 0, fmt.Errorf("line %d: label %q is not an integer", n.Line, n.Value)
	}
	var v int
	if err := n.Decode(&v); err != nil {
		return 0, fmt.Errorf("line %d: %w", n.Line, err)
	}
	return v, nil
}
