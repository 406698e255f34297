package expr

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// An expression is written in YAML as nested single-key mappings:
//
//	mul:
//	  - 2
//	  - add: [x, y]
//
// A bare integer is a Num and a bare string is a Var.
// The long forms "num: 2" and "var: x" are accepted too.

var errEmpty = errors.New("empty document")

// Decode reads an expression from a YAML document.
func Decode(data []byte) (Expr, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errEmpty
	}
	return FromYAML(doc.Content[0])
}

// FromYAML converts a decoded YAML node into an expression.
func FromYAML(n *yaml.Node) (Expr, error) {
	d := decoder{active: make(map[*yaml.Node]bool)}
	return d.node(n)
}

// A decoder remembers the nodes on the current path
// so that a cyclic alias is an error rather than endless recursion.
type decoder struct {
	active map[*yaml.Node]bool
}

func (d *decoder) node(n *yaml.Node) (Expr, error) {
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
		return fromScalar(n)
	case yaml.MappingNode:
		if len(n.Content) != 2 {
			return nil, fmt.Errorf("line %d: expression mapping must have exactly one key, found %d", n.Line, len(n.Content)/2)
		}
		d.active[n] = true
		defer delete(d.active, n)
		return d.pair(n.Content[0], n.Content[1])
	default:
		return nil, fmt.Errorf("line %d: cannot use a sequence as an expression", n.Line)
	}
}

func fromScalar(n *yaml.Node) (Expr, error) {
	switch n.ShortTag() {
	case "!!int":
		var v int
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return &Num{v}, nil
	case "!!str":
		if n.Value == "" {
			return nil, fmt.Errorf("line %d: empty variable name", n.Line)
		}
		return &Var{n.Value}, nil
	default:
		return nil, fmt.Errorf("line %d: %q is neither a number nor a variable", n.Line, n.Value)
	}
}

func (d *decoder) pair(key, val *yaml.Node) (Expr, error) {
	switch key.Value {
	case "num":
		if val.Kind != yaml.ScalarNode || val.ShortTag() != "!!int" {
			return nil, fmt.Errorf("line %d: num wants an integer", val.Line)
		}
		return fromScalar(val)
	case "var":
		if val.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: var wants a name", val.Line)
		}
		if val.Value == "" {
			return nil, fmt.Errorf("line %d: empty variable name", val.Line)
		}
		return &Var{val.Value}, nil
	case "add", "mul":
		if val.Kind != yaml.SequenceNode || len(val.Content) != 2 {
			return nil, fmt.Errorf("line %d: %s takes exactly 2 operands", val.Line, key.Value)
		}
		l, err := d.node(val.Content[0])
		if err != nil {
			return nil, err
		}
		r, err := d.node(val.Content[1])
		if err != nil {
			return nil, err
		}
		if key.Value == "add" {
			return &Add{Left: l, Right: r}, nil
		}
		return &Mul{Left: l, Right: r}, nil
	default:
		return nil, fmt.Errorf("line %d: unknown expression kind %q", key.Line, key.Value)
	}
}
