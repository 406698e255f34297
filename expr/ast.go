// Package expr implements a small arithmetic expression type:
// integer literals, variables, addition and multiplication.
package expr

import "fmt"

// An Expr is one of *Num, *Var, *Add or *Mul.
// Exprs are never modified after they are built.
type Expr interface {
	exprNode()
	String() string
}

type Num struct {
	Value int
}

type Var struct {
	Name string
}

type Add struct {
	Left  Expr
	Right Expr
}

type Mul struct {
	Left  Expr
	Right Expr
}

func (*Num) exprNode() {}
func (*Var) exprNode() {}
func (*Add) exprNode() {}
func (*Mul) exprNode() {}

func (e *Num) String() string { return Show(e) }
func (e *Var) String() string { return Show(e) }
func (e *Add) String() string { return Show(e) }
func (e *Mul) String() string { return Show(e) }

// shorthand constructors

func N(v int) *Num { return &Num{v} }
func V(name string) *Var { return &Var{name} }
func Plus(l, r Expr) *Add { return &Add{Left: l, Right: r} }
func Times(l, r Expr) *Mul { return &Mul{Left: l, Right: r} }

// Equal reports whether a and b are the same expression tree.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case *Num:
		y, ok := b.(*Num)
		return ok && x.Value == y.Value
	case *Var:
		y, ok := b.(*Var)
		return ok && x.Name == y.Name
	case *Add:
		y, ok := b.(*Add)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *Mul:
		y, ok := b.(*Mul)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	default:
		panic(fmt.Sprintf("unhandled case: %T", a))
	}
}
