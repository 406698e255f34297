package expr

import (
	"bytes"
	"fmt"
	"strconv"
)

// format.go converts an expression back to infix text

type formatter struct {
	buf bytes.Buffer
}

// Show returns the infix form of e, such as "2 * (x + y)".
//
// Only a sum appearing directly under a product is parenthesized.
// Sums are never wrapped, since + binds weakest.
func Show(e Expr) string {
	var f formatter
	f.visitExpr(e)
	return f.buf.String()
}

func (f *formatter) visitExpr(e Expr) {
	switch e := e.(type) {
	case *Num:
		f.write(strconv.Itoa(e.Value))
	case *Var:
		f.write(e.Name)
	case *Add:
		f.visitExpr(e.Left)
		f.write(" + ")
		f.visitExpr(e.Right)
	case *Mul:
		f.visitOperand(e.Left)
		f.write(" * ")
		f.visitOperand(e.Right)
	default:
		panic(fmt.Sprintf("unhandled case in formatter.visitExpr: %T", e))
	}
}

// visitOperand writes one side of a product.
// It looks only at the immediate child, not its descendants.
func (f *formatter) visitOperand(e Expr) {
	if _, ok := e.(*Add); ok {
		f.write("(")
		f.visitExpr(e)
		f.write(")")
		return
	}
	f.visitExpr(e)
}

func (f *formatter) write(s string) {
	f.buf.WriteString(s)
}
