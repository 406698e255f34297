package expr

import (
	"fmt"
	"sort"
)

// Env assigns values to variables for Eval.
type Env map[string]int

// A VarSet is the set of variable names used by an expression.
type VarSet map[string]struct{}

func (s VarSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

func (s VarSet) Len() int { return len(s) }

// Sorted returns the names in s in lexical order.
func (s VarSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether the variable name occurs anywhere in e.
func Has(e Expr, name string) bool {
	switch e := e.(type) {
	case *Num:
		return false
	case *Var:
		return e.Name == name
	case *Add:
		return Has(e.Left, name) || Has(e.Right, name)
	case *Mul:
		return Has(e.Left, name) || Has(e.Right, name)
	default:
		panic(fmt.Sprintf("unhandled case: %T", e))
	}
}

// Vars returns the set of variables used in e.
func Vars(e Expr) VarSet {
	s := make(VarSet)
	collectVars(s, e)
	return s
}

// collectVars adds the variables of e to s.
// Both operands add to the same set.
func collectVars(s VarSet, expr Expr) {
	switch e := expr.(type) {
	case *Num:
	case *Var:
		s[e.Name] = struct{}{}
	case *Add:
		collectVars(s, e.Left)
		collectVars(s, e.Right)
	case *Mul:
		collectVars(s, e.Left)
		collectVars(s, e.Right)
	default:
		panic(fmt.Sprintf("unhandled case: %T", e))
	}
}

// Eval computes the value of e.
// Variables missing from env evaluate to def.
// Arithmetic wraps around like ordinary int arithmetic.
func Eval(e Expr, env Env, def int) int {
	switch e := e.(type) {
	case *Num:
		return e.Value
	case *Var:
		if v, ok := env[e.Name]; ok {
			return v
		}
		return def
	case *Add:
		return Eval(e.Left, env, def) + Eval(e.Right, env, def)
	case *Mul:
		return Eval(e.Left, env, def) * Eval(e.Right, env, def)
	default:
		panic(fmt.Sprintf("unhandled case: %T", e))
	}
}
