// Package expression evaluates quantity expressions written in HCL native
// syntax, such as `9.81 * m / pow(s, 2)` or `to(60 * mph, km / h)`.
//
// Identifiers are resolved against a Resolver (usually a registry). Only
// arithmetic is supported: number literals, identifiers, parentheses, unary
// minus, the binary operators + - * / and the functions listed by Functions.
package expression

import (
	"fmt"
	"math"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"unties/core/quantity"
	uerrors "unties/internal/errors"
)

// Resolver looks up named quantities
type Resolver interface {
	Lookup(symbol string) (quantity.Quantity, bool)
}

// ResolverFunc adapts a plain function to Resolver
type ResolverFunc func(symbol string) (quantity.Quantity, bool)

// Lookup calls f
func (f ResolverFunc) Lookup(symbol string) (quantity.Quantity, bool) {
	return f(symbol)
}

// builtins are resolved after the resolver has been consulted
var builtins = map[string]float64{
	"pi": math.Pi,
}

// Parse parses src as a single HCL expression
func Parse(src string) (hcl.Expression, error) {
	expr, diags := hclsyntax.ParseExpression([]byte(src), "<expr>", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, uerrors.Parsing(fmt.Sprintf("invalid expression %q", src), diags)
	}
	return expr, nil
}

// Eval parses and evaluates src
func Eval(src string, r Resolver) (quantity.Quantity, error) {
	expr, err := Parse(src)
	if err != nil {
		return quantity.Quantity{}, err
	}
	return Evaluate(expr, r)
}

// Evaluate reduces a parsed expression to a quantity
func Evaluate(expr hcl.Expression, r Resolver) (quantity.Quantity, error) {
	syn, ok := expr.(hclsyntax.Expression)
	if !ok {
		return quantity.Quantity{}, uerrors.Parsing("only native syntax expressions can be evaluated", nil)
	}
	ev := evaluator{resolver: r}
	return ev.eval(syn)
}

type evaluator struct {
	resolver Resolver
}

func (ev evaluator) eval(expr hclsyntax.Expression) (quantity.Quantity, error) {
	switch e := expr.(type) {
	case *hclsyntax.LiteralValueExpr:
		return literal(e.Val, e.Range())

	case *hclsyntax.ScopeTraversalExpr:
		return ev.resolve(e.Traversal, e.Range())

	case *hclsyntax.ParenthesesExpr:
		return ev.eval(e.Expression)

	case *hclsyntax.UnaryOpExpr:
		if e.Op != hclsyntax.OpNegate {
			return quantity.Quantity{}, unsupported("operator", e.Range())
		}
		v, err := ev.eval(e.Val)
		if err != nil {
			return quantity.Quantity{}, err
		}
		return v.Neg(), nil

	case *hclsyntax.BinaryOpExpr:
		return ev.binary(e)

	case *hclsyntax.FunctionCallExpr:
		return ev.call(e)

	default:
		return quantity.Quantity{}, unsupported("expression", expr.Range())
	}
}

func (ev evaluator) binary(e *hclsyntax.BinaryOpExpr) (quantity.Quantity, error) {
	lhs, err := ev.eval(e.LHS)
	if err != nil {
		return quantity.Quantity{}, err
	}
	rhs, err := ev.eval(e.RHS)
	if err != nil {
		return quantity.Quantity{}, err
	}

	switch e.Op {
	case hclsyntax.OpAdd:
		return lhs.Add(rhs)
	case hclsyntax.OpSubtract:
		return lhs.Sub(rhs)
	case hclsyntax.OpMultiply:
		return lhs.Mul(rhs), nil
	case hclsyntax.OpDivide:
		return lhs.Div(rhs), nil
	default:
		return quantity.Quantity{}, unsupported("operator", e.Range())
	}
}

func (ev evaluator) call(e *hclsyntax.FunctionCallExpr) (quantity.Quantity, error) {
	fn, ok := functions[e.Name]
	if !ok {
		return quantity.Quantity{}, uerrors.NotFound("function", e.Name).
			WithContext("range", e.NameRange.String())
	}
	if e.ExpandFinal {
		return quantity.Quantity{}, unsupported("argument expansion", e.Range())
	}
	if len(e.Args) != fn.arity {
		return quantity.Quantity{}, uerrors.Newf(uerrors.TypeInput,
			"%s expects %d argument(s), got %d", e.Name, fn.arity, len(e.Args)).
			WithContext("range", e.Range().String())
	}

	args := make([]quantity.Quantity, len(e.Args))
	for i, arg := range e.Args {
		v, err := ev.eval(arg)
		if err != nil {
			return quantity.Quantity{}, err
		}
		args[i] = v
	}
	return fn.call(args)
}

func (ev evaluator) resolve(t hcl.Traversal, rng hcl.Range) (quantity.Quantity, error) {
	if len(t) != 1 {
		return quantity.Quantity{}, unsupported("attribute access", rng)
	}
	name := t.RootName()
	if ev.resolver != nil {
		if q, ok := ev.resolver.Lookup(name); ok {
			return q, nil
		}
	}
	if v, ok := builtins[name]; ok {
		return quantity.Scalar(v), nil
	}
	return quantity.Quantity{}, uerrors.NotFound("unit", name).
		WithContext("range", rng.String())
}

func literal(v cty.Value, rng hcl.Range) (quantity.Quantity, error) {
	if v.IsNull() || !v.IsKnown() || v.Type() != cty.Number {
		return quantity.Quantity{}, unsupported(v.Type().FriendlyName()+" literal", rng)
	}
	f, _ := v.AsBigFloat().Float64()
	return quantity.Scalar(f), nil
}

func unsupported(what string, rng hcl.Range) *uerrors.Error {
	return uerrors.Newf(uerrors.TypeParsing, "unsupported %s at %s", what, rng.String())
}
