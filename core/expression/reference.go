package expression

import (
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
)

// References returns the unique symbols an expression refers to, sorted
func References(expr hcl.Expression) []string {
	seen := make(map[string]struct{})
	for _, t := range expr.Variables() {
		seen[t.RootName()] = struct{}{}
	}
	return sortedSet(seen)
}

// Missing returns the referenced symbols that neither r nor the builtins
// can resolve
func Missing(expr hcl.Expression, r Resolver) []string {
	var missing []string
	for _, name := range References(expr) {
		if _, ok := builtins[name]; ok {
			continue
		}
		if r != nil {
			if _, ok := r.Lookup(name); ok {
				continue
			}
		}
		missing = append(missing, name)
	}
	return missing
}

// Calls returns the unique function names an expression calls, sorted
func Calls(expr hcl.Expression) []string {
	seen := make(map[string]struct{})
	if syn, ok := expr.(hclsyntax.Expression); ok {
		walkForFunctions(syn, seen)
	}
	return sortedSet(seen)
}

// UnknownCalls returns the called functions that are not supported
func UnknownCalls(expr hcl.Expression) []string {
	var unknown []string
	for _, name := range Calls(expr) {
		if _, ok := functions[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

func walkForFunctions(expr hclsyntax.Expression, seen map[string]struct{}) {
	switch e := expr.(type) {
	case *hclsyntax.FunctionCallExpr:
		seen[e.Name] = struct{}{}
		for _, arg := range e.Args {
			walkForFunctions(arg, seen)
		}
	case *hclsyntax.BinaryOpExpr:
		walkForFunctions(e.LHS, seen)
		walkForFunctions(e.RHS, seen)
	case *hclsyntax.UnaryOpExpr:
		walkForFunctions(e.Val, seen)
	case *hclsyntax.ParenthesesExpr:
		walkForFunctions(e.Expression, seen)
	case *hclsyntax.ConditionalExpr:
		walkForFunctions(e.Condition, seen)
		walkForFunctions(e.TrueResult, seen)
		walkForFunctions(e.FalseResult, seen)
	}
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
