package types

import (
	"strings"

	"github.com/seijihariki/jsonquery/internal/value"
)

// Expr represents a node in the abstract form of a query.
// All query node types implement this interface.
type Expr interface {
	// String returns a debug representation in function-call syntax
	String() string

	// exprNode is a marker method to ensure only query node types implement this interface
	exprNode()
}

// LiteralExpr represents a constant value.
type LiteralExpr struct {
	Value value.Value
}

func (e *LiteralExpr) String() string { return e.Value.String() }
func (e *LiteralExpr) exprNode()      {}

// FuncExpr represents a call of a named function. Infix operators in the
// text form parse into FuncExpr nodes carrying the operator's canonical
// function name, and property access is a FuncExpr named "get" whose
// arguments are the literal path keys.
type FuncExpr struct {
	Name string
	Args []Expr
}

func (e *FuncExpr) String() string {
	parts := make([]string, len(e.Args))
	for i, arg := range e.Args {
		parts[i] = arg.String()
	}

	return e.Name + "(" + strings.Join(parts, ", ") + ")"
}
func (e *FuncExpr) exprNode() {}

// PipeExpr represents a sequence of queries where each part receives the
// previous part's result. It is shorthand for FuncExpr{Name: "pipe"}.
type PipeExpr struct {
	Parts []Expr
}

func (e *PipeExpr) String() string {
	parts := make([]string, len(e.Parts))
	for i, part := range e.Parts {
		parts[i] = part.String()
	}

	return strings.Join(parts, " | ")
}
func (e *PipeExpr) exprNode() {}

// ObjectEntry is a single key of an object construction.
type ObjectEntry struct {
	Key   string
	Value Expr
}

// ObjectExpr represents literal object construction with dynamic values.
// Declared key order is preserved.
type ObjectExpr struct {
	Entries []ObjectEntry
}

func (e *ObjectExpr) String() string {
	parts := make([]string, len(e.Entries))
	for i, entry := range e.Entries {
		parts[i] = entry.Key + ": " + entry.Value.String()
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
func (e *ObjectExpr) exprNode() {}

// ArrayExpr represents literal array construction with dynamic elements.
type ArrayExpr struct {
	Elems []Expr
}

func (e *ArrayExpr) String() string {
	parts := make([]string, len(e.Elems))
	for i, elem := range e.Elems {
		parts[i] = elem.String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
func (e *ArrayExpr) exprNode() {}

// Literal wraps a value into a LiteralExpr.
func Literal(v value.Value) *LiteralExpr { return &LiteralExpr{Value: v} }

// Func builds a FuncExpr from a name and arguments.
func Func(name string, args ...Expr) *FuncExpr { return &FuncExpr{Name: name, Args: args} }

// Get builds the property-access node for a literal string path.
func Get(keys ...string) *FuncExpr {
	args := make([]Expr, len(keys))
	for i, k := range keys {
		args[i] = Literal(value.String(k))
	}

	return &FuncExpr{Name: "get", Args: args}
}
