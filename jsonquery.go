// Package jsonquery is a small, embeddable query language for navigating
// and transforming JSON-like data.
//
// A query is either a compact text expression or a structured form of
// nested arrays, objects and primitives; both denote the same value and
// compile to the same evaluator:
//
//	data, _ := value.FromJSON([]byte(`{"name": "Joe"}`))
//
//	out, err := jsonquery.Query(data, `.name`, nil)
//
//	q, _ := value.FromJSON([]byte(`["get", "name"]`))
//	out, err = jsonquery.Query(data, q, nil)
//
// Queries compose with pipes and the built-in function library:
//
//	friends
//	  | filter(.age >= 21)
//	  | sort(.age, "desc")
//	  | pick(.name, .age)
//
// The language is extensible per call: Options carries user functions
// that shadow the core table and new operator symbols bound to function
// names. Compiled evaluators are pure, never mutate their input, and are
// safe to reuse and share.
package jsonquery

import (
	"fmt"

	"github.com/seijihariki/jsonquery/internal/types"
	"github.com/seijihariki/jsonquery/internal/value"
	"github.com/seijihariki/jsonquery/pkg/compile"
	"github.com/seijihariki/jsonquery/pkg/parser"
)

// Options customizes a single parse, compile or query call.
type Options struct {
	// Functions maps names to builders. Entries shadow the core
	// standard library by name.
	Functions map[string]compile.Builder

	// Operators maps new operator symbols to canonical function names.
	// A symbol's precedence follows its canonical name: arithmetic
	// names keep their arithmetic tier, pipe, or and and keep their
	// own tiers, and every other name parses at the comparison tier.
	Operators map[string]string
}

// Query runs a query against data and returns the result. The query may
// be a text expression, a previously parsed abstract form, or the
// structured form as a value.
func Query(data value.Value, query any, opts *Options) (value.Value, error) {
	eval, err := Compile(query, opts)
	if err != nil {
		return nil, err
	}

	return eval(data)
}

// Parse converts a text query into its abstract form.
func Parse(text string, opts *Options) (types.Expr, error) {
	return parser.Parse(text, operatorTable(opts))
}

// Stringify renders a query as canonical text, the inverse of Parse.
func Stringify(query types.Expr, opts *Options) string {
	return parser.Stringify(query, operatorTable(opts))
}

// Compile lowers a query into a reusable evaluator. The query may be a
// text expression, an abstract form, or the structured form as a value.
func Compile(query any, opts *Options) (compile.Evaluator, error) {
	expr, err := exprOf(query, opts)
	if err != nil {
		return nil, err
	}

	var functions map[string]compile.Builder
	if opts != nil {
		functions = opts.Functions
	}

	return compile.Compile(expr, compile.NewContext(functions))
}

// StructuredForm encodes a query into its structured form, a value that
// Query and Compile accept in place of text.
func StructuredForm(query types.Expr) value.Value {
	return types.ToValue(query)
}

// BuildFunction wraps a plain value-level function into a builder that
// compiles its argument queries and applies them to the input before
// calling fn. An arity below zero accepts any argument count.
func BuildFunction(name string, arity int, fn func([]value.Value) (value.Value, error)) compile.Builder {
	return compile.BuildFunction(name, arity, fn)
}

func exprOf(query any, opts *Options) (types.Expr, error) {
	switch query := query.(type) {
	case types.Expr:
		return query, nil
	case string:
		return Parse(query, opts)
	case value.Value:
		return types.FromValue(query)
	default:
		return nil, fmt.Errorf("unsupported query type %T", query)
	}
}

func operatorTable(opts *Options) *parser.Table {
	table := parser.DefaultTable()
	if opts == nil || len(opts.Operators) == 0 {
		return table
	}

	table = table.Clone()
	for symbol, name := range opts.Operators {
		table.Add(symbol, name)
	}

	return table
}
