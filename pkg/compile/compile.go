package compile

import (
	"fmt"

	"github.com/seijihariki/jsonquery/internal/types"
	"github.com/seijihariki/jsonquery/internal/value"
)

// Evaluator is a compiled query: a pure function from an input value to an
// output value. An evaluator never mutates its input and may be reused and
// shared freely after compilation.
type Evaluator func(value.Value) (value.Value, error)

// Builder lowers the argument queries of a single function call into an
// evaluator. Builders compile their sub-queries once, at build time, and
// close over the resulting evaluators so that runtime dispatch does no
// table lookups.
type Builder func(args []types.Expr, ctx *Context) (Evaluator, error)

// Context holds the function table in effect for one compile call.
// Builders that compile sub-queries re-enter the compiler through the same
// context, so user extensions stay visible in nested compiles.
type Context struct {
	funcs map[string]Builder
}

// NewContext creates a compile context from the core function table merged
// with the given extensions. Extensions shadow core entries by name.
func NewContext(extensions map[string]Builder) *Context {
	funcs := make(map[string]Builder, len(coreFuncs)+len(extensions))
	for name, builder := range coreFuncs {
		funcs[name] = builder
	}
	for name, builder := range extensions {
		funcs[name] = builder
	}

	return &Context{funcs: funcs}
}

// Lookup finds a builder by function name.
func (c *Context) Lookup(name string) (Builder, bool) {
	builder, ok := c.funcs[name]

	return builder, ok
}

// Compile lowers a query into an evaluator, dispatching on the node type.
func (c *Context) Compile(e types.Expr) (Evaluator, error) {
	switch e := e.(type) {
	case *types.LiteralExpr:
		v := e.Value

		return func(value.Value) (value.Value, error) { return v, nil }, nil

	case *types.FuncExpr:
		builder, ok := c.funcs[e.Name]
		if !ok {
			return nil, &UnknownFunctionError{Name: e.Name}
		}

		return builder(e.Args, c)

	case *types.PipeExpr:
		return buildPipe(e.Parts, c)

	case *types.ObjectExpr:
		return buildObjectEntries(e.Entries, c)

	case *types.ArrayExpr:
		return buildArrayElems(e.Elems, c)

	default:
		return nil, fmt.Errorf("unknown query node type: %T", e)
	}
}

// Compile lowers a query into an evaluator using the given context. A nil
// context compiles against the core function table only.
func Compile(e types.Expr, ctx *Context) (Evaluator, error) {
	if ctx == nil {
		ctx = NewContext(nil)
	}

	return ctx.Compile(e)
}

// compileAll compiles every argument with the same context.
func compileAll(args []types.Expr, ctx *Context) ([]Evaluator, error) {
	evals := make([]Evaluator, len(args))
	for i, arg := range args {
		eval, err := ctx.Compile(arg)
		if err != nil {
			return nil, err
		}
		evals[i] = eval
	}

	return evals, nil
}

// BuildFunction wraps a plain value-level function into a builder. The
// builder compiles each argument query, and the evaluator applies them to
// the input before calling fn with the results. An arity below zero
// accepts any argument count.
func BuildFunction(name string, arity int, fn func([]value.Value) (value.Value, error)) Builder {
	return func(args []types.Expr, ctx *Context) (Evaluator, error) {
		if arity >= 0 && len(args) != arity {
			return nil, &ArityError{Name: name, Expected: fmt.Sprintf("%d", arity), Actual: len(args)}
		}

		evals, err := compileAll(args, ctx)
		if err != nil {
			return nil, err
		}

		return func(input value.Value) (value.Value, error) {
			vals := make([]value.Value, len(evals))
			for i, eval := range evals {
				v, err := eval(input)
				if err != nil {
					return nil, err
				}
				vals[i] = v
			}

			return fn(vals)
		}, nil
	}
}
