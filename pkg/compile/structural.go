package compile

import (
	"github.com/seijihariki/jsonquery/internal/types"
	"github.com/seijihariki/jsonquery/internal/value"
)

// buildPipe chains evaluators: each part receives the previous part's
// result. An empty pipe is the identity.
func buildPipe(parts []types.Expr, ctx *Context) (Evaluator, error) {
	evals, err := compileAll(parts, ctx)
	if err != nil {
		return nil, err
	}

	return func(input value.Value) (value.Value, error) {
		current := input
		for _, eval := range evals {
			next, err := eval(current)
			if err != nil {
				return nil, err
			}
			current = next
		}

		return current, nil
	}, nil
}

// buildObjectEntries constructs an object whose values all evaluate
// against the same input, in declared key order.
func buildObjectEntries(entries []types.ObjectEntry, ctx *Context) (Evaluator, error) {
	type compiledEntry struct {
		key  string
		eval Evaluator
	}

	compiled := make([]compiledEntry, len(entries))
	for i, entry := range entries {
		eval, err := ctx.Compile(entry.Value)
		if err != nil {
			return nil, err
		}
		compiled[i] = compiledEntry{key: entry.Key, eval: eval}
	}

	return func(input value.Value) (value.Value, error) {
		obj := value.NewObject()
		for _, entry := range compiled {
			v, err := entry.eval(input)
			if err != nil {
				return nil, err
			}
			obj.Set(entry.key, v)
		}

		return obj, nil
	}, nil
}

// buildArrayElems constructs an array by evaluating each element against
// the input.
func buildArrayElems(elems []types.Expr, ctx *Context) (Evaluator, error) {
	evals, err := compileAll(elems, ctx)
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

		return value.NewArray(vals...), nil
	}, nil
}

// buildGet compiles property access over a literal path. Each step fetches
// an object key or an array index; any miss yields null and null
// propagates through the remaining steps. With no keys the evaluator is
// the identity.
func buildGet(args []types.Expr, ctx *Context) (Evaluator, error) {
	keys, err := literalKeys("get", args)
	if err != nil {
		return nil, err
	}

	return func(input value.Value) (value.Value, error) {
		current := input
		for _, key := range keys {
			current = getStep(current, key)
		}

		return current, nil
	}, nil
}

func getStep(v value.Value, key value.Value) value.Value {
	switch v := v.(type) {
	case *value.Object:
		if found, ok := v.Get(keyString(key)); ok {
			return found
		}
	case *value.Array:
		if i, ok := intIndex(key); ok {
			return v.Get(i)
		}
	}

	return value.Null{}
}
