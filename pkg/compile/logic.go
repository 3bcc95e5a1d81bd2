package compile

import (
	"regexp"
	"strings"

	"github.com/seijihariki/jsonquery/internal/types"
	"github.com/seijihariki/jsonquery/internal/value"
)

// buildCompare wraps an equality or ordering predicate into a two-argument
// builder returning a boolean.
func buildCompare(name string, fn func(a, b value.Value) bool) Builder {
	return func(args []types.Expr, ctx *Context) (Evaluator, error) {
		if err := checkArity(name, args, 2, 2); err != nil {
			return nil, err
		}
		evals, err := compileAll(args, ctx)
		if err != nil {
			return nil, err
		}

		return func(input value.Value) (value.Value, error) {
			a, err := evals[0](input)
			if err != nil {
				return nil, err
			}
			b, err := evals[1](input)
			if err != nil {
				return nil, err
			}

			return value.Bool(fn(a, b)), nil
		}, nil
	}
}

func compareEq(a, b value.Value) bool { return a.Equals(b) }
func compareNe(a, b value.Value) bool { return !a.Equals(b) }

func compareLt(a, b value.Value) bool {
	c, ok := value.Compare(a, b)

	return ok && c < 0
}

func compareLte(a, b value.Value) bool {
	c, ok := value.Compare(a, b)

	return ok && c <= 0
}

func compareGt(a, b value.Value) bool {
	c, ok := value.Compare(a, b)

	return ok && c > 0
}

func compareGte(a, b value.Value) bool {
	c, ok := value.Compare(a, b)

	return ok && c >= 0
}

// buildAnd and buildOr are eager: every operand evaluates, then truthiness
// folds into a boolean.
func buildAnd(args []types.Expr, ctx *Context) (Evaluator, error) {
	if err := checkArity("and", args, 2, -1); err != nil {
		return nil, err
	}
	evals, err := compileAll(args, ctx)
	if err != nil {
		return nil, err
	}

	return func(input value.Value) (value.Value, error) {
		result := true
		for _, eval := range evals {
			v, err := eval(input)
			if err != nil {
				return nil, err
			}
			result = result && value.Truthy(v)
		}

		return value.Bool(result), nil
	}, nil
}

func buildOr(args []types.Expr, ctx *Context) (Evaluator, error) {
	if err := checkArity("or", args, 2, -1); err != nil {
		return nil, err
	}
	evals, err := compileAll(args, ctx)
	if err != nil {
		return nil, err
	}

	return func(input value.Value) (value.Value, error) {
		result := false
		for _, eval := range evals {
			v, err := eval(input)
			if err != nil {
				return nil, err
			}
			result = result || value.Truthy(v)
		}

		return value.Bool(result), nil
	}, nil
}

func buildNot(args []types.Expr, ctx *Context) (Evaluator, error) {
	if err := checkArity("not", args, 1, 1); err != nil {
		return nil, err
	}
	eval, err := ctx.Compile(args[0])
	if err != nil {
		return nil, err
	}

	return func(input value.Value) (value.Value, error) {
		v, err := eval(input)
		if err != nil {
			return nil, err
		}

		return value.Bool(!value.Truthy(v)), nil
	}, nil
}

func buildIf(args []types.Expr, ctx *Context) (Evaluator, error) {
	if err := checkArity("if", args, 3, 3); err != nil {
		return nil, err
	}
	evals, err := compileAll(args, ctx)
	if err != nil {
		return nil, err
	}

	return func(input value.Value) (value.Value, error) {
		cond, err := evals[0](input)
		if err != nil {
			return nil, err
		}
		if value.Truthy(cond) {
			return evals[1](input)
		}

		return evals[2](input)
	}, nil
}

// buildExists tests that the final key of a property path is present on
// its parent. The parent must be an object; anything else is false.
func buildExists(args []types.Expr, ctx *Context) (Evaluator, error) {
	if err := checkArity("exists", args, 1, 1); err != nil {
		return nil, err
	}

	keys, err := pathKeys("exists", args[0])
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, &TypeError{Op: "exists", Want: "a non-empty property path", Observed: args[0].String()}
	}

	parentKeys := keys[:len(keys)-1]
	lastKey := keyString(keys[len(keys)-1])

	return func(input value.Value) (value.Value, error) {
		parent := input
		for _, key := range parentKeys {
			parent = getStep(parent, key)
		}

		obj, ok := parent.(*value.Object)
		if !ok {
			return value.Bool(false), nil
		}
		_, found := obj.Get(lastKey)

		return value.Bool(found), nil
	}, nil
}

// buildIn tests membership of a path's result in an evaluated array by
// value equality. negate produces the "not in" complement.
func buildIn(name string, negate bool) Builder {
	return func(args []types.Expr, ctx *Context) (Evaluator, error) {
		if err := checkArity(name, args, 2, 2); err != nil {
			return nil, err
		}
		evals, err := compileAll(args, ctx)
		if err != nil {
			return nil, err
		}

		return func(input value.Value) (value.Value, error) {
			needle, err := evals[0](input)
			if err != nil {
				return nil, err
			}
			values, err := evals[1](input)
			if err != nil {
				return nil, err
			}

			found := false
			if arr, ok := values.(*value.Array); ok {
				found = containsValue(arr.Elements(), needle)
			}

			return value.Bool(found != negate), nil
		}, nil
	}
}

// buildRegex compiles the pattern once at build time. The target query is
// evaluated at runtime; a non-string target is false.
func buildRegex(args []types.Expr, ctx *Context) (Evaluator, error) {
	if err := checkArity("regex", args, 2, 3); err != nil {
		return nil, err
	}

	target, err := ctx.Compile(args[0])
	if err != nil {
		return nil, err
	}

	pattern, err := literalString("regex", args[1])
	if err != nil {
		return nil, err
	}

	if len(args) == 3 {
		flags, err := literalString("regex", args[2])
		if err != nil {
			return nil, err
		}
		inline := ""
		for _, f := range flags {
			switch f {
			case 'i', 'm', 's':
				if !strings.ContainsRune(inline, f) {
					inline += string(f)
				}
			case 'u':
				// Unicode matching is the engine default.
			default:
				return nil, &TypeError{Op: "regex", Want: `flags "i", "m", "s" or "u"`, Observed: string(f)}
			}
		}
		if inline != "" {
			pattern = "(?" + inline + ")" + pattern
		}
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &TypeError{Op: "regex", Want: "a valid pattern", Observed: err.Error()}
	}

	return func(input value.Value) (value.Value, error) {
		v, err := target(input)
		if err != nil {
			return nil, err
		}
		s, ok := v.(value.String)
		if !ok {
			return value.Bool(false), nil
		}

		return value.Bool(re.MatchString(string(s))), nil
	}, nil
}
