package compile

import (
	"strconv"
	"strings"

	"github.com/seijihariki/jsonquery/internal/types"
	"github.com/seijihariki/jsonquery/internal/value"
)

// buildSplit splits a string. Without a separator the text is trimmed and
// split on runs of whitespace; an empty separator splits into codepoints.
// A non-string text or separator is a type error: there is no reasonable
// default.
func buildSplit(args []types.Expr, ctx *Context) (Evaluator, error) {
	if err := checkArity("split", args, 1, 2); err != nil {
		return nil, err
	}
	evals, err := compileAll(args, ctx)
	if err != nil {
		return nil, err
	}

	return func(input value.Value) (value.Value, error) {
		textVal, err := evals[0](input)
		if err != nil {
			return nil, err
		}
		text, ok := textVal.(value.String)
		if !ok {
			return nil, &TypeError{Op: "split", Want: "a string", Observed: textVal.Type().String()}
		}

		var parts []string
		if len(evals) == 1 {
			parts = strings.Fields(string(text))
		} else {
			sepVal, err := evals[1](input)
			if err != nil {
				return nil, err
			}
			sep, ok := sepVal.(value.String)
			if !ok {
				return nil, &TypeError{Op: "split", Want: "a string separator", Observed: sepVal.Type().String()}
			}
			if sep == "" {
				for _, r := range string(text) {
					parts = append(parts, string(r))
				}
			} else {
				parts = strings.Split(string(text), string(sep))
			}
		}

		elems := make([]value.Value, len(parts))
		for i, part := range parts {
			elems[i] = value.String(part)
		}

		return value.NewArray(elems...), nil
	}, nil
}

// buildSubstring slices a string by codepoint. A negative start clamps to
// 0; the end defaults to the string length.
func buildSubstring(args []types.Expr, ctx *Context) (Evaluator, error) {
	if err := checkArity("substring", args, 2, 3); err != nil {
		return nil, err
	}
	evals, err := compileAll(args, ctx)
	if err != nil {
		return nil, err
	}

	return func(input value.Value) (value.Value, error) {
		textVal, err := evals[0](input)
		if err != nil {
			return nil, err
		}
		text, ok := textVal.(value.String)
		if !ok {
			return nil, &TypeError{Op: "substring", Want: "a string", Observed: textVal.Type().String()}
		}

		startVal, err := evals[1](input)
		if err != nil {
			return nil, err
		}
		startF, ok := asNumber(startVal)
		if !ok {
			return nil, &TypeError{Op: "substring", Want: "a numeric start", Observed: startVal.Type().String()}
		}

		runes := []rune(string(text))
		end := len(runes)
		if len(evals) == 3 {
			endVal, err := evals[2](input)
			if err != nil {
				return nil, err
			}
			endF, ok := asNumber(endVal)
			if !ok {
				return nil, &TypeError{Op: "substring", Want: "a numeric end", Observed: endVal.Type().String()}
			}
			end = clamp(int(endF), 0, len(runes))
		}

		start := clamp(int(startF), 0, len(runes))
		if start >= end {
			return value.String(""), nil
		}

		return value.String(runes[start:end]), nil
	}, nil
}

// buildNumber parses a string into a number; anything unparseable is null.
func buildNumber(args []types.Expr, ctx *Context) (Evaluator, error) {
	if err := checkArity("number", args, 1, 1); err != nil {
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
		switch v := v.(type) {
		case value.Number:
			return v, nil
		case value.String:
			if f, err := strconv.ParseFloat(strings.TrimSpace(string(v)), 64); err == nil {
				return value.Number(f), nil
			}
		}

		return value.Null{}, nil
	}, nil
}

// buildString converts any value to its string form.
func buildString(args []types.Expr, ctx *Context) (Evaluator, error) {
	if err := checkArity("string", args, 1, 1); err != nil {
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

		return value.String(value.Stringify(v)), nil
	}, nil
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}

	return n
}
