package compile

import (
	"fmt"
	"math"
	"strconv"

	"github.com/seijihariki/jsonquery/internal/types"
	"github.com/seijihariki/jsonquery/internal/value"
)

// checkArity validates the argument count of a call. max below zero means
// unbounded.
func checkArity(name string, args []types.Expr, min, max int) error {
	n := len(args)
	if n >= min && (max < 0 || n <= max) {
		return nil
	}

	var expected string
	switch {
	case max < 0:
		expected = fmt.Sprintf("at least %d", min)
	case min == max:
		expected = strconv.Itoa(min)
	default:
		expected = fmt.Sprintf("%d to %d", min, max)
	}

	return &ArityError{Name: name, Expected: expected, Actual: n}
}

// literalString extracts a literal string argument at build time.
func literalString(name string, arg types.Expr) (string, error) {
	if lit, ok := arg.(*types.LiteralExpr); ok {
		if s, ok := lit.Value.(value.String); ok {
			return string(s), nil
		}
	}

	return "", &TypeError{Op: name, Want: "a literal string argument", Observed: arg.String()}
}

// pathKeys extracts the literal keys of a property argument: the argument
// must be a get call whose arguments are all literal strings or numbers.
func pathKeys(name string, arg types.Expr) ([]value.Value, error) {
	fn, ok := arg.(*types.FuncExpr)
	if !ok || fn.Name != "get" {
		return nil, &TypeError{Op: name, Want: "a property argument", Observed: arg.String()}
	}

	return literalKeys(name, fn.Args)
}

// literalKeys extracts literal string or number path keys.
func literalKeys(name string, args []types.Expr) ([]value.Value, error) {
	keys := make([]value.Value, len(args))
	for i, arg := range args {
		lit, ok := arg.(*types.LiteralExpr)
		if !ok {
			return nil, &TypeError{Op: name, Want: "literal string or number keys", Observed: arg.String()}
		}
		switch lit.Value.(type) {
		case value.String, value.Number:
			keys[i] = lit.Value
		default:
			return nil, &TypeError{Op: name, Want: "literal string or number keys", Observed: lit.Value.Type().String()}
		}
	}

	return keys, nil
}

// keyString renders a path key for use as an object key.
func keyString(key value.Value) string {
	return value.Stringify(key)
}

// asNumber unwraps a number value.
func asNumber(v value.Value) (float64, bool) {
	n, ok := v.(value.Number)

	return float64(n), ok
}

// intIndex converts a key to an array index: an integral number or a
// decimal integer string (an optional sign is accepted).
func intIndex(key value.Value) (int, bool) {
	switch key := key.(type) {
	case value.Number:
		f := float64(key)
		if f == math.Trunc(f) && !math.IsInf(f, 0) {
			return int(f), true
		}
	case value.String:
		if i, err := strconv.Atoi(string(key)); err == nil {
			return i, true
		}
	}

	return 0, false
}
