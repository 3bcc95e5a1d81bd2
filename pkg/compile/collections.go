package compile

import (
	"math"
	"sort"
	"strings"

	"github.com/seijihariki/jsonquery/internal/types"
	"github.com/seijihariki/jsonquery/internal/value"
)

// Collection functions operate on arrays and null-propagate on input types
// they do not handle. pick, keys and values also accept an object, and size
// also accepts an object or a string.

func buildMap(args []types.Expr, ctx *Context) (Evaluator, error) {
	if err := checkArity("map", args, 1, 1); err != nil {
		return nil, err
	}
	cb, err := ctx.Compile(args[0])
	if err != nil {
		return nil, err
	}

	return func(input value.Value) (value.Value, error) {
		arr, ok := input.(*value.Array)
		if !ok {
			return value.Null{}, nil
		}

		mapped := make([]value.Value, arr.Len())
		for i := range mapped {
			v, err := cb(arr.Get(i))
			if err != nil {
				return nil, err
			}
			mapped[i] = v
		}

		return value.NewArray(mapped...), nil
	}, nil
}

func buildFilter(args []types.Expr, ctx *Context) (Evaluator, error) {
	if err := checkArity("filter", args, 1, 1); err != nil {
		return nil, err
	}
	cb, err := ctx.Compile(args[0])
	if err != nil {
		return nil, err
	}

	return func(input value.Value) (value.Value, error) {
		arr, ok := input.(*value.Array)
		if !ok {
			return value.Null{}, nil
		}

		var kept []value.Value
		for i := 0; i < arr.Len(); i++ {
			elem := arr.Get(i)
			v, err := cb(elem)
			if err != nil {
				return nil, err
			}
			if value.Truthy(v) {
				kept = append(kept, elem)
			}
		}

		return value.NewArray(kept...), nil
	}, nil
}

func buildSort(args []types.Expr, ctx *Context) (Evaluator, error) {
	if err := checkArity("sort", args, 0, 2); err != nil {
		return nil, err
	}

	keyOf := identityEvaluator
	if len(args) >= 1 {
		eval, err := ctx.Compile(args[0])
		if err != nil {
			return nil, err
		}
		keyOf = eval
	}

	descending := false
	if len(args) == 2 {
		dir, err := literalString("sort", args[1])
		if err != nil {
			return nil, err
		}
		switch dir {
		case "asc":
		case "desc":
			descending = true
		default:
			return nil, &TypeError{Op: "sort", Want: `direction "asc" or "desc"`, Observed: dir}
		}
	}

	return func(input value.Value) (value.Value, error) {
		arr, ok := input.(*value.Array)
		if !ok {
			return value.Null{}, nil
		}

		elems := arr.Elements()
		sortKeys := make([]value.Value, len(elems))
		for i, elem := range elems {
			k, err := keyOf(elem)
			if err != nil {
				return nil, err
			}
			sortKeys[i] = k
		}

		// Sort a permutation so each element stays paired with its key.
		// Stable, so uncomparable pairs keep their input order.
		order := make([]int, len(elems))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(i, j int) bool {
			c, ok := value.Compare(sortKeys[order[i]], sortKeys[order[j]])
			if !ok {
				return false
			}
			if descending {
				return c > 0
			}

			return c < 0
		})

		sorted := make([]value.Value, len(elems))
		for i, idx := range order {
			sorted[i] = elems[idx]
		}

		return value.NewArray(sorted...), nil
	}, nil
}

func buildReverse(args []types.Expr, ctx *Context) (Evaluator, error) {
	if err := checkArity("reverse", args, 0, 0); err != nil {
		return nil, err
	}

	return func(input value.Value) (value.Value, error) {
		arr, ok := input.(*value.Array)
		if !ok {
			return value.Null{}, nil
		}

		elems := arr.Elements()
		for i, j := 0, len(elems)-1; i < j; i, j = i+1, j-1 {
			elems[i], elems[j] = elems[j], elems[i]
		}

		return value.NewArray(elems...), nil
	}, nil
}

// buildPick selects properties. For an object input the result is keyed by
// the last segment of each path; for an array input the selection maps
// over the elements.
func buildPick(args []types.Expr, ctx *Context) (Evaluator, error) {
	if err := checkArity("pick", args, 1, -1); err != nil {
		return nil, err
	}

	type picked struct {
		key  string
		eval Evaluator
	}

	selections := make([]picked, len(args))
	for i, arg := range args {
		keys, err := pathKeys("pick", arg)
		if err != nil {
			return nil, err
		}
		if len(keys) == 0 {
			return nil, &TypeError{Op: "pick", Want: "a non-empty property path", Observed: arg.String()}
		}
		eval, err := ctx.Compile(arg)
		if err != nil {
			return nil, err
		}
		selections[i] = picked{key: keyString(keys[len(keys)-1]), eval: eval}
	}

	pickOne := func(v value.Value) (value.Value, error) {
		obj := value.NewObject()
		for _, sel := range selections {
			got, err := sel.eval(v)
			if err != nil {
				return nil, err
			}
			obj.Set(sel.key, got)
		}

		return obj, nil
	}

	return func(input value.Value) (value.Value, error) {
		switch input := input.(type) {
		case *value.Array:
			mapped := make([]value.Value, input.Len())
			for i := range mapped {
				v, err := pickOne(input.Get(i))
				if err != nil {
					return nil, err
				}
				mapped[i] = v
			}

			return value.NewArray(mapped...), nil
		case *value.Object:
			return pickOne(input)
		default:
			return value.Null{}, nil
		}
	}, nil
}

func buildGroupBy(args []types.Expr, ctx *Context) (Evaluator, error) {
	if err := checkArity("groupBy", args, 1, 1); err != nil {
		return nil, err
	}
	keyOf, err := ctx.Compile(args[0])
	if err != nil {
		return nil, err
	}

	return func(input value.Value) (value.Value, error) {
		arr, ok := input.(*value.Array)
		if !ok {
			return value.Null{}, nil
		}

		var order []string
		groups := make(map[string][]value.Value)
		for i := 0; i < arr.Len(); i++ {
			elem := arr.Get(i)
			k, err := keyOf(elem)
			if err != nil {
				return nil, err
			}
			key := value.Stringify(k)
			if _, exists := groups[key]; !exists {
				order = append(order, key)
			}
			groups[key] = append(groups[key], elem)
		}

		obj := value.NewObject()
		for _, key := range order {
			obj.Set(key, value.NewArray(groups[key]...))
		}

		return obj, nil
	}, nil
}

func buildKeyBy(args []types.Expr, ctx *Context) (Evaluator, error) {
	if err := checkArity("keyBy", args, 1, 1); err != nil {
		return nil, err
	}
	keyOf, err := ctx.Compile(args[0])
	if err != nil {
		return nil, err
	}

	return func(input value.Value) (value.Value, error) {
		arr, ok := input.(*value.Array)
		if !ok {
			return value.Null{}, nil
		}

		obj := value.NewObject()
		for i := 0; i < arr.Len(); i++ {
			elem := arr.Get(i)
			k, err := keyOf(elem)
			if err != nil {
				return nil, err
			}
			key := value.Stringify(k)
			if _, exists := obj.Get(key); !exists {
				obj.Set(key, elem)
			}
		}

		return obj, nil
	}, nil
}

func buildFlatten(args []types.Expr, ctx *Context) (Evaluator, error) {
	if err := checkArity("flatten", args, 0, 0); err != nil {
		return nil, err
	}

	return func(input value.Value) (value.Value, error) {
		arr, ok := input.(*value.Array)
		if !ok {
			return value.Null{}, nil
		}

		var flat []value.Value
		for i := 0; i < arr.Len(); i++ {
			if nested, ok := arr.Get(i).(*value.Array); ok {
				flat = append(flat, nested.Elements()...)
			} else {
				flat = append(flat, arr.Get(i))
			}
		}

		return value.NewArray(flat...), nil
	}, nil
}

func buildJoin(args []types.Expr, ctx *Context) (Evaluator, error) {
	if err := checkArity("join", args, 0, 1); err != nil {
		return nil, err
	}

	sepEval := Evaluator(nil)
	if len(args) == 1 {
		eval, err := ctx.Compile(args[0])
		if err != nil {
			return nil, err
		}
		sepEval = eval
	}

	return func(input value.Value) (value.Value, error) {
		arr, ok := input.(*value.Array)
		if !ok {
			return value.Null{}, nil
		}

		sep := ""
		if sepEval != nil {
			v, err := sepEval(input)
			if err != nil {
				return nil, err
			}
			if _, isNull := v.(value.Null); !isNull {
				sep = value.Stringify(v)
			}
		}

		parts := make([]string, arr.Len())
		for i := range parts {
			parts[i] = value.Stringify(arr.Get(i))
		}

		return value.String(strings.Join(parts, sep)), nil
	}, nil
}

func buildUniq(args []types.Expr, ctx *Context) (Evaluator, error) {
	if err := checkArity("uniq", args, 0, 0); err != nil {
		return nil, err
	}

	return func(input value.Value) (value.Value, error) {
		arr, ok := input.(*value.Array)
		if !ok {
			return value.Null{}, nil
		}

		var unique []value.Value
		for i := 0; i < arr.Len(); i++ {
			elem := arr.Get(i)
			if !containsValue(unique, elem) {
				unique = append(unique, elem)
			}
		}

		return value.NewArray(unique...), nil
	}, nil
}

func buildUniqBy(args []types.Expr, ctx *Context) (Evaluator, error) {
	if err := checkArity("uniqBy", args, 1, 1); err != nil {
		return nil, err
	}
	keyOf, err := ctx.Compile(args[0])
	if err != nil {
		return nil, err
	}

	return func(input value.Value) (value.Value, error) {
		arr, ok := input.(*value.Array)
		if !ok {
			return value.Null{}, nil
		}

		var unique []value.Value
		var seen []value.Value
		for i := 0; i < arr.Len(); i++ {
			elem := arr.Get(i)
			k, err := keyOf(elem)
			if err != nil {
				return nil, err
			}
			if !containsValue(seen, k) {
				seen = append(seen, k)
				unique = append(unique, elem)
			}
		}

		return value.NewArray(unique...), nil
	}, nil
}

func buildLimit(args []types.Expr, ctx *Context) (Evaluator, error) {
	if err := checkArity("limit", args, 1, 1); err != nil {
		return nil, err
	}
	nEval, err := ctx.Compile(args[0])
	if err != nil {
		return nil, err
	}

	return func(input value.Value) (value.Value, error) {
		arr, ok := input.(*value.Array)
		if !ok {
			return value.Null{}, nil
		}

		nVal, err := nEval(input)
		if err != nil {
			return nil, err
		}
		f, ok := asNumber(nVal)
		if !ok {
			return value.Null{}, nil
		}

		n := int(math.Max(math.Trunc(f), 0))
		if n > arr.Len() {
			n = arr.Len()
		}

		return value.NewArray(arr.Elements()[:n]...), nil
	}, nil
}

func buildSize(args []types.Expr, ctx *Context) (Evaluator, error) {
	if err := checkArity("size", args, 0, 0); err != nil {
		return nil, err
	}

	return func(input value.Value) (value.Value, error) {
		if n, ok := value.Size(input); ok {
			return value.Number(n), nil
		}

		return value.Null{}, nil
	}, nil
}

func buildKeys(args []types.Expr, ctx *Context) (Evaluator, error) {
	if err := checkArity("keys", args, 0, 0); err != nil {
		return nil, err
	}

	return func(input value.Value) (value.Value, error) {
		obj, ok := input.(*value.Object)
		if !ok {
			return value.Null{}, nil
		}

		keys := obj.Keys()
		elems := make([]value.Value, len(keys))
		for i, k := range keys {
			elems[i] = value.String(k)
		}

		return value.NewArray(elems...), nil
	}, nil
}

func buildValues(args []types.Expr, ctx *Context) (Evaluator, error) {
	if err := checkArity("values", args, 0, 0); err != nil {
		return nil, err
	}

	return func(input value.Value) (value.Value, error) {
		obj, ok := input.(*value.Object)
		if !ok {
			return value.Null{}, nil
		}

		keys := obj.Keys()
		elems := make([]value.Value, len(keys))
		for i, k := range keys {
			elems[i], _ = obj.Get(k)
		}

		return value.NewArray(elems...), nil
	}, nil
}

func containsValue(haystack []value.Value, needle value.Value) bool {
	for _, v := range haystack {
		if needle.Equals(v) {
			return true
		}
	}

	return false
}

func identityEvaluator(v value.Value) (value.Value, error) { return v, nil }
