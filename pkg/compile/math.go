package compile

import (
	"math"

	"github.com/seijihariki/jsonquery/internal/types"
	"github.com/seijihariki/jsonquery/internal/value"
)

// Arithmetic follows standard float64 semantics; division by zero yields
// an infinity and 0/0 yields NaN. Operands of the wrong type propagate as
// null rather than erroring.

// buildBinaryNumber wraps a float64 operation into a two-argument builder.
func buildBinaryNumber(name string, fn func(a, b float64) float64) Builder {
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

			fa, okA := asNumber(a)
			fb, okB := asNumber(b)
			if !okA || !okB {
				return value.Null{}, nil
			}

			return value.Number(fn(fa, fb)), nil
		}, nil
	}
}

// buildAdd adds numbers and concatenates strings.
func buildAdd(args []types.Expr, ctx *Context) (Evaluator, error) {
	if err := checkArity("add", args, 2, 2); err != nil {
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

		switch a := a.(type) {
		case value.Number:
			if b, ok := b.(value.Number); ok {
				return a + b, nil
			}
		case value.String:
			if b, ok := b.(value.String); ok {
				return a + b, nil
			}
		}

		return value.Null{}, nil
	}, nil
}

func buildAbs(args []types.Expr, ctx *Context) (Evaluator, error) {
	if err := checkArity("abs", args, 1, 1); err != nil {
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
		f, ok := asNumber(v)
		if !ok {
			return value.Null{}, nil
		}

		return value.Number(math.Abs(f)), nil
	}, nil
}

// buildRound rounds half away from zero at the given decimal digit.
func buildRound(args []types.Expr, ctx *Context) (Evaluator, error) {
	if err := checkArity("round", args, 1, 2); err != nil {
		return nil, err
	}
	evals, err := compileAll(args, ctx)
	if err != nil {
		return nil, err
	}

	return func(input value.Value) (value.Value, error) {
		v, err := evals[0](input)
		if err != nil {
			return nil, err
		}
		f, ok := asNumber(v)
		if !ok {
			return value.Null{}, nil
		}

		digits := 0.0
		if len(evals) == 2 {
			d, err := evals[1](input)
			if err != nil {
				return nil, err
			}
			df, ok := asNumber(d)
			if !ok {
				return value.Null{}, nil
			}
			digits = math.Trunc(df)
		}

		shift := math.Pow(10, digits)

		return value.Number(math.Round(f*shift) / shift), nil
	}, nil
}

// buildFold wraps a numeric array fold. empty is the result for an empty
// array; a nil empty yields null, as does any non-number element.
func buildFold(name string, empty value.Value, fn func(nums []float64) float64) Builder {
	return func(args []types.Expr, ctx *Context) (Evaluator, error) {
		if err := checkArity(name, args, 0, 0); err != nil {
			return nil, err
		}

		return func(input value.Value) (value.Value, error) {
			arr, ok := input.(*value.Array)
			if !ok {
				return value.Null{}, nil
			}
			if arr.Len() == 0 {
				if empty == nil {
					return value.Null{}, nil
				}

				return empty, nil
			}

			nums := make([]float64, arr.Len())
			for i := range nums {
				f, ok := asNumber(arr.Get(i))
				if !ok {
					return value.Null{}, nil
				}
				nums[i] = f
			}

			return value.Number(fn(nums)), nil
		}, nil
	}
}

func foldSum(nums []float64) float64 {
	total := 0.0
	for _, n := range nums {
		total += n
	}

	return total
}

func foldProd(nums []float64) float64 {
	total := 1.0
	for _, n := range nums {
		total *= n
	}

	return total
}

func foldAverage(nums []float64) float64 {
	return foldSum(nums) / float64(len(nums))
}

func foldMin(nums []float64) float64 {
	m := nums[0]
	for _, n := range nums[1:] {
		m = math.Min(m, n)
	}

	return m
}

func foldMax(nums []float64) float64 {
	m := nums[0]
	for _, n := range nums[1:] {
		m = math.Max(m, n)
	}

	return m
}
