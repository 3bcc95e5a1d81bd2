package types

import (
	"fmt"

	"github.com/seijihariki/jsonquery/internal/value"
)

// FromValue decodes the structured form of a query into its abstract form.
// An array whose first element is a string is a function call, an object is
// object construction, and every non-array, non-object value is a literal.
// An empty array or one whose first element is not a string is an error;
// literal arrays are spelled ["array", ...] in the structured form.
func FromValue(v value.Value) (Expr, error) {
	switch v := v.(type) {
	case *value.Array:
		if v.Len() == 0 {
			return nil, fmt.Errorf("invalid query: empty array form")
		}
		name, ok := v.Get(0).(value.String)
		if !ok {
			return nil, fmt.Errorf("invalid query: function name must be a string, got %s", v.Get(0).Type())
		}

		args := make([]Expr, v.Len()-1)
		for i := range args {
			arg, err := FromValue(v.Get(i + 1))
			if err != nil {
				return nil, err
			}
			args[i] = arg
		}

		switch string(name) {
		case "pipe":
			return &PipeExpr{Parts: args}, nil
		case "array":
			return &ArrayExpr{Elems: args}, nil
		default:
			return &FuncExpr{Name: string(name), Args: args}, nil
		}
	case *value.Object:
		entries := make([]ObjectEntry, 0, v.Len())
		for _, k := range v.Keys() {
			val, _ := v.Get(k)
			sub, err := FromValue(val)
			if err != nil {
				return nil, err
			}
			entries = append(entries, ObjectEntry{Key: k, Value: sub})
		}

		return &ObjectExpr{Entries: entries}, nil
	default:
		return &LiteralExpr{Value: v}, nil
	}
}

// ToValue encodes a query back into its structured form, the inverse of
// FromValue. A literal that holds an array or object value is lowered to
// the construction form ["array", ...] or {...}, which denotes the same
// evaluator.
func ToValue(e Expr) value.Value {
	switch e := e.(type) {
	case *LiteralExpr:
		switch v := e.Value.(type) {
		case *value.Array:
			elems := make([]Expr, v.Len())
			for i := range elems {
				elems[i] = &LiteralExpr{Value: v.Get(i)}
			}

			return ToValue(&ArrayExpr{Elems: elems})
		case *value.Object:
			entries := make([]ObjectEntry, 0, v.Len())
			for _, k := range v.Keys() {
				val, _ := v.Get(k)
				entries = append(entries, ObjectEntry{Key: k, Value: &LiteralExpr{Value: val}})
			}

			return ToValue(&ObjectExpr{Entries: entries})
		default:
			return e.Value
		}
	case *FuncExpr:
		return encodeCall(e.Name, e.Args)
	case *PipeExpr:
		return encodeCall("pipe", e.Parts)
	case *ArrayExpr:
		return encodeCall("array", e.Elems)
	case *ObjectExpr:
		obj := value.NewObject()
		for _, entry := range e.Entries {
			obj.Set(entry.Key, ToValue(entry.Value))
		}

		return obj
	default:
		return value.Null{}
	}
}

func encodeCall(name string, args []Expr) value.Value {
	elems := make([]value.Value, 0, len(args)+1)
	elems = append(elems, value.String(name))
	for _, arg := range args {
		elems = append(elems, ToValue(arg))
	}

	return value.NewArray(elems...)
}
