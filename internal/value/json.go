package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// FromJSON decodes a JSON document into a Value, preserving the key order
// of objects. Numbers decode as float64.
func FromJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}

	// The document must be a single value.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after JSON value")
	}

	return v, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch tok := tok.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Bool(tok), nil
	case json.Number:
		f, err := tok.Float64()
		if err != nil {
			return nil, err
		}

		return Number(f), nil
	case string:
		return String(tok), nil
	case json.Delim:
		switch tok {
		case '[':
			var elems []Value
			for dec.More() {
				elem, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				elems = append(elems, elem)
			}
			if _, err := dec.Token(); err != nil { // closing ']'
				return nil, err
			}

			return &Array{elems: elems}, nil
		case '{':
			obj := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("expected object key, got %v", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key, val)
			}
			if _, err := dec.Token(); err != nil { // closing '}'
				return nil, err
			}

			return obj, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %v", tok)
		}
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

// FromGo converts a plain Go value (the encoding/json mapping: nil, bool,
// float64/int, string, []any, map[string]any) into a Value. Map keys are
// sorted so the result is deterministic; decode JSON text with FromJSON
// when the original key order matters.
func FromGo(v any) (Value, error) {
	switch v := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return v, nil
	case bool:
		return Bool(v), nil
	case float64:
		return Number(v), nil
	case float32:
		return Number(v), nil
	case int:
		return Number(v), nil
	case int64:
		return Number(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil, err
		}

		return Number(f), nil
	case string:
		return String(v), nil
	case []any:
		elems := make([]Value, len(v))
		for i, elem := range v {
			val, err := FromGo(elem)
			if err != nil {
				return nil, err
			}
			elems[i] = val
		}

		return &Array{elems: elems}, nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		obj := NewObject()
		for _, k := range keys {
			val, err := FromGo(v[k])
			if err != nil {
				return nil, err
			}
			obj.Set(k, val)
		}

		return obj, nil
	default:
		return nil, fmt.Errorf("cannot convert %T to a value", v)
	}
}

func quoteString(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		// Marshalling a string cannot fail.
		return strconv.Quote(s)
	}

	return string(b)
}

func appendFloat(f float64, format byte) string {
	return strconv.FormatFloat(f, format, -1, 64)
}
