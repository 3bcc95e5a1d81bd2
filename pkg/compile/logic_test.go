package compile

import (
	"testing"

	"github.com/seijihariki/jsonquery/internal/types"
	"github.com/seijihariki/jsonquery/internal/value"
)

func TestComparisons(t *testing.T) {
	tests := []struct {
		query    string
		input    string
		expected string
	}{
		{`1 == 1`, `null`, `true`},
		{`1 == "1"`, `null`, `false`},
		{`null == null`, `null`, `true`},
		{`.a == .b`, `{"a":[1,2],"b":[1,2]}`, `true`},
		{`.a == .b`, `{"a":{"x":1,"y":2},"b":{"y":2,"x":1}}`, `true`},
		{`1 != 2`, `null`, `true`},
		{`1 < 2`, `null`, `true`},
		{`2 <= 2`, `null`, `true`},
		{`3 > 2`, `null`, `true`},
		{`"a" < "b"`, `null`, `true`},
		// Ordering is undefined across types: comparisons yield false.
		{`1 < "2"`, `null`, `false`},
		{`"1" > 0`, `null`, `false`},
		{`null < 1`, `null`, `false`},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := testEval(t, tt.query, tt.input); got != tt.expected {
				t.Errorf("%s on %s = %s, want %s", tt.query, tt.input, got, tt.expected)
			}
		})
	}
}

func TestBooleanLogic(t *testing.T) {
	tests := []struct {
		query    string
		input    string
		expected string
	}{
		{`.a and .b`, `{"a":1,"b":1}`, `true`},
		{`.a and .b`, `{"a":1,"b":0}`, `false`},
		{`.a or .b`, `{"a":0,"b":0}`, `false`},
		{`.a or .b`, `{"a":0,"b":"x"}`, `true`},
		// Truthiness, not raw booleans: empty containers count as true.
		{`.a and .b`, `{"a":[],"b":{}}`, `true`},
		{`not .a`, `{"a":null}`, `true`},
		{`not .a`, `{"a":""}`, `false`},
		{`not 0`, `null`, `true`},
	}

	for _, tt := range tests {
		t.Run(tt.query+" "+tt.input, func(t *testing.T) {
			if got := testEval(t, tt.query, tt.input); got != tt.expected {
				t.Errorf("%s on %s = %s, want %s", tt.query, tt.input, got, tt.expected)
			}
		})
	}
}

// and/or are eager: both arms always evaluate. A user function counts its
// calls to observe this.
func TestAndOrAreEager(t *testing.T) {
	calls := 0
	extensions := map[string]Builder{
		"tick": BuildFunction("tick", 0, func([]value.Value) (value.Value, error) {
			calls++

			return value.Bool(true), nil
		}),
	}

	if got := testEvalWith(t, `false and tick()`, `null`, extensions); got != `false` {
		t.Errorf("false and tick() = %s", got)
	}
	if calls != 1 {
		t.Errorf("tick evaluated %d times, want 1", calls)
	}

	calls = 0
	if got := testEvalWith(t, `true or tick()`, `null`, extensions); got != `true` {
		t.Errorf("true or tick() = %s", got)
	}
	if calls != 1 {
		t.Errorf("tick evaluated %d times, want 1", calls)
	}
}

func TestIf(t *testing.T) {
	tests := []struct {
		query    string
		input    string
		expected string
	}{
		{`if(.ok, "yes", "no")`, `{"ok":true}`, `"yes"`},
		{`if(.ok, "yes", "no")`, `{"ok":false}`, `"no"`},
		{`if(.missing, 1, 2)`, `{}`, `2`},
		{`if(.n, .n * 2, 0)`, `{"n":5}`, `10`},
	}

	for _, tt := range tests {
		if got := testEval(t, tt.query, tt.input); got != tt.expected {
			t.Errorf("%s on %s = %s, want %s", tt.query, tt.input, got, tt.expected)
		}
	}
}

func TestExists(t *testing.T) {
	tests := []struct {
		query    string
		input    string
		expected string
	}{
		{`exists(.a)`, `{"a":1}`, `true`},
		{`exists(.a)`, `{"a":null}`, `true`}, // present, even though null
		{`exists(.a)`, `{"b":1}`, `false`},
		{`exists(.a.b)`, `{"a":{"b":2}}`, `true`},
		{`exists(.a.b)`, `{"a":{}}`, `false`},
		{`exists(.a.b)`, `{}`, `false`},
		{`exists(.a)`, `[1,2]`, `false`}, // parent must be an object
		{`exists(.a)`, `null`, `false`},
	}

	for _, tt := range tests {
		t.Run(tt.query+" "+tt.input, func(t *testing.T) {
			if got := testEval(t, tt.query, tt.input); got != tt.expected {
				t.Errorf("%s on %s = %s, want %s", tt.query, tt.input, got, tt.expected)
			}
		})
	}
}

func TestExistsRequiresPath(t *testing.T) {
	if _, err := Compile(types.Func("exists", types.Literal(value.Number(1))), nil); err == nil {
		t.Errorf("exists should reject a non-property argument")
	}
	if _, err := Compile(types.Func("exists", types.Func("get")), nil); err == nil {
		t.Errorf("exists should reject an empty path")
	}
}

func TestInNotIn(t *testing.T) {
	tests := []struct {
		query    string
		input    string
		expected string
	}{
		{`.x in [1, 2, 3]`, `{"x":2}`, `true`},
		{`.x in [1, 2, 3]`, `{"x":5}`, `false`},
		{`.x in ["a", "b"]`, `{"x":"a"}`, `true`},
		{`.x in [null]`, `{}`, `true`}, // absent path yields null, which equals null
		{`.x not in [1, 2]`, `{"x":5}`, `true`},
		{`.x not in [1, 2]`, `{"x":2}`, `false`},
		{`.x in .allowed`, `{"x":2,"allowed":[2,4]}`, `true`},
		{`.x in .allowed`, `{"x":2,"allowed":"nope"}`, `false`},
	}

	for _, tt := range tests {
		t.Run(tt.query+" "+tt.input, func(t *testing.T) {
			if got := testEval(t, tt.query, tt.input); got != tt.expected {
				t.Errorf("%s on %s = %s, want %s", tt.query, tt.input, got, tt.expected)
			}
		})
	}
}

func TestRegex(t *testing.T) {
	tests := []struct {
		query    string
		input    string
		expected string
	}{
		{`regex(.name, "^J")`, `{"name":"Joe"}`, `true`},
		{`regex(.name, "^J")`, `{"name":"Sarah"}`, `false`},
		{`regex(.name, "^j", "i")`, `{"name":"Joe"}`, `true`},
		{`regex(.name, /^j/i)`, `{"name":"Joe"}`, `true`},
		{`regex(.name, /\d+/)`, `{"name":"agent 47"}`, `true`},
		{`regex(.x, "^a")`, `{}`, `false`},       // absent target
		{`regex(.x, "^a")`, `{"x":42}`, `false`}, // non-string target
	}

	for _, tt := range tests {
		t.Run(tt.query+" "+tt.input, func(t *testing.T) {
			if got := testEval(t, tt.query, tt.input); got != tt.expected {
				t.Errorf("%s on %s = %s, want %s", tt.query, tt.input, got, tt.expected)
			}
		})
	}
}

func TestRegexCompileErrors(t *testing.T) {
	badPattern := types.Func("regex", types.Get("x"), types.Literal(value.String("(")))
	if _, err := Compile(badPattern, nil); err == nil {
		t.Errorf("expected error for invalid pattern")
	}

	badFlags := types.Func("regex", types.Get("x"), types.Literal(value.String("a")), types.Literal(value.String("z")))
	if _, err := Compile(badFlags, nil); err == nil {
		t.Errorf("expected error for unsupported flag")
	}

	dynamicPattern := types.Func("regex", types.Get("x"), types.Get("pattern"))
	if _, err := Compile(dynamicPattern, nil); err == nil {
		t.Errorf("expected error for non-literal pattern")
	}
}
