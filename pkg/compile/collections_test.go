package compile

import "testing"

func TestMapFilter(t *testing.T) {
	tests := []struct {
		query    string
		input    string
		expected string
	}{
		{`map(.a)`, `[{"a":1},{"a":2}]`, `[1,2]`},
		{`map(. * 2)`, `[1,2,3]`, `[2,4,6]`},
		{`map(.a)`, `[]`, `[]`},
		{`map(.a)`, `{"a":1}`, `null`},
		{`filter(. > 2)`, `[1,2,3,4]`, `[3,4]`},
		{`filter(.ok)`, `[{"ok":true},{"ok":false},{"ok":null},{"ok":1}]`, `[{"ok":true},{"ok":1}]`},
		{`filter(. > 10)`, `[1,2]`, `[]`},
		{`filter(.a)`, `"nope"`, `null`},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := testEval(t, tt.query, tt.input); got != tt.expected {
				t.Errorf("%s on %s = %s, want %s", tt.query, tt.input, got, tt.expected)
			}
		})
	}
}

func TestFilterKeepsSubsequenceOrder(t *testing.T) {
	if got := testEval(t, `filter(. != 2)`, `[3,2,1,2,5]`); got != `[3,1,5]` {
		t.Errorf("filter = %s", got)
	}
}

func TestMapPreservesSize(t *testing.T) {
	if got := testEval(t, `map(.missing) | size()`, `[1,2,3,4,5]`); got != `5` {
		t.Errorf("size(map) = %s", got)
	}
}

func TestSort(t *testing.T) {
	tests := []struct {
		query    string
		input    string
		expected string
	}{
		{`sort()`, `[3,1,2]`, `[1,2,3]`},
		{`sort(.a)`, `[{"a":3},{"a":1},{"a":2}]`, `[{"a":1},{"a":2},{"a":3}]`},
		{`sort(.a, "desc")`, `[{"a":3},{"a":1},{"a":2}]`, `[{"a":3},{"a":2},{"a":1}]`},
		{`sort()`, `["b","a","c"]`, `["a","b","c"]`},
		{`sort()`, `[]`, `[]`},
		{`sort()`, `42`, `null`},
		// Mutually uncomparable elements keep their original order.
		{`sort()`, `[2,"b",null]`, `[2,"b",null]`},
	}

	for _, tt := range tests {
		t.Run(tt.query+" "+tt.input, func(t *testing.T) {
			if got := testEval(t, tt.query, tt.input); got != tt.expected {
				t.Errorf("%s on %s = %s, want %s", tt.query, tt.input, got, tt.expected)
			}
		})
	}
}

func TestSortIsStable(t *testing.T) {
	input := `[{"k":1,"tag":"first"},{"k":0,"tag":"x"},{"k":1,"tag":"second"}]`
	expected := `[{"k":0,"tag":"x"},{"k":1,"tag":"first"},{"k":1,"tag":"second"}]`
	if got := testEval(t, `sort(.k)`, input); got != expected {
		t.Errorf("sort(.k) = %s", got)
	}
}

func TestSortInvalidDirection(t *testing.T) {
	expr := mustParseExpr(t, `sort(.a, "sideways")`)
	if _, err := Compile(expr, nil); err == nil {
		t.Errorf("expected error for invalid direction")
	}
}

func TestReverse(t *testing.T) {
	if got := testEval(t, `reverse()`, `[1,2,3]`); got != `[3,2,1]` {
		t.Errorf("reverse = %s", got)
	}
	if got := testEval(t, `reverse() | reverse()`, `[1,2,3]`); got != `[1,2,3]` {
		t.Errorf("reverse twice = %s", got)
	}
}

func TestPick(t *testing.T) {
	tests := []struct {
		query    string
		input    string
		expected string
	}{
		{`pick(.name)`, `{"name":"Joe","age":3}`, `{"name":"Joe"}`},
		{`pick(.name, .age)`, `{"name":"Joe","age":3}`, `{"name":"Joe","age":3}`},
		// Keyed by the last segment of the path.
		{`pick(.address.city)`, `{"address":{"city":"Oslo"}}`, `{"city":"Oslo"}`},
		{`pick(.missing)`, `{"name":"Joe"}`, `{"missing":null}`},
		// Array input maps the selection over elements.
		{`pick(.a)`, `[{"a":1,"b":2},{"a":3}]`, `[{"a":1},{"a":3}]`},
		{`pick(.a)`, `"x"`, `null`},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := testEval(t, tt.query, tt.input); got != tt.expected {
				t.Errorf("%s on %s = %s, want %s", tt.query, tt.input, got, tt.expected)
			}
		})
	}
}

func TestGroupByKeyBy(t *testing.T) {
	input := `[{"g":"x","v":1},{"g":"y","v":2},{"g":"x","v":3}]`

	if got := testEval(t, `groupBy(.g)`, input); got != `{"x":[{"g":"x","v":1},{"g":"x","v":3}],"y":[{"g":"y","v":2}]}` {
		t.Errorf("groupBy = %s", got)
	}

	// keyBy keeps the first element per key; later collisions are ignored.
	if got := testEval(t, `keyBy(.g)`, input); got != `{"x":{"g":"x","v":1},"y":{"g":"y","v":2}}` {
		t.Errorf("keyBy = %s", got)
	}

	// Keys are stringified path values.
	if got := testEval(t, `groupBy(.n)`, `[{"n":1},{"n":2},{"n":1}]`); got != `{"1":[{"n":1},{"n":1}],"2":[{"n":2}]}` {
		t.Errorf("groupBy numeric = %s", got)
	}
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`[[1,2],[3],[4,5]]`, `[1,2,3,4,5]`},
		{`[1,[2,[3,4]]]`, `[1,2,[3,4]]`}, // one level only
		{`[]`, `[]`},
	}

	for _, tt := range tests {
		if got := testEval(t, `flatten()`, tt.input); got != tt.expected {
			t.Errorf("flatten(%s) = %s, want %s", tt.input, got, tt.expected)
		}
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		query    string
		input    string
		expected string
	}{
		{`join(", ")`, `["a","b","c"]`, `"a, b, c"`},
		{`join()`, `["a","b"]`, `"ab"`},
		{`join("-")`, `[1,true,"x"]`, `"1-true-x"`},
		{`join(",")`, `[]`, `""`},
	}

	for _, tt := range tests {
		if got := testEval(t, tt.query, tt.input); got != tt.expected {
			t.Errorf("%s on %s = %s, want %s", tt.query, tt.input, got, tt.expected)
		}
	}
}

func TestUniq(t *testing.T) {
	tests := []struct {
		query    string
		input    string
		expected string
	}{
		{`uniq()`, `[1,2,1,3,2]`, `[1,2,3]`},
		{`uniq()`, `[{"a":1},{"a":1},{"a":2}]`, `[{"a":1},{"a":2}]`},
		{`uniq() | uniq()`, `[1,1,2]`, `[1,2]`},
		{`uniqBy(.a)`, `[{"a":1,"i":0},{"a":1,"i":1},{"a":2,"i":2}]`, `[{"a":1,"i":0},{"a":2,"i":2}]`},
	}

	for _, tt := range tests {
		if got := testEval(t, tt.query, tt.input); got != tt.expected {
			t.Errorf("%s on %s = %s, want %s", tt.query, tt.input, got, tt.expected)
		}
	}
}

func TestLimit(t *testing.T) {
	tests := []struct {
		query    string
		input    string
		expected string
	}{
		{`limit(2)`, `[1,2,3]`, `[1,2]`},
		{`limit(10)`, `[1,2,3]`, `[1,2,3]`},
		{`limit(0)`, `[1,2,3]`, `[]`},
		{`limit(-1)`, `[1,2,3]`, `[]`},
	}

	for _, tt := range tests {
		if got := testEval(t, tt.query, tt.input); got != tt.expected {
			t.Errorf("%s on %s = %s, want %s", tt.query, tt.input, got, tt.expected)
		}
	}
}

func TestSizeKeysValues(t *testing.T) {
	tests := []struct {
		query    string
		input    string
		expected string
	}{
		{`size()`, `[1,2,3]`, `3`},
		{`size()`, `{"a":1,"b":2}`, `2`},
		{`size()`, `"héllo"`, `5`},
		{`size()`, `42`, `null`},
		{`keys()`, `{"b":1,"a":2}`, `["b","a"]`},
		{`values()`, `{"b":1,"a":2}`, `[1,2]`},
		{`keys()`, `[1,2]`, `null`},
	}

	for _, tt := range tests {
		if got := testEval(t, tt.query, tt.input); got != tt.expected {
			t.Errorf("%s on %s = %s, want %s", tt.query, tt.input, got, tt.expected)
		}
	}
}

func TestNumericFolds(t *testing.T) {
	tests := []struct {
		query    string
		input    string
		expected string
	}{
		{`sum()`, `[1,2,3,4]`, `10`},
		{`sum()`, `[]`, `0`},
		{`prod()`, `[2,3,4]`, `24`},
		{`prod()`, `[]`, `1`},
		{`average()`, `[2,4,6]`, `4`},
		{`average()`, `[]`, `null`},
		{`min()`, `[3,1,2]`, `1`},
		{`min()`, `[]`, `null`},
		{`max()`, `[3,1,2]`, `3`},
		{`max()`, `[]`, `null`},
		{`sum()`, `[1,"x"]`, `null`},
		{`sum()`, `{"a":1}`, `null`},
	}

	for _, tt := range tests {
		t.Run(tt.query+" "+tt.input, func(t *testing.T) {
			if got := testEval(t, tt.query, tt.input); got != tt.expected {
				t.Errorf("%s on %s = %s, want %s", tt.query, tt.input, got, tt.expected)
			}
		})
	}
}
