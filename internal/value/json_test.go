package value

import "testing"

func TestFromJSONRoundTrip(t *testing.T) {
	tests := []string{
		`null`,
		`true`,
		`false`,
		`42`,
		`-0.5`,
		`"hello"`,
		`[]`,
		`[1,2,3]`,
		`{}`,
		`{"b":1,"a":[{"x":null}]}`,
	}

	for _, src := range tests {
		v, err := FromJSON([]byte(src))
		if err != nil {
			t.Fatalf("FromJSON(%s) returned error: %v", src, err)
		}
		if got := v.String(); got != src {
			t.Errorf("FromJSON(%s).String() = %s", src, got)
		}
	}
}

func TestFromJSONPreservesKeyOrder(t *testing.T) {
	v, err := FromJSON([]byte(`{"z":1,"a":2,"m":3}`))
	if err != nil {
		t.Fatalf("FromJSON returned error: %v", err)
	}

	obj, ok := v.(*Object)
	if !ok {
		t.Fatalf("expected object, got %T", v)
	}

	keys := obj.Keys()
	want := []string{"z", "a", "m"}
	for i, k := range want {
		if keys[i] != k {
			t.Fatalf("Keys() = %v, want %v", keys, want)
		}
	}
}

func TestFromJSONRejectsTrailingData(t *testing.T) {
	if _, err := FromJSON([]byte(`1 2`)); err == nil {
		t.Errorf("expected error for trailing data")
	}
}

func TestFromGo(t *testing.T) {
	v, err := FromGo(map[string]any{
		"b": []any{1, "x", nil},
		"a": true,
	})
	if err != nil {
		t.Fatalf("FromGo returned error: %v", err)
	}

	// Map keys are sorted for determinism.
	if got := v.String(); got != `{"a":true,"b":[1,"x",null]}` {
		t.Errorf("FromGo result = %s", got)
	}
}
