package validator

import "testing"

func TestIsStringList(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want bool
	}{
		{"bare string", "abc", false},
		{"string slice", []string{"a", "b"}, true},
		{"decoded string array", []interface{}{"a", "b"}, true},
		{"decoded mixed array", []interface{}{"a", 1.0}, false},
		{"decoded number array", []interface{}{1.0, 2.0}, false},
		{"number", 5.0, false},
		{"nil", nil, false},
		{"object", map[string]interface{}{"a": "b"}, false},
		{"empty array", []interface{}{}, true},
		{"empty string slice", []string{}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsStringList(tc.in); got != tc.want {
				t.Fatalf("IsStringList(%#v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestValidateRequiredFields(t *testing.T) {
	type req struct {
		Username string `validate:"required"`
	}

	if fields := Validate(req{}); fields == nil {
		t.Fatal("expected a validation error for empty username")
	}
	if fields := Validate(req{Username: "josh"}); fields != nil {
		t.Fatalf("expected no validation errors, got %v", fields)
	}
}
