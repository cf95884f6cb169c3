package engine

import (
	"errors"
	"testing"
)

func TestPyLiteral(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"42", "42"},
		{"0", "0"},
		{"apple", `"apple"`},
		{"-2", `"-2"`},   // signed numbers are not digits-only
		{"1.5", `"1.5"`}, // neither are floats
		{"4 2", `"4 2"`}, // internal space disqualifies
		{"", `""`},
	}
	for _, tt := range tests {
		if got := pyLiteral(tt.token); got != tt.want {
			t.Errorf("pyLiteral(%q) = %s, want %s", tt.token, got, tt.want)
		}
	}
}

func TestPyStringEscaping(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`plain`, `"plain"`},
		{`say "hi"`, `"say \"hi\""`},
		{`back\slash`, `"back\\slash"`},
	}
	for _, tt := range tests {
		if got := pyString(tt.in); got != tt.want {
			t.Errorf("pyString(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestPyList(t *testing.T) {
	tests := []struct {
		csv  string
		want string
	}{
		{"1,2,3", "[1, 2, 3]"},
		{"a, b ,c", `["a", "b", "c"]`},
		{"1,apple, 2", `[1, "apple", 2]`},
		{"solo", `["solo"]`},
	}
	for _, tt := range tests {
		if got := pyList(tt.csv); got != tt.want {
			t.Errorf("pyList(%q) = %s, want %s", tt.csv, got, tt.want)
		}
	}
}

func TestPyDict(t *testing.T) {
	got, err := pyDict("name:john, age:25")
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"name": "john", "age": 25}`; got != want {
		t.Errorf("pyDict = %s, want %s", got, want)
	}

	for _, bad := range []string{"name", "a:b:c", "x:1, y"} {
		if _, err := pyDict(bad); !errors.Is(err, ErrMalformed) {
			t.Errorf("pyDict(%q) error = %v, want ErrMalformed", bad, err)
		}
	}
}

func TestIsDigits(t *testing.T) {
	for s, want := range map[string]bool{
		"123": true,
		"0":   true,
		"":    false,
		"12a": false,
		"١٢٣": false, // only ASCII digits count
	} {
		if got := isDigits(s); got != want {
			t.Errorf("isDigits(%q) = %v, want %v", s, got, want)
		}
	}
}
