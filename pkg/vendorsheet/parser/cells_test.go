package parser

import "testing"

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected any
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		result := ParseValue(tt.input)
		if result != tt.expected {
			t.Errorf("ParseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestCellString(t *testing.T) {
	tests := []struct {
		input    any
		expected string
	}{
		{nil, ""},
		{"abc", "abc"},
		{int64(1024), "1024"},
		{7, "7"},
		{float64(2), "2"},
		{1.5, "1.5"},
		{true, "true"},
		{false, "false"},
	}

	for _, tt := range tests {
		if got := CellString(tt.input); got != tt.expected {
			t.Errorf("CellString(%v) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestIsFalsy(t *testing.T) {
	falsy := []any{nil, "", int64(0), 0, 0.0, false}
	for _, v := range falsy {
		if !IsFalsy(v) {
			t.Errorf("IsFalsy(%v) = false, expected true", v)
		}
	}

	truthy := []any{"0", "x", int64(1), -1, 0.5, true, " "}
	for _, v := range truthy {
		if IsFalsy(v) {
			t.Errorf("IsFalsy(%v) = true, expected false", v)
		}
	}
}

func TestNumeric(t *testing.T) {
	if n, ok := Numeric(int64(3)); !ok || n != 3 {
		t.Errorf("Numeric(int64(3)) = %v, %v", n, ok)
	}
	if n, ok := Numeric(2.5); !ok || n != 2.5 {
		t.Errorf("Numeric(2.5) = %v, %v", n, ok)
	}
	if _, ok := Numeric("3"); ok {
		t.Error("Numeric(\"3\") should not treat a string as numeric")
	}
	if _, ok := Numeric(nil); ok {
		t.Error("Numeric(nil) should report false")
	}
}
