package http

import (
	"strings"
	"testing"
)

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

type hexProbe struct {
	ID string `validate:"required,hex32"`
}

type decProbe struct {
	Amount float64 `validate:"required,dec2"`
}

func TestHex32Tag(t *testing.T) {
	cv := NewValidator()

	ok := []string{
		strings.Repeat("a", 32),
		"0123456789abcdef0123456789abcdef",
	}
	for _, v := range ok {
		if err := cv.Validate(&hexProbe{ID: v}); err != nil {
			t.Errorf("%q should pass: %v", v, err)
		}
	}

	bad := []string{
		"",
		strings.Repeat("a", 31),
		strings.Repeat("a", 33),
		strings.Repeat("A", 32), // uppercase rejected
		strings.Repeat("g", 32), // not hex
	}
	for _, v := range bad {
		if err := cv.Validate(&hexProbe{ID: v}); err == nil {
			t.Errorf("%q should fail", v)
		}
	}
}

func TestDec2Tag(t *testing.T) {
	cv := NewValidator()

	for _, v := range []float64{1, 0.5, 10.25, 999999.99} {
		if err := cv.Validate(&decProbe{Amount: v}); err != nil {
			t.Errorf("%v should pass: %v", v, err)
		}
	}
	for _, v := range []float64{0.001, 10.555, 1.0000001} {
		if err := cv.Validate(&decProbe{Amount: v}); err == nil {
			t.Errorf("%v should fail", v)
		}
	}
}

func TestToFieldErrors_Messages(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&hexProbe{ID: "zz"})
	if err == nil {
		t.Fatal("expected a validation error")
	}
	details := ToFieldErrors(err)
	if !containsFieldMsg(details, "ID", "hex") {
		t.Errorf("details %+v missing hex32 message", details)
	}

	err = cv.Validate(&hexProbe{})
	details = ToFieldErrors(err)
	if !containsFieldMsg(details, "ID", "required") {
		t.Errorf("details %+v missing required message", details)
	}
}
