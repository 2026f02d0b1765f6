package common

import (
	"errors"
	"strings"
	"testing"
)

func TestResultOk(t *testing.T) {
	r := Ok(42)
	if !r.IsOk() || r.IsErr() {
		t.Fatal("Ok result should report IsOk and not IsErr")
	}
	if v := r.Unwrap(); v != 42 {
		t.Fatalf("expected 42, got %d", v)
	}
}

func TestResultErr(t *testing.T) {
	want := errors.New("boom")
	r := Err[int](want)
	if r.IsOk() || !r.IsErr() {
		t.Fatal("Err result should report IsErr and not IsOk")
	}
	if got := r.UnwrapErr(); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

// TestResultFrom checks the bridge from a (value, error) pair picks the
// variant by the error alone.
func TestResultFrom(t *testing.T) {
	if r := From("value", nil); !r.IsOk() || r.Unwrap() != "value" {
		t.Fatal("nil error should produce an Ok result")
	}
	if r := From("ignored", errors.New("bad")); !r.IsErr() {
		t.Fatal("non-nil error should produce an Err result")
	}
}

func TestUnwrapOnErrPanics(t *testing.T) {
	defer func() {
		rec := recover()
		if rec == nil {
			t.Fatal("expected Unwrap on Err to panic")
		}
		msg, ok := rec.(string)
		if !ok || !strings.Contains(msg, "called Unwrap on an Err value") {
			t.Fatalf("unexpected panic value: %v", rec)
		}
	}()
	Err[int](errors.New("error")).Unwrap()
}

func TestUnwrapErrOnOkPanics(t *testing.T) {
	defer func() {
		if rec := recover(); rec != "called UnwrapErr on an Ok value" {
			t.Fatalf("unexpected panic value: %v", rec)
		}
	}()
	Ok(42).UnwrapErr()
}
