package bzip2

import "testing"

func TestErrorMessage(t *testing.T) {
	err := Error("invalid compression level")
	if got, want := err.Error(), "bzip2: invalid compression level"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestErrRecoverCatchesPackageErrors(t *testing.T) {
	fn := func() (err error) {
		defer errRecover(&err)
		errWrap("something went wrong: %d", 42)
		return nil
	}
	err := fn()
	if err == nil {
		t.Fatal("expected a non-nil error")
	}
	if got, want := err.Error(), "bzip2: something went wrong: 42"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestErrRecoverRepanicsOnForeignPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected the foreign panic to propagate")
		}
	}()
	fn := func() (err error) {
		defer errRecover(&err)
		panic("not a bzip2.Error")
	}
	fn()
}
