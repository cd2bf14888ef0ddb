package fixer

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorRing_NilSafe(t *testing.T) {
	var r *errorRing

	r.push(ErrGeometryUnavailable)
	r.clear()

	if r.all() != nil {
		t.Error("expected nil from nil ring")
	}
}

func TestErrorRing_DisabledSizes(t *testing.T) {
	if newErrorRing(0) != nil {
		t.Error("expected nil ring for size 0")
	}
	if newErrorRing(-1) != nil {
		t.Error("expected nil ring for negative size")
	}
}

func TestErrorRing_OldestFirst(t *testing.T) {
	r := newErrorRing(3)

	for i := 1; i <= 3; i++ {
		r.push(fmt.Errorf("cycle %d: %w", i, ErrGeometryUnavailable))
	}

	errs := r.all()
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %d", len(errs))
	}
	for i, err := range errs {
		want := fmt.Sprintf("cycle %d: %s", i+1, ErrGeometryUnavailable)
		if err.Error() != want {
			t.Errorf("errs[%d]: expected %q, got %q", i, want, err.Error())
		}
		if !errors.Is(err, ErrGeometryUnavailable) {
			t.Errorf("errs[%d]: expected to wrap ErrGeometryUnavailable", i)
		}
	}
}

func TestErrorRing_WrapsAndEvictsOldest(t *testing.T) {
	r := newErrorRing(2)

	r.push(errors.New("error1"))
	r.push(errors.New("error2"))
	r.push(errors.New("error3"))

	errs := r.all()
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(errs))
	}
	if errs[0].Error() != "error2" || errs[1].Error() != "error3" {
		t.Errorf("expected [error2 error3], got %v", errs)
	}
}

func TestErrorRing_ClearThenPush(t *testing.T) {
	r := newErrorRing(3)

	r.push(errors.New("error1"))
	r.push(errors.New("error2"))
	r.clear()

	if errs := r.all(); errs != nil {
		t.Fatalf("expected nil after clear, got %v", errs)
	}

	r.push(errors.New("new error"))
	errs := r.all()
	if len(errs) != 1 || errs[0].Error() != "new error" {
		t.Errorf("expected [new error], got %v", errs)
	}
}

func TestErrorRing_SizeOne(t *testing.T) {
	r := newErrorRing(1)

	r.push(errors.New("error1"))
	r.push(errors.New("error2"))

	errs := r.all()
	if len(errs) != 1 || errs[0].Error() != "error2" {
		t.Errorf("expected error2 to replace error1, got %v", errs)
	}
}
