package target_test

import (
	"testing"

	"github.com/dshills/actionbind/internal/action/target"
)

func TestValueStartsUninitialized(t *testing.T) {
	v := target.NewValue()

	if !target.IsUninitialized(v.Current()) {
		t.Error("new value should hold the uninitialized sentinel")
	}
}

func TestIsUninitialized(t *testing.T) {
	if !target.IsUninitialized(target.Uninitialized) {
		t.Error("sentinel not recognized")
	}
	if target.IsUninitialized(nil) {
		t.Error("nil must not be the sentinel")
	}
	if target.IsUninitialized("value") {
		t.Error("concrete value must not be the sentinel")
	}
}

func TestValueSetNotifies(t *testing.T) {
	v := target.NewValue()

	var gotOld, gotNew any
	calls := 0
	v.Subscribe(func(old, new any) {
		gotOld, gotNew = old, new
		calls++
	})

	v.Set("first")

	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
	if !target.IsUninitialized(gotOld) {
		t.Errorf("old = %v, want sentinel", gotOld)
	}
	if gotNew != "first" {
		t.Errorf("new = %v, want first", gotNew)
	}
}

func TestValueUnsubscribe(t *testing.T) {
	v := target.NewValue()

	calls := 0
	sub := v.Subscribe(func(_, _ any) { calls++ })

	v.Set(1)
	sub.Unsubscribe()
	v.Set(2)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestFixedSource(t *testing.T) {
	f := target.Fixed("pinned")

	if f.Current() != "pinned" {
		t.Errorf("Current = %v, want pinned", f.Current())
	}

	sub := f.Subscribe(func(_, _ any) {
		t.Error("fixed source must never notify")
	})
	sub.Unsubscribe()
}
